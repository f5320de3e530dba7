package services

// ServiceContainer holds all the service facades used by the handlers.
type ServiceContainer struct {
	Currency CurrencySvcFacade
	Quote    QuoteSvcFacade
	Payment  PaymentSvcFacade
}
