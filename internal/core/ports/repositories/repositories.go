package repositories

// RepositoryProvider bundles the repository facades the service layer needs.
type RepositoryProvider struct {
	CurrencyRepo    CurrencyRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
}
