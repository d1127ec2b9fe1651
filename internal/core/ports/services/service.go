package services

// ServiceContainer holds all service facades needed by the handlers.
// This makes passing dependencies to route registration cleaner.
type ServiceContainer struct {
	Account AccountSvcFacade
	Journal JournalSvcFacade
}
