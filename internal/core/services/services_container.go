package services

import (
	portsrepo "github.com/daytrackapp/daytrack-backend/internal/core/ports/repositories"
	portssvc "github.com/daytrackapp/daytrack-backend/internal/core/ports/services"
	"github.com/daytrackapp/daytrack-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Account = NewAccountService(repos.AccountRepo)
	container.Transaction = NewTransactionService(repos.AccountRepo, repos.TransactionRepo)
	container.Reporting = NewReportingService(repos.AccountRepo, repos.TransactionRepo)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Compile-time interface implementation checks
var (
	_ portssvc.UserSvcFacade               = (*userService)(nil)
	_ portssvc.AccountSvcFacade            = (*accountService)(nil)
	_ portssvc.TransactionSvcFacade        = (*transactionService)(nil)
	_ portssvc.ReportingSvcFacade          = (*reportingService)(nil)
	_ portssvc.TokenSvcFacade              = (*tokenService)(nil)
	_ portssvc.GoogleOAuthHandlerSvcFacade = (*googleOAuthHandlerService)(nil)
)
