package cmd

import (
	"log/slog"
	netsmtp "net/smtp"
	"time"

	httpadapter "parcellocker/internal/adapters/in/http"
	"parcellocker/internal/adapters/out/postgres"
	"parcellocker/internal/adapters/out/smtp"
	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/application/usecases/queries"
	"parcellocker/internal/jobs"
	"parcellocker/internal/pkg/token"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers with explicit
// constructor injection.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	tokens     *token.Service
	notifier   *smtp.Notifier
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the loaded configuration.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	expiry, err := time.ParseDuration(configs.JWTExpiry)
	if err != nil {
		expiry = time.Hour
	}

	var auth netsmtp.Auth
	if configs.SMTPUser != "" {
		auth = netsmtp.PlainAuth("", configs.SMTPUser, configs.SMTPPassword, configs.SMTPHost)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokens:     token.NewService(configs.JWTSecret, expiry),
		notifier:   smtp.NewNotifier(configs.SMTPAddr(), configs.SMTPFrom, auth, logger),
		logger:     logger,
	}
}

// TokenService exposes the JWT issuer/verifier for the HTTP adapter.
func (c *CompositionRoot) TokenService() *token.Service {
	return c.tokens
}

func (c *CompositionRoot) bloqUoWFactory() commands.BloqUoWFactory {
	return FuncBloqUoWFactory(func() commands.BloqUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) lockerUoWFactory() commands.LockerUoWFactory {
	return FuncLockerUoWFactory(func() commands.LockerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) rentUoWFactory() commands.RentUoWFactory {
	return FuncRentUoWFactory(func() commands.RentUoW {
		return c.uowFactory.Create()
	})
}

// CreateCommandHandlers builds the full write-side handler set for the server.
func (c *CompositionRoot) CreateCommandHandlers() httpadapter.CommandHandlers {
	return httpadapter.CommandHandlers{
		RegisterAccount: commands.NewRegisterAccountCommandHandler(c.accountUoWFactory()),
		CreateBloq:      commands.NewCreateBloqCommandHandler(c.bloqUoWFactory()),
		UpdateBloq:      commands.NewUpdateBloqCommandHandler(c.bloqUoWFactory()),
		DeleteBloq:      commands.NewDeleteBloqCommandHandler(c.bloqUoWFactory()),
		CreateLocker:    commands.NewCreateLockerCommandHandler(c.lockerUoWFactory()),
		UpdateLocker:    commands.NewUpdateLockerCommandHandler(c.lockerUoWFactory()),
		DeleteLocker:    commands.NewDeleteLockerCommandHandler(c.lockerUoWFactory()),
		CreateRent:      commands.NewCreateRentCommandHandler(c.rentUoWFactory()),
		UpdateRent:      commands.NewUpdateRentCommandHandler(c.rentUoWFactory()),
		DropoffRent:     commands.NewDropoffRentCommandHandler(c.rentUoWFactory(), c.notifier),
		PickupRent:      commands.NewPickupRentCommandHandler(c.rentUoWFactory(), c.notifier),
		ReallocateRent:  commands.NewReallocateRentCommandHandler(c.rentUoWFactory()),
	}
}

// CreateQueryHandlers builds the full read-side handler set for the server.
func (c *CompositionRoot) CreateQueryHandlers() httpadapter.QueryHandlers {
	return httpadapter.QueryHandlers{
		Authenticate:     queries.NewAuthenticateQueryHandler(c.gormDB),
		GetAllBloqs:      queries.NewGetAllBloqsQueryHandler(c.gormDB),
		GetBloq:          queries.NewGetBloqQueryHandler(c.gormDB),
		GetAllLockers:    queries.NewGetAllLockersQueryHandler(c.gormDB),
		GetLocker:        queries.NewGetLockerQueryHandler(c.gormDB),
		GetLockersByBloq: queries.NewGetLockersByBloqQueryHandler(c.gormDB),
		GetAllRents:      queries.NewGetAllRentsQueryHandler(c.gormDB),
		GetRent:          queries.NewGetRentQueryHandler(c.gormDB),
		GetRentsByLocker: queries.NewGetRentsByLockerQueryHandler(c.gormDB),
	}
}

// CreateHTTPServer builds the echo adapter over the full handler set.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCommandHandlers(),
		c.CreateQueryHandlers(),
		c.tokens,
		c.logger,
	)
}

// CreateJobManager builds the background job scheduler.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reallocateHandler := commands.NewReallocatePendingRentsCommandHandler(c.rentUoWFactory())
	return jobs.NewJobManager(reallocateHandler, c.logger)
}

type FuncBloqUoWFactory func() commands.BloqUoW

func (f FuncBloqUoWFactory) Create() commands.BloqUoW {
	return f()
}

type FuncLockerUoWFactory func() commands.LockerUoW

func (f FuncLockerUoWFactory) Create() commands.LockerUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncRentUoWFactory func() commands.RentUoW

func (f FuncRentUoWFactory) Create() commands.RentUoW {
	return f()
}
