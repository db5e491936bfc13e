// Package http provides the echo-based REST adapter. It binds and validates
// request bodies, resolves the authenticated principal from bearer tokens and
// translates classified errors into HTTP status codes. All business decisions
// stay in the application layer.
package http

import (
	"log/slog"
	"net/http"

	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/application/usecases/queries"
	"parcellocker/internal/core/domain/model/account"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/locker"
	"parcellocker/internal/pkg/token"

	"github.com/labstack/echo/v4"
)

// CommandHandlers groups the write-side use cases the server dispatches to.
type CommandHandlers struct {
	RegisterAccount commands.RegisterAccountCommandHandler
	CreateBloq      commands.CreateBloqCommandHandler
	UpdateBloq      commands.UpdateBloqCommandHandler
	DeleteBloq      commands.DeleteBloqCommandHandler
	CreateLocker    commands.CreateLockerCommandHandler
	UpdateLocker    commands.UpdateLockerCommandHandler
	DeleteLocker    commands.DeleteLockerCommandHandler
	CreateRent      commands.CreateRentCommandHandler
	UpdateRent      commands.UpdateRentCommandHandler
	DropoffRent     commands.DropoffRentCommandHandler
	PickupRent      commands.PickupRentCommandHandler
	ReallocateRent  commands.ReallocateRentCommandHandler
}

// QueryHandlers groups the read-side use cases the server dispatches to.
type QueryHandlers struct {
	Authenticate     queries.AuthenticateQueryHandler
	GetAllBloqs      queries.GetAllBloqsQueryHandler
	GetBloq          queries.GetBloqQueryHandler
	GetAllLockers    queries.GetAllLockersQueryHandler
	GetLocker        queries.GetLockerQueryHandler
	GetLockersByBloq queries.GetLockersByBloqQueryHandler
	GetAllRents      queries.GetAllRentsQueryHandler
	GetRent          queries.GetRentQueryHandler
	GetRentsByLocker queries.GetRentsByLockerQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	tokens   *token.Service
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required use case handlers.
func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	tokens *token.Service,
	logger *slog.Logger,
) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		tokens:   tokens,
		logger:   logger.With("component", "http_server"),
	}
}

// RegisterRoutes wires all endpoints under /api/v1. Authentication applies to
// everything except registration and login; directory mutations and global
// listings additionally require the operations role.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewCustomValidator()

	api := e.Group("/api/v1")

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)

	authed := api.Group("", Authenticate(s.tokens))
	ops := authed.Group("", RequireOperations())

	authed.GET("/bloqs", s.GetBloqs)
	authed.GET("/bloqs/:bloqId", s.GetBloq)
	authed.GET("/bloqs/:bloqId/lockers", s.GetBloqLockers)
	ops.POST("/bloqs", s.CreateBloq)
	ops.PATCH("/bloqs/:bloqId", s.UpdateBloq)
	ops.DELETE("/bloqs/:bloqId", s.DeleteBloq)

	authed.GET("/lockers/:lockerId", s.GetLocker)
	ops.GET("/lockers", s.GetLockers)
	ops.POST("/lockers", s.CreateLocker)
	ops.PATCH("/lockers/:lockerId", s.UpdateLocker)
	ops.DELETE("/lockers/:lockerId", s.DeleteLocker)
	ops.GET("/lockers/:lockerId/rents", s.GetLockerRents)

	authed.POST("/rents", s.CreateRent)
	authed.GET("/rents", s.GetRents)
	authed.GET("/rents/:rentId", s.GetRent)
	authed.PATCH("/rents/:rentId", s.UpdateRent)
	authed.POST("/rents/:rentId/dropoff", s.DropoffRent)
	authed.POST("/rents/:rentId/pickup", s.PickupRent)
	ops.POST("/rents/:rentId/reallocate", s.ReallocateRent)
}

// Register handles POST /api/v1/auth/register - creates an account and issues
// a token for it.
func (s *Server) Register(ctx echo.Context) error {
	var req RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid account data: "+err.Error())
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	country, err := kernel.CountryFromString(req.Country)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAccountCommand(
		accountID, req.Name, req.Email, req.Password, role, country)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	if err = s.commands.RegisterAccount.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	signed, err := s.tokens.Generate(account.Principal{
		ID:      accountID,
		Email:   req.Email,
		Role:    role,
		Country: country,
	})
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusCreated, TokenResponse{Token: signed})
}

// Login handles POST /api/v1/auth/login - verifies credentials and issues a
// token.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid credentials data: "+err.Error())
	}

	query, err := queries.NewAuthenticateQuery(req.Email, req.Password)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	principal, err := s.queries.Authenticate.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	signed, err := s.tokens.Generate(principal)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, TokenResponse{Token: signed})
}

// GetBloqs handles GET /api/v1/bloqs - retrieves all sites.
func (s *Server) GetBloqs(ctx echo.Context) error {
	query := queries.NewGetAllBloqsQuery()

	bloqs, err := s.queries.GetAllBloqs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toBloqResponses(bloqs))
}

// GetBloq handles GET /api/v1/bloqs/:bloqId - retrieves one site.
func (s *Server) GetBloq(ctx echo.Context) error {
	bloqID, err := kernel.UUIDFromString(ctx.Param("bloqId"))
	if err != nil {
		return badRequest(ctx, "Invalid bloq id")
	}

	query, err := queries.NewGetBloqQuery(bloqID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	site, err := s.queries.GetBloq.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toBloqResponse(site))
}

// GetBloqLockers handles GET /api/v1/bloqs/:bloqId/lockers - lists the site's
// compartments.
func (s *Server) GetBloqLockers(ctx echo.Context) error {
	bloqID, err := kernel.UUIDFromString(ctx.Param("bloqId"))
	if err != nil {
		return badRequest(ctx, "Invalid bloq id")
	}

	query, err := queries.NewGetLockersByBloqQuery(bloqID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	lockers, err := s.queries.GetLockersByBloq.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toLockerResponses(lockers))
}

// CreateBloq handles POST /api/v1/bloqs - registers a new site.
func (s *Server) CreateBloq(ctx echo.Context) error {
	var req CreateBloqRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid bloq data: "+err.Error())
	}

	country, err := kernel.CountryFromString(req.Country)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	bloqID := kernel.NewUUID()
	cmd, err := commands.NewCreateBloqCommand(bloqID, req.Title, req.Address, country)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	if err = s.commands.CreateBloq.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: bloqID.String()})
}

// UpdateBloq handles PATCH /api/v1/bloqs/:bloqId - partial site update.
func (s *Server) UpdateBloq(ctx echo.Context) error {
	bloqID, err := kernel.UUIDFromString(ctx.Param("bloqId"))
	if err != nil {
		return badRequest(ctx, "Invalid bloq id")
	}

	var req UpdateBloqRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateBloqCommand(bloqID, req.Title, req.Address)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	if err = s.commands.UpdateBloq.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteBloq handles DELETE /api/v1/bloqs/:bloqId - removes a site.
func (s *Server) DeleteBloq(ctx echo.Context) error {
	bloqID, err := kernel.UUIDFromString(ctx.Param("bloqId"))
	if err != nil {
		return badRequest(ctx, "Invalid bloq id")
	}

	cmd, err := commands.NewDeleteBloqCommand(bloqID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	if err = s.commands.DeleteBloq.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetLockers handles GET /api/v1/lockers - retrieves all compartments.
func (s *Server) GetLockers(ctx echo.Context) error {
	query := queries.NewGetAllLockersQuery()

	lockers, err := s.queries.GetAllLockers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toLockerResponses(lockers))
}

// GetLocker handles GET /api/v1/lockers/:lockerId - retrieves one compartment.
func (s *Server) GetLocker(ctx echo.Context) error {
	lockerID, err := kernel.UUIDFromString(ctx.Param("lockerId"))
	if err != nil {
		return badRequest(ctx, "Invalid locker id")
	}

	query, err := queries.NewGetLockerQuery(lockerID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	unit, err := s.queries.GetLocker.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toLockerResponse(unit))
}

// CreateLocker handles POST /api/v1/lockers - adds a compartment to a site.
func (s *Server) CreateLocker(ctx echo.Context) error {
	var req CreateLockerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid locker data: "+err.Error())
	}

	bloqID, err := kernel.UUIDFromString(req.BloqID)
	if err != nil {
		return badRequest(ctx, "Invalid bloq id")
	}

	size, err := kernel.SizeFromString(req.Size)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	lockerID := kernel.NewUUID()
	cmd, err := commands.NewCreateLockerCommand(lockerID, bloqID, size)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	if err = s.commands.CreateLocker.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: lockerID.String()})
}

// UpdateLocker handles PATCH /api/v1/lockers/:lockerId - operator override of
// status and occupancy.
func (s *Server) UpdateLocker(ctx echo.Context) error {
	lockerID, err := kernel.UUIDFromString(ctx.Param("lockerId"))
	if err != nil {
		return badRequest(ctx, "Invalid locker id")
	}

	var req UpdateLockerRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var status *locker.Status
	if req.Status != nil {
		parsed, parseErr := locker.StatusFromString(*req.Status)
		if parseErr != nil {
			return respondError(ctx, s.logger, parseErr)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateLockerCommand(lockerID, status, req.IsOccupied)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	if err = s.commands.UpdateLocker.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteLocker handles DELETE /api/v1/lockers/:lockerId - removes a compartment.
func (s *Server) DeleteLocker(ctx echo.Context) error {
	lockerID, err := kernel.UUIDFromString(ctx.Param("lockerId"))
	if err != nil {
		return badRequest(ctx, "Invalid locker id")
	}

	cmd, err := commands.NewDeleteLockerCommand(lockerID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	if err = s.commands.DeleteLocker.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetLockerRents handles GET /api/v1/lockers/:lockerId/rents - full rent
// history of a compartment.
func (s *Server) GetLockerRents(ctx echo.Context) error {
	lockerID, err := kernel.UUIDFromString(ctx.Param("lockerId"))
	if err != nil {
		return badRequest(ctx, "Invalid locker id")
	}

	query, err := queries.NewGetRentsByLockerQuery(lockerID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	rents, err := s.queries.GetRentsByLocker.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toRentResponses(rents))
}

// CreateRent handles POST /api/v1/rents - creates a rent with the principal as
// sender and attempts allocation in the principal's country.
func (s *Server) CreateRent(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	var req CreateRentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid rent data: "+err.Error())
	}

	size, err := kernel.SizeFromString(req.Size)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	rentID := kernel.NewUUID()
	cmd, err := commands.NewCreateRentCommand(
		rentID, req.Weight, size, principal.Email, req.ReceiverEmail, principal.Country)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	if err = s.commands.CreateRent.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: rentID.String()})
}

// GetRents handles GET /api/v1/rents - operations users see everything,
// regular users the rents they send or receive.
func (s *Server) GetRents(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	query := queries.NewGetAllRentsQuery(principal)

	rents, err := s.queries.GetAllRents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toRentResponses(rents))
}

// GetRent handles GET /api/v1/rents/:rentId - retrieves one rent for an
// authorized principal.
func (s *Server) GetRent(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	rentID, err := kernel.UUIDFromString(ctx.Param("rentId"))
	if err != nil {
		return badRequest(ctx, "Invalid rent id")
	}

	query, err := queries.NewGetRentQuery(rentID, principal)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	aggregate, err := s.queries.GetRent.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.JSON(http.StatusOK, toRentResponse(aggregate))
}

// UpdateRent handles PATCH /api/v1/rents/:rentId - partial update of weight,
// size and locker binding.
func (s *Server) UpdateRent(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	rentID, err := kernel.UUIDFromString(ctx.Param("rentId"))
	if err != nil {
		return badRequest(ctx, "Invalid rent id")
	}

	var req UpdateRentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid rent data: "+err.Error())
	}

	var size *kernel.Size
	if req.Size != nil {
		parsed, parseErr := kernel.SizeFromString(*req.Size)
		if parseErr != nil {
			return respondError(ctx, s.logger, parseErr)
		}
		size = &parsed
	}

	var lockerID *kernel.UUID
	if req.LockerID != nil {
		parsed, parseErr := kernel.UUIDFromString(*req.LockerID)
		if parseErr != nil {
			return badRequest(ctx, "Invalid locker id")
		}
		lockerID = &parsed
	}

	cmd, err := commands.NewUpdateRentCommand(rentID, principal, req.Weight, size, lockerID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	if err = s.commands.UpdateRent.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DropoffRent handles POST /api/v1/rents/:rentId/dropoff - records the parcel
// deposit and notifies the receiver with the pickup code.
func (s *Server) DropoffRent(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	rentID, err := kernel.UUIDFromString(ctx.Param("rentId"))
	if err != nil {
		return badRequest(ctx, "Invalid rent id")
	}

	cmd, err := commands.NewDropoffRentCommand(rentID, principal)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	if err = s.commands.DropoffRent.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PickupRent handles POST /api/v1/rents/:rentId/pickup - completes the
// delivery when the supplied code matches.
func (s *Server) PickupRent(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return badRequest(ctx, "Missing principal")
	}

	rentID, err := kernel.UUIDFromString(ctx.Param("rentId"))
	if err != nil {
		return badRequest(ctx, "Invalid rent id")
	}

	var req PickupRentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Invalid pickup data: "+err.Error())
	}

	cmd, err := commands.NewPickupRentCommand(rentID, req.Code, principal)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	if err = s.commands.PickupRent.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReallocateRent handles POST /api/v1/rents/:rentId/reallocate - retries
// allocation for a rent stuck in CREATED status.
func (s *Server) ReallocateRent(ctx echo.Context) error {
	rentID, err := kernel.UUIDFromString(ctx.Param("rentId"))
	if err != nil {
		return badRequest(ctx, "Invalid rent id")
	}

	cmd, err := commands.NewReallocateRentCommand(rentID)
	if err != nil {
		return respondError(ctx, s.logger, err)
	}

	if err = s.commands.ReallocateRent.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, s.logger, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
