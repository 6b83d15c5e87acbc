// Package http exposes the REST surface of the postal service over echo.
// Handlers translate between wire DTOs and application commands/queries;
// all business decisions stay in the use-case layer.
package http

import (
	"net/http"

	"postal/internal/core/application/usecases/commands"
	"postal/internal/core/application/usecases/queries"
	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/parcel"
	"postal/internal/core/domain/model/staff"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateParcel       commands.CreateParcelCommandHandler
	SendParcel         commands.SendParcelCommandHandler
	UpdateParcelStatus commands.UpdateParcelStatusCommandHandler
	CreateOffice       commands.CreateOfficeCommandHandler
	UpdateOffice       commands.UpdateOfficeCommandHandler
	DeleteOffice       commands.DeleteOfficeCommandHandler
	CreateEmployee     commands.CreateEmployeeCommandHandler
	UpdateEmployee     commands.UpdateEmployeeCommandHandler
	DeleteEmployee     commands.DeleteEmployeeCommandHandler
	CreateClient       commands.CreateClientCommandHandler
	UpdateClient       commands.UpdateClientCommandHandler
	DeleteClient       commands.DeleteClientCommandHandler

	GetParcelByToken queries.GetParcelByTokenQueryHandler
	ListParcels      queries.ListParcelsQueryHandler
	ParcelStatistics queries.ParcelStatisticsQueryHandler
	GetParcelHistory queries.GetParcelHistoryQueryHandler
	GetOffice        queries.GetOfficeQueryHandler
	ListOffices      queries.ListOfficesQueryHandler
	GetEmployee      queries.GetEmployeeQueryHandler
	ListEmployees    queries.ListEmployeesQueryHandler
	GetClient        queries.GetClientQueryHandler
	ListClients      queries.ListClientsQueryHandler
}

// Server routes HTTP requests to application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the REST surface under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/parcels", s.CreateParcel)
	api.GET("/parcels", s.ListParcels)
	api.GET("/parcels/statistic", s.GetParcelStatistics)
	api.GET("/parcels/:token", s.GetParcelByToken)
	api.GET("/parcels/:token/history", s.GetParcelHistory)
	api.PATCH("/parcels/:token/status", s.UpdateParcelStatus)
	api.POST("/parcels/:token/send", s.SendParcel)

	api.POST("/offices", s.CreateOffice)
	api.GET("/offices", s.ListOffices)
	api.GET("/offices/:id", s.GetOffice)
	api.PUT("/offices/:id", s.UpdateOffice)
	api.DELETE("/offices/:id", s.DeleteOffice)
	api.GET("/offices/:id/employees", s.ListOfficeEmployees)

	api.POST("/employees", s.CreateEmployee)
	api.GET("/employees", s.ListEmployees)
	api.GET("/employees/:id", s.GetEmployee)
	api.PUT("/employees/:id", s.UpdateEmployee)
	api.DELETE("/employees/:id", s.DeleteEmployee)

	api.POST("/clients", s.CreateClient)
	api.GET("/clients", s.ListClients)
	api.GET("/clients/:id", s.GetClient)
	api.PUT("/clients/:id", s.UpdateClient)
	api.DELETE("/clients/:id", s.DeleteClient)
}

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var request CreateParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	senderID, err := kernel.UUIDFromString(request.SenderID)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}
	recipientID, err := kernel.UUIDFromString(request.RecipientID)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}
	originID, err := kernel.UUIDFromString(request.OriginOfficeID)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}
	destinationID, err := kernel.UUIDFromString(request.DestinationOfficeID)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	tier := parcel.TierUnknown
	if request.DeliveryTier != "" {
		if tier, err = parcel.TierFromString(request.DeliveryTier); err != nil {
			return writeErrorCode(ctx, http.StatusBadRequest, err)
		}
	}

	category, err := parcel.CategoryFromString(request.Category)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewCreateParcelCommand(
		senderID, recipientID, request.Weight, tier, category, originID, destinationID,
	)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	created, err := s.handlers.CreateParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, parcelToResponse(created))
}

// ListParcels handles GET /api/v1/parcels.
func (s *Server) ListParcels(ctx echo.Context) error {
	filter, err := parseParcelFilter(ctx)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}
	page, err := parsePage(ctx)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewListParcelsQuery(filter, page)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	parcels, err := s.handlers.ListParcels.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelsToResponse(parcels))
}

// GetParcelStatistics handles GET /api/v1/parcels/statistic.
func (s *Server) GetParcelStatistics(ctx echo.Context) error {
	filter, err := parseParcelFilter(ctx)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewParcelStatisticsQuery(filter)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	stats, err := s.handlers.ParcelStatistics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statisticsToResponse(stats))
}

// GetParcelByToken handles GET /api/v1/parcels/:token.
func (s *Server) GetParcelByToken(ctx echo.Context) error {
	query, err := queries.NewGetParcelByTokenQuery(ctx.Param("token"))
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	found, err := s.handlers.GetParcelByToken.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelToResponse(found))
}

// GetParcelHistory handles GET /api/v1/parcels/:token/history.
func (s *Server) GetParcelHistory(ctx echo.Context) error {
	query, err := queries.NewGetParcelHistoryQuery(ctx.Param("token"))
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	entries, err := s.handlers.GetParcelHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, auditEntriesToResponse(entries))
}

// UpdateParcelStatus handles PATCH /api/v1/parcels/:token/status.
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	var request UpdateParcelStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	status, err := parcel.StatusFromString(request.Status)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(ctx.Param("token"), status)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	updated, err := s.handlers.UpdateParcelStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelToResponse(updated))
}

// SendParcel handles POST /api/v1/parcels/:token/send.
func (s *Server) SendParcel(ctx echo.Context) error {
	cmd, err := commands.NewSendParcelCommand(ctx.Param("token"))
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	sent, err := s.handlers.SendParcel.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDispatchError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, parcelToResponse(sent))
}

// CreateOffice handles POST /api/v1/offices.
func (s *Server) CreateOffice(ctx echo.Context) error {
	var request OfficeRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewCreateOfficeCommand(request.Name, request.City, request.Postcode, request.Street)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	created, err := s.handlers.CreateOffice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, officeToResponse(created))
}

// ListOffices handles GET /api/v1/offices.
func (s *Server) ListOffices(ctx echo.Context) error {
	page, err := parsePage(ctx)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	query := queries.NewListOfficesQuery(parseOfficeFilter(ctx), page)

	offices, err := s.handlers.ListOffices.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, officesToResponse(offices))
}

// GetOffice handles GET /api/v1/offices/:id.
func (s *Server) GetOffice(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewGetOfficeQuery(id)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	found, err := s.handlers.GetOffice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, officeToResponse(found))
}

// UpdateOffice handles PUT /api/v1/offices/:id.
func (s *Server) UpdateOffice(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	var request OfficeRequest
	if err = ctx.Bind(&request); err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOfficeCommand(id, request.Name, request.City, request.Postcode, request.Street)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	updated, err := s.handlers.UpdateOffice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, officeToResponse(updated))
}

// DeleteOffice handles DELETE /api/v1/offices/:id.
func (s *Server) DeleteOffice(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewDeleteOfficeCommand(id)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	if err = s.handlers.DeleteOffice.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListOfficeEmployees handles GET /api/v1/offices/:id/employees.
func (s *Server) ListOfficeEmployees(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	page, err := parsePage(ctx)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewListEmployeesQuery(&id, page)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	employees, err := s.handlers.ListEmployees.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, employeesToResponse(employees))
}

// CreateEmployee handles POST /api/v1/employees.
func (s *Server) CreateEmployee(ctx echo.Context) error {
	var request EmployeeRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	role, officeID, err := parseEmployeeRefs(request)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewCreateEmployeeCommand(request.FirstName, request.LastName, role, officeID)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	created, err := s.handlers.CreateEmployee.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, employeeToResponse(created))
}

// ListEmployees handles GET /api/v1/employees.
func (s *Server) ListEmployees(ctx echo.Context) error {
	page, err := parsePage(ctx)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	officeID, err := parseOptionalUUID(ctx, "postOfficeId")
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewListEmployeesQuery(officeID, page)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	employees, err := s.handlers.ListEmployees.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, employeesToResponse(employees))
}

// GetEmployee handles GET /api/v1/employees/:id.
func (s *Server) GetEmployee(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewGetEmployeeQuery(id)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	found, err := s.handlers.GetEmployee.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, employeeToResponse(found))
}

// UpdateEmployee handles PUT /api/v1/employees/:id.
func (s *Server) UpdateEmployee(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	var request EmployeeRequest
	if err = ctx.Bind(&request); err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	role, officeID, err := parseEmployeeRefs(request)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewUpdateEmployeeCommand(id, request.FirstName, request.LastName, role, officeID)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	updated, err := s.handlers.UpdateEmployee.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, employeeToResponse(updated))
}

// DeleteEmployee handles DELETE /api/v1/employees/:id.
func (s *Server) DeleteEmployee(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewDeleteEmployeeCommand(id)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	if err = s.handlers.DeleteEmployee.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var request ClientRequest
	if err := ctx.Bind(&request); err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}
	if err := ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewCreateClientCommand(request.FirstName, request.LastName, request.Email, request.Phone)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	created, err := s.handlers.CreateClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, clientToResponse(created))
}

// ListClients handles GET /api/v1/clients.
func (s *Server) ListClients(ctx echo.Context) error {
	page, err := parsePage(ctx)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	query := queries.NewListClientsQuery(page)

	clients, err := s.handlers.ListClients.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, clientsToResponse(clients))
}

// GetClient handles GET /api/v1/clients/:id.
func (s *Server) GetClient(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewGetClientQuery(id)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	found, err := s.handlers.GetClient.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, clientToResponse(found))
}

// UpdateClient handles PUT /api/v1/clients/:id.
func (s *Server) UpdateClient(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	var request ClientRequest
	if err = ctx.Bind(&request); err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}
	if err = ctx.Validate(&request); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateClientCommand(id, request.FirstName, request.LastName, request.Email, request.Phone)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	updated, err := s.handlers.UpdateClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, clientToResponse(updated))
}

// DeleteClient handles DELETE /api/v1/clients/:id.
func (s *Server) DeleteClient(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewDeleteClientCommand(id)
	if err != nil {
		return writeErrorCode(ctx, http.StatusBadRequest, err)
	}

	if err = s.handlers.DeleteClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parseEmployeeRefs(request EmployeeRequest) (staff.Role, kernel.UUID, error) {
	role, err := staff.RoleFromString(request.Role)
	if err != nil {
		return staff.RoleUnknown, kernel.UUID{}, err
	}

	officeID, err := kernel.UUIDFromString(request.OfficeID)
	if err != nil {
		return staff.RoleUnknown, kernel.UUID{}, err
	}

	return role, officeID, nil
}
