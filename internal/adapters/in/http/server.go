// Package http exposes the shipment lifecycle over a REST API. It
// coordinates between HTTP handlers and application use cases; authorization
// itself lives in the core, this layer only extracts the acting principal
// and translates errors to status codes.
package http

import (
	"context"
	"encoding/base64"
	"net/http"
	"strconv"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// GetStatsHandler serves the dashboard stats. The composition root wires
// the snapshot-backed handler here so dashboard reads come from the cache.
type GetStatsHandler interface {
	Handle(ctx context.Context, query queries.GetStatsQuery) (queries.GetStatsQueryResponse, error)
}

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateShipment   commands.CreateShipmentCommandHandler
	UpdateShipment   commands.UpdateShipmentCommandHandler
	ChangeStatus     commands.ChangeStatusCommandHandler
	AssignAgent      commands.AssignAgentCommandHandler
	CompleteDelivery commands.CompleteDeliveryCommandHandler
	GenerateInvoice  commands.GenerateInvoiceCommandHandler
	DeleteShipment   commands.DeleteShipmentCommandHandler
	CreateBranch     commands.CreateBranchCommandHandler

	GetShipment               queries.GetShipmentQueryHandler
	ListShipments             queries.ListShipmentsQueryHandler
	ListShipmentsForPrincipal queries.ListShipmentsForPrincipalQueryHandler
	SearchShipments           queries.SearchShipmentsQueryHandler
	GetRecentShipments        queries.GetRecentShipmentsQueryHandler
	GetLogs                   queries.GetLogsQueryHandler
	GetStats                  GetStatsHandler
	GetAgentStats             queries.GetAgentStatsQueryHandler
	GetCustomerStats          queries.GetCustomerStatsQueryHandler
	ListBranches              queries.ListBranchesQueryHandler
	ListAgents                queries.ListAgentsQueryHandler
}

// Server wires the REST routes to the application layer.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts all API routes under /api/v1. Every route runs
// behind the principal middleware.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", PrincipalMiddleware())

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.ListShipments)
	api.GET("/shipments/my", s.ListMyShipments)
	api.GET("/shipments/search", s.SearchShipments)
	api.GET("/shipments/recent", s.GetRecentShipments)
	api.GET("/shipments/:id", s.GetShipment)
	api.PATCH("/shipments/:id", s.UpdateShipment)
	api.DELETE("/shipments/:id", s.DeleteShipment)
	api.POST("/shipments/:id/status", s.ChangeStatus)
	api.POST("/shipments/:id/assign", s.AssignAgent)
	api.POST("/shipments/:id/delivery", s.CompleteDelivery)
	api.POST("/shipments/:id/invoice", s.GenerateInvoice)
	api.GET("/shipments/:id/logs", s.GetShipmentLogs)

	api.GET("/logs", s.GetLogs)
	api.GET("/stats", s.GetStats)
	api.GET("/stats/agents/:id", s.GetAgentStats)
	api.GET("/stats/customers", s.GetCustomerStats)

	api.POST("/branches", s.CreateBranch)
	api.GET("/branches", s.ListBranches)
	api.GET("/agents", s.ListAgents)
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return writeError(ctx, err)
	}

	params, err := req.toParams()
	if err != nil {
		return writeError(ctx, err)
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(shipmentID, currentPrincipal(ctx), params)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": shipmentID.String()})
}

// GetShipment handles GET /api/v1/shipments/:id.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentQuery(shipmentID, currentPrincipal(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	detail, err := s.handlers.GetShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDetailResponse(detail))
}

// ListShipments handles GET /api/v1/shipments with optional status, limit
// and offset query parameters.
func (s *Server) ListShipments(ctx echo.Context) error {
	var status *shipment.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := shipment.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		status = &parsed
	}

	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	offset, _ := strconv.Atoi(ctx.QueryParam("offset"))

	query, err := queries.NewListShipmentsQuery(currentPrincipal(ctx), status, limit, offset)
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.handlers.ListShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSummaryResponses(summaries))
}

// ListMyShipments handles GET /api/v1/shipments/my.
func (s *Server) ListMyShipments(ctx echo.Context) error {
	query, err := queries.NewListShipmentsForPrincipalQuery(currentPrincipal(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.handlers.ListShipmentsForPrincipal.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSummaryResponses(summaries))
}

// SearchShipments handles GET /api/v1/shipments/search?q=term.
func (s *Server) SearchShipments(ctx echo.Context) error {
	query, err := queries.NewSearchShipmentsQuery(currentPrincipal(ctx), ctx.QueryParam("q"))
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.handlers.SearchShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSummaryResponses(summaries))
}

// GetRecentShipments handles GET /api/v1/shipments/recent?limit=n.
func (s *Server) GetRecentShipments(ctx echo.Context) error {
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))

	query, err := queries.NewGetRecentShipmentsQuery(currentPrincipal(ctx), limit)
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.handlers.GetRecentShipments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSummaryResponses(summaries))
}

// UpdateShipment handles PATCH /api/v1/shipments/:id.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return writeError(ctx, err)
	}

	patch, err := req.toPatch()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentCommand(shipmentID, currentPrincipal(ctx), patch)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UpdateShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteShipment handles DELETE /api/v1/shipments/:id.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID, currentPrincipal(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.DeleteShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeStatus handles POST /api/v1/shipments/:id/status.
func (s *Server) ChangeStatus(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return writeError(ctx, err)
	}

	next, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeStatusCommand(shipmentID, currentPrincipal(ctx), next)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.ChangeStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignAgent handles POST /api/v1/shipments/:id/assign.
func (s *Server) AssignAgent(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req AssignAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return writeError(ctx, err)
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignAgentCommand(shipmentID, currentPrincipal(ctx), agentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.AssignAgent.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/shipments/:id/delivery.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req CompleteDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return writeError(ctx, err)
	}

	signature, err := base64.StdEncoding.DecodeString(req.Signature)
	if err != nil {
		return badRequest(ctx, "Signature is not valid base64")
	}

	var photo []byte
	if req.Photo != "" {
		photo, err = base64.StdEncoding.DecodeString(req.Photo)
		if err != nil {
			return badRequest(ctx, "Photo is not valid base64")
		}
	}

	var location *shipment.Geolocation
	if req.Latitude != nil && req.Longitude != nil {
		location = &shipment.Geolocation{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	cmd, err := commands.NewCompleteDeliveryCommand(
		shipmentID, currentPrincipal(ctx), req.SigneeName, signature, photo, location)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CompleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GenerateInvoice handles POST /api/v1/shipments/:id/invoice. Generating
// twice returns the same invoice id.
func (s *Server) GenerateInvoice(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewGenerateInvoiceCommand(shipmentID, currentPrincipal(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	invoiceID, err := s.handlers.GenerateInvoice.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"invoiceId": invoiceID.String()})
}

// GetShipmentLogs handles GET /api/v1/shipments/:id/logs.
func (s *Server) GetShipmentLogs(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetLogsQuery(currentPrincipal(ctx), &shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.handlers.GetLogs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAuditViews(entries))
}

// GetLogs handles GET /api/v1/logs, the global audit feed.
func (s *Server) GetLogs(ctx echo.Context) error {
	query, err := queries.NewGetLogsQuery(currentPrincipal(ctx), nil)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.handlers.GetLogs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAuditViews(entries))
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(ctx echo.Context) error {
	query, err := queries.NewGetStatsQuery(currentPrincipal(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	stats, err := s.handlers.GetStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatsResponse{
		TotalShipments: stats.TotalShipments,
		CountsByStatus: stats.CountsByStatus,
		TotalRevenue:   stats.TotalRevenue,
	})
}

// GetAgentStats handles GET /api/v1/stats/agents/:id.
func (s *Server) GetAgentStats(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAgentStatsQuery(currentPrincipal(ctx), agentID)
	if err != nil {
		return writeError(ctx, err)
	}

	stats, err := s.handlers.GetAgentStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AgentStatsResponse{
		AgentID:        stats.AgentID.String(),
		TotalAssigned:  stats.TotalAssigned,
		Completed:      stats.Completed,
		Active:         stats.Active,
		Earnings:       stats.Earnings,
		MonthlyTarget:  stats.MonthlyTarget,
		TargetProgress: stats.TargetProgress,
	})
}

// GetCustomerStats handles GET /api/v1/stats/customers. Admins may pass name
// or phone query parameters; customers always get their own counts.
func (s *Server) GetCustomerStats(ctx echo.Context) error {
	query, err := queries.NewGetCustomerStatsQuery(
		currentPrincipal(ctx), ctx.QueryParam("name"), ctx.QueryParam("phone"))
	if err != nil {
		return writeError(ctx, err)
	}

	stats, err := s.handlers.GetCustomerStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CustomerStatsResponse{
		TotalShipments: stats.TotalShipments,
		Pending:        stats.Pending,
		InTransit:      stats.InTransit,
		Delivered:      stats.Delivered,
	})
}

// CreateBranch handles POST /api/v1/branches.
func (s *Server) CreateBranch(ctx echo.Context) error {
	var req CreateBranchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return writeError(ctx, err)
	}

	var managerID *kernel.UUID
	if req.ManagerID != nil {
		id, idErr := kernel.UUIDFromString(*req.ManagerID)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		managerID = &id
	}

	branchID := kernel.NewUUID()
	cmd, err := commands.NewCreateBranchCommand(
		branchID, currentPrincipal(ctx), req.Name, req.Address, req.Phone, managerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateBranch.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": branchID.String()})
}

// ListBranches handles GET /api/v1/branches.
func (s *Server) ListBranches(ctx echo.Context) error {
	branches, err := s.handlers.ListBranches.Handle(
		ctx.Request().Context(), queries.NewListBranchesQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toBranchViews(branches))
}

// ListAgents handles GET /api/v1/agents.
func (s *Server) ListAgents(ctx echo.Context) error {
	query, err := queries.NewListAgentsQuery(currentPrincipal(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	agents, err := s.handlers.ListAgents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAgentViews(agents))
}
