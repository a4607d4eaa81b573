package cmd

import (
	"log/slog"

	"courier/internal/adapters/in/http"
	"courier/internal/adapters/out/blob"
	"courier/internal/adapters/out/notify"
	"courier/internal/adapters/out/postgres"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/principal"
	"courier/internal/core/domain/services"
	"courier/internal/core/ports"
	"courier/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, services and use case handlers together.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     services.AccessPolicy
	pricing    services.PricingCalculator
	ids        services.IdentifierGenerator
	notifier   ports.NotificationSink
	blobs      ports.BlobStore
	logger     *slog.Logger
	jobManager *jobs.JobManager
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	blobs, err := blob.NewFileBlobStore(config.BlobDir)
	if err != nil {
		return CompositionRoot{}, err
	}

	// The stats query is admin-only, so scheduled refreshes run under a
	// synthetic admin identity.
	system, err := principal.New(kernel.NewUUID(), principal.RoleAdmin, "system", "")
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     services.NewAccessPolicy(),
		pricing:    services.NewPricingCalculator(),
		ids:        services.NewIdentifierGenerator(),
		notifier:   notify.NewLogNotificationSink(logger),
		blobs:      blobs,
		logger:     logger,
		jobManager: jobs.NewJobManager(queries.NewGetStatsQueryHandler(gormDB), system, logger),
	}, nil
}

// CreateHTTPHandlers assembles the full handler set for the REST server.
func (c *CompositionRoot) CreateHTTPHandlers() http.Handlers {
	return http.Handlers{
		CreateShipment:   c.CreateCreateShipmentCommandHandler(),
		UpdateShipment:   c.CreateUpdateShipmentCommandHandler(),
		ChangeStatus:     c.CreateChangeStatusCommandHandler(),
		AssignAgent:      c.CreateAssignAgentCommandHandler(),
		CompleteDelivery: c.CreateCompleteDeliveryCommandHandler(),
		GenerateInvoice:  c.CreateGenerateInvoiceCommandHandler(),
		DeleteShipment:   c.CreateDeleteShipmentCommandHandler(),
		CreateBranch:     c.CreateCreateBranchCommandHandler(),

		GetShipment:               queries.NewGetShipmentQueryHandler(c.gormDB),
		ListShipments:             queries.NewListShipmentsQueryHandler(c.gormDB),
		ListShipmentsForPrincipal: queries.NewListShipmentsForPrincipalQueryHandler(c.gormDB),
		SearchShipments:           queries.NewSearchShipmentsQueryHandler(c.gormDB),
		GetRecentShipments:        queries.NewGetRecentShipmentsQueryHandler(c.gormDB),
		GetLogs:                   queries.NewGetLogsQueryHandler(c.gormDB),
		GetStats:                  c.jobManager.GetStatsHandler(),
		GetAgentStats:             queries.NewGetAgentStatsQueryHandler(c.gormDB),
		GetCustomerStats:          queries.NewGetCustomerStatsQueryHandler(c.gormDB),
		ListBranches:              queries.NewListBranchesQueryHandler(c.gormDB),
		ListAgents:                queries.NewListAgentsQueryHandler(c.gormDB),
	}
}

// CreateJobManager returns the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return c.jobManager
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.policy, c.pricing, c.ids, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentCommandHandler(f, c.policy, c.pricing)
}

func (c *CompositionRoot) CreateChangeStatusCommandHandler() commands.ChangeStatusCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeStatusCommandHandler(f, c.policy, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignAgentCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.policy, c.blobs, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGenerateInvoiceCommandHandler() commands.GenerateInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateInvoiceCommandHandler(f, c.policy, c.ids)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteShipmentCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateCreateBranchCommandHandler() commands.CreateBranchCommandHandler {
	var f commands.BranchUoWFactory = FuncBranchUoWFactory(func() commands.BranchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBranchCommandHandler(f, c.policy)
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncBranchUoWFactory func() commands.BranchUoW

func (f FuncBranchUoWFactory) Create() commands.BranchUoW {
	return f()
}
