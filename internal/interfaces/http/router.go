package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driveops/driveops-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC   *usecase.CustomerUseCase
	VehicleUC    *usecase.VehicleUseCase
	OwnershipUC  *usecase.VehicleOwnershipUseCase
	TechnicianUC *usecase.TechnicianUseCase
	JobOrderUC   *usecase.JobOrderUseCase
	IssueUC      *usecase.ReportedIssueUseCase
	FindingUC    *usecase.InspectionFindingUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Patch("/:id", customerHandler.UpdateStatus)

	// Vehicles
	vehicles := api.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Get("/:id", vehicleHandler.GetByID)
	vehicles.Put("/:id", vehicleHandler.Update)

	// Vehicle ownerships (ledger de propiedad)
	ownerships := api.Group("/vehicle-ownerships")
	ownershipHandler := NewOwnershipHandler(deps.OwnershipUC)
	ownerships.Post("/", ownershipHandler.Create)
	ownerships.Post("/transfer", ownershipHandler.Transfer)
	ownerships.Get("/:id", ownershipHandler.GetByID)

	// Technicians
	technicians := api.Group("/technicians")
	technicianHandler := NewTechnicianHandler(deps.TechnicianUC)
	technicians.Get("/", technicianHandler.List)
	technicians.Post("/", technicianHandler.Create)
	technicians.Get("/:id", technicianHandler.GetByID)
	technicians.Put("/:id", technicianHandler.Update)
	technicians.Patch("/:id", technicianHandler.UpdateStatus)

	// Job orders
	jobOrders := api.Group("/joborders")
	jobOrderHandler := NewJobOrderHandler(deps.JobOrderUC)
	jobOrders.Get("/", jobOrderHandler.List)
	jobOrders.Post("/", jobOrderHandler.Create)
	jobOrders.Get("/:id", jobOrderHandler.GetByID)
	jobOrders.Patch("/:id/status", jobOrderHandler.UpdateStatus)
	jobOrders.Patch("/:id", jobOrderHandler.Patch)

	// Reported issues (anidado bajo la orden; el número de orden referencia al padre)
	issues := jobOrders.Group("/:jobOrderNumber/issues")
	issueHandler := NewReportedIssueHandler(deps.IssueUC)
	issues.Get("/", issueHandler.List)
	issues.Post("/", issueHandler.Create)
	issues.Get("/:id", issueHandler.GetByID)
	issues.Patch("/:id", issueHandler.Update)
	issues.Delete("/:id", issueHandler.Delete)

	// Inspection findings (anidado bajo la orden)
	findings := jobOrders.Group("/:jobOrderNumber/findings")
	findingHandler := NewInspectionFindingHandler(deps.FindingUC)
	findings.Get("/", findingHandler.List)
	findings.Post("/", findingHandler.Create)
	findings.Get("/:id", findingHandler.GetByID)
	findings.Patch("/:id/status", findingHandler.UpdateStatus)
	findings.Patch("/:id", findingHandler.Update)
	findings.Delete("/:id", findingHandler.Delete)
}
