package usecase_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/driveops/driveops-api/internal/application/usecase"
	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: repos en memoria + casos de uso cableados como en cmd/api
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	customers   *memory.CustomerRepo
	vehicles    *memory.VehicleRepo
	ownerships  *memory.VehicleOwnershipRepo
	technicians *memory.TechnicianRepo
	jobOrders   *memory.JobOrderRepo
	issues      *memory.ReportedIssueRepo
	findings    *memory.InspectionFindingRepo

	customerUC   *usecase.CustomerUseCase
	vehicleUC    *usecase.VehicleUseCase
	ownershipUC  *usecase.VehicleOwnershipUseCase
	technicianUC *usecase.TechnicianUseCase
	jobOrderUC   *usecase.JobOrderUseCase
	issueUC      *usecase.ReportedIssueUseCase
	findingUC    *usecase.InspectionFindingUseCase
}

func newFixture() *fixture {
	f := &fixture{
		customers:   memory.NewCustomerRepository(),
		vehicles:    memory.NewVehicleRepository(),
		ownerships:  memory.NewVehicleOwnershipRepository(),
		technicians: memory.NewTechnicianRepository(),
		jobOrders:   memory.NewJobOrderRepository(),
		issues:      memory.NewReportedIssueRepository(),
		findings:    memory.NewInspectionFindingRepository(),
	}
	tx := memory.NewTxRunner(f.ownerships)
	f.customerUC = usecase.NewCustomerUseCase(f.customers, f.ownerships, f.vehicles)
	f.vehicleUC = usecase.NewVehicleUseCase(f.vehicles, f.ownerships)
	f.ownershipUC = usecase.NewVehicleOwnershipUseCase(f.ownerships, f.vehicles, f.customers, tx)
	f.technicianUC = usecase.NewTechnicianUseCase(f.technicians)
	f.jobOrderUC = usecase.NewJobOrderUseCase(f.jobOrders, f.customers, f.vehicles, f.technicians)
	f.issueUC = usecase.NewReportedIssueUseCase(f.issues, f.jobOrders)
	f.findingUC = usecase.NewInspectionFindingUseCase(f.findings, f.jobOrders)
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Seeds: escriben directo en los repos, sin pasar por los casos de uso
// ──────────────────────────────────────────────────────────────────────────────

func seedIndividual(t *testing.T, f *fixture, email, phone string) *entity.Customer {
	t.Helper()
	c := &entity.Customer{
		ID:          uuid.New().String(),
		Email:       email,
		PhoneNumber: phone,
		Status:      entity.CustomerActive,
		Subtype:     entity.IndividualDetails{FirstName: "Carlos", LastName: "Mendoza"},
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, f.customers.Create(c))
	return c
}

func seedCompany(t *testing.T, f *fixture, email, phone string) *entity.Customer {
	t.Helper()
	c := &entity.Customer{
		ID:          uuid.New().String(),
		Email:       email,
		PhoneNumber: phone,
		Status:      entity.CustomerActive,
		Subtype:     entity.CompanyDetails{CompanyName: "Transportes La Sabana", ContactPerson: "Laura Gil"},
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, f.customers.Create(c))
	return c
}

func seedVehicle(t *testing.T, f *fixture, plate, vin string) *entity.Vehicle {
	t.Helper()
	v := &entity.Vehicle{
		ID:          uuid.New().String(),
		PlateNumber: plate,
		VIN:         vin,
		Make:        "Toyota",
		Model:       "Hilux",
		Year:        2021,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, f.vehicles.Create(v))
	return v
}

func seedTechnician(t *testing.T, f *fixture, fullName, phone string) *entity.Technician {
	t.Helper()
	tech := &entity.Technician{
		ID:           uuid.New().String(),
		FullName:     fullName,
		PhoneNumber:  phone,
		Status:       entity.TechnicianActive,
		RegisteredAt: time.Now().UTC(),
	}
	require.NoError(t, f.technicians.Create(tech))
	return tech
}

func seedCurrentOwnership(t *testing.T, f *fixture, vehicleID, customerID string) *entity.VehicleOwnership {
	t.Helper()
	now := time.Now().UTC()
	o := &entity.VehicleOwnership{
		ID:                 uuid.New().String(),
		VehicleID:          vehicleID,
		CustomerID:         customerID,
		IsCurrentOwner:     true,
		OwnershipStartDate: &now,
		RegisteredAt:       now,
	}
	require.NoError(t, f.ownerships.Create(o))
	return o
}

// seedJobOrder crea una orden completa con sus tres referencias.
func seedJobOrder(t *testing.T, f *fixture, number string, status entity.JobOrderStatus) *entity.JobOrder {
	t.Helper()
	c := seedIndividual(t, f, number+"@cliente.test", "300-"+number)
	v := seedVehicle(t, f, "PLT-"+number, "VIN-"+number)
	tech := seedTechnician(t, f, "Técnico "+number, "301-"+number)
	now := time.Now().UTC()
	jo := &entity.JobOrder{
		ID:             uuid.New().String(),
		JobOrderNumber: number,
		Status:         status,
		CustomerID:     c.ID,
		VehicleID:      v.ID,
		TechnicianID:   tech.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, f.jobOrders.Create(jo))
	return jo
}

func seedFinding(t *testing.T, f *fixture, jobOrderID string, severity entity.FindingSeverity, resolved bool) *entity.InspectionFinding {
	t.Helper()
	finding := &entity.InspectionFinding{
		ID:             uuid.New().String(),
		JobOrderID:     jobOrderID,
		Description:    "Pastillas de freno desgastadas",
		Recommendation: "Reemplazar pastillas delanteras",
		Severity:       severity,
		IsResolved:     resolved,
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, f.findings.Create(finding))
	return finding
}

func seedIssue(t *testing.T, f *fixture, jobOrderID, description string) *entity.ReportedIssue {
	t.Helper()
	issue := &entity.ReportedIssue{
		ID:          uuid.New().String(),
		JobOrderID:  jobOrderID,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, f.issues.Create(issue))
	return issue
}
