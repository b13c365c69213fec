package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/repository"
	"github.com/driveops/driveops-api/internal/domain/result"
)

// JobOrderUseCase reglas de negocio de órdenes de trabajo: número único,
// referencias existentes y la máquina de estados que gobierna las mutaciones
// de registros hijos.
type JobOrderUseCase struct {
	jobOrders   repository.JobOrderRepository
	customers   repository.CustomerRepository
	vehicles    repository.VehicleRepository
	technicians repository.TechnicianRepository
}

// NewJobOrderUseCase construye el caso de uso.
func NewJobOrderUseCase(
	jobOrders repository.JobOrderRepository,
	customers repository.CustomerRepository,
	vehicles repository.VehicleRepository,
	technicians repository.TechnicianRepository,
) *JobOrderUseCase {
	return &JobOrderUseCase{jobOrders: jobOrders, customers: customers, vehicles: vehicles, technicians: technicians}
}

// expand recarga las referencias de la orden para la respuesta de detalle.
func (uc *JobOrderUseCase) expand(jo *entity.JobOrder) (dto.JobOrderResponse, error) {
	customer, err := uc.customers.GetByID(jo.CustomerID)
	if err != nil {
		return dto.JobOrderResponse{}, err
	}
	vehicle, err := uc.vehicles.GetByID(jo.VehicleID)
	if err != nil {
		return dto.JobOrderResponse{}, err
	}
	technician, err := uc.technicians.GetByID(jo.TechnicianID)
	if err != nil {
		return dto.JobOrderResponse{}, err
	}
	return toJobOrderResponse(jo, customer, vehicle, technician), nil
}

// List lista órdenes con filtros opcionales por estado y cliente.
func (uc *JobOrderUseCase) List(status *entity.JobOrderStatus, customerID *string, page, pageSize int) result.Result[dto.PaginatedResponse[dto.JobOrderResponse]] {
	total, err := uc.jobOrders.Count(status, customerID)
	if err != nil {
		return serverError[dto.PaginatedResponse[dto.JobOrderResponse]]("joborder.list", err)
	}
	list, err := uc.jobOrders.List(status, customerID, pageSize, (page-1)*pageSize)
	if err != nil {
		return serverError[dto.PaginatedResponse[dto.JobOrderResponse]]("joborder.list", err)
	}
	items := make([]dto.JobOrderResponse, 0, len(list))
	for _, jo := range list {
		item, err := uc.expand(jo)
		if err != nil {
			return serverError[dto.PaginatedResponse[dto.JobOrderResponse]]("joborder.list", err)
		}
		items = append(items, item)
	}
	return result.Ok(dto.NewPaginatedResponse(page, pageSize, total, items))
}

// GetByID recupera una orden con sus referencias expandidas.
func (uc *JobOrderUseCase) GetByID(id string) result.Result[dto.JobOrderResponse] {
	jobOrder, err := uc.jobOrders.GetByID(id)
	if err != nil {
		return serverError[dto.JobOrderResponse]("joborder.get", err)
	}
	if res := validateJobOrderExists[dto.JobOrderResponse](jobOrder, id); res != nil {
		return *res
	}
	out, err := uc.expand(jobOrder)
	if err != nil {
		return serverError[dto.JobOrderResponse]("joborder.get", err)
	}
	return result.Ok(out)
}

// Create da de alta una orden. Orden de chequeos: número único → cliente →
// vehículo → técnico; 404 por cada referencia ausente.
func (uc *JobOrderUseCase) Create(in dto.CreateJobOrderRequest) result.Result[dto.JobOrderResponse] {
	numberTaken, err := uc.jobOrders.ExistsByNumber(in.JobOrderNumber)
	if err != nil {
		return serverError[dto.JobOrderResponse]("joborder.create", err)
	}
	if res := validateJobOrderNumberIsUnique[dto.JobOrderResponse](numberTaken); res != nil {
		return *res
	}

	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return serverError[dto.JobOrderResponse]("joborder.create", err)
	}
	if res := validateCustomerExists[dto.JobOrderResponse](customer, in.CustomerID); res != nil {
		return *res
	}

	vehicle, err := uc.vehicles.GetByID(in.VehicleID)
	if err != nil {
		return serverError[dto.JobOrderResponse]("joborder.create", err)
	}
	if res := validateVehicleExists[dto.JobOrderResponse](vehicle, in.VehicleID); res != nil {
		return *res
	}

	technician, err := uc.technicians.GetByID(in.TechnicianID)
	if err != nil {
		return serverError[dto.JobOrderResponse]("joborder.create", err)
	}
	if res := validateTechnicianExists[dto.JobOrderResponse](technician, in.TechnicianID); res != nil {
		return *res
	}

	now := time.Now().UTC()
	jobOrder := &entity.JobOrder{
		ID:             uuid.New().String(),
		JobOrderNumber: in.JobOrderNumber,
		Status:         entity.JobOrderPending,
		CustomerID:     in.CustomerID,
		VehicleID:      in.VehicleID,
		TechnicianID:   in.TechnicianID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.jobOrders.Create(jobOrder); err != nil {
		return writeError("joborder.create", err, validateJobOrderNumberIsUnique[dto.JobOrderResponse](true))
	}
	return result.Ok(toJobOrderResponse(jobOrder, customer, vehicle, technician))
}

// PatchDetails reasigna referencias con semántica de patch parcial: solo los
// campos presentes se validan y aplican; los demás quedan intactos.
func (uc *JobOrderUseCase) PatchDetails(id string, in dto.PatchJobOrderRequest) result.Result[dto.JobOrderResponse] {
	jobOrder, err := uc.jobOrders.GetByID(id)
	if err != nil {
		return serverError[dto.JobOrderResponse]("joborder.patch", err)
	}
	if res := validateJobOrderExists[dto.JobOrderResponse](jobOrder, id); res != nil {
		return *res
	}

	if in.CustomerID != nil {
		customer, err := uc.customers.GetByID(*in.CustomerID)
		if err != nil {
			return serverError[dto.JobOrderResponse]("joborder.patch", err)
		}
		if res := validateCustomerExists[dto.JobOrderResponse](customer, *in.CustomerID); res != nil {
			return *res
		}
		jobOrder.CustomerID = *in.CustomerID
	}

	if in.VehicleID != nil {
		vehicle, err := uc.vehicles.GetByID(*in.VehicleID)
		if err != nil {
			return serverError[dto.JobOrderResponse]("joborder.patch", err)
		}
		if res := validateVehicleExists[dto.JobOrderResponse](vehicle, *in.VehicleID); res != nil {
			return *res
		}
		jobOrder.VehicleID = *in.VehicleID
	}

	if in.TechnicianID != nil {
		technician, err := uc.technicians.GetByID(*in.TechnicianID)
		if err != nil {
			return serverError[dto.JobOrderResponse]("joborder.patch", err)
		}
		if res := validateTechnicianExists[dto.JobOrderResponse](technician, *in.TechnicianID); res != nil {
			return *res
		}
		jobOrder.TechnicianID = *in.TechnicianID
	}

	jobOrder.UpdatedAt = time.Now().UTC()
	if err := uc.jobOrders.Update(jobOrder); err != nil {
		return serverError[dto.JobOrderResponse]("joborder.patch", err)
	}

	out, err := uc.expand(jobOrder)
	if err != nil {
		return serverError[dto.JobOrderResponse]("joborder.patch", err)
	}
	return result.Ok(out)
}

// UpdateStatus aplica el cambio de estado dirigido por el operador. No hay
// tabla de transiciones que restrinja origen → destino: cualquier estado puede
// fijarse explícitamente (comportamiento conservado a propósito).
func (uc *JobOrderUseCase) UpdateStatus(id string, in dto.UpdateJobOrderStatusRequest) result.Result[dto.JobOrderResponse] {
	jobOrder, err := uc.jobOrders.GetByID(id)
	if err != nil {
		return serverError[dto.JobOrderResponse]("joborder.status", err)
	}
	if res := validateJobOrderExists[dto.JobOrderResponse](jobOrder, id); res != nil {
		return *res
	}

	status, ok := entity.ParseJobOrderStatus(in.Status)
	if !ok {
		return result.Fail[dto.JobOrderResponse](result.StatusBadRequest,
			"Invalid job order status.",
			"Job order status must be Pending, InProgress, Completed or Cancelled.")
	}

	jobOrder.Status = status
	jobOrder.UpdatedAt = time.Now().UTC()
	if err := uc.jobOrders.Update(jobOrder); err != nil {
		return serverError[dto.JobOrderResponse]("joborder.status", err)
	}

	out, err := uc.expand(jobOrder)
	if err != nil {
		return serverError[dto.JobOrderResponse]("joborder.status", err)
	}
	return result.Ok(out)
}
