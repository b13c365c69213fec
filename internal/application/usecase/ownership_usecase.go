package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/repository"
	"github.com/driveops/driveops-api/internal/domain/result"
)

// VehicleOwnershipUseCase implementa el ledger de propiedad: invariante de un
// solo dueño vigente por vehículo y el protocolo de transferencia.
type VehicleOwnershipUseCase struct {
	ownerships repository.VehicleOwnershipRepository
	vehicles   repository.VehicleRepository
	customers  repository.CustomerRepository
	tx         TransferTxRunner
}

// NewVehicleOwnershipUseCase construye el caso de uso.
func NewVehicleOwnershipUseCase(
	ownerships repository.VehicleOwnershipRepository,
	vehicles repository.VehicleRepository,
	customers repository.CustomerRepository,
	tx TransferTxRunner,
) *VehicleOwnershipUseCase {
	return &VehicleOwnershipUseCase{ownerships: ownerships, vehicles: vehicles, customers: customers, tx: tx}
}

// GetByID recupera un registro de propiedad.
func (uc *VehicleOwnershipUseCase) GetByID(id string) result.Result[dto.OwnershipResponse] {
	ownership, err := uc.ownerships.GetByID(id)
	if err != nil {
		return serverError[dto.OwnershipResponse]("ownership.get", err)
	}
	if res := validateOwnershipExists[dto.OwnershipResponse](ownership, id); res != nil {
		return *res
	}
	return result.Ok(toOwnershipResponse(ownership))
}

// Create registra una propiedad (alta inicial). Chequeos en orden: cliente
// existe → vehículo existe → si se pide IsCurrentOwner, que no haya ya un
// dueño vigente. Agrega un registro nuevo; no toca los demás.
func (uc *VehicleOwnershipUseCase) Create(in dto.CreateOwnershipRequest) result.Result[dto.OwnershipResponse] {
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return serverError[dto.OwnershipResponse]("ownership.create", err)
	}
	if res := validateCustomerExists[dto.OwnershipResponse](customer, in.CustomerID); res != nil {
		return *res
	}

	vehicle, err := uc.vehicles.GetByID(in.VehicleID)
	if err != nil {
		return serverError[dto.OwnershipResponse]("ownership.create", err)
	}
	if res := validateVehicleExists[dto.OwnershipResponse](vehicle, in.VehicleID); res != nil {
		return *res
	}

	if in.IsCurrentOwner {
		current, err := uc.ownerships.GetCurrentByVehicle(in.VehicleID)
		if err != nil {
			return serverError[dto.OwnershipResponse]("ownership.create", err)
		}
		if res := validateNoCurrentOwner[dto.OwnershipResponse](current != nil); res != nil {
			return *res
		}
	}

	now := time.Now().UTC()
	ownership := &entity.VehicleOwnership{
		ID:                 uuid.New().String(),
		VehicleID:          in.VehicleID,
		CustomerID:         in.CustomerID,
		IsCurrentOwner:     in.IsCurrentOwner,
		OwnershipStartDate: &now,
		Notes:              in.Notes,
		RegisteredAt:       now,
	}
	if err := uc.ownerships.Create(ownership); err != nil {
		return writeError("ownership.create", err, validateNoCurrentOwner[dto.OwnershipResponse](true))
	}
	return result.Ok(toOwnershipResponse(ownership))
}

// Transfer transfiere la propiedad a un nuevo dueño. Apagar el flag del
// registro vigente e insertar el nuevo deben confirmarse en una sola
// transacción: un commit parcial dejaría al vehículo con cero o dos dueños
// vigentes.
func (uc *VehicleOwnershipUseCase) Transfer(ctx context.Context, in dto.TransferOwnershipRequest) result.Result[dto.OwnershipResponse] {
	vehicle, err := uc.vehicles.GetByID(in.VehicleID)
	if err != nil {
		return serverError[dto.OwnershipResponse]("ownership.transfer", err)
	}
	if res := validateVehicleExists[dto.OwnershipResponse](vehicle, in.VehicleID); res != nil {
		return *res
	}

	newOwner, err := uc.customers.GetByID(in.NewOwnerID)
	if err != nil {
		return serverError[dto.OwnershipResponse]("ownership.transfer", err)
	}
	if res := validateCustomerExists[dto.OwnershipResponse](newOwner, in.NewOwnerID); res != nil {
		return *res
	}

	current, err := uc.ownerships.GetCurrentByVehicle(in.VehicleID)
	if err != nil {
		return serverError[dto.OwnershipResponse]("ownership.transfer", err)
	}
	if res := validateOwnershipToTransfer[dto.OwnershipResponse](current); res != nil {
		return *res
	}

	now := time.Now().UTC()
	next := &entity.VehicleOwnership{
		ID:                 uuid.New().String(),
		VehicleID:          in.VehicleID,
		CustomerID:         in.NewOwnerID,
		IsCurrentOwner:     true,
		OwnershipStartDate: &now,
		Notes:              in.Notes,
		RegisteredAt:       now,
	}

	err = uc.tx.RunTransfer(ctx, func(ownerships repository.VehicleOwnershipRepository) error {
		current.IsCurrentOwner = false
		if err := ownerships.Update(current); err != nil {
			return err
		}
		return ownerships.Create(next)
	})
	if err != nil {
		return serverError[dto.OwnershipResponse]("ownership.transfer", err)
	}
	return result.Ok(toOwnershipResponse(next))
}
