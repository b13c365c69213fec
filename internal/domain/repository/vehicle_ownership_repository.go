package repository

import "github.com/driveops/driveops-api/internal/domain/entity"

// VehicleOwnershipRepository define el puerto de persistencia del ledger de
// propiedad. GetByID y GetCurrentByVehicle devuelven (nil, nil) si no hay registro.
type VehicleOwnershipRepository interface {
	Create(ownership *entity.VehicleOwnership) error
	GetByID(id string) (*entity.VehicleOwnership, error)
	// GetCurrentByVehicle devuelve el registro con IsCurrentOwner = true del
	// vehículo, si existe.
	GetCurrentByVehicle(vehicleID string) (*entity.VehicleOwnership, error)
	ListByVehicle(vehicleID string) ([]*entity.VehicleOwnership, error)
	ListByCustomer(customerID string, onlyCurrent bool) ([]*entity.VehicleOwnership, error)
	Update(ownership *entity.VehicleOwnership) error
}
