package repository

import "github.com/driveops/driveops-api/internal/domain/entity"

// VehicleRepository define el puerto de persistencia para Vehicle.
// GetByID devuelve (nil, nil) cuando el vehículo no existe.
type VehicleRepository interface {
	Create(vehicle *entity.Vehicle) error
	GetByID(id string) (*entity.Vehicle, error)
	List(limit, offset int) ([]*entity.Vehicle, error)
	Count() (int, error)
	// ExistsByPlateOrVIN escanea colisiones de placa O VIN, excluyendo
	// opcionalmente un ID propio (para updates).
	ExistsByPlateOrVIN(plateNumber, vin, excludeID string) (bool, error)
	Update(vehicle *entity.Vehicle) error
}
