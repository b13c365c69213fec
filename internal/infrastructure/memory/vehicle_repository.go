package memory

import (
	"sort"

	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación en memoria de VehicleRepository.
type VehicleRepo struct {
	s *store[entity.Vehicle]
}

// NewVehicleRepository construye el repo en memoria.
func NewVehicleRepository() *VehicleRepo {
	return &VehicleRepo{s: newStore[entity.Vehicle]()}
}

// Create guarda un nuevo vehículo.
func (r *VehicleRepo) Create(vehicle *entity.Vehicle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[vehicle.ID] = *vehicle
	return nil
}

// GetByID devuelve una copia del vehículo o (nil, nil) si no existe.
func (r *VehicleRepo) GetByID(id string) (*entity.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := v
	return &cp, nil
}

// List lista vehículos ordenados por ID.
func (r *VehicleRepo) List(limit, offset int) ([]*entity.Vehicle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var all []*entity.Vehicle
	for _, v := range r.s.items {
		cp := v
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, limit, offset), nil
}

// Count cuenta los vehículos almacenados.
func (r *VehicleRepo) Count() (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.items), nil
}

// ExistsByPlateOrVIN escanea colisiones de placa O VIN excluyendo excludeID.
func (r *VehicleRepo) ExistsByPlateOrVIN(plateNumber, vin, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, v := range r.s.items {
		if v.ID == excludeID {
			continue
		}
		if v.PlateNumber == plateNumber || v.VIN == vin {
			return true, nil
		}
	}
	return false, nil
}

// Update reemplaza el vehículo almacenado.
func (r *VehicleRepo) Update(vehicle *entity.Vehicle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[vehicle.ID] = *vehicle
	return nil
}
