package memory

import (
	"sort"

	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/repository"
)

var _ repository.VehicleOwnershipRepository = (*VehicleOwnershipRepo)(nil)

// VehicleOwnershipRepo implementación en memoria del ledger de propiedad.
type VehicleOwnershipRepo struct {
	s *store[entity.VehicleOwnership]
}

// NewVehicleOwnershipRepository construye el repo en memoria.
func NewVehicleOwnershipRepository() *VehicleOwnershipRepo {
	return &VehicleOwnershipRepo{s: newStore[entity.VehicleOwnership]()}
}

// Create guarda un nuevo registro de propiedad.
func (r *VehicleOwnershipRepo) Create(ownership *entity.VehicleOwnership) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[ownership.ID] = *ownership
	return nil
}

// GetByID devuelve una copia del registro o (nil, nil) si no existe.
func (r *VehicleOwnershipRepo) GetByID(id string) (*entity.VehicleOwnership, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := o
	return &cp, nil
}

// GetCurrentByVehicle devuelve el registro con IsCurrentOwner del vehículo.
func (r *VehicleOwnershipRepo) GetCurrentByVehicle(vehicleID string) (*entity.VehicleOwnership, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, o := range r.s.items {
		if o.VehicleID == vehicleID && o.IsCurrentOwner {
			cp := o
			return &cp, nil
		}
	}
	return nil, nil
}

// ListByVehicle lista el historial de propiedad del vehículo.
func (r *VehicleOwnershipRepo) ListByVehicle(vehicleID string) ([]*entity.VehicleOwnership, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.VehicleOwnership
	for _, o := range r.s.items {
		if o.VehicleID != vehicleID {
			continue
		}
		cp := o
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].RegisteredAt.Before(list[j].RegisteredAt) })
	return list, nil
}

// ListByCustomer lista los registros del cliente, opcionalmente solo vigentes.
func (r *VehicleOwnershipRepo) ListByCustomer(customerID string, onlyCurrent bool) ([]*entity.VehicleOwnership, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.VehicleOwnership
	for _, o := range r.s.items {
		if o.CustomerID != customerID {
			continue
		}
		if onlyCurrent && !o.IsCurrentOwner {
			continue
		}
		cp := o
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].RegisteredAt.Before(list[j].RegisteredAt) })
	return list, nil
}

// Update reemplaza el registro almacenado (solo se usa para apagar el flag).
func (r *VehicleOwnershipRepo) Update(ownership *entity.VehicleOwnership) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[ownership.ID] = *ownership
	return nil
}
