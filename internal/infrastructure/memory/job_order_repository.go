package memory

import (
	"sort"

	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/repository"
)

var _ repository.JobOrderRepository = (*JobOrderRepo)(nil)

// JobOrderRepo implementación en memoria de JobOrderRepository.
type JobOrderRepo struct {
	s *store[entity.JobOrder]
}

// NewJobOrderRepository construye el repo en memoria.
func NewJobOrderRepository() *JobOrderRepo {
	return &JobOrderRepo{s: newStore[entity.JobOrder]()}
}

// Create guarda una nueva orden.
func (r *JobOrderRepo) Create(jobOrder *entity.JobOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[jobOrder.ID] = *jobOrder
	return nil
}

// GetByID devuelve una copia de la orden o (nil, nil) si no existe.
func (r *JobOrderRepo) GetByID(id string) (*entity.JobOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	jo, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := jo
	return &cp, nil
}

// GetByNumber busca la orden por su número visible.
func (r *JobOrderRepo) GetByNumber(jobOrderNumber string) (*entity.JobOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, jo := range r.s.items {
		if jo.JobOrderNumber == jobOrderNumber {
			cp := jo
			return &cp, nil
		}
	}
	return nil, nil
}

// List lista órdenes con filtros opcionales por estado y cliente.
func (r *JobOrderRepo) List(status *entity.JobOrderStatus, customerID *string, limit, offset int) ([]*entity.JobOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var all []*entity.JobOrder
	for _, jo := range r.s.items {
		if status != nil && jo.Status != *status {
			continue
		}
		if customerID != nil && jo.CustomerID != *customerID {
			continue
		}
		cp := jo
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, limit, offset), nil
}

// Count cuenta órdenes con los mismos filtros que List.
func (r *JobOrderRepo) Count(status *entity.JobOrderStatus, customerID *string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, jo := range r.s.items {
		if status != nil && jo.Status != *status {
			continue
		}
		if customerID != nil && jo.CustomerID != *customerID {
			continue
		}
		n++
	}
	return n, nil
}

// ExistsByNumber escanea colisiones del número de orden.
func (r *JobOrderRepo) ExistsByNumber(jobOrderNumber string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, jo := range r.s.items {
		if jo.JobOrderNumber == jobOrderNumber {
			return true, nil
		}
	}
	return false, nil
}

// Update reemplaza la orden almacenada.
func (r *JobOrderRepo) Update(jobOrder *entity.JobOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[jobOrder.ID] = *jobOrder
	return nil
}
