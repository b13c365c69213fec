package memory

import (
	"sort"

	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria de CustomerRepository.
type CustomerRepo struct {
	s *store[entity.Customer]
}

// NewCustomerRepository construye el repo en memoria.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{s: newStore[entity.Customer]()}
}

// Create guarda un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[customer.ID] = *customer
	return nil
}

// GetByID devuelve una copia del cliente o (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := c
	return &cp, nil
}

// List lista clientes con filtro opcional por kind, ordenados por ID.
func (r *CustomerRepo) List(kind *entity.CustomerKind, limit, offset int) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var all []*entity.Customer
	for _, c := range r.s.items {
		if kind != nil && c.Kind() != *kind {
			continue
		}
		cp := c
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, limit, offset), nil
}

// Count cuenta clientes con filtro opcional por kind.
func (r *CustomerRepo) Count(kind *entity.CustomerKind) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, c := range r.s.items {
		if kind != nil && c.Kind() != *kind {
			continue
		}
		n++
	}
	return n, nil
}

// ExistsByContact escanea colisiones de email O teléfono excluyendo excludeID.
func (r *CustomerRepo) ExistsByContact(email, phone, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.items {
		if c.ID == excludeID {
			continue
		}
		if c.Email == email || c.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

// Update reemplaza el cliente almacenado.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[customer.ID] = *customer
	return nil
}

// paginate aplica offset/limit sobre un slice ya ordenado.
func paginate[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}
