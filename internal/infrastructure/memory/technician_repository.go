package memory

import (
	"sort"

	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/repository"
)

var _ repository.TechnicianRepository = (*TechnicianRepo)(nil)

// TechnicianRepo implementación en memoria de TechnicianRepository.
type TechnicianRepo struct {
	s *store[entity.Technician]
}

// NewTechnicianRepository construye el repo en memoria.
func NewTechnicianRepository() *TechnicianRepo {
	return &TechnicianRepo{s: newStore[entity.Technician]()}
}

// Create guarda un nuevo técnico.
func (r *TechnicianRepo) Create(technician *entity.Technician) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[technician.ID] = *technician
	return nil
}

// GetByID devuelve una copia del técnico o (nil, nil) si no existe.
func (r *TechnicianRepo) GetByID(id string) (*entity.Technician, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := t
	return &cp, nil
}

// List lista técnicos ordenados por ID.
func (r *TechnicianRepo) List(limit, offset int) ([]*entity.Technician, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var all []*entity.Technician
	for _, t := range r.s.items {
		cp := t
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return paginate(all, limit, offset), nil
}

// Count cuenta los técnicos almacenados.
func (r *TechnicianRepo) Count() (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.items), nil
}

// ExistsByFullName escanea colisiones de nombre completo excluyendo excludeID.
func (r *TechnicianRepo) ExistsByFullName(fullName, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, t := range r.s.items {
		if t.ID != excludeID && t.FullName == fullName {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByPhone escanea colisiones de teléfono excluyendo excludeID.
func (r *TechnicianRepo) ExistsByPhone(phone, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, t := range r.s.items {
		if t.ID != excludeID && t.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

// Update reemplaza el técnico almacenado.
func (r *TechnicianRepo) Update(technician *entity.Technician) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[technician.ID] = *technician
	return nil
}
