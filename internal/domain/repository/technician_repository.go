package repository

import "github.com/driveops/driveops-api/internal/domain/entity"

// TechnicianRepository define el puerto de persistencia para Technician.
// GetByID devuelve (nil, nil) cuando el técnico no existe.
type TechnicianRepository interface {
	Create(technician *entity.Technician) error
	GetByID(id string) (*entity.Technician, error)
	List(limit, offset int) ([]*entity.Technician, error)
	Count() (int, error)
	// Nombre y teléfono se chequean por separado: producen conflictos con
	// códigos distintos.
	ExistsByFullName(fullName, excludeID string) (bool, error)
	ExistsByPhone(phone, excludeID string) (bool, error)
	Update(technician *entity.Technician) error
}
