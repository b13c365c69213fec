package repository

import "github.com/driveops/driveops-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID devuelve (nil, nil) cuando el cliente no existe.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(kind *entity.CustomerKind, limit, offset int) ([]*entity.Customer, error)
	Count(kind *entity.CustomerKind) (int, error)
	// ExistsByContact escanea colisiones de email O teléfono, excluyendo
	// opcionalmente un ID propio (para updates). excludeID vacío no excluye nada.
	ExistsByContact(email, phone, excludeID string) (bool, error)
	Update(customer *entity.Customer) error
}
