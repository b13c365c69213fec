package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/driveops/driveops-api/internal/domain"
	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, kind, first_name, last_name, company_name, contact_person, position, email, phone_number, address, notes, status, created_at, updated_at`

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// rowScanner abstrae pgx.Row y pgx.Rows para compartir el armado del subtipo.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCustomer arma la entidad desde la fila plana: las columnas del subtipo
// que no aplican al kind vienen en NULL y se descartan.
func scanCustomer(row rowScanner) (*entity.Customer, error) {
	var c entity.Customer
	var kind string
	var firstName, lastName, companyName, contactPerson, position *string
	err := row.Scan(
		&c.ID, &kind, &firstName, &lastName, &companyName, &contactPerson, &position,
		&c.Email, &c.PhoneNumber, &c.Address, &c.Notes, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	switch entity.CustomerKind(kind) {
	case entity.KindIndividual:
		c.Subtype = entity.IndividualDetails{
			FirstName: deref(firstName),
			LastName:  deref(lastName),
		}
	case entity.KindCompany:
		c.Subtype = entity.CompanyDetails{
			CompanyName:   deref(companyName),
			ContactPerson: deref(contactPerson),
			Position:      deref(position),
		}
	default:
		return nil, fmt.Errorf("kind de cliente desconocido en fila: %q", kind)
	}
	return &c, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// subtypeColumns aplana la unión a las cinco columnas del subtipo.
func subtypeColumns(c *entity.Customer) (firstName, lastName, companyName, contactPerson, position *string) {
	switch st := c.Subtype.(type) {
	case entity.IndividualDetails:
		firstName, lastName = &st.FirstName, &st.LastName
	case entity.CompanyDetails:
		companyName, contactPerson, position = &st.CompanyName, &st.ContactPerson, &st.Position
	}
	return
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, kind, first_name, last_name, company_name, contact_person, position, email, phone_number, address, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	firstName, lastName, companyName, contactPerson, position := subtypeColumns(customer)
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, string(customer.Kind()), firstName, lastName, companyName, contactPerson, position,
		customer.Email, customer.PhoneNumber, customer.Address, customer.Notes,
		string(customer.Status), customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List lista clientes con paginación, filtrando opcionalmente por kind.
func (r *CustomerRepo) List(kind *entity.CustomerKind, limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + `
		FROM customers
		WHERE ($1::text IS NULL OR kind = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, kindArg(kind), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// Count cuenta clientes, filtrando opcionalmente por kind.
func (r *CustomerRepo) Count(kind *entity.CustomerKind) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM customers WHERE ($1::text IS NULL OR kind = $1)`,
		kindArg(kind),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return count, nil
}

// ExistsByContact verifica colisiones de email o teléfono contra otros clientes.
func (r *CustomerRepo) ExistsByContact(email, phone, excludeID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (
			SELECT 1 FROM customers
			WHERE (email = $1 OR phone_number = $2) AND ($3 = '' OR id <> $3)
		)`,
		email, phone, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists customer by contact: %w", err)
	}
	return exists, nil
}

// Update actualiza un cliente existente, incluido el subtipo (el kind puede cambiar).
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET kind = $2, first_name = $3, last_name = $4, company_name = $5,
			contact_person = $6, position = $7, email = $8, phone_number = $9,
			address = $10, notes = $11, status = $12, updated_at = $13
		WHERE id = $1`
	firstName, lastName, companyName, contactPerson, position := subtypeColumns(customer)
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, string(customer.Kind()), firstName, lastName, companyName, contactPerson, position,
		customer.Email, customer.PhoneNumber, customer.Address, customer.Notes,
		string(customer.Status), customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func kindArg(kind *entity.CustomerKind) *string {
	if kind == nil {
		return nil
	}
	s := string(*kind)
	return &s
}
