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

var _ repository.TechnicianRepository = (*TechnicianRepo)(nil)

const technicianColumns = `id, full_name, phone_number, specialization, status, registered_at, updated_at`

// TechnicianRepo implementación del puerto TechnicianRepository sobre PostgreSQL (usable con pool o tx).
type TechnicianRepo struct {
	q Querier
}

// NewTechnicianRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTechnicianRepository(q Querier) *TechnicianRepo {
	return &TechnicianRepo{q: q}
}

func scanTechnician(row rowScanner) (*entity.Technician, error) {
	var t entity.Technician
	err := row.Scan(
		&t.ID, &t.FullName, &t.PhoneNumber, &t.Specialization,
		&t.Status, &t.RegisteredAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste un nuevo técnico.
func (r *TechnicianRepo) Create(technician *entity.Technician) error {
	query := `
		INSERT INTO technicians (id, full_name, phone_number, specialization, status, registered_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		technician.ID, technician.FullName, technician.PhoneNumber, technician.Specialization,
		string(technician.Status), technician.RegisteredAt, technician.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert technician: %w", err)
	}
	return nil
}

// GetByID obtiene un técnico por ID.
func (r *TechnicianRepo) GetByID(id string) (*entity.Technician, error) {
	query := `SELECT ` + technicianColumns + ` FROM technicians WHERE id = $1`
	t, err := scanTechnician(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get technician: %w", err)
	}
	return t, nil
}

// List lista técnicos con paginación.
func (r *TechnicianRepo) List(limit, offset int) ([]*entity.Technician, error) {
	query := `SELECT ` + technicianColumns + ` FROM technicians ORDER BY registered_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list technicians: %w", err)
	}
	defer rows.Close()

	var technicians []*entity.Technician
	for rows.Next() {
		t, err := scanTechnician(rows)
		if err != nil {
			return nil, fmt.Errorf("scan technician: %w", err)
		}
		technicians = append(technicians, t)
	}
	return technicians, rows.Err()
}

// Count cuenta los técnicos registrados.
func (r *TechnicianRepo) Count() (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM technicians`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count technicians: %w", err)
	}
	return count, nil
}

// ExistsByFullName verifica si otro técnico ya usa el nombre completo.
func (r *TechnicianRepo) ExistsByFullName(fullName, excludeID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (
			SELECT 1 FROM technicians WHERE full_name = $1 AND ($2 = '' OR id <> $2)
		)`,
		fullName, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists technician by name: %w", err)
	}
	return exists, nil
}

// ExistsByPhone verifica si otro técnico ya usa el teléfono.
func (r *TechnicianRepo) ExistsByPhone(phone, excludeID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (
			SELECT 1 FROM technicians WHERE phone_number = $1 AND ($2 = '' OR id <> $2)
		)`,
		phone, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists technician by phone: %w", err)
	}
	return exists, nil
}

// Update actualiza un técnico existente.
func (r *TechnicianRepo) Update(technician *entity.Technician) error {
	query := `
		UPDATE technicians SET full_name = $2, phone_number = $3, specialization = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		technician.ID, technician.FullName, technician.PhoneNumber, technician.Specialization,
		string(technician.Status), technician.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update technician: %w", err)
	}
	return nil
}
