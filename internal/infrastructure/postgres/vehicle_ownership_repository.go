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

var _ repository.VehicleOwnershipRepository = (*VehicleOwnershipRepo)(nil)

const ownershipColumns = `id, vehicle_id, customer_id, is_current_owner, ownership_start_date, ownership_end_date, notes, registered_at`

// VehicleOwnershipRepo implementación del puerto VehicleOwnershipRepository
// sobre PostgreSQL (usable con pool o tx). La tabla lleva un índice único
// parcial sobre (vehicle_id) WHERE is_current_owner, que respalda en el
// almacén el invariante de dueño vigente único.
type VehicleOwnershipRepo struct {
	q Querier
}

// NewVehicleOwnershipRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleOwnershipRepository(q Querier) *VehicleOwnershipRepo {
	return &VehicleOwnershipRepo{q: q}
}

func scanOwnership(row rowScanner) (*entity.VehicleOwnership, error) {
	var o entity.VehicleOwnership
	err := row.Scan(
		&o.ID, &o.VehicleID, &o.CustomerID, &o.IsCurrentOwner,
		&o.OwnershipStartDate, &o.OwnershipEndDate, &o.Notes, &o.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create persiste un nuevo registro de propiedad.
func (r *VehicleOwnershipRepo) Create(ownership *entity.VehicleOwnership) error {
	query := `
		INSERT INTO vehicle_ownerships (id, vehicle_id, customer_id, is_current_owner, ownership_start_date, ownership_end_date, notes, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		ownership.ID, ownership.VehicleID, ownership.CustomerID, ownership.IsCurrentOwner,
		ownership.OwnershipStartDate, ownership.OwnershipEndDate, ownership.Notes, ownership.RegisteredAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vehicle ownership: %w", err)
	}
	return nil
}

// GetByID obtiene un registro de propiedad por ID.
func (r *VehicleOwnershipRepo) GetByID(id string) (*entity.VehicleOwnership, error) {
	query := `SELECT ` + ownershipColumns + ` FROM vehicle_ownerships WHERE id = $1`
	o, err := scanOwnership(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle ownership: %w", err)
	}
	return o, nil
}

// GetCurrentByVehicle devuelve el registro vigente del vehículo, si existe.
func (r *VehicleOwnershipRepo) GetCurrentByVehicle(vehicleID string) (*entity.VehicleOwnership, error) {
	query := `SELECT ` + ownershipColumns + ` FROM vehicle_ownerships WHERE vehicle_id = $1 AND is_current_owner`
	o, err := scanOwnership(r.q.QueryRow(context.Background(), query, vehicleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get current ownership: %w", err)
	}
	return o, nil
}

// ListByVehicle devuelve el historial completo de propiedad del vehículo.
func (r *VehicleOwnershipRepo) ListByVehicle(vehicleID string) ([]*entity.VehicleOwnership, error) {
	query := `SELECT ` + ownershipColumns + ` FROM vehicle_ownerships WHERE vehicle_id = $1 ORDER BY registered_at`
	return r.list(query, vehicleID)
}

// ListByCustomer devuelve los registros de propiedad de un cliente; con
// onlyCurrent solo los vigentes.
func (r *VehicleOwnershipRepo) ListByCustomer(customerID string, onlyCurrent bool) ([]*entity.VehicleOwnership, error) {
	query := `SELECT ` + ownershipColumns + `
		FROM vehicle_ownerships
		WHERE customer_id = $1 AND ($2 = false OR is_current_owner)
		ORDER BY registered_at`
	return r.list(query, customerID, onlyCurrent)
}

func (r *VehicleOwnershipRepo) list(query string, args ...any) ([]*entity.VehicleOwnership, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vehicle ownerships: %w", err)
	}
	defer rows.Close()

	var ownerships []*entity.VehicleOwnership
	for rows.Next() {
		o, err := scanOwnership(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle ownership: %w", err)
		}
		ownerships = append(ownerships, o)
	}
	return ownerships, rows.Err()
}

// Update actualiza un registro de propiedad (cierre de vigencia en una transferencia).
func (r *VehicleOwnershipRepo) Update(ownership *entity.VehicleOwnership) error {
	query := `
		UPDATE vehicle_ownerships SET is_current_owner = $2, ownership_end_date = $3, notes = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ownership.ID, ownership.IsCurrentOwner, ownership.OwnershipEndDate, ownership.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update vehicle ownership: %w", err)
	}
	return nil
}
