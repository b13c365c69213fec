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

var _ repository.JobOrderRepository = (*JobOrderRepo)(nil)

const jobOrderColumns = `id, job_order_number, status, customer_id, vehicle_id, technician_id, created_at, updated_at`

// JobOrderRepo implementación del puerto JobOrderRepository sobre PostgreSQL (usable con pool o tx).
type JobOrderRepo struct {
	q Querier
}

// NewJobOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewJobOrderRepository(q Querier) *JobOrderRepo {
	return &JobOrderRepo{q: q}
}

func scanJobOrder(row rowScanner) (*entity.JobOrder, error) {
	var jo entity.JobOrder
	err := row.Scan(
		&jo.ID, &jo.JobOrderNumber, &jo.Status, &jo.CustomerID,
		&jo.VehicleID, &jo.TechnicianID, &jo.CreatedAt, &jo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &jo, nil
}

// Create persiste una nueva orden de trabajo.
func (r *JobOrderRepo) Create(jobOrder *entity.JobOrder) error {
	query := `
		INSERT INTO job_orders (id, job_order_number, status, customer_id, vehicle_id, technician_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		jobOrder.ID, jobOrder.JobOrderNumber, string(jobOrder.Status),
		jobOrder.CustomerID, jobOrder.VehicleID, jobOrder.TechnicianID,
		jobOrder.CreatedAt, jobOrder.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert job order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *JobOrderRepo) GetByID(id string) (*entity.JobOrder, error) {
	query := `SELECT ` + jobOrderColumns + ` FROM job_orders WHERE id = $1`
	jo, err := scanJobOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job order: %w", err)
	}
	return jo, nil
}

// GetByNumber obtiene una orden por su número de negocio.
func (r *JobOrderRepo) GetByNumber(jobOrderNumber string) (*entity.JobOrder, error) {
	query := `SELECT ` + jobOrderColumns + ` FROM job_orders WHERE job_order_number = $1`
	jo, err := scanJobOrder(r.q.QueryRow(context.Background(), query, jobOrderNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job order by number: %w", err)
	}
	return jo, nil
}

// List lista órdenes con paginación, filtrando opcionalmente por estado y cliente.
func (r *JobOrderRepo) List(status *entity.JobOrderStatus, customerID *string, limit, offset int) ([]*entity.JobOrder, error) {
	query := `SELECT ` + jobOrderColumns + `
		FROM job_orders
		WHERE ($1::text IS NULL OR status = $1) AND ($2::text IS NULL OR customer_id = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, statusArg(status), customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list job orders: %w", err)
	}
	defer rows.Close()

	var jobOrders []*entity.JobOrder
	for rows.Next() {
		jo, err := scanJobOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job order: %w", err)
		}
		jobOrders = append(jobOrders, jo)
	}
	return jobOrders, rows.Err()
}

// Count cuenta órdenes, filtrando opcionalmente por estado y cliente.
func (r *JobOrderRepo) Count(status *entity.JobOrderStatus, customerID *string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM job_orders
		WHERE ($1::text IS NULL OR status = $1) AND ($2::text IS NULL OR customer_id = $2)`,
		statusArg(status), customerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count job orders: %w", err)
	}
	return count, nil
}

// ExistsByNumber verifica si ya existe una orden con ese número.
func (r *JobOrderRepo) ExistsByNumber(jobOrderNumber string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM job_orders WHERE job_order_number = $1)`,
		jobOrderNumber,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists job order by number: %w", err)
	}
	return exists, nil
}

// Update actualiza una orden existente. El número de orden es inmutable.
func (r *JobOrderRepo) Update(jobOrder *entity.JobOrder) error {
	query := `
		UPDATE job_orders SET status = $2, customer_id = $3, vehicle_id = $4, technician_id = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		jobOrder.ID, string(jobOrder.Status), jobOrder.CustomerID,
		jobOrder.VehicleID, jobOrder.TechnicianID, jobOrder.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job order: %w", err)
	}
	return nil
}

func statusArg(status *entity.JobOrderStatus) *string {
	if status == nil {
		return nil
	}
	s := string(*status)
	return &s
}
