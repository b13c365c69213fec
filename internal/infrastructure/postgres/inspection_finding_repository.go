package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/repository"
)

var _ repository.InspectionFindingRepository = (*InspectionFindingRepo)(nil)

const findingColumns = `id, job_order_id, description, recommendation, severity, is_resolved, created_at, updated_at`

// InspectionFindingRepo implementación del puerto InspectionFindingRepository sobre PostgreSQL (usable con pool o tx).
type InspectionFindingRepo struct {
	q Querier
}

// NewInspectionFindingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInspectionFindingRepository(q Querier) *InspectionFindingRepo {
	return &InspectionFindingRepo{q: q}
}

func scanFinding(row rowScanner) (*entity.InspectionFinding, error) {
	var f entity.InspectionFinding
	err := row.Scan(
		&f.ID, &f.JobOrderID, &f.Description, &f.Recommendation,
		&f.Severity, &f.IsResolved, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create persiste un nuevo hallazgo de inspección.
func (r *InspectionFindingRepo) Create(finding *entity.InspectionFinding) error {
	query := `
		INSERT INTO inspection_findings (id, job_order_id, description, recommendation, severity, is_resolved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		finding.ID, finding.JobOrderID, finding.Description, finding.Recommendation,
		string(finding.Severity), finding.IsResolved, finding.CreatedAt, finding.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inspection finding: %w", err)
	}
	return nil
}

// GetByJobOrder obtiene un hallazgo por ID verificando que pertenezca a la orden.
func (r *InspectionFindingRepo) GetByJobOrder(id, jobOrderID string) (*entity.InspectionFinding, error) {
	query := `SELECT ` + findingColumns + ` FROM inspection_findings WHERE id = $1 AND job_order_id = $2`
	f, err := scanFinding(r.q.QueryRow(context.Background(), query, id, jobOrderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inspection finding: %w", err)
	}
	return f, nil
}

// ListByJobOrder lista los hallazgos de una orden con paginación.
func (r *InspectionFindingRepo) ListByJobOrder(jobOrderID string, limit, offset int) ([]*entity.InspectionFinding, error) {
	query := `SELECT ` + findingColumns + ` FROM inspection_findings WHERE job_order_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, jobOrderID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inspection findings: %w", err)
	}
	defer rows.Close()

	var findings []*entity.InspectionFinding
	for rows.Next() {
		f, err := scanFinding(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inspection finding: %w", err)
		}
		findings = append(findings, f)
	}
	return findings, rows.Err()
}

// CountByJobOrder cuenta los hallazgos de una orden.
func (r *InspectionFindingRepo) CountByJobOrder(jobOrderID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM inspection_findings WHERE job_order_id = $1`, jobOrderID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count inspection findings: %w", err)
	}
	return count, nil
}

// Update actualiza un hallazgo existente.
func (r *InspectionFindingRepo) Update(finding *entity.InspectionFinding) error {
	query := `
		UPDATE inspection_findings SET description = $2, recommendation = $3, severity = $4, is_resolved = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		finding.ID, finding.Description, finding.Recommendation,
		string(finding.Severity), finding.IsResolved, finding.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inspection finding: %w", err)
	}
	return nil
}

// Delete elimina un hallazgo.
func (r *InspectionFindingRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inspection_findings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inspection finding: %w", err)
	}
	return nil
}
