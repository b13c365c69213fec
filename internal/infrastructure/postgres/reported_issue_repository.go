package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/repository"
)

var _ repository.ReportedIssueRepository = (*ReportedIssueRepo)(nil)

const issueColumns = `id, job_order_id, description, created_at, updated_at`

// ReportedIssueRepo implementación del puerto ReportedIssueRepository sobre PostgreSQL (usable con pool o tx).
type ReportedIssueRepo struct {
	q Querier
}

// NewReportedIssueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportedIssueRepository(q Querier) *ReportedIssueRepo {
	return &ReportedIssueRepo{q: q}
}

func scanIssue(row rowScanner) (*entity.ReportedIssue, error) {
	var i entity.ReportedIssue
	err := row.Scan(&i.ID, &i.JobOrderID, &i.Description, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste un nuevo issue reportado.
func (r *ReportedIssueRepo) Create(issue *entity.ReportedIssue) error {
	query := `
		INSERT INTO reported_issues (id, job_order_id, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		issue.ID, issue.JobOrderID, issue.Description, issue.CreatedAt, issue.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reported issue: %w", err)
	}
	return nil
}

// GetByJobOrder obtiene un issue por ID verificando que pertenezca a la orden.
func (r *ReportedIssueRepo) GetByJobOrder(id, jobOrderID string) (*entity.ReportedIssue, error) {
	query := `SELECT ` + issueColumns + ` FROM reported_issues WHERE id = $1 AND job_order_id = $2`
	i, err := scanIssue(r.q.QueryRow(context.Background(), query, id, jobOrderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reported issue: %w", err)
	}
	return i, nil
}

// ListByJobOrder lista los issues de una orden con paginación.
func (r *ReportedIssueRepo) ListByJobOrder(jobOrderID string, limit, offset int) ([]*entity.ReportedIssue, error) {
	query := `SELECT ` + issueColumns + ` FROM reported_issues WHERE job_order_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, jobOrderID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reported issues: %w", err)
	}
	defer rows.Close()

	var issues []*entity.ReportedIssue
	for rows.Next() {
		i, err := scanIssue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reported issue: %w", err)
		}
		issues = append(issues, i)
	}
	return issues, rows.Err()
}

// CountByJobOrder cuenta los issues de una orden.
func (r *ReportedIssueRepo) CountByJobOrder(jobOrderID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM reported_issues WHERE job_order_id = $1`, jobOrderID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count reported issues: %w", err)
	}
	return count, nil
}

// Update actualiza un issue existente.
func (r *ReportedIssueRepo) Update(issue *entity.ReportedIssue) error {
	query := `UPDATE reported_issues SET description = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, issue.ID, issue.Description, issue.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update reported issue: %w", err)
	}
	return nil
}

// Delete elimina un issue.
func (r *ReportedIssueRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM reported_issues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reported issue: %w", err)
	}
	return nil
}
