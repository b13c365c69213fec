package repository

import "github.com/driveops/driveops-api/internal/domain/entity"

// JobOrderRepository define el puerto de persistencia para JobOrder.
// GetByID y GetByNumber devuelven (nil, nil) cuando la orden no existe.
type JobOrderRepository interface {
	Create(jobOrder *entity.JobOrder) error
	GetByID(id string) (*entity.JobOrder, error)
	GetByNumber(jobOrderNumber string) (*entity.JobOrder, error)
	List(status *entity.JobOrderStatus, customerID *string, limit, offset int) ([]*entity.JobOrder, error)
	Count(status *entity.JobOrderStatus, customerID *string) (int, error)
	ExistsByNumber(jobOrderNumber string) (bool, error)
	Update(jobOrder *entity.JobOrder) error
}

// ReportedIssueRepository define el puerto de persistencia para ReportedIssue.
// GetByJobOrder devuelve (nil, nil) si el issue no existe o no pertenece a la orden.
type ReportedIssueRepository interface {
	Create(issue *entity.ReportedIssue) error
	GetByJobOrder(id, jobOrderID string) (*entity.ReportedIssue, error)
	ListByJobOrder(jobOrderID string, limit, offset int) ([]*entity.ReportedIssue, error)
	CountByJobOrder(jobOrderID string) (int, error)
	Update(issue *entity.ReportedIssue) error
	Delete(id string) error
}

// InspectionFindingRepository define el puerto de persistencia para
// InspectionFinding. GetByJobOrder devuelve (nil, nil) si el hallazgo no existe
// o no pertenece a la orden.
type InspectionFindingRepository interface {
	Create(finding *entity.InspectionFinding) error
	GetByJobOrder(id, jobOrderID string) (*entity.InspectionFinding, error)
	ListByJobOrder(jobOrderID string, limit, offset int) ([]*entity.InspectionFinding, error)
	CountByJobOrder(jobOrderID string) (int, error)
	Update(finding *entity.InspectionFinding) error
	Delete(id string) error
}
