package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/repository"
	"github.com/driveops/driveops-api/internal/domain/result"
)

// ReportedIssueUseCase problemas reportados anidados en una orden de trabajo.
// Su ciclo de vida está delegado por completo al estado de la orden padre.
type ReportedIssueUseCase struct {
	issues    repository.ReportedIssueRepository
	jobOrders repository.JobOrderRepository
}

// NewReportedIssueUseCase construye el caso de uso.
func NewReportedIssueUseCase(issues repository.ReportedIssueRepository, jobOrders repository.JobOrderRepository) *ReportedIssueUseCase {
	return &ReportedIssueUseCase{issues: issues, jobOrders: jobOrders}
}

func (uc *ReportedIssueUseCase) jobOrderByNumber(number string) (*entity.JobOrder, error) {
	return uc.jobOrders.GetByNumber(number)
}

// List lista los problemas de una orden identificada por su número.
func (uc *ReportedIssueUseCase) List(jobOrderNumber string, page, pageSize int) result.Result[dto.PaginatedResponse[dto.ReportedIssueResponse]] {
	jobOrder, err := uc.jobOrderByNumber(jobOrderNumber)
	if err != nil {
		return serverError[dto.PaginatedResponse[dto.ReportedIssueResponse]]("issue.list", err)
	}
	if res := validateJobOrderExists[dto.PaginatedResponse[dto.ReportedIssueResponse]](jobOrder, jobOrderNumber); res != nil {
		return *res
	}

	total, err := uc.issues.CountByJobOrder(jobOrder.ID)
	if err != nil {
		return serverError[dto.PaginatedResponse[dto.ReportedIssueResponse]]("issue.list", err)
	}
	list, err := uc.issues.ListByJobOrder(jobOrder.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return serverError[dto.PaginatedResponse[dto.ReportedIssueResponse]]("issue.list", err)
	}
	items := make([]dto.ReportedIssueResponse, 0, len(list))
	for _, i := range list {
		items = append(items, toIssueResponse(i))
	}
	return result.Ok(dto.NewPaginatedResponse(page, pageSize, total, items))
}

// GetByID recupera un problema que pertenezca a la orden nombrada.
func (uc *ReportedIssueUseCase) GetByID(jobOrderNumber, id string) result.Result[dto.ReportedIssueResponse] {
	jobOrder, err := uc.jobOrderByNumber(jobOrderNumber)
	if err != nil {
		return serverError[dto.ReportedIssueResponse]("issue.get", err)
	}
	if res := validateJobOrderExists[dto.ReportedIssueResponse](jobOrder, jobOrderNumber); res != nil {
		return *res
	}

	issue, err := uc.issues.GetByJobOrder(id, jobOrder.ID)
	if err != nil {
		return serverError[dto.ReportedIssueResponse]("issue.get", err)
	}
	if res := validateIssueExists[dto.ReportedIssueResponse](issue, id); res != nil {
		return *res
	}
	return result.Ok(toIssueResponse(issue))
}

// Create agrega un problema a la orden. Solo permitido mientras la orden es
// mutable (Pending o InProgress).
func (uc *ReportedIssueUseCase) Create(jobOrderNumber string, in dto.CreateReportedIssueRequest) result.Result[dto.ReportedIssueResponse] {
	jobOrder, err := uc.jobOrderByNumber(jobOrderNumber)
	if err != nil {
		return serverError[dto.ReportedIssueResponse]("issue.create", err)
	}
	if res := validateJobOrderExists[dto.ReportedIssueResponse](jobOrder, jobOrderNumber); res != nil {
		return *res
	}
	if res := validateJobOrderMutable[dto.ReportedIssueResponse](jobOrder, "create", "reported issue"); res != nil {
		return *res
	}

	if in.Description == "" {
		return result.Fail[dto.ReportedIssueResponse](result.StatusBadRequest,
			"Missing required fields.",
			"Description is required.")
	}

	issue := &entity.ReportedIssue{
		ID:          uuid.New().String(),
		JobOrderID:  jobOrder.ID,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.issues.Create(issue); err != nil {
		return serverError[dto.ReportedIssueResponse]("issue.create", err)
	}
	return result.Ok(toIssueResponse(issue))
}

// Update edita la descripción de un problema, con el mismo gate de mutabilidad.
func (uc *ReportedIssueUseCase) Update(jobOrderNumber, id string, in dto.UpdateReportedIssueRequest) result.Result[dto.ReportedIssueResponse] {
	jobOrder, err := uc.jobOrderByNumber(jobOrderNumber)
	if err != nil {
		return serverError[dto.ReportedIssueResponse]("issue.update", err)
	}
	if res := validateJobOrderExists[dto.ReportedIssueResponse](jobOrder, jobOrderNumber); res != nil {
		return *res
	}
	if res := validateJobOrderMutable[dto.ReportedIssueResponse](jobOrder, "update", "reported issue"); res != nil {
		return *res
	}

	issue, err := uc.issues.GetByJobOrder(id, jobOrder.ID)
	if err != nil {
		return serverError[dto.ReportedIssueResponse]("issue.update", err)
	}
	if res := validateIssueExists[dto.ReportedIssueResponse](issue, id); res != nil {
		return *res
	}

	now := time.Now().UTC()
	issue.Description = in.Description
	issue.UpdatedAt = &now
	if err := uc.issues.Update(issue); err != nil {
		return serverError[dto.ReportedIssueResponse]("issue.update", err)
	}
	return result.Ok(toIssueResponse(issue))
}

// Delete elimina un problema, con el mismo gate de mutabilidad.
func (uc *ReportedIssueUseCase) Delete(jobOrderNumber, id string) result.Result[bool] {
	jobOrder, err := uc.jobOrderByNumber(jobOrderNumber)
	if err != nil {
		return serverError[bool]("issue.delete", err)
	}
	if res := validateJobOrderExists[bool](jobOrder, jobOrderNumber); res != nil {
		return *res
	}
	if res := validateJobOrderMutable[bool](jobOrder, "delete", "reported issue"); res != nil {
		return *res
	}

	issue, err := uc.issues.GetByJobOrder(id, jobOrder.ID)
	if err != nil {
		return serverError[bool]("issue.delete", err)
	}
	if res := validateIssueExists[bool](issue, id); res != nil {
		return *res
	}

	if err := uc.issues.Delete(id); err != nil {
		return serverError[bool]("issue.delete", err)
	}
	return result.Ok(true)
}
