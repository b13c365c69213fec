package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/repository"
	"github.com/driveops/driveops-api/internal/domain/result"
)

// InspectionFindingUseCase hallazgos de inspección anidados en una orden.
// Máquina de estados anidada: el padre gobierna si se puede mutar, el hallazgo
// aporta sus propias reglas (severidad monótona una vez Critical; resuelto es
// terminal para ediciones de contenido y borrado).
type InspectionFindingUseCase struct {
	findings  repository.InspectionFindingRepository
	jobOrders repository.JobOrderRepository
}

// NewInspectionFindingUseCase construye el caso de uso.
func NewInspectionFindingUseCase(findings repository.InspectionFindingRepository, jobOrders repository.JobOrderRepository) *InspectionFindingUseCase {
	return &InspectionFindingUseCase{findings: findings, jobOrders: jobOrders}
}

// List lista los hallazgos de una orden identificada por su número.
func (uc *InspectionFindingUseCase) List(jobOrderNumber string, page, pageSize int) result.Result[dto.PaginatedResponse[dto.FindingResponse]] {
	jobOrder, err := uc.jobOrders.GetByNumber(jobOrderNumber)
	if err != nil {
		return serverError[dto.PaginatedResponse[dto.FindingResponse]]("finding.list", err)
	}
	if res := validateJobOrderExists[dto.PaginatedResponse[dto.FindingResponse]](jobOrder, jobOrderNumber); res != nil {
		return *res
	}

	total, err := uc.findings.CountByJobOrder(jobOrder.ID)
	if err != nil {
		return serverError[dto.PaginatedResponse[dto.FindingResponse]]("finding.list", err)
	}
	list, err := uc.findings.ListByJobOrder(jobOrder.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return serverError[dto.PaginatedResponse[dto.FindingResponse]]("finding.list", err)
	}
	items := make([]dto.FindingResponse, 0, len(list))
	for _, f := range list {
		items = append(items, toFindingResponse(f))
	}
	return result.Ok(dto.NewPaginatedResponse(page, pageSize, total, items))
}

// GetByID recupera un hallazgo que pertenezca a la orden nombrada.
func (uc *InspectionFindingUseCase) GetByID(jobOrderNumber, id string) result.Result[dto.FindingResponse] {
	jobOrder, err := uc.jobOrders.GetByNumber(jobOrderNumber)
	if err != nil {
		return serverError[dto.FindingResponse]("finding.get", err)
	}
	if res := validateJobOrderExists[dto.FindingResponse](jobOrder, jobOrderNumber); res != nil {
		return *res
	}

	finding, err := uc.findings.GetByJobOrder(id, jobOrder.ID)
	if err != nil {
		return serverError[dto.FindingResponse]("finding.get", err)
	}
	if res := validateFindingExists[dto.FindingResponse](finding, id); res != nil {
		return *res
	}
	return result.Ok(toFindingResponse(finding))
}

// Create agrega un hallazgo. Description y Recommendation son obligatorios
// (requisito de esquema, no consejo); la orden debe ser mutable.
func (uc *InspectionFindingUseCase) Create(jobOrderNumber string, in dto.CreateFindingRequest) result.Result[dto.FindingResponse] {
	jobOrder, err := uc.jobOrders.GetByNumber(jobOrderNumber)
	if err != nil {
		return serverError[dto.FindingResponse]("finding.create", err)
	}
	if res := validateJobOrderExists[dto.FindingResponse](jobOrder, jobOrderNumber); res != nil {
		return *res
	}
	if res := validateJobOrderMutable[dto.FindingResponse](jobOrder, "create", "inspection finding"); res != nil {
		return *res
	}

	if in.Description == "" || in.Recommendation == "" {
		return result.Fail[dto.FindingResponse](result.StatusBadRequest,
			"Missing required fields.",
			"Description and recommendation are required.")
	}
	severity, ok := entity.ParseFindingSeverity(in.Severity)
	if !ok {
		return result.Fail[dto.FindingResponse](result.StatusBadRequest,
			"Invalid severity.",
			"Severity must be Minor, Moderate or Critical.")
	}

	finding := &entity.InspectionFinding{
		ID:             uuid.New().String(),
		JobOrderID:     jobOrder.ID,
		Description:    in.Description,
		Recommendation: in.Recommendation,
		Severity:       severity,
		CreatedAt:      time.Now().UTC(),
	}
	if err := uc.findings.Create(finding); err != nil {
		return serverError[dto.FindingResponse]("finding.create", err)
	}
	return result.Ok(toFindingResponse(finding))
}

// Update edita el contenido de un hallazgo. Chequeos en orden: orden existe y
// mutable → hallazgo existe y pertenece → no resuelto → severidad monótona.
func (uc *InspectionFindingUseCase) Update(jobOrderNumber, id string, in dto.UpdateFindingRequest) result.Result[dto.FindingResponse] {
	jobOrder, err := uc.jobOrders.GetByNumber(jobOrderNumber)
	if err != nil {
		return serverError[dto.FindingResponse]("finding.update", err)
	}
	if res := validateJobOrderExists[dto.FindingResponse](jobOrder, jobOrderNumber); res != nil {
		return *res
	}
	if res := validateJobOrderMutable[dto.FindingResponse](jobOrder, "update", "inspection finding"); res != nil {
		return *res
	}

	finding, err := uc.findings.GetByJobOrder(id, jobOrder.ID)
	if err != nil {
		return serverError[dto.FindingResponse]("finding.update", err)
	}
	if res := validateFindingExists[dto.FindingResponse](finding, id); res != nil {
		return *res
	}
	if res := validateFindingNotResolved[dto.FindingResponse](finding, "modify"); res != nil {
		return *res
	}

	severity, ok := entity.ParseFindingSeverity(in.Severity)
	if !ok {
		return result.Fail[dto.FindingResponse](result.StatusBadRequest,
			"Invalid severity.",
			"Severity must be Minor, Moderate or Critical.")
	}
	if res := validateSeverityChange[dto.FindingResponse](finding.Severity, severity); res != nil {
		return *res
	}

	now := time.Now().UTC()
	finding.Description = in.Description
	finding.Recommendation = in.Recommendation
	finding.Severity = severity
	finding.UpdatedAt = &now

	if err := uc.findings.Update(finding); err != nil {
		return serverError[dto.FindingResponse]("finding.update", err)
	}
	return result.Ok(toFindingResponse(finding))
}

// UpdateStatus es la operación dedicada de resolución: alterna IsResolved en
// ambos sentidos y está exenta del candado de "ya resuelto" (única vía para
// actuar sobre un hallazgo resuelto; asimetría conservada del comportamiento
// original).
func (uc *InspectionFindingUseCase) UpdateStatus(jobOrderNumber, id string, in dto.UpdateFindingStatusRequest) result.Result[dto.FindingResponse] {
	jobOrder, err := uc.jobOrders.GetByNumber(jobOrderNumber)
	if err != nil {
		return serverError[dto.FindingResponse]("finding.status", err)
	}
	if res := validateJobOrderExists[dto.FindingResponse](jobOrder, jobOrderNumber); res != nil {
		return *res
	}
	if res := validateJobOrderMutable[dto.FindingResponse](jobOrder, "update status of", "inspection finding"); res != nil {
		return *res
	}

	finding, err := uc.findings.GetByJobOrder(id, jobOrder.ID)
	if err != nil {
		return serverError[dto.FindingResponse]("finding.status", err)
	}
	if res := validateFindingExists[dto.FindingResponse](finding, id); res != nil {
		return *res
	}

	now := time.Now().UTC()
	finding.IsResolved = in.IsResolved
	finding.UpdatedAt = &now

	if err := uc.findings.Update(finding); err != nil {
		return serverError[dto.FindingResponse]("finding.status", err)
	}
	return result.Ok(toFindingResponse(finding))
}

// Delete elimina un hallazgo. Mismos chequeos de mutabilidad y de no-resuelto
// que una edición.
func (uc *InspectionFindingUseCase) Delete(jobOrderNumber, id string) result.Result[bool] {
	jobOrder, err := uc.jobOrders.GetByNumber(jobOrderNumber)
	if err != nil {
		return serverError[bool]("finding.delete", err)
	}
	if res := validateJobOrderExists[bool](jobOrder, jobOrderNumber); res != nil {
		return *res
	}
	if res := validateJobOrderMutable[bool](jobOrder, "delete", "inspection finding"); res != nil {
		return *res
	}

	finding, err := uc.findings.GetByJobOrder(id, jobOrder.ID)
	if err != nil {
		return serverError[bool]("finding.delete", err)
	}
	if res := validateFindingExists[bool](finding, id); res != nil {
		return *res
	}
	if res := validateFindingNotResolved[bool](finding, "delete"); res != nil {
		return *res
	}

	if err := uc.findings.Delete(id); err != nil {
		return serverError[bool]("finding.delete", err)
	}
	return result.Ok(true)
}
