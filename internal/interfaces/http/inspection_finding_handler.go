package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/application/usecase"
)

// InspectionFindingHandler maneja las peticiones HTTP para los hallazgos de
// inspección de una orden (anidado bajo /api/joborders/:jobOrderNumber/findings).
type InspectionFindingHandler struct {
	uc *usecase.InspectionFindingUseCase
}

// NewInspectionFindingHandler construye el handler.
func NewInspectionFindingHandler(uc *usecase.InspectionFindingUseCase) *InspectionFindingHandler {
	return &InspectionFindingHandler{uc: uc}
}

// List godoc
// @Summary      Listar hallazgos de una orden
// @Tags         inspection-findings
// @Produce      json
// @Param        jobOrderNumber  path   string  true   "Número de la orden"
// @Param        page            query  int     false  "Página"          default(1)
// @Param        pageSize        query  int     false  "Tamaño de página" default(10)
// @Success      200  {object}  dto.PaginatedResponse[dto.FindingResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/joborders/{jobOrderNumber}/findings [get]
func (h *InspectionFindingHandler) List(c *fiber.Ctx) error {
	page, pageSize := pageParams(c)
	return writeResult(c, h.uc.List(c.Params("jobOrderNumber"), page, pageSize), fiber.StatusOK)
}

// GetByID godoc
// @Summary      Obtener hallazgo por ID dentro de la orden
// @Tags         inspection-findings
// @Produce      json
// @Param        jobOrderNumber  path  string  true  "Número de la orden"
// @Param        id              path  string  true  "ID del hallazgo"
// @Success      200  {object}  dto.FindingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/joborders/{jobOrderNumber}/findings/{id} [get]
func (h *InspectionFindingHandler) GetByID(c *fiber.Ctx) error {
	return writeResult(c, h.uc.GetByID(c.Params("jobOrderNumber"), c.Params("id")), fiber.StatusOK)
}

// Create godoc
// @Summary      Registrar un hallazgo de inspección
// @Tags         inspection-findings
// @Accept       json
// @Produce      json
// @Param        jobOrderNumber  path  string                   true  "Número de la orden"
// @Param        body            body  dto.CreateFindingRequest  true  "Datos del hallazgo"
// @Success      201  {object}  dto.FindingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/joborders/{jobOrderNumber}/findings [post]
func (h *InspectionFindingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFindingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.Create(c.Params("jobOrderNumber"), in), fiber.StatusCreated)
}

// Update godoc
// @Summary      Actualizar contenido y severidad de un hallazgo
// @Tags         inspection-findings
// @Accept       json
// @Produce      json
// @Param        jobOrderNumber  path  string                   true  "Número de la orden"
// @Param        id              path  string                   true  "ID del hallazgo"
// @Param        body            body  dto.UpdateFindingRequest  true  "Datos nuevos"
// @Success      200  {object}  dto.FindingResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/joborders/{jobOrderNumber}/findings/{id} [patch]
func (h *InspectionFindingHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFindingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.Update(c.Params("jobOrderNumber"), c.Params("id"), in), fiber.StatusOK)
}

// UpdateStatus godoc
// @Summary      Marcar o desmarcar un hallazgo como resuelto
// @Tags         inspection-findings
// @Accept       json
// @Produce      json
// @Param        jobOrderNumber  path  string                         true  "Número de la orden"
// @Param        id              path  string                         true  "ID del hallazgo"
// @Param        body            body  dto.UpdateFindingStatusRequest  true  "Estado de resolución"
// @Success      200  {object}  dto.FindingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/joborders/{jobOrderNumber}/findings/{id}/status [patch]
func (h *InspectionFindingHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateFindingStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.UpdateStatus(c.Params("jobOrderNumber"), c.Params("id"), in), fiber.StatusOK)
}

// Delete godoc
// @Summary      Eliminar un hallazgo no resuelto
// @Tags         inspection-findings
// @Produce      json
// @Param        jobOrderNumber  path  string  true  "Número de la orden"
// @Param        id              path  string  true  "ID del hallazgo"
// @Success      200  {object}  bool
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/joborders/{jobOrderNumber}/findings/{id} [delete]
func (h *InspectionFindingHandler) Delete(c *fiber.Ctx) error {
	return writeResult(c, h.uc.Delete(c.Params("jobOrderNumber"), c.Params("id")), fiber.StatusOK)
}
