package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/application/usecase"
)

// ReportedIssueHandler maneja las peticiones HTTP para los issues reportados
// de una orden (anidado bajo /api/joborders/:jobOrderNumber/issues).
type ReportedIssueHandler struct {
	uc *usecase.ReportedIssueUseCase
}

// NewReportedIssueHandler construye el handler.
func NewReportedIssueHandler(uc *usecase.ReportedIssueUseCase) *ReportedIssueHandler {
	return &ReportedIssueHandler{uc: uc}
}

// List godoc
// @Summary      Listar issues de una orden
// @Tags         reported-issues
// @Produce      json
// @Param        jobOrderNumber  path   string  true   "Número de la orden"
// @Param        page            query  int     false  "Página"          default(1)
// @Param        pageSize        query  int     false  "Tamaño de página" default(10)
// @Success      200  {object}  dto.PaginatedResponse[dto.ReportedIssueResponse]
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/joborders/{jobOrderNumber}/issues [get]
func (h *ReportedIssueHandler) List(c *fiber.Ctx) error {
	page, pageSize := pageParams(c)
	return writeResult(c, h.uc.List(c.Params("jobOrderNumber"), page, pageSize), fiber.StatusOK)
}

// GetByID godoc
// @Summary      Obtener issue por ID dentro de la orden
// @Tags         reported-issues
// @Produce      json
// @Param        jobOrderNumber  path  string  true  "Número de la orden"
// @Param        id              path  string  true  "ID del issue"
// @Success      200  {object}  dto.ReportedIssueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/joborders/{jobOrderNumber}/issues/{id} [get]
func (h *ReportedIssueHandler) GetByID(c *fiber.Ctx) error {
	return writeResult(c, h.uc.GetByID(c.Params("jobOrderNumber"), c.Params("id")), fiber.StatusOK)
}

// Create godoc
// @Summary      Reportar un issue en la orden
// @Tags         reported-issues
// @Accept       json
// @Produce      json
// @Param        jobOrderNumber  path  string                         true  "Número de la orden"
// @Param        body            body  dto.CreateReportedIssueRequest  true  "Descripción del issue"
// @Success      201  {object}  dto.ReportedIssueResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/joborders/{jobOrderNumber}/issues [post]
func (h *ReportedIssueHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReportedIssueRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.Create(c.Params("jobOrderNumber"), in), fiber.StatusCreated)
}

// Update godoc
// @Summary      Actualizar la descripción de un issue
// @Tags         reported-issues
// @Accept       json
// @Produce      json
// @Param        jobOrderNumber  path  string                         true  "Número de la orden"
// @Param        id              path  string                         true  "ID del issue"
// @Param        body            body  dto.UpdateReportedIssueRequest  true  "Descripción nueva"
// @Success      200  {object}  dto.ReportedIssueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/joborders/{jobOrderNumber}/issues/{id} [patch]
func (h *ReportedIssueHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateReportedIssueRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.Update(c.Params("jobOrderNumber"), c.Params("id"), in), fiber.StatusOK)
}

// Delete godoc
// @Summary      Eliminar un issue de la orden
// @Tags         reported-issues
// @Produce      json
// @Param        jobOrderNumber  path  string  true  "Número de la orden"
// @Param        id              path  string  true  "ID del issue"
// @Success      200  {object}  bool
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/joborders/{jobOrderNumber}/issues/{id} [delete]
func (h *ReportedIssueHandler) Delete(c *fiber.Ctx) error {
	return writeResult(c, h.uc.Delete(c.Params("jobOrderNumber"), c.Params("id")), fiber.StatusOK)
}
