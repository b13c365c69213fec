package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/application/usecase"
	"github.com/driveops/driveops-api/internal/domain/entity"
)

// JobOrderHandler maneja las peticiones HTTP para JobOrder.
type JobOrderHandler struct {
	uc *usecase.JobOrderUseCase
}

// NewJobOrderHandler construye el handler.
func NewJobOrderHandler(uc *usecase.JobOrderUseCase) *JobOrderHandler {
	return &JobOrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar órdenes de trabajo
// @Tags         joborders
// @Produce      json
// @Param        status      query  string  false  "Filtrar por estado"
// @Param        customerId  query  string  false  "Filtrar por cliente"
// @Param        page        query  int     false  "Página"          default(1)
// @Param        pageSize    query  int     false  "Tamaño de página" default(10)
// @Success      200  {object}  dto.PaginatedResponse[dto.JobOrderResponse]
// @Router       /api/joborders [get]
func (h *JobOrderHandler) List(c *fiber.Ctx) error {
	page, pageSize := pageParams(c)
	var status *entity.JobOrderStatus
	if raw := c.Query("status"); raw != "" {
		s, ok := entity.ParseJobOrderStatus(raw)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Title:   "Invalid job order status.",
				Message: "Status must be Pending, InProgress, Completed or Cancelled.",
			})
		}
		status = &s
	}
	var customerID *string
	if raw := c.Query("customerId"); raw != "" {
		customerID = &raw
	}
	return writeResult(c, h.uc.List(status, customerID, page, pageSize), fiber.StatusOK)
}

// GetByID godoc
// @Summary      Obtener orden por ID (con cliente, vehículo y técnico)
// @Tags         joborders
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.JobOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/joborders/{id} [get]
func (h *JobOrderHandler) GetByID(c *fiber.Ctx) error {
	return writeResult(c, h.uc.GetByID(c.Params("id")), fiber.StatusOK)
}

// Create godoc
// @Summary      Abrir orden de trabajo
// @Tags         joborders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateJobOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.JobOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/joborders [post]
func (h *JobOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateJobOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.Create(in), fiber.StatusCreated)
}

// Patch godoc
// @Summary      Reasignar referencias de la orden (parcial)
// @Tags         joborders
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la orden"
// @Param        body  body  dto.PatchJobOrderRequest  true  "Referencias a reasignar"
// @Success      200   {object}  dto.JobOrderResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/joborders/{id} [patch]
func (h *JobOrderHandler) Patch(c *fiber.Ctx) error {
	var in dto.PatchJobOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.PatchDetails(c.Params("id"), in), fiber.StatusOK)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de la orden
// @Tags         joborders
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID de la orden"
// @Param        body  body  dto.UpdateJobOrderStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.JobOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/joborders/{id}/status [patch]
func (h *JobOrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateJobOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.UpdateStatus(c.Params("id"), in), fiber.StatusOK)
}
