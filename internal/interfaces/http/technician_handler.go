package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/application/usecase"
)

// TechnicianHandler maneja las peticiones HTTP para Technician.
type TechnicianHandler struct {
	uc *usecase.TechnicianUseCase
}

// NewTechnicianHandler construye el handler.
func NewTechnicianHandler(uc *usecase.TechnicianUseCase) *TechnicianHandler {
	return &TechnicianHandler{uc: uc}
}

// List godoc
// @Summary      Listar técnicos
// @Tags         technicians
// @Produce      json
// @Param        page      query  int  false  "Página"          default(1)
// @Param        pageSize  query  int  false  "Tamaño de página" default(10)
// @Success      200  {object}  dto.PaginatedResponse[dto.TechnicianResponse]
// @Router       /api/technicians [get]
func (h *TechnicianHandler) List(c *fiber.Ctx) error {
	page, pageSize := pageParams(c)
	return writeResult(c, h.uc.List(page, pageSize), fiber.StatusOK)
}

// GetByID godoc
// @Summary      Obtener técnico por ID
// @Tags         technicians
// @Produce      json
// @Param        id   path  string  true  "ID del técnico"
// @Success      200  {object}  dto.TechnicianResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/technicians/{id} [get]
func (h *TechnicianHandler) GetByID(c *fiber.Ctx) error {
	return writeResult(c, h.uc.GetByID(c.Params("id")), fiber.StatusOK)
}

// Create godoc
// @Summary      Registrar técnico
// @Tags         technicians
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTechnicianRequest  true  "Datos del técnico"
// @Success      201   {object}  dto.TechnicianResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/technicians [post]
func (h *TechnicianHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTechnicianRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.Create(in), fiber.StatusCreated)
}

// Update godoc
// @Summary      Actualizar datos del técnico
// @Tags         technicians
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID del técnico"
// @Param        body  body  dto.UpdateTechnicianRequest  true  "Datos nuevos"
// @Success      200   {object}  dto.TechnicianResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/technicians/{id} [put]
func (h *TechnicianHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTechnicianRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.UpdateDetails(c.Params("id"), in), fiber.StatusOK)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del técnico
// @Tags         technicians
// @Accept       json
// @Produce      json
// @Param        id    path  string                             true  "ID del técnico"
// @Param        body  body  dto.UpdateTechnicianStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.TechnicianResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/technicians/{id} [patch]
func (h *TechnicianHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateTechnicianStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.UpdateStatus(c.Params("id"), in), fiber.StatusOK)
}
