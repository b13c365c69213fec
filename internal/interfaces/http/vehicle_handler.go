package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/application/usecase"
)

// VehicleHandler maneja las peticiones HTTP para Vehicle.
type VehicleHandler struct {
	uc *usecase.VehicleUseCase
}

// NewVehicleHandler construye el handler.
func NewVehicleHandler(uc *usecase.VehicleUseCase) *VehicleHandler {
	return &VehicleHandler{uc: uc}
}

// List godoc
// @Summary      Listar vehículos
// @Tags         vehicles
// @Produce      json
// @Param        page      query  int  false  "Página"          default(1)
// @Param        pageSize  query  int  false  "Tamaño de página" default(10)
// @Success      200  {object}  dto.PaginatedResponse[dto.VehicleResponse]
// @Router       /api/vehicles [get]
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	page, pageSize := pageParams(c)
	return writeResult(c, h.uc.List(page, pageSize), fiber.StatusOK)
}

// GetByID godoc
// @Summary      Obtener vehículo por ID (con historial de propiedad)
// @Tags         vehicles
// @Produce      json
// @Param        id   path  string  true  "ID del vehículo"
// @Success      200  {object}  dto.VehicleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vehicles/{id} [get]
func (h *VehicleHandler) GetByID(c *fiber.Ctx) error {
	return writeResult(c, h.uc.GetByID(c.Params("id")), fiber.StatusOK)
}

// Create godoc
// @Summary      Registrar vehículo
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVehicleRequest  true  "Datos del vehículo"
// @Success      201   {object}  dto.VehicleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vehicles [post]
func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.Create(in), fiber.StatusCreated)
}

// Update godoc
// @Summary      Actualizar datos del vehículo
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del vehículo"
// @Param        body  body  dto.UpdateVehicleRequest  true  "Datos nuevos"
// @Success      200   {object}  dto.VehicleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vehicles/{id} [put]
func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVehicleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.UpdateDetails(c.Params("id"), in), fiber.StatusOK)
}
