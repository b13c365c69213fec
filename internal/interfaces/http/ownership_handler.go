package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/application/usecase"
)

// OwnershipHandler maneja las peticiones HTTP para el ledger de propiedad.
type OwnershipHandler struct {
	uc *usecase.VehicleOwnershipUseCase
}

// NewOwnershipHandler construye el handler.
func NewOwnershipHandler(uc *usecase.VehicleOwnershipUseCase) *OwnershipHandler {
	return &OwnershipHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener registro de propiedad por ID
// @Tags         vehicle-ownerships
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.OwnershipResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vehicle-ownerships/{id} [get]
func (h *OwnershipHandler) GetByID(c *fiber.Ctx) error {
	return writeResult(c, h.uc.GetByID(c.Params("id")), fiber.StatusOK)
}

// Create godoc
// @Summary      Registrar propiedad de un vehículo
// @Tags         vehicle-ownerships
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOwnershipRequest  true  "Datos del registro"
// @Success      201   {object}  dto.OwnershipResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vehicle-ownerships [post]
func (h *OwnershipHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOwnershipRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.Create(in), fiber.StatusCreated)
}

// Transfer godoc
// @Summary      Transferir la propiedad vigente a otro cliente
// @Tags         vehicle-ownerships
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferOwnershipRequest  true  "Datos de la transferencia"
// @Success      201   {object}  dto.OwnershipResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vehicle-ownerships/transfer [post]
func (h *OwnershipHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferOwnershipRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.Transfer(c.Context(), in), fiber.StatusCreated)
}
