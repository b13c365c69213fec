package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/application/usecase"
	"github.com/driveops/driveops-api/internal/domain/entity"
)

// CustomerHandler maneja las peticiones HTTP para Customer.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Produce      json
// @Param        kind      query  string  false  "Filtrar por tipo (Individual|Company)"
// @Param        page      query  int     false  "Página"          default(1)
// @Param        pageSize  query  int     false  "Tamaño de página" default(10)
// @Success      200  {object}  dto.PaginatedResponse[dto.CustomerResponse]
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	page, pageSize := pageParams(c)
	var kind *entity.CustomerKind
	if raw := c.Query("kind"); raw != "" {
		k, ok := entity.ParseCustomerKind(raw)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Title:   "Invalid customer kind.",
				Message: "Customer kind must be Individual or Company.",
			})
		}
		kind = &k
	}
	return writeResult(c, h.uc.List(kind, page, pageSize), fiber.StatusOK)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         customers
// @Produce      json
// @Param        id           path   string  true   "ID del cliente"
// @Param        onlyCurrent  query  bool    false  "Solo vehículos con propiedad vigente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	onlyCurrent := c.QueryBool("onlyCurrent", false)
	return writeResult(c, h.uc.GetByID(c.Params("id"), onlyCurrent), fiber.StatusOK)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.Create(in), fiber.StatusCreated)
}

// Update godoc
// @Summary      Actualizar datos del cliente (incluido el subtipo)
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Datos nuevos"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.UpdateDetails(c.Params("id"), in), fiber.StatusOK)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [patch]
func (h *CustomerHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateCustomerStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return writeResult(c, h.uc.UpdateStatus(c.Params("id"), in), fiber.StatusOK)
}
