package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/driveops/driveops-api/internal/application/dto"
	"github.com/driveops/driveops-api/internal/domain/result"
)

// statusCode mapea la clase de resultado al código HTTP.
func statusCode(s result.StatusClass) int {
	switch s {
	case result.StatusNotFound:
		return fiber.StatusNotFound
	case result.StatusBadRequest:
		return fiber.StatusBadRequest
	case result.StatusConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// writeResult serializa el resultado de un caso de uso: Data con okStatus en
// éxito, ErrorResponse con el código mapeado en fallo.
func writeResult[T any](c *fiber.Ctx, res result.Result[T], okStatus int) error {
	if !res.OK {
		return c.Status(statusCode(res.Status)).JSON(dto.ErrorResponse{Title: res.Title, Message: res.Message})
	}
	return c.Status(okStatus).JSON(res.Data)
}

// invalidBody respuesta estándar para JSON que no parsea.
func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Title:   "Invalid request body.",
		Message: "The request body could not be parsed.",
	})
}

// pageParams lee y normaliza la paginación: page mínimo 1; pageSize fuera de
// [1,100] cae al default 10.
func pageParams(c *fiber.Ctx) (page, pageSize int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize = c.QueryInt("pageSize", 10)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}
