package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
)

// respondDomainError traduce errores de dominio al contrato HTTP:
// NotFound → 404, conflictos de unicidad o de invariantes → 409,
// entrada inválida → 400, no autorizado → 401 y cualquier otro → 500
// con mensaje genérico (el detalle se loguea, no se expone).
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrWarehouseNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrStockNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrUserNameAlreadyExists),
		errors.Is(err, domain.ErrWarehouseNameTaken),
		errors.Is(err, domain.ErrWarehouseHasProducts),
		errors.Is(err, domain.ErrProductHasStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error inesperado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

// respondValidation responde 400 con los detalles por campo. No se abre
// transacción cuando la forma de la entrada es inválida.
func respondValidation(c *fiber.Ctx, details []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "VALIDATION",
		Message: "error de validación",
		Details: details,
	})
}

// respondList responde 200 con la lista, o 204 sin cuerpo si está vacía.
func respondList[T any](c *fiber.Ctx, items []T) error {
	if len(items) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(items)
}
