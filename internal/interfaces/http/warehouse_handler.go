package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
)

// WarehouseHandler maneja las peticiones HTTP para Warehouse (protegido).
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear bodega
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseRequest  true  "Datos de la bodega"
// @Success      200   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/warehouse/create [post]
func (h *WarehouseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := in.Validate(); len(details) > 0 {
		return respondValidation(c, details)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar bodegas
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WarehouseResponse
// @Success      204  "sin bodegas"
// @Router       /api/warehouse [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, items)
}

// ListProducts godoc
// @Summary      Listar productos de una bodega
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  path  string  true  "ID de la bodega"
// @Success      200  {array}  dto.ProductResponse
// @Success      204  "sin productos"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse/{warehouseId}/products [get]
func (h *WarehouseHandler) ListProducts(c *fiber.Ctx) error {
	warehouseID := c.Params("warehouseId")
	if warehouseID == "" {
		return respondValidation(c, []string{"warehouseId es requerido"})
	}
	items, err := h.uc.ListProducts(c.Context(), warehouseID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, items)
}

// Update godoc
// @Summary      Actualizar bodega
// @Tags         warehouses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        warehouseId  path  string  true  "ID de la bodega"
// @Param        body  body  dto.UpdateWarehouseRequest  true  "Datos de la bodega"
// @Success      200  {object}  dto.IDResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/warehouse/update/{warehouseId} [put]
func (h *WarehouseHandler) Update(c *fiber.Ctx) error {
	warehouseID := c.Params("warehouseId")
	if warehouseID == "" {
		return respondValidation(c, []string{"warehouseId es requerido"})
	}
	var in dto.UpdateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := in.Validate(); len(details) > 0 {
		return respondValidation(c, details)
	}
	out, err := h.uc.Update(c.Context(), warehouseID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar bodega
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        warehouseId  path  string  true  "ID de la bodega"
// @Success      200  {object}  dto.IDResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/warehouse/delete/{warehouseId} [delete]
func (h *WarehouseHandler) Delete(c *fiber.Ctx) error {
	warehouseID := c.Params("warehouseId")
	if warehouseID == "" {
		return respondValidation(c, []string{"warehouseId es requerido"})
	}
	out, err := h.uc.Delete(c.Context(), warehouseID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
