package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto con su stock inicial en una bodega
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/create [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Success      204  "sin productos"
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondList(c, items)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos del producto"
// @Success      200  {object}  dto.IDResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/update/{productId} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return respondValidation(c, []string{"productId es requerido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := in.Validate(); len(details) > 0 {
		return respondValidation(c, details)
	}
	out, err := h.uc.Update(c.Context(), productID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// UpdateStock godoc
// @Summary      Sobrescribir el stock de un producto en una bodega
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId    path  string  true  "ID del producto"
// @Param        warehouseId  path  string  true  "ID de la bodega"
// @Param        body  body  dto.UpdateProductStockRequest  true  "Nueva cantidad"
// @Success      200  {object}  dto.IDResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/update/{productId}/warehouse/{warehouseId}/stock [put]
func (h *ProductHandler) UpdateStock(c *fiber.Ctx) error {
	productID := c.Params("productId")
	warehouseID := c.Params("warehouseId")
	if productID == "" || warehouseID == "" {
		return respondValidation(c, []string{"productId y warehouseId son requeridos"})
	}
	var in dto.UpdateProductStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if details := in.Validate(); len(details) > 0 {
		return respondValidation(c, details)
	}
	out, err := h.uc.UpdateStock(c.Context(), productID, warehouseID, *in.Stock)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.IDResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/delete/{productId} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return respondValidation(c, []string{"productId es requerido"})
	}
	out, err := h.uc.Delete(c.Context(), productID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
