package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sarismart/retail-api/internal/application/dto"
	"github.com/sarismart/retail-api/internal/application/usecase"
)

// ProductHandler maneja productos, ajustes de stock y alertas de inventario.
// Todas las rutas cuelgan de /stores/:storeId: un producto sólo existe dentro de su tienda.
type ProductHandler struct {
	uc *usecase.InventoryUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.InventoryUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos de una tienda
// @Tags         products
// @Produce      json
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/v1/stores/{storeId}/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts(c.Params("storeId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto (dueño o trabajador)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        storeId  path  string  true  "ID de la tienda"
// @Param        body     body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{storeId}/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateProduct(c.Params("storeId"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Modificar producto (dueño o trabajador)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        storeId    path  string  true  "ID de la tienda"
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.ProductResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{storeId}/products/{productId} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ModifyProduct(c.Params("storeId"), c.Params("productId"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateByOwner godoc
// @Summary      Modificar producto (sólo dueño)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        storeId    path  string  true  "ID de la tienda"
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.ProductResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{storeId}/products/{productId}/owner [put]
func (h *ProductHandler) UpdateByOwner(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ModifyProductByOwner(c.Params("storeId"), c.Params("productId"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar producto (dueño o trabajador)
// @Tags         products
// @Security     Bearer
// @Param        storeId    path  string  true  "ID de la tienda"
// @Param        productId  path  string  true  "ID del producto"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{storeId}/products/{productId} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteProduct(c.Params("storeId"), c.Params("productId"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AdjustStock godoc
// @Summary      Ajustar stock (delta firmado; deja registro de auditoría)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        storeId    path  string  true  "ID de la tienda"
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.AdjustStockRequest  true  "Delta de stock"
// @Success      200  {object}  dto.StockAdjustmentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{storeId}/products/{productId}/stock [patch]
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AdjustStock(c.UserContext(), c.Params("storeId"), c.Params("productId"), GetUserID(c), in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockHistory godoc
// @Summary      Historial de ajustes de la tienda
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200  {array}  dto.StockAdjustmentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{storeId}/stock/history [get]
func (h *ProductHandler) StockHistory(c *fiber.Ctx) error {
	out, err := h.uc.StockHistoryByStore(c.Params("storeId"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ProductStockHistory godoc
// @Summary      Historial de ajustes de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        storeId    path  string  true  "ID de la tienda"
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {array}  dto.StockAdjustmentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{storeId}/products/{productId}/stock/history [get]
func (h *ProductHandler) ProductStockHistory(c *fiber.Ctx) error {
	out, err := h.uc.StockHistoryByProduct(c.Params("storeId"), c.Params("productId"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RestockAlert godoc
// @Summary      Productos por debajo de su umbral de reposición
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200  {array}  dto.ProductResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{storeId}/inventory/alerts [get]
func (h *ProductHandler) RestockAlert(c *fiber.Ctx) error {
	out, err := h.uc.RestockAlert(c.Params("storeId"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetReorderLevel godoc
// @Summary      Fijar umbral de reposición de un producto
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Param        storeId    path  string  true  "ID de la tienda"
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.SetReorderLevelRequest  true  "Umbral"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{storeId}/products/{productId}/reorder-level [put]
func (h *ProductHandler) SetReorderLevel(c *fiber.Ctx) error {
	var in dto.SetReorderLevelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetReorderLevel(c.Params("storeId"), c.Params("productId"), GetUserID(c), in.Level); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// InventoryStatus godoc
// @Summary      Estado del inventario de la tienda
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200  {array}  dto.ProductResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{storeId}/inventory [get]
func (h *ProductHandler) InventoryStatus(c *fiber.Ctx) error {
	out, err := h.uc.InventoryStatus(c.Params("storeId"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
