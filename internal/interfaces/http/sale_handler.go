package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sarismart/retail-api/internal/application/dto"
	"github.com/sarismart/retail-api/internal/application/usecase"
)

// SaleHandler maneja ventas, reembolsos y reportes de una tienda.
type SaleHandler struct {
	uc *usecase.SalesUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SalesUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta (dueño o trabajador)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        storeId  path  string  true  "ID de la tienda"
// @Param        body     body  dto.CreateSaleRequest  true  "Datos de la venta"
// @Success      201  {object}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{storeId}/transactions/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateSale(c.Params("storeId"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas de la tienda
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200  {array}  dto.SaleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{storeId}/transactions/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListSales(c.Params("storeId"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por id
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        storeId  path  string  true  "ID de la tienda"
// @Param        saleId   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{storeId}/transactions/sales/{saleId} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetSale(c.Params("storeId"), c.Params("saleId"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Refund godoc
// @Summary      Reembolsar venta (la borra; destructivo)
// @Tags         sales
// @Security     Bearer
// @Param        storeId  path  string  true  "ID de la tienda"
// @Param        saleId   path  string  true  "ID de la venta"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{storeId}/transactions/sales/{saleId} [delete]
func (h *SaleHandler) Refund(c *fiber.Ctx) error {
	if err := h.uc.RefundSale(c.Params("storeId"), c.Params("saleId"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DailyReport godoc
// @Summary      Reporte de ventas del día
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.ReportResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{storeId}/reports/daily [get]
func (h *SaleHandler) DailyReport(c *fiber.Ctx) error {
	out, err := h.uc.DailyReport(c.Params("storeId"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MonthlyReport godoc
// @Summary      Reporte de ventas del mes
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.ReportResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{storeId}/reports/monthly [get]
func (h *SaleHandler) MonthlyReport(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyReport(c.Params("storeId"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
