package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sarismart/retail-api/internal/application/dto"
	"github.com/sarismart/retail-api/internal/application/usecase"
)

// CartHandler maneja el registro y consulta de canastas.
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar canasta (dueño o trabajador de la tienda)
// @Tags         carts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCartRequest  true  "Canasta con sus líneas"
// @Success      201   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/v1/carts [post]
func (h *CartHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByStore godoc
// @Summary      Canastas de una tienda
// @Tags         carts
// @Security     Bearer
// @Produce      json
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200  {array}  dto.CartResponse
// @Router       /api/v1/carts/store/{storeId} [get]
func (h *CartHandler) ListByStore(c *fiber.Ctx) error {
	out, err := h.uc.ListByStore(c.Params("storeId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListBySeller godoc
// @Summary      Canastas registradas por un vendedor
// @Tags         carts
// @Security     Bearer
// @Produce      json
// @Param        sellerId  path  string  true  "Subject del vendedor"
// @Success      200  {array}  dto.CartResponse
// @Router       /api/v1/carts/seller/{sellerId} [get]
func (h *CartHandler) ListBySeller(c *fiber.Ctx) error {
	out, err := h.uc.ListBySeller(c.Params("sellerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar canastas por nombre
// @Tags         carts
// @Security     Bearer
// @Produce      json
// @Param        name  query  string  true  "Nombre (coincidencia parcial)"
// @Success      200  {array}  dto.CartResponse
// @Router       /api/v1/carts/search [get]
func (h *CartHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.SearchByName(c.Query("name"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
