package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sarismart/retail-api/internal/application/dto"
	"github.com/sarismart/retail-api/internal/application/usecase"
)

// StoreHandler maneja las peticiones HTTP para tiendas y su membresía.
type StoreHandler struct {
	uc *usecase.StoreUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tienda (el caller queda como dueño)
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreRequest  true  "Datos de la tienda"
// @Success      201   {object}  dto.StoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/stores [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tiendas
// @Tags         stores
// @Produce      json
// @Success      200  {array}  dto.StoreResponse
// @Router       /api/v1/stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener tienda por id
// @Tags         stores
// @Produce      json
// @Param        id   path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.StoreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{id} [get]
func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListNearby godoc
// @Summary      Tiendas cercanas a una coordenada
// @Tags         stores
// @Produce      json
// @Param        latitude   query  number  true  "Latitud"
// @Param        longitude  query  number  true  "Longitud"
// @Param        radius     query  number  false "Radio en km" default(5)
// @Success      200  {array}  dto.StoreResponse
// @Router       /api/v1/stores/nearby [get]
func (h *StoreHandler) ListNearby(c *fiber.Ctx) error {
	latitude := c.QueryFloat("latitude")
	longitude := c.QueryFloat("longitude")
	radius := c.QueryFloat("radius", 5)
	if radius <= 0 {
		radius = 5
	}
	out, err := h.uc.ListNearby(latitude, longitude, radius)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByOwner godoc
// @Summary      Tiendas de un dueño
// @Tags         stores
// @Produce      json
// @Param        ownerId  path  string  true  "Subject del dueño"
// @Success      200  {array}  dto.StoreResponse
// @Router       /api/v1/stores/owner/{ownerId} [get]
func (h *StoreHandler) ListByOwner(c *fiber.Ctx) error {
	out, err := h.uc.ListByOwner(c.Params("ownerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByWorker godoc
// @Summary      Tiendas donde un usuario trabaja
// @Tags         stores
// @Produce      json
// @Param        workerId  path  string  true  "Subject del trabajador"
// @Success      200  {array}  dto.StoreResponse
// @Router       /api/v1/stores/worker/{workerId} [get]
func (h *StoreHandler) ListByWorker(c *fiber.Ctx) error {
	out, err := h.uc.ListByWorker(c.Params("workerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tienda (sólo dueño)
// @Tags         stores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la tienda"
// @Param        body  body  dto.UpdateStoreRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.StoreResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{id} [put]
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar tienda (sólo dueño; productos y ventas caen en cascada)
// @Tags         stores
// @Security     Bearer
// @Param        id  path  string  true  "ID de la tienda"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{id} [delete]
func (h *StoreHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AssignWorker godoc
// @Summary      Asignar trabajador (sólo dueño)
// @Tags         stores
// @Security     Bearer
// @Param        id        path  string  true  "ID de la tienda"
// @Param        workerId  path  string  true  "Subject del trabajador"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{id}/workers/{workerId} [post]
func (h *StoreHandler) AssignWorker(c *fiber.Ctx) error {
	if err := h.uc.AssignWorker(c.Params("id"), GetUserID(c), c.Params("workerId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveWorker godoc
// @Summary      Quitar trabajador (sólo dueño)
// @Tags         stores
// @Security     Bearer
// @Param        id        path  string  true  "ID de la tienda"
// @Param        workerId  path  string  true  "Subject del trabajador"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{id}/workers/{workerId} [delete]
func (h *StoreHandler) RemoveWorker(c *fiber.Ctx) error {
	if err := h.uc.RemoveWorker(c.Params("id"), GetUserID(c), c.Params("workerId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListWorkers godoc
// @Summary      Trabajadores de una tienda
// @Tags         stores
// @Produce      json
// @Param        id   path  string  true  "ID de la tienda"
// @Success      200  {array}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stores/{id}/workers [get]
func (h *StoreHandler) ListWorkers(c *fiber.Ctx) error {
	out, err := h.uc.ListWorkers(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
