// FILE: internal/controller/catalog_controller.go
package controller

import (
	"streampoint-be/internal/pkg/serverutils"
	"streampoint-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	Landing(ctx *fiber.Ctx) error
	Catalog(ctx *fiber.Ctx) error
	ServiceDetail(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Landing)
	r.Get("/catalogo", c.Catalog)
	// Plans carry affordability info when the viewer is logged in.
	r.Get("/servicio/:id", serverutils.OptionalJwtMiddleware, c.ServiceDetail)
}

func (c *catalogController) Landing(ctx *fiber.Ctx) error {
	res, err := c.service.Landing(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Inicio", res))
}

func (c *catalogController) Catalog(ctx *fiber.Ctx) error {
	res, err := c.service.Catalog(ctx.Context(), ctx.Query("categoria"))
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Catálogo de servicios", res))
}

func (c *catalogController) ServiceDetail(ctx *fiber.Ctx) error {
	serviceId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid service id"))
	}

	var viewerId *uuid.UUID
	if id := currentUserId(ctx); id != uuid.Nil {
		viewerId = &id
	}

	res, err := c.service.ServiceDetail(ctx.Context(), serviceId, viewerId)
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Detalle del servicio", res))
}
