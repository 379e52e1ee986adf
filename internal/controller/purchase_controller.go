// FILE: internal/controller/purchase_controller.go
package controller

import (
	"io"

	"streampoint-be/internal/dto"
	"streampoint-be/internal/pkg/serverutils"
	"streampoint-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPurchaseController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	ListMine(ctx *fiber.Ctx) error
}

type purchaseController struct {
	service service.IPurchaseService
}

func NewPurchaseController(service service.IPurchaseService) IPurchaseController {
	return &purchaseController{service: service}
}

func (c *purchaseController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/registrar-compra", c.ListMine)
	h.Post("/registrar-compra", c.Submit)
}

func (c *purchaseController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitPurchaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid form data"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	fileHeader, err := ctx.FormFile("receipt")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Receipt file is required"))
	}
	// Size enforcement lives with the receipt store, which carries the
	// configured limit.
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Could not read receipt file"))
	}
	defer file.Close()

	receipt, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Could not read receipt file"))
	}

	res, err := c.service.Submit(ctx.Context(), currentUserId(ctx), &req, receipt)
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Compra registrada, pendiente de aprobación", res))
}

func (c *purchaseController) ListMine(ctx *fiber.Ctx) error {
	res, err := c.service.ListMine(ctx.Context(), currentUserId(ctx))
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Compras registradas", res))
}
