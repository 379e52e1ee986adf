// FILE: internal/controller/subscription_controller.go
package controller

import (
	"streampoint-be/internal/dto"
	"streampoint-be/internal/pkg/serverutils"
	"streampoint-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	Dashboard(ctx *fiber.Ctx) error
	Subscribe(ctx *fiber.Ctx) error
	Renew(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Points(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	service        service.ISubscriptionService
	loyaltyService service.ILoyaltyService
}

func NewSubscriptionController(service service.ISubscriptionService, loyaltyService service.ILoyaltyService) ISubscriptionController {
	return &subscriptionController{
		service:        service,
		loyaltyService: loyaltyService,
	}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/dashboard", c.Dashboard)
	h.Post("/suscribirse/:plan_id", c.Subscribe)
	h.Post("/renovar/:id", c.Renew)
	h.Post("/cancelar/:id", c.Cancel)
	h.Get("/puntos", c.Points)
}

func (c *subscriptionController) Dashboard(ctx *fiber.Ctx) error {
	res, err := c.service.Dashboard(ctx.Context(), currentUserId(ctx))
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Panel de usuario", res))
}

// Subscribe creates a pendiente record awaiting staff validation; the
// card-funded immediate path lives in the checkout controller.
func (c *subscriptionController) Subscribe(ctx *fiber.Ctx) error {
	planId, err := uuid.Parse(ctx.Params("plan_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid plan id"))
	}

	var req dto.SubscribeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Subscribe(ctx.Context(), currentUserId(ctx), planId, &req)
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Suscripción registrada, pendiente de validación", res))
}

func (c *subscriptionController) Renew(ctx *fiber.Ctx) error {
	subscriptionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid subscription id"))
	}

	var req struct {
		PaymentMethod string `json:"payment_method" validate:"required,oneof=tarjeta pse efectivo puntos"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Renew(ctx.Context(), currentUserId(ctx), subscriptionId, req.PaymentMethod)
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Renovación registrada, pendiente de validación", res))
}

func (c *subscriptionController) Cancel(ctx *fiber.Ctx) error {
	subscriptionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid subscription id"))
	}

	if err := c.service.Cancel(ctx.Context(), currentUserId(ctx), subscriptionId); err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Suscripción cancelada", nil))
}

func (c *subscriptionController) Points(ctx *fiber.Ctx) error {
	res, err := c.loyaltyService.Balance(ctx.Context(), currentUserId(ctx))
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Mis puntos", res))
}
