// FILE: internal/controller/checkout_controller.go
package controller

import (
	"streampoint-be/internal/dto"
	"streampoint-be/internal/pkg/serverutils"
	"streampoint-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICheckoutController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	StartRenewal(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	MidtransNotification(ctx *fiber.Ctx) error
}

type checkoutController struct {
	service service.ICheckoutService
}

func NewCheckoutController(service service.ICheckoutService) ICheckoutController {
	return &checkoutController{service: service}
}

func (c *checkoutController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/suscribirse/:plan_id", c.Start)
	h.Get("/renovar/:id", c.StartRenewal)
	h.Get("/pasarela-pago", c.Session)
	h.Post("/pasarela-pago", c.Complete)

	// The gateway calls back unauthenticated; the SHA512 signature is the auth.
	r.Post("/payment/midtrans/notification", c.MidtransNotification)
}

func (c *checkoutController) Start(ctx *fiber.Ctx) error {
	planId, err := uuid.Parse(ctx.Params("plan_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid plan id"))
	}

	req := dto.StartCheckoutRequest{
		ServiceEmail: ctx.Query("service_email"),
		ServiceUser:  ctx.Query("service_user"),
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.StartCheckout(ctx.Context(), currentUserId(ctx), planId, &req)
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Pasarela de pago", res))
}

func (c *checkoutController) StartRenewal(ctx *fiber.Ctx) error {
	subscriptionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid subscription id"))
	}

	res, err := c.service.StartRenewal(ctx.Context(), currentUserId(ctx), subscriptionId)
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Pasarela de pago", res))
}

func (c *checkoutController) Session(ctx *fiber.Ctx) error {
	res, err := c.service.CurrentSession(ctx.Context(), currentUserId(ctx))
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Pasarela de pago", res))
}

func (c *checkoutController) Complete(ctx *fiber.Ctx) error {
	var req dto.CompleteCheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CompleteCheckout(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Compra completada", res))
}

func (c *checkoutController) MidtransNotification(ctx *fiber.Ctx) error {
	var req dto.MidtransNotificationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid notification payload"))
	}

	if err := c.service.HandleMidtransNotification(ctx.Context(), &req); err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("OK", nil))
}
