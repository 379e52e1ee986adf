// FILE: internal/controller/admin_controller.go
package controller

import (
	"strconv"

	"streampoint-be/internal/dto"
	"streampoint-be/internal/pkg/serverutils"
	"streampoint-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

// RegisterRoutes mounts the staff backoffice. /management/login stays on the
// auth controller so it is registered before the middleware chain here.
func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/management")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.StaffMiddleware)

	h.Get("/dashboard", c.Dashboard)

	h.Get("/validar-suscripciones", c.PendingSubscriptions)
	h.Post("/validar-suscripcion/:id", c.ReviewSubscription)

	h.Get("/gestionar-compras", c.PendingPurchases)
	h.Get("/compra/:id", c.GetPurchase)
	h.Post("/compra/:id", c.ReviewPurchase)

	h.Post("/gestionar-puntos", c.AdjustPoints)

	h.Get("/gestionar-correos", c.ListVerifiedEmails)
	h.Post("/gestionar-correos", c.AddVerifiedEmail)
	h.Put("/gestionar-correos/:id", c.UpdateVerifiedEmail)
	h.Delete("/gestionar-correos/:id", c.RemoveVerifiedEmail)

	h.Get("/configurar-recompensas", c.GetRewardConfig)
	h.Put("/configurar-recompensas", c.UpdateRewardConfig)

	h.Get("/logs", c.GetSystemLogs)
	h.Get("/logs/:id", c.GetLogDetail)
}

func (c *adminController) Dashboard(ctx *fiber.Ctx) error {
	res, err := c.service.DashboardStats(ctx.Context())
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Panel de administración", res))
}

func (c *adminController) PendingSubscriptions(ctx *fiber.Ctx) error {
	res, err := c.service.PendingSubscriptions(ctx.Context())
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Suscripciones pendientes", res))
}

func (c *adminController) ReviewSubscription(ctx *fiber.Ctx) error {
	subscriptionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid subscription id"))
	}

	var req dto.ValidateSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.ReviewSubscription(ctx.Context(), currentUserId(ctx), subscriptionId, &req)
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Suscripción revisada", res))
}

func (c *adminController) PendingPurchases(ctx *fiber.Ctx) error {
	res, err := c.service.PendingPurchases(ctx.Context())
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Compras pendientes", res))
}

func (c *adminController) GetPurchase(ctx *fiber.Ctx) error {
	purchaseId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid purchase id"))
	}

	res, err := c.service.GetPurchase(ctx.Context(), purchaseId)
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Detalle de compra", res))
}

func (c *adminController) ReviewPurchase(ctx *fiber.Ctx) error {
	purchaseId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid purchase id"))
	}

	var req dto.ReviewPurchaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.ReviewPurchase(ctx.Context(), currentUserId(ctx), purchaseId, &req)
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Compra revisada", res))
}

func (c *adminController) AdjustPoints(ctx *fiber.Ctx) error {
	var req dto.AdjustPointsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.AdjustPoints(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Puntos ajustados", res))
}

func (c *adminController) ListVerifiedEmails(ctx *fiber.Ctx) error {
	res, err := c.service.ListVerifiedEmails(ctx.Context())
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Correos verificados", res))
}

func (c *adminController) AddVerifiedEmail(ctx *fiber.Ctx) error {
	var req dto.VerifiedEmailRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.AddVerifiedEmail(ctx.Context(), currentUserId(ctx), &req)
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Correo verificado registrado", res))
}

func (c *adminController) UpdateVerifiedEmail(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid id"))
	}

	var req dto.VerifiedEmailRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.UpdateVerifiedEmail(ctx.Context(), id, &req)
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Correo verificado actualizado", res))
}

func (c *adminController) RemoveVerifiedEmail(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid id"))
	}

	if err := c.service.RemoveVerifiedEmail(ctx.Context(), id); err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Correo verificado eliminado", nil))
}

func (c *adminController) GetRewardConfig(ctx *fiber.Ctx) error {
	res, err := c.service.GetRewardConfig(ctx.Context())
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Configuración de recompensas", res))
}

func (c *adminController) UpdateRewardConfig(ctx *fiber.Ctx) error {
	var req dto.RewardConfigRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.UpdateRewardConfig(ctx.Context(), &req)
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Configuración de recompensas actualizada", res))
}

func (c *adminController) GetSystemLogs(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))
	level := ctx.Query("level", "")

	res, err := c.service.GetSystemLogs(ctx.Context(), page, limit, level)
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Registros del sistema", res))
}

func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	res, err := c.service.GetLogDetail(ctx.Context(), ctx.Params("id"))
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Detalle del registro", res))
}
