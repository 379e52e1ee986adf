// FILE: internal/controller/auth_controller.go
package controller

import (
	"streampoint-be/internal/dto"
	"streampoint-be/internal/pkg/serverutils"
	"streampoint-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	LoginStaff(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user")
	h.Post("/registro", c.Register)
	h.Post("/login", c.Login)
	h.Post("/logout", serverutils.JwtMiddleware, c.Logout)
	h.Get("/perfil", serverutils.JwtMiddleware, c.Me)

	r.Post("/management/login", c.LoginStaff)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Register(ctx.Context(), &req, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Registro exitoso", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.Login(ctx.Context(), &req, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Login exitoso", res))
}

func (c *authController) LoginStaff(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.LoginStaff(ctx.Context(), &req, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Login exitoso", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := ctx.BodyParser(&req); err == nil && req.RefreshToken != "" {
		// Revocation is best-effort: an unknown token still logs out.
		_ = c.service.Logout(ctx.Context(), req.RefreshToken)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Sesión cerrada", nil))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	res, err := c.service.Me(ctx.Context(), currentUserId(ctx))
	if err != nil {
		code := statusFor(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Perfil de usuario", res))
}
