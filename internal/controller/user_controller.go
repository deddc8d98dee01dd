package controller

import (
	"annotation-notes-be/internal/dto"
	"annotation-notes-be/internal/mapper"
	"annotation-notes-be/internal/pkg/serverutils"
	"annotation-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	FindAll(ctx *fiber.Ctx) error
	FindById(ctx *fiber.Ctx) error
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Get("", c.FindAll)
	h.Post("", c.Register)
	h.Post("login", c.Login)
	h.Get(":id", c.FindById)
}

func (c *userController) FindAll(ctx *fiber.Ctx) error {
	res, err := c.service.FindAll(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all user", mapper.ToUserResponses(res)))
}

func (c *userController) FindById(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.FindById(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show user", mapper.ToUserResponse(res)))
}

func (c *userController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Save(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success register user", mapper.ToUserResponse(res)))
}

func (c *userController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success login", mapper.ToUserResponse(res)))
}
