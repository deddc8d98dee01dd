package controller

import (
	"annotation-notes-be/internal/dto"
	"annotation-notes-be/internal/mapper"
	"annotation-notes-be/internal/pkg/serverutils"
	"annotation-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAnnotationController interface {
	RegisterRoutes(r fiber.Router)
	FindAll(ctx *fiber.Ctx) error
	FindById(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type annotationController struct {
	service service.IAnnotationService
}

func NewAnnotationController(service service.IAnnotationService) IAnnotationController {
	return &annotationController{service: service}
}

func (c *annotationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/annotation/v1")
	h.Get("", c.FindAll)
	h.Post("", c.Create)
	h.Get(":id", c.FindById)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *annotationController) FindAll(ctx *fiber.Ctx) error {
	res, err := c.service.FindAll(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all annotation", mapper.ToAnnotationResponses(res)))
}

func (c *annotationController) FindById(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.FindById(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show annotation", mapper.ToAnnotationResponse(res)))
}

func (c *annotationController) Create(ctx *fiber.Ctx) error {
	var req dto.SaveAnnotationRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Save(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create annotation", mapper.ToAnnotationResponse(res)))
}

func (c *annotationController) Update(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateAnnotationRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update annotation", mapper.ToAnnotationResponse(res)))
}

func (c *annotationController) Delete(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeleteById(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete annotation", nil))
}
