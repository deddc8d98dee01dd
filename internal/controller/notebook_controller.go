package controller

import (
	"annotation-notes-be/internal/dto"
	"annotation-notes-be/internal/mapper"
	"annotation-notes-be/internal/pkg/serverutils"
	"annotation-notes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INotebookController interface {
	RegisterRoutes(r fiber.Router)
	FindAll(ctx *fiber.Ctx) error
	FindById(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type notebookController struct {
	service service.INotebookService
}

func NewNotebookController(service service.INotebookService) INotebookController {
	return &notebookController{service: service}
}

func (c *notebookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notebook/v1")
	h.Get("", c.FindAll)
	h.Post("", c.Create)
	h.Get(":id", c.FindById)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *notebookController) FindAll(ctx *fiber.Ctx) error {
	res, err := c.service.FindAll(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all notebook", mapper.ToNotebookResponses(res)))
}

func (c *notebookController) FindById(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.FindById(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show notebook", mapper.ToNotebookResponse(res)))
}

func (c *notebookController) Create(ctx *fiber.Ctx) error {
	var req dto.SaveNotebookRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Save(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create notebook", mapper.ToNotebookResponse(res)))
}

func (c *notebookController) Update(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNotebookRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update notebook", mapper.ToNotebookResponse(res)))
}

func (c *notebookController) Delete(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.DeleteById(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete notebook", nil))
}
