// Controller for property endpoints
package controller

import (
	"valuation-catalog-be/internal/dto"
	"valuation-catalog-be/internal/pkg/serverutils"
	"valuation-catalog-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type IPropertyController interface {
	RegisterRoutes(api fiber.Router)
}

type propertyController struct {
	propertyService service.IPropertyService
	validate        *validator.Validate
}

func NewPropertyController(propertyService service.IPropertyService) IPropertyController {
	return &propertyController{
		propertyService: propertyService,
		validate:        validator.New(),
	}
}

func (c *propertyController) RegisterRoutes(api fiber.Router) {
	api.Get("/properties", c.List)
	api.Get("/properties/:code", c.Get)
	api.Post("/properties", c.Create)
	api.Put("/properties/:code", c.Update)
	api.Delete("/properties/:code", c.Delete)
}

func (c *propertyController) List(ctx *fiber.Ctx) error {
	properties, err := c.propertyService.List(ctx.Context(), ctx.Query("role"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Properties retrieved", properties))
}

func (c *propertyController) Get(ctx *fiber.Ctx) error {
	property, err := c.propertyService.Get(ctx.Context(), ctx.Params("code"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Property retrieved", property))
}

func (c *propertyController) Create(ctx *fiber.Ctx) error {
	var req dto.PropertyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	property, err := c.propertyService.Create(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Property created", property))
}

func (c *propertyController) Update(ctx *fiber.Ctx) error {
	var req dto.PropertyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.Code = ctx.Params("code")
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	property, err := c.propertyService.Update(ctx.Context(), ctx.Params("code"), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Property updated", property))
}

func (c *propertyController) Delete(ctx *fiber.Ctx) error {
	if err := c.propertyService.Delete(ctx.Context(), ctx.Params("code")); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Property deleted", nil))
}
