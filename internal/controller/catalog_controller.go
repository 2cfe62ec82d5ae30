// Controller for variable catalog endpoints
package controller

import (
	"errors"

	"valuation-catalog-be/internal/dto"
	"valuation-catalog-be/internal/entity"
	"valuation-catalog-be/internal/pkg/serverutils"
	"valuation-catalog-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(api fiber.Router)
}

type catalogController struct {
	catalogService service.ICatalogService
	rulesService   service.IRulesService
	seederService  service.ISeederService
	validate       *validator.Validate
}

func NewCatalogController(
	catalogService service.ICatalogService,
	rulesService service.IRulesService,
	seederService service.ISeederService,
) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
		rulesService:   rulesService,
		seederService:  seederService,
		validate:       validator.New(),
	}
}

func (c *catalogController) RegisterRoutes(api fiber.Router) {
	api.Get("/variables", c.ListActive)
	api.Get("/variables/all", c.ListAll)
	api.Get("/variables/:code", c.Get)
	api.Get("/variables/:code/rules", c.GetRules)
	api.Post("/variables", c.Create)
	api.Put("/variables/:code", c.Update)
	api.Delete("/variables/:code", c.Delete)
	api.Post("/catalog/seed", c.Seed)
}

// ListActive returns active variables in canonical presentation order:
// category, display order, name.
func (c *catalogController) ListActive(ctx *fiber.Ctx) error {
	variables, err := c.catalogService.ListActive(ctx.Context())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Variables retrieved", variables))
}

func (c *catalogController) ListAll(ctx *fiber.Ctx) error {
	variables, err := c.catalogService.ListAll(ctx.Context())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Variables retrieved", variables))
}

func (c *catalogController) Get(ctx *fiber.Ctx) error {
	variable, err := c.catalogService.Get(ctx.Context(), ctx.Params("code"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Variable retrieved", variable))
}

// GetRules returns the validation-rule descriptor consumed by dynamic form
// builders and data importers.
func (c *catalogController) GetRules(ctx *fiber.Ctx) error {
	descriptor, err := c.rulesService.DescriptorFor(ctx.Context(), ctx.Params("code"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Rules derived", descriptor))
}

func (c *catalogController) Create(ctx *fiber.Ctx) error {
	var req dto.VariableDefinition
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	variable, err := c.catalogService.Create(ctx.Context(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Variable created", variable))
}

func (c *catalogController) Update(ctx *fiber.Ctx) error {
	var req dto.VariableDefinition
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.Code = ctx.Params("code")
	if err := c.validate.Struct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	variable, err := c.catalogService.Update(ctx.Context(), ctx.Params("code"), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Variable updated", variable))
}

// Delete removes a variable and every variable derived from it.
func (c *catalogController) Delete(ctx *fiber.Ctx) error {
	if err := c.catalogService.Delete(ctx.Context(), ctx.Params("code")); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Variable deleted", nil))
}

// Seed loads the reference catalog. Takes no body; reports created/updated.
func (c *catalogController) Seed(ctx *fiber.Ctx) error {
	report, err := c.seederService.SeedReferenceCatalog(ctx.Context())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Catalog seeded", report))
}

// respondError maps domain errors onto HTTP statuses.
func respondError(ctx *fiber.Ctx, err error) error {
	var recordErr *service.RecordValidationError
	if errors.As(err, &recordErr) {
		return ctx.Status(fiber.StatusUnprocessableEntity).
			JSON(serverutils.ErrorResponseWithDetails(422, recordErr.Error(), recordErr.Fields))
	}

	switch {
	case errors.Is(err, entity.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	case errors.Is(err, entity.ErrDuplicateCode):
		return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
	}

	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, validationErr.Error()))
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
}
