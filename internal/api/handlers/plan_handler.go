package handlers

import (
	"family-foodie/domain"
	"family-foodie/internal/api/presenters"
	"family-foodie/pkg/plan"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PlanHandler interface {
		GetPlan(c *fiber.Ctx) error
		SavePlan(c *fiber.Ctx) error
		SuggestRecipes(c *fiber.Ctx) error
	}

	planHandler struct {
		planService plan.PlanService
		validator   *validator.Validate
	}
)

func NewPlanHandler(planService plan.PlanService, validator *validator.Validate) PlanHandler {
	return &planHandler{
		planService: planService,
		validator:   validator,
	}
}

func (h *planHandler) GetPlan(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlan, domain.ErrInvalidYear)
	}
	week, err := strconv.Atoi(c.Params("week"))
	if err != nil || week < 1 || week > 53 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPlan, domain.ErrInvalidWeek)
	}

	res, err := h.planService.GetPlan(c.Context(), householdID, week, year)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlan)
}

func (h *planHandler) SavePlan(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	req := new(domain.SavePlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSavePlan, err)
	}

	if err := h.planService.SavePlan(c.Context(), *req, householdID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSavePlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSavePlan)
}

func (h *planHandler) SuggestRecipes(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	count, err := strconv.Atoi(c.Query("count", "7"))
	if err != nil || count < 1 {
		count = 7
	}

	res, err := h.planService.SuggestRecipes(c.Context(), householdID, count)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSuggestPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSuggestPlan)
}
