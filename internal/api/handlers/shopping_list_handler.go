package handlers

import (
	"family-foodie/domain"
	"family-foodie/internal/api/presenters"
	"family-foodie/pkg/shoppinglist"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingListHandler interface {
		GetShoppingList(c *fiber.Ctx) error
		GenerateShoppingList(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
	}

	shoppingListHandler struct {
		shoppingListService shoppinglist.ShoppingListService
		validator           *validator.Validate
	}
)

func NewShoppingListHandler(shoppingListService shoppinglist.ShoppingListService, validator *validator.Validate) ShoppingListHandler {
	return &shoppingListHandler{
		shoppingListService: shoppingListService,
		validator:           validator,
	}
}

func parseWeekYear(c *fiber.Ctx) (week, year int, err error) {
	year, err = strconv.Atoi(c.Params("year"))
	if err != nil {
		return 0, 0, domain.ErrInvalidYear
	}
	week, err = strconv.Atoi(c.Params("week"))
	if err != nil || week < 1 || week > 53 {
		return 0, 0, domain.ErrInvalidWeek
	}
	return week, year, nil
}

func (h *shoppingListHandler) GetShoppingList(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	week, year, err := parseWeekYear(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, err)
	}

	res, err := h.shoppingListService.GetShoppingList(c.Context(), householdID, week, year)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingListHandler) GenerateShoppingList(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	week, year, err := parseWeekYear(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateList, err)
	}

	res, err := h.shoppingListService.GenerateShoppingList(c.Context(), householdID, week, year)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGenerateList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessGenerateList)
}

func (h *shoppingListHandler) UpdateItem(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	req := new(domain.UpdateListItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateListItem, err)
	}

	if err := h.shoppingListService.UpdateItem(c.Context(), c.Params("id"), *req, householdID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateListItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateListItem)
}

func (h *shoppingListHandler) AddItem(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	week, year, err := parseWeekYear(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddListItem, err)
	}

	req := new(domain.AddListItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddListItem, err)
	}

	res, err := h.shoppingListService.AddItem(c.Context(), *req, householdID, week, year)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddListItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddListItem)
}

func (h *shoppingListHandler) DeleteItem(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	if err := h.shoppingListService.DeleteItem(c.Context(), c.Params("id"), householdID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteListItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteListItem)
}
