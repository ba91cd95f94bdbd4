package handlers

import (
	"family-foodie/domain"
	"family-foodie/internal/api/presenters"
	"family-foodie/pkg/collection"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CollectionHandler interface {
		GetCollections(c *fiber.Ctx) error
		GetCollectionDetail(c *fiber.Ctx) error
		CreateCollection(c *fiber.Ctx) error
		UpdateCollection(c *fiber.Ctx) error
		DeleteCollection(c *fiber.Ctx) error
		Subscribe(c *fiber.Ctx) error
		Unsubscribe(c *fiber.Ctx) error
		AddRecipe(c *fiber.Ctx) error
		RemoveRecipe(c *fiber.Ctx) error
		UploadCover(c *fiber.Ctx) error
	}

	collectionHandler struct {
		collectionService collection.CollectionService
		validator         *validator.Validate
	}
)

func NewCollectionHandler(collectionService collection.CollectionService, validator *validator.Validate) CollectionHandler {
	return &collectionHandler{
		collectionService: collectionService,
		validator:         validator,
	}
}

func (h *collectionHandler) GetCollections(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	collections, count, err := h.collectionService.GetCollections(c.Context(), householdID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetCollections, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"collections": collections,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetCollections)
}

func (h *collectionHandler) GetCollectionDetail(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	res, err := h.collectionService.GetCollectionDetail(c.Context(), c.Params("id"), householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetCollectionDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCollectionDetail)
}

func (h *collectionHandler) CreateCollection(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	req := new(domain.CreateCollectionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCollection, err)
	}

	res, err := h.collectionService.CreateCollection(c.Context(), *req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreateCollection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCollection)
}

func (h *collectionHandler) UpdateCollection(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	req := new(domain.UpdateCollectionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCollection, err)
	}

	res, err := h.collectionService.UpdateCollection(c.Context(), c.Params("id"), *req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateCollection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCollection)
}

func (h *collectionHandler) DeleteCollection(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	if err := h.collectionService.DeleteCollection(c.Context(), c.Params("id"), householdID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteCollection, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCollection)
}

func (h *collectionHandler) Subscribe(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	if err := h.collectionService.Subscribe(c.Context(), c.Params("id"), householdID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSubscribe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessSubscribe)
}

func (h *collectionHandler) Unsubscribe(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	if err := h.collectionService.Unsubscribe(c.Context(), c.Params("id"), householdID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUnsubscribe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnsubscribe)
}

func (h *collectionHandler) AddRecipe(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)
	req := new(domain.AddCollectionRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRecipe, err)
	}

	res, err := h.collectionService.AddRecipe(c.Context(), c.Params("id"), *req, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddRecipe)
}

func (h *collectionHandler) RemoveRecipe(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	if err := h.collectionService.RemoveRecipe(c.Context(), c.Params("id"), c.Params("recipeId"), householdID); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedRemoveRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveRecipe)
}

func (h *collectionHandler) UploadCover(c *fiber.Ctx) error {
	householdID := c.Locals("household_id").(string)

	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadCover, err)
	}

	res, err := h.collectionService.UploadCover(c.Context(), c.Params("id"), domain.UploadCollectionCoverRequest{Image: image}, householdID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUploadCover, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadCover)
}
