package handlers

import (
	"family-foodie/domain"
	"family-foodie/internal/api/presenters"
	"family-foodie/pkg/feedback"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FeedbackHandler interface {
		SendFeedback(c *fiber.Ctx) error
		GetFeedbacks(c *fiber.Ctx) error
		GetFeedback(c *fiber.Ctx) error
		UpdateFeedback(c *fiber.Ctx) error
		DeleteFeedback(c *fiber.Ctx) error
	}

	feedbackHandler struct {
		feedbackService feedback.FeedbackService
		validator       *validator.Validate
	}
)

func NewFeedbackHandler(feedbackService feedback.FeedbackService, validator *validator.Validate) FeedbackHandler {
	return &feedbackHandler{
		feedbackService: feedbackService,
		validator:       validator,
	}
}

func (h *feedbackHandler) SendFeedback(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SendFeedbackRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendFeedback, err)
	}

	res, err := h.feedbackService.SendFeedback(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSendFeedback, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSendFeedback)
}

func (h *feedbackHandler) GetFeedbacks(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	feedbacks, count, err := h.feedbackService.GetFeedbacks(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetFeedback, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"feedbacks": feedbacks,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetFeedback)
}

func (h *feedbackHandler) GetFeedback(c *fiber.Ctx) error {
	res, err := h.feedbackService.GetFeedback(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetFeedback, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFeedback)
}

func (h *feedbackHandler) UpdateFeedback(c *fiber.Ctx) error {
	req := new(domain.UpdateFeedbackRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFeedback, err)
	}

	if err := h.feedbackService.UpdateFeedback(c.Context(), c.Params("id"), *req); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateFeedback, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateFeedback)
}

func (h *feedbackHandler) DeleteFeedback(c *fiber.Ctx) error {
	if err := h.feedbackService.DeleteFeedback(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteFeedback, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFeedback)
}
