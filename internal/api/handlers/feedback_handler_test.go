package handlers

import (
	"family-foodie/domain"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeedbackService struct {
	sent    *domain.SendFeedbackRequest
	sendErr error
	getErr  error
}

func (s *stubFeedbackService) SendFeedback(_ context.Context, req domain.SendFeedbackRequest, userID string) (domain.FeedbackResponse, error) {
	if s.sendErr != nil {
		return domain.FeedbackResponse{}, s.sendErr
	}
	s.sent = &req
	return domain.FeedbackResponse{UserID: userID, Subject: req.Subject, Message: req.Message}, nil
}

func (s *stubFeedbackService) GetFeedbacks(context.Context, int, int) ([]domain.FeedbackResponse, int64, error) {
	return nil, 0, nil
}

func (s *stubFeedbackService) GetFeedback(context.Context, string) (domain.FeedbackResponse, error) {
	return domain.FeedbackResponse{}, s.getErr
}

func (s *stubFeedbackService) UpdateFeedback(context.Context, string, domain.UpdateFeedbackRequest) error {
	return nil
}

func (s *stubFeedbackService) DeleteFeedback(context.Context, string) error {
	return nil
}

func feedbackTestApp(service *stubFeedbackService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "11111111-1111-1111-1111-111111111111")
		return c.Next()
	})

	handler := NewFeedbackHandler(service, validator.New())
	app.Post("/api/feedback", handler.SendFeedback)
	app.Get("/api/feedback/:id", handler.GetFeedback)
	return app
}

func TestSendFeedbackReturnsCreated(t *testing.T) {
	service := &stubFeedbackService{}
	app := feedbackTestApp(service)

	body := `{"subject":"Broken link","message":"The plan page 404s","page":"/plan"}`
	req := httptest.NewRequest("POST", "/api/feedback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, res.StatusCode)
	require.NotNil(t, service.sent)
	assert.Equal(t, "Broken link", service.sent.Subject)
}

func TestSendFeedbackRejectsMissingSubject(t *testing.T) {
	service := &stubFeedbackService{}
	app := feedbackTestApp(service)

	req := httptest.NewRequest("POST", "/api/feedback", strings.NewReader(`{"message":"no subject"}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
	assert.Nil(t, service.sent)
}

func TestGetFeedbackMapsNotFound(t *testing.T) {
	service := &stubFeedbackService{getErr: domain.ErrFeedbackNotFound}
	app := feedbackTestApp(service)

	res, err := app.Test(httptest.NewRequest("GET", "/api/feedback/some-id", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
}
