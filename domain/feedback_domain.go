package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSendFeedback   = "feedback submitted successfully"
	MessageSuccessGetFeedback    = "success get feedback"
	MessageSuccessUpdateFeedback = "feedback updated successfully"
	MessageSuccessDeleteFeedback = "feedback deleted successfully"

	MessageFailedSendFeedback   = "failed to submit feedback"
	MessageFailedGetFeedback    = "failed to get feedback"
	MessageFailedUpdateFeedback = "failed to update feedback"
	MessageFailedDeleteFeedback = "failed to delete feedback"

	ErrFeedbackNotFound = errors.New("feedback not found")
)

type (
	SendFeedbackRequest struct {
		Subject string `json:"subject" validate:"required,min=2"`
		Message string `json:"message" validate:"required,min=2"`
		Page    string `json:"page"`
	}

	UpdateFeedbackRequest struct {
		Subject string `json:"subject" validate:"omitempty,min=2"`
		Message string `json:"message" validate:"omitempty,min=2"`
	}

	FeedbackResponse struct {
		ID        string    `json:"id"`
		UserID    string    `json:"user_id"`
		UserName  string    `json:"user_name,omitempty"`
		UserEmail string    `json:"user_email,omitempty"`
		Subject   string    `json:"subject"`
		Message   string    `json:"message"`
		Page      string    `json:"page,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
