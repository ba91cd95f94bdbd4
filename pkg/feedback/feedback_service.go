package feedback

import (
	"family-foodie/domain"
	"family-foodie/entities"
	"family-foodie/internal/utils"
	"family-foodie/internal/utils/mailing"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FeedbackService interface {
		SendFeedback(ctx context.Context, req domain.SendFeedbackRequest, userID string) (domain.FeedbackResponse, error)
		GetFeedbacks(ctx context.Context, page, limit int) ([]domain.FeedbackResponse, int64, error)
		GetFeedback(ctx context.Context, id string) (domain.FeedbackResponse, error)
		UpdateFeedback(ctx context.Context, id string, req domain.UpdateFeedbackRequest) error
		DeleteFeedback(ctx context.Context, id string) error
	}

	feedbackService struct {
		feedbackRepository FeedbackRepository
	}
)

func NewFeedbackService(feedbackRepository FeedbackRepository) FeedbackService {
	return &feedbackService{feedbackRepository: feedbackRepository}
}

func toFeedbackResponse(feedback *entities.Feedback) domain.FeedbackResponse {
	res := domain.FeedbackResponse{
		ID:        feedback.ID.String(),
		UserID:    feedback.UserID.String(),
		Subject:   feedback.Subject,
		Message:   feedback.Message,
		Page:      feedback.Page,
		CreatedAt: feedback.CreatedAt,
	}
	if feedback.User != nil {
		res.UserName = feedback.User.Name
		res.UserEmail = feedback.User.Email
	}
	return res
}

func (s *feedbackService) SendFeedback(ctx context.Context, req domain.SendFeedbackRequest, userID string) (domain.FeedbackResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FeedbackResponse{}, domain.ErrParseUUID
	}

	feedback := &entities.Feedback{
		ID:      uuid.New(),
		UserID:  userUUID,
		Subject: req.Subject,
		Message: req.Message,
		Page:    req.Page,
	}
	if err := s.feedbackRepository.CreateFeedback(ctx, feedback); err != nil {
		return domain.FeedbackResponse{}, err
	}

	// notify the operator; a mail failure must not fail the request
	if to := utils.GetConfig("FEEDBACK_EMAIL"); to != "" {
		body := fmt.Sprintf(
			"<p><b>%s</b></p><p>%s</p><p>page: %s</p>",
			feedback.Subject, feedback.Message, feedback.Page,
		)
		if err := mailing.SendMail(to, "New feedback: "+feedback.Subject, body); err != nil {
			log.Printf("error sending feedback mail: %v", err)
		}
	}

	return toFeedbackResponse(feedback), nil
}

func (s *feedbackService) GetFeedbacks(ctx context.Context, page, limit int) ([]domain.FeedbackResponse, int64, error) {
	feedbacks, count, err := s.feedbackRepository.GetFeedbacks(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.FeedbackResponse, 0, len(feedbacks))
	for _, feedback := range feedbacks {
		response = append(response, toFeedbackResponse(feedback))
	}
	return response, count, nil
}

func (s *feedbackService) GetFeedback(ctx context.Context, id string) (domain.FeedbackResponse, error) {
	feedback, err := s.feedbackRepository.GetFeedbackByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FeedbackResponse{}, domain.ErrFeedbackNotFound
		}
		return domain.FeedbackResponse{}, err
	}
	return toFeedbackResponse(feedback), nil
}

func (s *feedbackService) UpdateFeedback(ctx context.Context, id string, req domain.UpdateFeedbackRequest) error {
	feedback, err := s.feedbackRepository.GetFeedbackByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFeedbackNotFound
		}
		return err
	}

	if req.Subject != "" {
		feedback.Subject = req.Subject
	}
	if req.Message != "" {
		feedback.Message = req.Message
	}

	return s.feedbackRepository.UpdateFeedback(ctx, feedback)
}

func (s *feedbackService) DeleteFeedback(ctx context.Context, id string) error {
	if _, err := s.feedbackRepository.GetFeedbackByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFeedbackNotFound
		}
		return err
	}
	return s.feedbackRepository.DeleteFeedback(ctx, id)
}
