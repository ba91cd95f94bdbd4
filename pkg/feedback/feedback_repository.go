package feedback

import (
	"family-foodie/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FeedbackRepository interface {
		CreateFeedback(ctx context.Context, feedback *entities.Feedback) error
		GetFeedbackByID(ctx context.Context, id string) (*entities.Feedback, error)
		GetFeedbacks(ctx context.Context, page, limit int) ([]*entities.Feedback, int64, error)
		UpdateFeedback(ctx context.Context, feedback *entities.Feedback) error
		DeleteFeedback(ctx context.Context, id string) error
	}

	feedbackRepository struct {
		db *gorm.DB
	}
)

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) CreateFeedback(ctx context.Context, feedback *entities.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) GetFeedbackByID(ctx context.Context, id string) (*entities.Feedback, error) {
	var feedback entities.Feedback
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&feedback).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) GetFeedbacks(ctx context.Context, page, limit int) ([]*entities.Feedback, int64, error) {
	var feedbacks []*entities.Feedback
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Feedback{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("User").
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&feedbacks).Error; err != nil {
		return nil, 0, err
	}

	return feedbacks, count, nil
}

func (r *feedbackRepository) UpdateFeedback(ctx context.Context, feedback *entities.Feedback) error {
	return r.db.WithContext(ctx).Save(feedback).Error
}

func (r *feedbackRepository) DeleteFeedback(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Feedback{}).Error
}
