package review

import (
	"context"
	"fmt"

	reviewRepo "decorly/database/repository/review"
	"decorly/models"
)

// ReviewService manages service reviews.
type ReviewService interface {
	AddReview(ctx context.Context, input models.Review) (*models.Review, error)
	ListReviews(ctx context.Context) ([]models.Review, error)
	ListServiceReviews(ctx context.Context, serviceID string) ([]models.Review, error)
	DeleteReview(ctx context.Context, id string) error
}

// DefaultReviewService implements ReviewService over the review repository.
type DefaultReviewService struct {
	Repo reviewRepo.ReviewRepository
}

// AddReview validates and stores a new review.
func (s *DefaultReviewService) AddReview(ctx context.Context, input models.Review) (*models.Review, error) {
	if input.ServiceID == "" || input.UserEmail == "" || input.Rating == 0 {
		return nil, fmt.Errorf("service, user and rating are required")
	}

	if _, err := s.Repo.Create(ctx, &input); err != nil {
		return nil, err
	}
	return &input, nil
}

// ListReviews returns every review, newest first.
func (s *DefaultReviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return s.Repo.GetAll(ctx)
}

// ListServiceReviews returns the reviews for a service, newest first.
func (s *DefaultReviewService) ListServiceReviews(ctx context.Context, serviceID string) ([]models.Review, error) {
	return s.Repo.GetByService(ctx, serviceID)
}

// DeleteReview removes a review.
func (s *DefaultReviewService) DeleteReview(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
