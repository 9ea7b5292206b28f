package services

import (
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

type ReviewService interface {
	GetMentorReviews(mentorID int) ([]dto.ReviewWithMentee, error)
	CreateReview(mentorID int, req *dto.CreateReviewRequest) (*models.Review, error)
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
	userRepo   repositories.UserRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, userRepo repositories.UserRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
	}
}

// GetMentorReviews lists reviews for a mentor, each enriched with the
// reviewing mentee's summary. An unknown mentor id just yields an empty
// list, matching the listing contract.
func (s *reviewService) GetMentorReviews(mentorID int) ([]dto.ReviewWithMentee, error) {
	reviews, err := s.reviewRepo.FindByMentor(mentorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	enriched := make([]dto.ReviewWithMentee, 0, len(reviews))
	for _, review := range reviews {
		enriched = append(enriched, dto.ReviewWithMentee{
			Review: review,
			Mentee: userSummary(s.userRepo, review.MenteeID),
		})
	}
	return enriched, nil
}

// CreateReview stores a review for an existing mentor. The mentee id is
// recorded as given; only the mentor reference is checked.
func (s *reviewService) CreateReview(mentorID int, req *dto.CreateReviewRequest) (*models.Review, error) {
	mentor, err := s.userRepo.FindByID(mentorID)
	if err != nil || !mentor.IsMentor {
		return nil, apperrors.ErrMentorNotFound
	}

	review := &models.Review{
		MentorID: mentorID,
		MenteeID: req.MenteeID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}

	created, err := s.reviewRepo.Create(review)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return created, nil
}
