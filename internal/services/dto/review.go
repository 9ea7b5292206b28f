package dto

import "mentorhub_backend/internal/models"

type CreateReviewRequest struct {
	MenteeID int     `json:"menteeId" validate:"required,min=1"`
	Rating   int     `json:"rating" validate:"required,min=1,max=5"`
	Comment  *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

// ReviewWithMentee is a review enriched with the reviewing mentee's
// summary. Mentee is null when the referenced user no longer resolves.
type ReviewWithMentee struct {
	models.Review
	Mentee *UserSummary `json:"mentee"`
}
