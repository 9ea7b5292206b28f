package services

import (
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
)

// userSummary resolves a user id into the embedded summary shape, or nil
// when the reference no longer resolves.
func userSummary(userRepo repositories.UserRepository, id int) *dto.UserSummary {
	user, err := userRepo.FindByID(id)
	if err != nil {
		return nil
	}
	return &dto.UserSummary{
		ID:             user.ID,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		ProfilePicture: user.ProfilePic,
		Position:       user.Position,
		Company:        user.Company,
	}
}
