package usecase

import (
	"context"
	"strings"

	"go-skillstack-backend/internal/domain"
	"go-skillstack-backend/pkg/apperror"
	"go-skillstack-backend/pkg/auth"
)

type userUsecase struct {
	userRepo   domain.UserRepository
	bcryptCost int
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo domain.UserRepository, bcryptCost int) domain.UserUsecase {
	return &userUsecase{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
	}
}

// GetProfile returns the account together with per-resource counts
func (uc *userUsecase) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	counts, err := uc.userRepo.CountRelations(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.Profile{User: *user, Summary: *counts}, nil
}

// UpdateProfile applies a partial update; nil fields keep their stored value
func (uc *userUsecase) UpdateProfile(ctx context.Context, userID int64, in *domain.UpdateUserInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.JobTitle != nil {
		user.JobTitle = in.JobTitle
	}
	if in.ProfileImage != nil {
		user.ProfileImage = in.ProfileImage
	}
	if in.UserBio != nil {
		user.UserBio = in.UserBio
	}
	if in.SocialLinks != nil {
		user.SocialLinks = in.SocialLinks
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword re-hashes and stores the password after verifying the current one
func (uc *userUsecase) UpdatePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("User not found")
		}
		return err
	}

	if !auth.CheckPassword(user.PasswordHash, currentPassword) {
		return apperror.BadRequest("Current password is incorrect")
	}

	hash, err := auth.HashPassword(newPassword, uc.bcryptCost)
	if err != nil {
		return err
	}

	return uc.userRepo.UpdatePassword(ctx, userID, hash)
}

// UpdateEmail changes the login email, rejecting addresses already in use
func (uc *userUsecase) UpdateEmail(ctx context.Context, userID int64, newEmail string) error {
	newEmail = strings.ToLower(strings.TrimSpace(newEmail))

	if err := uc.userRepo.UpdateEmail(ctx, userID, newEmail); err != nil {
		switch err {
		case domain.ErrDuplicate:
			return apperror.Conflict("Email already in use")
		case domain.ErrNotFound:
			return apperror.NotFound("User not found")
		}
		return err
	}
	return nil
}

// DeleteAccount removes the user and everything they own
func (uc *userUsecase) DeleteAccount(ctx context.Context, userID int64) error {
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("User not found")
		}
		return err
	}
	return nil
}
