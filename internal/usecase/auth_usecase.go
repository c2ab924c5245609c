package usecase

import (
	"context"
	"strings"

	"go-skillstack-backend/internal/domain"
	"go-skillstack-backend/pkg/apperror"
	"go-skillstack-backend/pkg/auth"
)

type authUsecase struct {
	userRepo   domain.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager, bcryptCost int) domain.AuthUsecase {
	return &authUsecase{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new account
func (uc *authUsecase) Register(ctx context.Context, user *domain.User, password, confirmPassword string) (*domain.User, error) {
	if password != confirmPassword {
		return nil, apperror.BadRequest("password and confirm password are not the same")
	}

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	hash, err := auth.HashPassword(password, uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if err == domain.ErrDuplicate {
			return nil, apperror.Conflict("Email already in use")
		}
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and returns a signed access token.
// Unknown email and wrong password produce the same error so the
// response does not leak which accounts exist.
func (uc *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	token, err := uc.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResult{AccessToken: token, User: user}, nil
}
