package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-skillstack-backend/internal/domain"
	"go-skillstack-backend/internal/usecase"
	"go-skillstack-backend/pkg/apperror"
	"go-skillstack-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newTokenManager() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", "skillstack-test", time.Hour)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should fail when passwords do not match", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTokenManager(), bcrypt.MinCost)

		_, err := uc.Register(ctx, &domain.User{Email: "a@b.com"}, "secret123", "different")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "password and confirm password are not the same")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should return conflict when email is taken", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTokenManager(), bcrypt.MinCost)

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

		_, err := uc.Register(ctx, &domain.User{Email: "taken@b.com"}, "secret123", "secret123")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Email already in use")
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
	})

	t.Run("Should hash the password and normalize the email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTokenManager(), bcrypt.MinCost)

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		user := &domain.User{Email: "  Jane@Example.COM ", FirstName: "Jane", LastName: "Doe"}
		created, err := uc.Register(ctx, user, "secret123", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "jane@example.com", created.Email)
		assert.NotEqual(t, "secret123", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret123")))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, _ := auth.HashPassword("correct-horse", bcrypt.MinCost)
	stored := &domain.User{ID: 7, Email: "jane@example.com", PasswordHash: hash}

	t.Run("Should not reveal whether the email exists", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, newTokenManager(), bcrypt.MinCost)

		mockRepo.On("GetByEmail", mock.Anything, "unknown@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(stored, nil)

		_, errUnknown := uc.Login(ctx, "unknown@example.com", "whatever")
		_, errWrongPass := uc.Login(ctx, "jane@example.com", "wrong-password")

		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
		assert.Contains(t, errUnknown.Error(), "Invalid credentials")
	})

	t.Run("Should return a verifiable token on success", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := newTokenManager()
		uc := usecase.NewAuthUsecase(mockRepo, tokens, bcrypt.MinCost)

		mockRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(stored, nil)

		result, err := uc.Login(ctx, "Jane@Example.com", "correct-horse")
		assert.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, int64(7), result.User.ID)

		userID, email, err := tokens.Verify(result.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), userID)
		assert.Equal(t, "jane@example.com", email)
	})
}
