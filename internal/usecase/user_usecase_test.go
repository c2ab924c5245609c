package usecase_test

import (
	"context"
	"testing"

	"go-skillstack-backend/internal/domain"
	"go-skillstack-backend/internal/usecase"
	"go-skillstack-backend/pkg/apperror"
	"go-skillstack-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should include relation counts", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockRepo, bcrypt.MinCost)

		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, Email: "jane@example.com"}, nil)
		mockRepo.On("CountRelations", mock.Anything, int64(1)).Return(&domain.RelationCounts{Skills: 3, Projects: 2, Goals: 1}, nil)

		profile, err := uc.GetProfile(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), profile.Summary.Skills)
		assert.Equal(t, int64(2), profile.Summary.Projects)
		assert.Equal(t, int64(1), profile.Summary.Goals)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Should leave omitted fields untouched", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockRepo, bcrypt.MinCost)

		bio := "old bio"
		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{
			ID: 1, FirstName: "Jane", LastName: "Doe", UserBio: &bio,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		newFirst := "Janet"
		user, err := uc.UpdateProfile(ctx, 1, &domain.UpdateUserInput{FirstName: &newFirst})
		assert.NoError(t, err)
		assert.Equal(t, "Janet", user.FirstName)
		assert.Equal(t, "Doe", user.LastName)
		assert.Equal(t, "old bio", *user.UserBio)
	})
}

func TestUpdatePassword(t *testing.T) {
	ctx := context.Background()

	hash, _ := auth.HashPassword("current-pass", bcrypt.MinCost)

	t.Run("Should reject a wrong current password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockRepo, bcrypt.MinCost)

		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, PasswordHash: hash}, nil)

		err := uc.UpdatePassword(ctx, 1, "not-the-password", "new-pass-123")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Current password is incorrect")
		mockRepo.AssertNotCalled(t, "UpdatePassword")
	})

	t.Run("Should store a new hash on success", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockRepo, bcrypt.MinCost)

		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, PasswordHash: hash}, nil)
		mockRepo.On("UpdatePassword", mock.Anything, int64(1), mock.MatchedBy(func(h string) bool {
			return bcrypt.CompareHashAndPassword([]byte(h), []byte("new-pass-123")) == nil
		})).Return(nil)

		err := uc.UpdatePassword(ctx, 1, "current-pass", "new-pass-123")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestUpdateEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return conflict when the email belongs to another account", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockRepo, bcrypt.MinCost)

		mockRepo.On("UpdateEmail", mock.Anything, int64(1), "taken@example.com").Return(domain.ErrDuplicate)

		err := uc.UpdateEmail(ctx, 1, "Taken@Example.com ")
		assert.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		assert.True(t, ok)
		assert.Equal(t, 409, appErr.Code)
		assert.Contains(t, err.Error(), "Email already in use")
	})
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete through the repository", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockRepo, bcrypt.MinCost)

		mockRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

		assert.NoError(t, uc.DeleteAccount(ctx, 1))
		mockRepo.AssertExpectations(t)
	})
}
