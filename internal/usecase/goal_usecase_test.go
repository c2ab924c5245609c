package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-skillstack-backend/internal/domain"
	"go-skillstack-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGoalCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return conflict when the title is already used by the caller", func(t *testing.T) {
		goalRepo := new(MockGoalRepo)
		uc := usecase.NewGoalUsecase(goalRepo, new(MockSkillRepo), new(MockUserRepo))

		goalRepo.On("FindByTitleForUser", mock.Anything, "Learn Go", int64(1)).
			Return(&domain.Goal{ID: 2, GoalTitle: "Learn Go"}, nil)

		_, err := uc.Create(ctx, 1, &domain.Goal{GoalTitle: "Learn Go"}, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Goal's name already used")
		goalRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should resolve linked skills strictly", func(t *testing.T) {
		goalRepo := new(MockGoalRepo)
		skillRepo := new(MockSkillRepo)
		userRepo := new(MockUserRepo)
		uc := usecase.NewGoalUsecase(goalRepo, skillRepo, userRepo)

		goalRepo.On("FindByTitleForUser", mock.Anything, "Learn Go", int64(1)).Return(nil, domain.ErrNotFound)
		userRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
		skillRepo.On("GetByIDs", mock.Anything, []int64{7, 8}).Return([]domain.Skill{}, nil)

		_, err := uc.Create(ctx, 1, &domain.Goal{GoalTitle: "Learn Go"}, []int64{7, 8})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Skills not found: 7, 8")
		goalRepo.AssertNotCalled(t, "Create")
	})
}

func TestGoalUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should merge only the fields that are present", func(t *testing.T) {
		goalRepo := new(MockGoalRepo)
		uc := usecase.NewGoalUsecase(goalRepo, new(MockSkillRepo), new(MockUserRepo))

		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		stored := &domain.Goal{
			ID: 1, GoalTitle: "Learn Go", GoalStatus: domain.StatusNotStarted,
			GoalPriority: domain.PriorityHigh, GoalTimeLine: domain.TimeLineShortTerm,
			StartDate: start, Category: "Learning", Progress: 10, UserID: 1,
			Skills: []domain.Skill{},
		}
		goalRepo.On("GetByIDForUser", mock.Anything, int64(1), int64(1)).Return(stored, nil)
		goalRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		progress := 60
		status := domain.StatusInProgress
		updated, err := uc.Update(ctx, 1, 1, &domain.UpdateGoalInput{
			Progress:   &progress,
			GoalStatus: &status,
		})
		assert.NoError(t, err)
		assert.Equal(t, 60, updated.Progress)
		assert.Equal(t, domain.StatusInProgress, updated.GoalStatus)
		assert.Equal(t, "Learn Go", updated.GoalTitle)
		assert.Equal(t, domain.PriorityHigh, updated.GoalPriority)
		assert.Equal(t, start, updated.StartDate)
	})

	t.Run("Should persist nothing when a skill ID fails to resolve", func(t *testing.T) {
		goalRepo := new(MockGoalRepo)
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewGoalUsecase(goalRepo, skillRepo, new(MockUserRepo))

		goalRepo.On("GetByIDForUser", mock.Anything, int64(1), int64(1)).
			Return(&domain.Goal{ID: 1, GoalTitle: "Learn Go", UserID: 1}, nil)
		skillRepo.On("GetByIDs", mock.Anything, []int64{5}).Return([]domain.Skill{}, nil)

		progress := 80
		_, err := uc.Update(ctx, 1, 1, &domain.UpdateGoalInput{Progress: &progress, SkillIDs: []int64{5}})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Skills not found: 5")
		goalRepo.AssertNotCalled(t, "Update")
		goalRepo.AssertNotCalled(t, "ReplaceSkills")
	})
}

func TestGoalList(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return an empty slice when the user has no goals", func(t *testing.T) {
		goalRepo := new(MockGoalRepo)
		uc := usecase.NewGoalUsecase(goalRepo, new(MockSkillRepo), new(MockUserRepo))

		goalRepo.On("FetchByUser", mock.Anything, int64(1)).Return([]domain.Goal{}, nil)

		goals, err := uc.List(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, goals)
		assert.Empty(t, goals)
	})
}
