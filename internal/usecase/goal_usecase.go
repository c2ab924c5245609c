package usecase

import (
	"context"
	"fmt"

	"go-skillstack-backend/internal/domain"
	"go-skillstack-backend/pkg/apperror"
)

type goalUsecase struct {
	goalRepo  domain.GoalRepository
	skillRepo domain.SkillRepository
	userRepo  domain.UserRepository
}

// NewGoalUsecase creates a new goal usecase
func NewGoalUsecase(goalRepo domain.GoalRepository, skillRepo domain.SkillRepository, userRepo domain.UserRepository) domain.GoalUsecase {
	return &goalUsecase{
		goalRepo:  goalRepo,
		skillRepo: skillRepo,
		userRepo:  userRepo,
	}
}

func (uc *goalUsecase) resolveSkills(ctx context.Context, ids []int64) ([]int64, error) {
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	skills, err := uc.skillRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[int64]struct{}, len(skills))
	for _, s := range skills {
		found[s.ID] = struct{}{}
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return nil, apperror.NotFound(notFoundList("Skills", missing))
	}
	return ids, nil
}

// Create adds a goal for the user, linking it to the given skills.
// Nothing is persisted unless the title is free and every skill resolves.
func (uc *goalUsecase) Create(ctx context.Context, userID int64, goal *domain.Goal, skillIDs []int64) (*domain.Goal, error) {
	_, err := uc.goalRepo.FindByTitleForUser(ctx, goal.GoalTitle, userID)
	if err == nil {
		return nil, apperror.Conflict("Goal's name already used")
	}
	if err != domain.ErrNotFound {
		return nil, err
	}

	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	skillIDs, err = uc.resolveSkills(ctx, skillIDs)
	if err != nil {
		return nil, err
	}

	goal.UserID = userID
	if err := uc.goalRepo.Create(ctx, goal, skillIDs); err != nil {
		if err == domain.ErrDuplicate {
			return nil, apperror.Conflict("Goal's name already used")
		}
		return nil, err
	}

	return uc.goalRepo.GetByIDForUser(ctx, goal.ID, userID)
}

// List returns every goal the user owns, with skills attached
func (uc *goalUsecase) List(ctx context.Context, userID int64) ([]domain.Goal, error) {
	return uc.goalRepo.FetchByUser(ctx, userID)
}

// Get returns one goal the user owns
func (uc *goalUsecase) Get(ctx context.Context, id, userID int64) (*domain.Goal, error) {
	goal, err := uc.goalRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound(fmt.Sprintf("Goal %d not found or access denied", id))
		}
		return nil, err
	}
	return goal, nil
}

// Update applies a partial update. A retitle is checked against the user's
// other goals; a non-nil SkillIDs replaces the association set.
func (uc *goalUsecase) Update(ctx context.Context, id, userID int64, in *domain.UpdateGoalInput) (*domain.Goal, error) {
	goal, err := uc.goalRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound(fmt.Sprintf("Goal %d not found or access denied", id))
		}
		return nil, err
	}

	if in.GoalTitle != nil {
		existing, err := uc.goalRepo.FindByTitleForUser(ctx, *in.GoalTitle, userID)
		if err == nil && existing.ID != id {
			return nil, apperror.Conflict("Goal's name already used")
		}
		if err != nil && err != domain.ErrNotFound {
			return nil, err
		}
		goal.GoalTitle = *in.GoalTitle
	}
	if in.GoalDescription != nil {
		goal.GoalDescription = emptyToNil(in.GoalDescription)
	}
	if in.GoalStatus != nil {
		goal.GoalStatus = *in.GoalStatus
	}
	if in.GoalPriority != nil {
		goal.GoalPriority = *in.GoalPriority
	}
	if in.GoalTimeLine != nil {
		goal.GoalTimeLine = *in.GoalTimeLine
	}
	if in.StartDate != nil {
		goal.StartDate = *in.StartDate
	}
	if in.DueDate != nil {
		goal.DueDate = *in.DueDate
	}
	if in.Category != nil {
		goal.Category = *in.Category
	}
	if in.Progress != nil {
		goal.Progress = *in.Progress
	}
	if in.GoalNote != nil {
		goal.GoalNote = emptyToNil(in.GoalNote)
	}

	// Resolve before writing anything so a bad ID list leaves the row untouched.
	var skillIDs []int64
	if in.SkillIDs != nil {
		skillIDs, err = uc.resolveSkills(ctx, in.SkillIDs)
		if err != nil {
			return nil, err
		}
	}

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		if err == domain.ErrDuplicate {
			return nil, apperror.Conflict("Goal's name already used")
		}
		return nil, err
	}

	if in.SkillIDs != nil {
		if err := uc.goalRepo.ReplaceSkills(ctx, id, skillIDs); err != nil {
			return nil, err
		}
	}

	return uc.goalRepo.GetByIDForUser(ctx, id, userID)
}

// Delete removes a goal the user owns, along with its join rows
func (uc *goalUsecase) Delete(ctx context.Context, id, userID int64) error {
	if _, err := uc.goalRepo.GetByIDForUser(ctx, id, userID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound(fmt.Sprintf("Goal %d not found or access denied", id))
		}
		return err
	}
	return uc.goalRepo.Delete(ctx, id)
}
