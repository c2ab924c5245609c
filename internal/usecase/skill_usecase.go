package usecase

import (
	"context"
	"fmt"

	"go-skillstack-backend/internal/domain"
	"go-skillstack-backend/pkg/apperror"
)

type skillUsecase struct {
	skillRepo   domain.SkillRepository
	projectRepo domain.ProjectRepository
	userRepo    domain.UserRepository
}

// NewSkillUsecase creates a new skill usecase
func NewSkillUsecase(skillRepo domain.SkillRepository, projectRepo domain.ProjectRepository, userRepo domain.UserRepository) domain.SkillUsecase {
	return &skillUsecase{
		skillRepo:   skillRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// resolveProjects verifies that every requested project ID exists. It errors
// with the full list of unknown IDs so the caller can fix the request in one
// round trip.
func (uc *skillUsecase) resolveProjects(ctx context.Context, ids []int64) ([]int64, error) {
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	projects, err := uc.projectRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[int64]struct{}, len(projects))
	for _, p := range projects {
		found[p.ID] = struct{}{}
	}
	if missing := missingIDs(ids, found); len(missing) > 0 {
		return nil, apperror.NotFound(notFoundList("Projects", missing))
	}
	return ids, nil
}

// Create adds a skill for the user, linking it to the given projects.
// Nothing is persisted unless the name is free and every project resolves.
func (uc *skillUsecase) Create(ctx context.Context, userID int64, skill *domain.Skill, projectIDs []int64) (*domain.Skill, error) {
	_, err := uc.skillRepo.FindByNameForUser(ctx, skill.SkillName, userID)
	if err == nil {
		return nil, apperror.Conflict("Skill already exists")
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

	projectIDs, err = uc.resolveProjects(ctx, projectIDs)
	if err != nil {
		return nil, err
	}

	skill.UserID = userID
	if err := uc.skillRepo.Create(ctx, skill, projectIDs); err != nil {
		if err == domain.ErrDuplicate {
			return nil, apperror.Conflict("Skill already exists")
		}
		return nil, err
	}

	return uc.skillRepo.GetByIDForUser(ctx, skill.ID, userID)
}

// List returns every skill the user owns, with projects attached
func (uc *skillUsecase) List(ctx context.Context, userID int64) ([]domain.Skill, error) {
	return uc.skillRepo.FetchByUser(ctx, userID)
}

// Get returns one skill the user owns
func (uc *skillUsecase) Get(ctx context.Context, id, userID int64) (*domain.Skill, error) {
	skill, err := uc.skillRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound(fmt.Sprintf("Skill %d not found or access denied", id))
		}
		return nil, err
	}
	return skill, nil
}

// Update applies a partial update. A rename is checked against the user's
// other skills; a non-nil ProjectIDs replaces the association set.
func (uc *skillUsecase) Update(ctx context.Context, id, userID int64, in *domain.UpdateSkillInput) (*domain.Skill, error) {
	skill, err := uc.skillRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound(fmt.Sprintf("Skill %d not found or access denied", id))
		}
		return nil, err
	}

	if in.SkillName != nil {
		existing, err := uc.skillRepo.FindByNameForUser(ctx, *in.SkillName, userID)
		if err == nil && existing.ID != id {
			return nil, apperror.Conflict("Skill already exists")
		}
		if err != nil && err != domain.ErrNotFound {
			return nil, err
		}
		skill.SkillName = *in.SkillName
	}
	if in.ProficiencyLevel != nil {
		skill.ProficiencyLevel = *in.ProficiencyLevel
	}
	if in.SkillCategory != nil {
		skill.SkillCategory = *in.SkillCategory
	}
	if in.SkillDescription != nil {
		skill.SkillDescription = emptyToNil(in.SkillDescription)
	}
	if in.YearsOfExperience != nil {
		skill.YearsOfExperience = in.YearsOfExperience
	}

	// Resolve before writing anything so a bad ID list leaves the row untouched.
	var projectIDs []int64
	if in.ProjectIDs != nil {
		projectIDs, err = uc.resolveProjects(ctx, in.ProjectIDs)
		if err != nil {
			return nil, err
		}
	}

	if err := uc.skillRepo.Update(ctx, skill); err != nil {
		if err == domain.ErrDuplicate {
			return nil, apperror.Conflict("Skill already exists")
		}
		return nil, err
	}

	if in.ProjectIDs != nil {
		if err := uc.skillRepo.ReplaceProjects(ctx, id, projectIDs); err != nil {
			return nil, err
		}
	}

	return uc.skillRepo.GetByIDForUser(ctx, id, userID)
}

// Delete removes a skill the user owns, along with its join rows
func (uc *skillUsecase) Delete(ctx context.Context, id, userID int64) error {
	if _, err := uc.skillRepo.GetByIDForUser(ctx, id, userID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound(fmt.Sprintf("Skill %d not found or access denied", id))
		}
		return err
	}
	return uc.skillRepo.Delete(ctx, id)
}
