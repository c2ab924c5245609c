package usecase

import (
	"context"
	"fmt"

	"go-skillstack-backend/internal/domain"
	"go-skillstack-backend/pkg/apperror"
)

type projectUsecase struct {
	projectRepo domain.ProjectRepository
	skillRepo   domain.SkillRepository
	userRepo    domain.UserRepository
}

// NewProjectUsecase creates a new project usecase
func NewProjectUsecase(projectRepo domain.ProjectRepository, skillRepo domain.SkillRepository, userRepo domain.UserRepository) domain.ProjectUsecase {
	return &projectUsecase{
		projectRepo: projectRepo,
		skillRepo:   skillRepo,
		userRepo:    userRepo,
	}
}

func (uc *projectUsecase) resolveSkills(ctx context.Context, ids []int64) ([]int64, error) {
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

// Create adds a project for the user, linking it to the given skills.
// Nothing is persisted unless the title is free and every skill resolves.
func (uc *projectUsecase) Create(ctx context.Context, userID int64, project *domain.Project, skillIDs []int64) (*domain.Project, error) {
	_, err := uc.projectRepo.FindByTitleForUser(ctx, project.ProjectTitle, userID)
	if err == nil {
		return nil, apperror.Conflict("Project's name already used")
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

	project.UserID = userID
	if err := uc.projectRepo.Create(ctx, project, skillIDs); err != nil {
		if err == domain.ErrDuplicate {
			return nil, apperror.Conflict("Project's name already used")
		}
		return nil, err
	}

	return uc.projectRepo.GetByIDForUser(ctx, project.ID, userID)
}

// List returns every project the user owns, with skills attached
func (uc *projectUsecase) List(ctx context.Context, userID int64) ([]domain.Project, error) {
	return uc.projectRepo.FetchByUser(ctx, userID)
}

// Get returns one project the user owns
func (uc *projectUsecase) Get(ctx context.Context, id, userID int64) (*domain.Project, error) {
	project, err := uc.projectRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound(fmt.Sprintf("Project %d not found or access denied", id))
		}
		return nil, err
	}
	return project, nil
}

// Update applies a partial update. A retitle is checked against the user's
// other projects; a non-nil SkillIDs replaces the association set.
func (uc *projectUsecase) Update(ctx context.Context, id, userID int64, in *domain.UpdateProjectInput) (*domain.Project, error) {
	project, err := uc.projectRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound(fmt.Sprintf("Project %d not found or access denied", id))
		}
		return nil, err
	}

	if in.ProjectTitle != nil {
		existing, err := uc.projectRepo.FindByTitleForUser(ctx, *in.ProjectTitle, userID)
		if err == nil && existing.ID != id {
			return nil, apperror.Conflict("Project's name already used")
		}
		if err != nil && err != domain.ErrNotFound {
			return nil, err
		}
		project.ProjectTitle = *in.ProjectTitle
	}
	if in.ProjectDescription != nil {
		project.ProjectDescription = emptyToNil(in.ProjectDescription)
	}
	if in.Thumbnail != nil {
		project.Thumbnail = emptyToNil(in.Thumbnail)
	}
	if in.ProjectGithubURL != nil {
		project.ProjectGithubURL = emptyToNil(in.ProjectGithubURL)
	}
	if in.ProjectLiveURL != nil {
		project.ProjectLiveURL = emptyToNil(in.ProjectLiveURL)
	}
	if in.ProjectStatus != nil {
		project.ProjectStatus = *in.ProjectStatus
	}
	if in.ProjectStartedDate != nil {
		project.ProjectStartedDate = in.ProjectStartedDate
	}
	if in.ProjectFinishedDate != nil {
		project.ProjectFinishedDate = in.ProjectFinishedDate
	}

	// Resolve before writing anything so a bad ID list leaves the row untouched.
	var skillIDs []int64
	if in.SkillIDs != nil {
		skillIDs, err = uc.resolveSkills(ctx, in.SkillIDs)
		if err != nil {
			return nil, err
		}
	}

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		if err == domain.ErrDuplicate {
			return nil, apperror.Conflict("Project's name already used")
		}
		return nil, err
	}

	if in.SkillIDs != nil {
		if err := uc.projectRepo.ReplaceSkills(ctx, id, skillIDs); err != nil {
			return nil, err
		}
	}

	return uc.projectRepo.GetByIDForUser(ctx, id, userID)
}

// Delete removes a project the user owns, along with its join rows
func (uc *projectUsecase) Delete(ctx context.Context, id, userID int64) error {
	if _, err := uc.projectRepo.GetByIDForUser(ctx, id, userID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound(fmt.Sprintf("Project %d not found or access denied", id))
		}
		return err
	}
	return uc.projectRepo.Delete(ctx, id)
}
