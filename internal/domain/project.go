package domain

import (
	"context"
	"time"
)

type Project struct {
	ID                  int64      `json:"id"`
	ProjectTitle        string     `json:"projectTitle"`
	ProjectDescription  *string    `json:"projectDescription,omitempty"`
	Thumbnail           *string    `json:"thumbnail,omitempty"`
	ProjectGithubURL    *string    `json:"projectGithubURL,omitempty"`
	ProjectLiveURL      *string    `json:"projectLiveURL,omitempty"`
	ProjectStatus       Status     `json:"projectStatus"`
	ProjectStartedDate  *time.Time `json:"projectStartedDate,omitempty"`
	ProjectFinishedDate *time.Time `json:"projectFinishedDate,omitempty"`
	UserID              int64      `json:"-"`
	Skills              []Skill    `json:"skills"`
}

// UpdateProjectInput carries a partial project update. Nil fields are left
// untouched. A non-nil SkillIDs replaces the whole association set.
type UpdateProjectInput struct {
	ProjectTitle        *string
	ProjectDescription  *string
	Thumbnail           *string
	ProjectGithubURL    *string
	ProjectLiveURL      *string
	ProjectStatus       *Status
	ProjectStartedDate  *time.Time
	ProjectFinishedDate *time.Time
	SkillIDs            []int64
}

type ProjectRepository interface {
	// Create inserts the project and its skill join rows in one transaction.
	Create(ctx context.Context, project *Project, skillIDs []int64) error
	GetByIDForUser(ctx context.Context, id, userID int64) (*Project, error)
	FetchByUser(ctx context.Context, userID int64) ([]Project, error)
	FindByTitleForUser(ctx context.Context, title string, userID int64) (*Project, error)
	// GetByIDs resolves projects by ID set, owner-agnostic. Used by the
	// relationship resolution step in skill creation.
	GetByIDs(ctx context.Context, ids []int64) ([]Project, error)
	Update(ctx context.Context, project *Project) error
	ReplaceSkills(ctx context.Context, projectID int64, skillIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

type ProjectUsecase interface {
	Create(ctx context.Context, userID int64, project *Project, skillIDs []int64) (*Project, error)
	List(ctx context.Context, userID int64) ([]Project, error)
	Get(ctx context.Context, id, userID int64) (*Project, error)
	Update(ctx context.Context, id, userID int64, in *UpdateProjectInput) (*Project, error)
	Delete(ctx context.Context, id, userID int64) error
}
