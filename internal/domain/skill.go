package domain

import "context"

type Skill struct {
	ID                int64            `json:"id"`
	SkillName         string           `json:"skillName"`
	ProficiencyLevel  ProficiencyLevel `json:"proficiencyLevel"`
	SkillCategory     string           `json:"skillCategory"`
	SkillDescription  *string          `json:"skillDescription,omitempty"`
	YearsOfExperience *int             `json:"yearsOfExperience,omitempty"`
	UserID            int64            `json:"-"`
	Projects          []Project        `json:"projects"`
}

// UpdateSkillInput carries a partial skill update. Nil fields are left
// untouched. A non-nil ProjectIDs replaces the whole association set.
type UpdateSkillInput struct {
	SkillName         *string
	ProficiencyLevel  *ProficiencyLevel
	SkillCategory     *string
	SkillDescription  *string
	YearsOfExperience *int
	ProjectIDs        []int64
}

type SkillRepository interface {
	// Create inserts the skill and its project join rows in one transaction.
	Create(ctx context.Context, skill *Skill, projectIDs []int64) error
	GetByIDForUser(ctx context.Context, id, userID int64) (*Skill, error)
	FetchByUser(ctx context.Context, userID int64) ([]Skill, error)
	FindByNameForUser(ctx context.Context, name string, userID int64) (*Skill, error)
	// GetByIDs resolves skills by ID set, owner-agnostic. Used by the
	// relationship resolution step in project and goal creation.
	GetByIDs(ctx context.Context, ids []int64) ([]Skill, error)
	Update(ctx context.Context, skill *Skill) error
	ReplaceProjects(ctx context.Context, skillID int64, projectIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

type SkillUsecase interface {
	Create(ctx context.Context, userID int64, skill *Skill, projectIDs []int64) (*Skill, error)
	List(ctx context.Context, userID int64) ([]Skill, error)
	Get(ctx context.Context, id, userID int64) (*Skill, error)
	Update(ctx context.Context, id, userID int64, in *UpdateSkillInput) (*Skill, error)
	Delete(ctx context.Context, id, userID int64) error
}
