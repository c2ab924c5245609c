package domain

import (
	"context"
	"time"
)

type Goal struct {
	ID              int64     `json:"id"`
	GoalTitle       string    `json:"goalTitle"`
	GoalDescription *string   `json:"goalDescription,omitempty"`
	GoalStatus      Status    `json:"goalStatus"`
	GoalPriority    Priority  `json:"goalPriority"`
	GoalTimeLine    TimeLine  `json:"goalTimeLine"`
	StartDate       time.Time `json:"startDate"`
	DueDate         time.Time `json:"dueDate"`
	Category        string    `json:"category"`
	Progress        int       `json:"progress"`
	GoalNote        *string   `json:"goalNote,omitempty"`
	UserID          int64     `json:"-"`
	Skills          []Skill   `json:"skills"`
}

// UpdateGoalInput carries a partial goal update. Nil fields are left
// untouched. A non-nil SkillIDs replaces the whole association set.
type UpdateGoalInput struct {
	GoalTitle       *string
	GoalDescription *string
	GoalStatus      *Status
	GoalPriority    *Priority
	GoalTimeLine    *TimeLine
	StartDate       *time.Time
	DueDate         *time.Time
	Category        *string
	Progress        *int
	GoalNote        *string
	SkillIDs        []int64
}

type GoalRepository interface {
	// Create inserts the goal and its skill join rows in one transaction.
	Create(ctx context.Context, goal *Goal, skillIDs []int64) error
	GetByIDForUser(ctx context.Context, id, userID int64) (*Goal, error)
	FetchByUser(ctx context.Context, userID int64) ([]Goal, error)
	FindByTitleForUser(ctx context.Context, title string, userID int64) (*Goal, error)
	Update(ctx context.Context, goal *Goal) error
	ReplaceSkills(ctx context.Context, goalID int64, skillIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

type GoalUsecase interface {
	Create(ctx context.Context, userID int64, goal *Goal, skillIDs []int64) (*Goal, error)
	List(ctx context.Context, userID int64) ([]Goal, error)
	Get(ctx context.Context, id, userID int64) (*Goal, error)
	Update(ctx context.Context, id, userID int64, in *UpdateGoalInput) (*Goal, error)
	Delete(ctx context.Context, id, userID int64) error
}
