package domain

import (
	"context"
	"time"
)

// SocialLinks is stored as a JSONB column on the users table.
type SocialLinks struct {
	Github    *string `json:"github,omitempty"`
	Linkedin  *string `json:"linkedin,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Portfolio *string `json:"portfolio,omitempty"`
}

type User struct {
	ID           int64        `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // never serialized
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	JobTitle     *string      `json:"jobTitle,omitempty"`
	ProfileImage *string      `json:"profileImage,omitempty"`
	UserBio      *string      `json:"userBio,omitempty"`
	SocialLinks  *SocialLinks `json:"socialLinks,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// RelationCounts summarizes how many records a user owns per resource.
type RelationCounts struct {
	Skills   int64 `json:"skills"`
	Projects int64 `json:"projects"`
	Goals    int64 `json:"goals"`
}

// Profile is the /users/me view: the account plus relation summaries.
type Profile struct {
	User
	Summary RelationCounts `json:"summary"`
}

// UpdateUserInput carries a partial profile update. Nil fields are left
// untouched (merge semantics).
type UpdateUserInput struct {
	FirstName    *string
	LastName     *string
	JobTitle     *string
	ProfileImage *string
	UserBio      *string
	SocialLinks  *SocialLinks
}

// AuthResult is returned by a successful login.
type AuthResult struct {
	AccessToken string `json:"accessToken"`
	User        *User  `json:"user"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateEmail(ctx context.Context, id int64, email string) error
	Delete(ctx context.Context, id int64) error
	CountRelations(ctx context.Context, id int64) (*RelationCounts, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, user *User, password, confirmPassword string) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
	UpdateProfile(ctx context.Context, userID int64, in *UpdateUserInput) (*User, error)
	UpdatePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
	UpdateEmail(ctx context.Context, userID int64, newEmail string) error
	DeleteAccount(ctx context.Context, userID int64) error
}
