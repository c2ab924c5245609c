package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"go-skillstack-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func marshalSocialLinks(links *domain.SocialLinks) ([]byte, error) {
	if links == nil {
		return nil, nil
	}
	return json.Marshal(links)
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var socialLinks []byte
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.JobTitle, &user.ProfileImage, &user.UserBio, &socialLinks,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if socialLinks != nil {
		user.SocialLinks = &domain.SocialLinks{}
		if err := json.Unmarshal(socialLinks, user.SocialLinks); err != nil {
			return nil, err
		}
	}
	return &user, nil
}

const userColumns = `id, email, password_hash, first_name, last_name, job_title, profile_image, user_bio, social_links, created_at, updated_at`

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	links, err := marshalSocialLinks(user.SocialLinks)
	if err != nil {
		return err
	}
	query := `INSERT INTO users (email, password_hash, first_name, last_name, job_title, profile_image, user_bio, social_links)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at`
	err = r.db.QueryRow(ctx, query,
		user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.JobTitle, user.ProfileImage, user.UserBio, links,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	links, err := marshalSocialLinks(user.SocialLinks)
	if err != nil {
		return err
	}
	query := `UPDATE users SET
		first_name = $2,
		last_name = $3,
		job_title = $4,
		profile_image = $5,
		user_bio = $6,
		social_links = $7,
		updated_at = now()
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		user.ID, user.FirstName, user.LastName, user.JobTitle,
		user.ProfileImage, user.UserBio, links,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) UpdateEmail(ctx context.Context, id int64, email string) error {
	query := `UPDATE users SET email = $2, updated_at = now() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, email)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the account and everything it owns. Join rows and child
// rows are deleted explicitly inside one transaction; the ON DELETE CASCADE
// constraints exist only as a backstop.
func (r *userRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cleanup := []string{
		`DELETE FROM project_skills WHERE project_id IN (SELECT id FROM projects WHERE user_id = $1)`,
		`DELETE FROM project_skills WHERE skill_id IN (SELECT id FROM skills WHERE user_id = $1)`,
		`DELETE FROM goal_skills WHERE goal_id IN (SELECT id FROM goals WHERE user_id = $1)`,
		`DELETE FROM goal_skills WHERE skill_id IN (SELECT id FROM skills WHERE user_id = $1)`,
		`DELETE FROM goals WHERE user_id = $1`,
		`DELETE FROM projects WHERE user_id = $1`,
		`DELETE FROM skills WHERE user_id = $1`,
	}
	for _, query := range cleanup {
		if _, err := tx.Exec(ctx, query, id); err != nil {
			return err
		}
	}

	result, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *userRepo) CountRelations(ctx context.Context, id int64) (*domain.RelationCounts, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM skills WHERE user_id = $1),
		(SELECT COUNT(*) FROM projects WHERE user_id = $1),
		(SELECT COUNT(*) FROM goals WHERE user_id = $1)`
	var counts domain.RelationCounts
	err := r.db.QueryRow(ctx, query, id).Scan(&counts.Skills, &counts.Projects, &counts.Goals)
	if err != nil {
		return nil, err
	}
	return &counts, nil
}
