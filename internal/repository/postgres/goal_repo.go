package postgres

import (
	"context"
	"errors"

	"go-skillstack-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const goalColumns = `id, user_id, goal_title, goal_description, goal_status, goal_priority, goal_time_line, start_date, due_date, category, progress, goal_note`

type goalRepo struct {
	db *pgxpool.Pool
}

func NewGoalRepository(db *pgxpool.Pool) domain.GoalRepository {
	return &goalRepo{db: db}
}

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var goal domain.Goal
	err := row.Scan(
		&goal.ID, &goal.UserID, &goal.GoalTitle, &goal.GoalDescription,
		&goal.GoalStatus, &goal.GoalPriority, &goal.GoalTimeLine,
		&goal.StartDate, &goal.DueDate, &goal.Category, &goal.Progress, &goal.GoalNote,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	goal.Skills = []domain.Skill{}
	return &goal, nil
}

func (r *goalRepo) Create(ctx context.Context, goal *domain.Goal, skillIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO goals (user_id, goal_title, goal_description, goal_status, goal_priority, goal_time_line, start_date, due_date, category, progress, goal_note)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err = tx.QueryRow(ctx, query,
		goal.UserID, goal.GoalTitle, goal.GoalDescription, goal.GoalStatus,
		goal.GoalPriority, goal.GoalTimeLine, goal.StartDate, goal.DueDate,
		goal.Category, goal.Progress, goal.GoalNote,
	).Scan(&goal.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}

	for _, skillID := range skillIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO goal_skills (goal_id, skill_id) VALUES ($1, $2)`,
			goal.ID, skillID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *goalRepo) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1 AND user_id = $2`
	goal, err := scanGoal(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, err
	}
	targets := []*skillTarget{{id: goal.ID, dst: &goal.Skills}}
	if err := loadSkillsVia(ctx, r.db, `goal_skills`, `goal_id`, targets); err != nil {
		return nil, err
	}
	return goal, nil
}

func (r *goalRepo) FetchByUser(ctx context.Context, userID int64) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *goal)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	targets := make([]*skillTarget, len(goals))
	for i := range goals {
		targets[i] = &skillTarget{id: goals[i].ID, dst: &goals[i].Skills}
	}
	if err := loadSkillsVia(ctx, r.db, `goal_skills`, `goal_id`, targets); err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *goalRepo) FindByTitleForUser(ctx context.Context, title string, userID int64) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $2 AND lower(goal_title) = lower($1)`
	return scanGoal(r.db.QueryRow(ctx, query, title, userID))
}

func (r *goalRepo) Update(ctx context.Context, goal *domain.Goal) error {
	query := `UPDATE goals SET
		goal_title = $2,
		goal_description = $3,
		goal_status = $4,
		goal_priority = $5,
		goal_time_line = $6,
		start_date = $7,
		due_date = $8,
		category = $9,
		progress = $10,
		goal_note = $11
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		goal.ID, goal.GoalTitle, goal.GoalDescription, goal.GoalStatus,
		goal.GoalPriority, goal.GoalTimeLine, goal.StartDate, goal.DueDate,
		goal.Category, goal.Progress, goal.GoalNote,
	)
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

func (r *goalRepo) ReplaceSkills(ctx context.Context, goalID int64, skillIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM goal_skills WHERE goal_id = $1`, goalID); err != nil {
		return err
	}
	for _, skillID := range skillIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO goal_skills (goal_id, skill_id) VALUES ($1, $2)`,
			goalID, skillID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *goalRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM goal_skills WHERE goal_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}
