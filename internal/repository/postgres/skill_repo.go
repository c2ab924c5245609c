package postgres

import (
	"context"
	"errors"

	"go-skillstack-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const skillColumns = `id, user_id, skill_name, proficiency_level, skill_category, skill_description, years_of_experience`

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func scanSkill(row pgx.Row) (*domain.Skill, error) {
	var skill domain.Skill
	err := row.Scan(
		&skill.ID, &skill.UserID, &skill.SkillName, &skill.ProficiencyLevel,
		&skill.SkillCategory, &skill.SkillDescription, &skill.YearsOfExperience,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	skill.Projects = []domain.Project{}
	return &skill, nil
}

func (r *skillRepo) Create(ctx context.Context, skill *domain.Skill, projectIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO skills (user_id, skill_name, proficiency_level, skill_category, skill_description, years_of_experience)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err = tx.QueryRow(ctx, query,
		skill.UserID, skill.SkillName, skill.ProficiencyLevel,
		skill.SkillCategory, skill.SkillDescription, skill.YearsOfExperience,
	).Scan(&skill.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}

	for _, projectID := range projectIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO project_skills (project_id, skill_id) VALUES ($1, $2)`,
			projectID, skill.ID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *skillRepo) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1 AND user_id = $2`
	skill, err := scanSkill(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, err
	}
	if err := r.loadProjects(ctx, []*domain.Skill{skill}); err != nil {
		return nil, err
	}
	return skill, nil
}

func (r *skillRepo) FetchByUser(ctx context.Context, userID int64) ([]domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		skill, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, *skill)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.Skill, len(skills))
	for i := range skills {
		refs[i] = &skills[i]
	}
	if err := r.loadProjects(ctx, refs); err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *skillRepo) FindByNameForUser(ctx context.Context, name string, userID int64) (*domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE user_id = $2 AND lower(skill_name) = lower($1)`
	return scanSkill(r.db.QueryRow(ctx, query, name, userID))
}

func (r *skillRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Skill, error) {
	if len(ids) == 0 {
		return []domain.Skill{}, nil
	}
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = ANY($1) ORDER BY id`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		skill, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, *skill)
	}
	return skills, rows.Err()
}

func (r *skillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	query := `UPDATE skills SET
		skill_name = $2,
		proficiency_level = $3,
		skill_category = $4,
		skill_description = $5,
		years_of_experience = $6
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		skill.ID, skill.SkillName, skill.ProficiencyLevel,
		skill.SkillCategory, skill.SkillDescription, skill.YearsOfExperience,
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

func (r *skillRepo) ReplaceProjects(ctx context.Context, skillID int64, projectIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM project_skills WHERE skill_id = $1`, skillID); err != nil {
		return err
	}
	for _, projectID := range projectIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO project_skills (project_id, skill_id) VALUES ($1, $2)`,
			projectID, skillID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *skillRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM project_skills WHERE skill_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM goal_skills WHERE skill_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

// loadProjects hydrates the Projects collection for the given skills with a
// single join query.
func (r *skillRepo) loadProjects(ctx context.Context, skills []*domain.Skill) error {
	if len(skills) == 0 {
		return nil
	}
	ids := make([]int64, len(skills))
	byID := make(map[int64]*domain.Skill, len(skills))
	for i, skill := range skills {
		ids[i] = skill.ID
		byID[skill.ID] = skill
	}

	query := `SELECT ps.skill_id, p.id, p.user_id, p.project_title, p.project_description, p.thumbnail,
                     p.project_github_url, p.project_live_url, p.project_status, p.project_started_date, p.project_finished_date
              FROM project_skills ps
              JOIN projects p ON p.id = ps.project_id
              WHERE ps.skill_id = ANY($1)
              ORDER BY p.id`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var skillID int64
		var project domain.Project
		if err := rows.Scan(
			&skillID, &project.ID, &project.UserID, &project.ProjectTitle, &project.ProjectDescription,
			&project.Thumbnail, &project.ProjectGithubURL, &project.ProjectLiveURL, &project.ProjectStatus,
			&project.ProjectStartedDate, &project.ProjectFinishedDate,
		); err != nil {
			return err
		}
		project.Skills = []domain.Skill{}
		if skill, ok := byID[skillID]; ok {
			skill.Projects = append(skill.Projects, project)
		}
	}
	return rows.Err()
}
