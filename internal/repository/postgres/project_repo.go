package postgres

import (
	"context"
	"errors"

	"go-skillstack-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectColumns = `id, user_id, project_title, project_description, thumbnail, project_github_url, project_live_url, project_status, project_started_date, project_finished_date`

type projectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepo{db: db}
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var project domain.Project
	err := row.Scan(
		&project.ID, &project.UserID, &project.ProjectTitle, &project.ProjectDescription,
		&project.Thumbnail, &project.ProjectGithubURL, &project.ProjectLiveURL,
		&project.ProjectStatus, &project.ProjectStartedDate, &project.ProjectFinishedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	project.Skills = []domain.Skill{}
	return &project, nil
}

func (r *projectRepo) Create(ctx context.Context, project *domain.Project, skillIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO projects (user_id, project_title, project_description, thumbnail, project_github_url, project_live_url, project_status, project_started_date, project_finished_date)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err = tx.QueryRow(ctx, query,
		project.UserID, project.ProjectTitle, project.ProjectDescription, project.Thumbnail,
		project.ProjectGithubURL, project.ProjectLiveURL, project.ProjectStatus,
		project.ProjectStartedDate, project.ProjectFinishedDate,
	).Scan(&project.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return err
	}

	for _, skillID := range skillIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO project_skills (project_id, skill_id) VALUES ($1, $2)`,
			project.ID, skillID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *projectRepo) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 AND user_id = $2`
	project, err := scanProject(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, err
	}
	if err := r.loadSkills(ctx, `project_skills`, `project_id`, []*skillTarget{{id: project.ID, dst: &project.Skills}}); err != nil {
		return nil, err
	}
	return project, nil
}

func (r *projectRepo) FetchByUser(ctx context.Context, userID int64) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	targets := make([]*skillTarget, len(projects))
	for i := range projects {
		targets[i] = &skillTarget{id: projects[i].ID, dst: &projects[i].Skills}
	}
	if err := r.loadSkills(ctx, `project_skills`, `project_id`, targets); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepo) FindByTitleForUser(ctx context.Context, title string, userID int64) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $2 AND lower(project_title) = lower($1)`
	return scanProject(r.db.QueryRow(ctx, query, title, userID))
}

func (r *projectRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Project, error) {
	if len(ids) == 0 {
		return []domain.Project{}, nil
	}
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ANY($1) ORDER BY id`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

func (r *projectRepo) Update(ctx context.Context, project *domain.Project) error {
	query := `UPDATE projects SET
		project_title = $2,
		project_description = $3,
		thumbnail = $4,
		project_github_url = $5,
		project_live_url = $6,
		project_status = $7,
		project_started_date = $8,
		project_finished_date = $9
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		project.ID, project.ProjectTitle, project.ProjectDescription, project.Thumbnail,
		project.ProjectGithubURL, project.ProjectLiveURL, project.ProjectStatus,
		project.ProjectStartedDate, project.ProjectFinishedDate,
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

func (r *projectRepo) ReplaceSkills(ctx context.Context, projectID int64, skillIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM project_skills WHERE project_id = $1`, projectID); err != nil {
		return err
	}
	for _, skillID := range skillIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO project_skills (project_id, skill_id) VALUES ($1, $2)`,
			projectID, skillID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *projectRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM project_skills WHERE project_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

// skillTarget pairs an entity ID with the skill slice to hydrate.
type skillTarget struct {
	id  int64
	dst *[]domain.Skill
}

// loadSkills hydrates skill collections through the given join table with a
// single query. Shared with the goal repository, which uses the same shape.
func (r *projectRepo) loadSkills(ctx context.Context, joinTable, ownerColumn string, targets []*skillTarget) error {
	return loadSkillsVia(ctx, r.db, joinTable, ownerColumn, targets)
}

func loadSkillsVia(ctx context.Context, db *pgxpool.Pool, joinTable, ownerColumn string, targets []*skillTarget) error {
	if len(targets) == 0 {
		return nil
	}
	ids := make([]int64, len(targets))
	byID := make(map[int64]*skillTarget, len(targets))
	for i, t := range targets {
		ids[i] = t.id
		byID[t.id] = t
	}

	query := `SELECT j.` + ownerColumn + `, s.id, s.user_id, s.skill_name, s.proficiency_level, s.skill_category, s.skill_description, s.years_of_experience
              FROM ` + joinTable + ` j
              JOIN skills s ON s.id = j.skill_id
              WHERE j.` + ownerColumn + ` = ANY($1)
              ORDER BY s.id`
	rows, err := db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var ownerID int64
		var skill domain.Skill
		if err := rows.Scan(
			&ownerID, &skill.ID, &skill.UserID, &skill.SkillName, &skill.ProficiencyLevel,
			&skill.SkillCategory, &skill.SkillDescription, &skill.YearsOfExperience,
		); err != nil {
			return err
		}
		skill.Projects = []domain.Project{}
		if t, ok := byID[ownerID]; ok {
			*t.dst = append(*t.dst, skill)
		}
	}
	return rows.Err()
}
