package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"portfolio_backend/internal/models"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

var _ Projects = (*ProjectRepository)(nil)

const (
	selectProjectColumns = `id, name, demo_url, repo_url, description, image, user_id`

	listProjectsSQL = `SELECT ` + selectProjectColumns + `
		FROM projects WHERE user_id = $1 ORDER BY id`

	insertProjectSQL = `INSERT INTO projects (name, demo_url, repo_url, description, image, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	selectOwnedProjectSQL = `SELECT ` + selectProjectColumns + `
		FROM projects WHERE id = $1 AND user_id = $2`

	deleteProjectSQL = `DELETE FROM projects WHERE id = $1 AND user_id = $2`
)

// ListByUser returns the user's projects in insertion order.
func (r *ProjectRepository) ListByUser(ctx context.Context, userID int) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, listProjectsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects for user %d: %w", userID, err)
	}
	defer func() { _ = rows.Close() }()

	projects := make([]models.Project, 0)
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.DemoURL, &p.RepoURL, &p.Description, &p.Image, &p.UserID); err != nil {
			return nil, fmt.Errorf("scan project for user %d: %w", userID, err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects for user %d: %w", userID, err)
	}
	return projects, nil
}

// Create inserts a project and returns it with its assigned id.
func (r *ProjectRepository) Create(ctx context.Context, p models.Project) (*models.Project, error) {
	err := r.db.QueryRowContext(ctx, insertProjectSQL,
		p.Name, p.DemoURL, p.RepoURL, p.Description, p.Image, p.UserID,
	).Scan(&p.ID)
	if err != nil {
		return nil, fmt.Errorf("insert project %q for user %d: %w", p.Name, p.UserID, err)
	}
	return &p, nil
}

// Update applies the present fields to a project owned by userID.
// A project owned by someone else and a nonexistent project both yield
// ErrNotFound.
func (r *ProjectRepository) Update(ctx context.Context, projectID, userID int, upd ProjectUpdate) (*models.Project, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 7)

	appendSet := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	appendSet("name", upd.Name)
	appendSet("demo_url", upd.DemoURL)
	appendSet("repo_url", upd.RepoURL)
	appendSet("description", upd.Description)
	appendSet("image", upd.Image)

	var row *sql.Row
	if len(sets) == 0 {
		row = r.db.QueryRowContext(ctx, selectOwnedProjectSQL, projectID, userID)
	} else {
		args = append(args, projectID, userID)
		query := fmt.Sprintf(
			`UPDATE projects SET %s WHERE id = $%d AND user_id = $%d RETURNING `+selectProjectColumns,
			strings.Join(sets, ", "), len(args)-1, len(args),
		)
		row = r.db.QueryRowContext(ctx, query, args...)
	}

	var p models.Project
	err := row.Scan(&p.ID, &p.Name, &p.DemoURL, &p.RepoURL, &p.Description, &p.Image, &p.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update project %d for user %d: %w", projectID, userID, err)
	}
	return &p, nil
}

// Delete removes a project owned by userID. ErrNotFound covers both a
// missing project and one owned by a different user.
func (r *ProjectRepository) Delete(ctx context.Context, projectID, userID int) error {
	res, err := r.db.ExecContext(ctx, deleteProjectSQL, projectID, userID)
	if err != nil {
		return fmt.Errorf("delete project %d for user %d: %w", projectID, userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for project %d: %w", projectID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
