package repositories

import (
	"database/sql"
	"time"

	"github.com/jaiyan-th/portfolio/internal/models"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

// Create inserts a new project and assigns its generated identifier.
// The insert is a single statement: it either fully commits or fails
// without leaving a partial row behind.
func (r *ProjectRepository) Create(project *models.Project) error {
	query := `
		INSERT INTO projects (title, description, tech_stack, date_created, github_url, demo_url, image_url, featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.Exec(query,
		project.Title,
		project.Description,
		project.TechStack,
		project.DateCreated,
		project.GithubURL,
		project.DemoURL,
		project.ImageURL,
		project.Featured,
		project.CreatedAt,
	)
	if err != nil {
		return storageErr("insert project", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storageErr("insert project", err)
	}
	project.ID = id

	return nil
}

// GetByID retrieves a project by ID, returning ErrNotFound when no row
// carries it
func (r *ProjectRepository) GetByID(id int64) (*models.Project, error) {
	query := `
		SELECT id, title, description, tech_stack, date_created, github_url, demo_url, image_url, featured, created_at
		FROM projects
		WHERE id = $1
	`

	project := &models.Project{}
	err := r.db.QueryRow(query, id).Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.TechStack,
		&project.DateCreated,
		&project.GithubURL,
		&project.DemoURL,
		&project.ImageURL,
		&project.Featured,
		&project.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storageErr("get project", err)
	}

	return project, nil
}

// GetAll retrieves all projects in insertion order
func (r *ProjectRepository) GetAll() ([]*models.Project, error) {
	query := `
		SELECT id, title, description, tech_stack, date_created, github_url, demo_url, image_url, featured, created_at
		FROM projects
		ORDER BY id
	`

	return r.queryProjects(query)
}

// GetFeatured retrieves featured projects in insertion order
func (r *ProjectRepository) GetFeatured() ([]*models.Project, error) {
	query := `
		SELECT id, title, description, tech_stack, date_created, github_url, demo_url, image_url, featured, created_at
		FROM projects
		WHERE featured = 1
		ORDER BY id
	`

	return r.queryProjects(query)
}

// DeleteAll removes every project row. Used by the seeder for a fresh start.
func (r *ProjectRepository) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM projects`)
	return storageErr("delete projects", err)
}

func (r *ProjectRepository) queryProjects(query string, args ...interface{}) ([]*models.Project, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, storageErr("list projects", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project := &models.Project{}
		err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Description,
			&project.TechStack,
			&project.DateCreated,
			&project.GithubURL,
			&project.DemoURL,
			&project.ImageURL,
			&project.Featured,
			&project.CreatedAt,
		)
		if err != nil {
			return nil, storageErr("scan project", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("list projects", err)
	}

	return projects, nil
}
