package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"townkit/internal/models"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Create(project *models.Project) error {
	ctx := context.Background()

	project.Prepare()

	permitsJSON, err := json.Marshal(project.TypicalPermits)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO projects (id, slug, name, description, typical_permits_required, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	now := time.Now()
	_, err = r.pool.Exec(ctx, query,
		project.ID,
		project.Slug,
		project.Name,
		project.Description,
		permitsJSON,
		now,
	)

	return err
}

func (r *ProjectRepository) FindBySlug(slug string) (*models.Project, error) {
	ctx := context.Background()

	query := `
		SELECT id, slug, name, description, typical_permits_required, created_at
		FROM projects WHERE slug = $1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, slug))
}

func (r *ProjectRepository) FindByID(id uuid.UUID) (*models.Project, error) {
	ctx := context.Background()

	query := `
		SELECT id, slug, name, description, typical_permits_required, created_at
		FROM projects WHERE id = $1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *ProjectRepository) List() ([]models.Project, error) {
	ctx := context.Background()

	query := `
		SELECT id, slug, name, description, typical_permits_required, created_at
		FROM projects
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		var permitsJSON []byte
		err := rows.Scan(
			&project.ID,
			&project.Slug,
			&project.Name,
			&project.Description,
			&permitsJSON,
			&project.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(permitsJSON, &project.TypicalPermits); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

func (r *ProjectRepository) scanOne(row pgx.Row) (*models.Project, error) {
	var project models.Project
	var permitsJSON []byte
	err := row.Scan(
		&project.ID,
		&project.Slug,
		&project.Name,
		&project.Description,
		&permitsJSON,
		&project.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(permitsJSON, &project.TypicalPermits); err != nil {
		return nil, err
	}

	return &project, nil
}
