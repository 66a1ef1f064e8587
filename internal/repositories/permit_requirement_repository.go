package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"townkit/internal/models"
)

type PermitRequirementRepository struct {
	pool *pgxpool.Pool
}

func NewPermitRequirementRepository(pool *pgxpool.Pool) *PermitRequirementRepository {
	return &PermitRequirementRepository{pool: pool}
}

func (r *PermitRequirementRepository) FindByCityAndProject(citySlug, projectSlug string) (*models.PermitRequirement, error) {
	ctx := context.Background()

	query := `
		SELECT pr.id, pr.city_id, pr.project_id, pr.requirements, pr.estimated_cost, pr.estimated_timeline, pr.created_at
		FROM permit_requirements pr
		JOIN cities ci ON ci.id = pr.city_id
		JOIN projects p ON p.id = pr.project_id
		WHERE ci.slug = $1 AND p.slug = $2
	`

	var requirement models.PermitRequirement
	var reqsJSON []byte
	err := r.pool.QueryRow(ctx, query, citySlug, projectSlug).Scan(
		&requirement.ID,
		&requirement.CityID,
		&requirement.ProjectID,
		&reqsJSON,
		&requirement.EstimatedCost,
		&requirement.EstimatedTimeline,
		&requirement.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(reqsJSON, &requirement.Requirements); err != nil {
		return nil, err
	}

	return &requirement, nil
}
