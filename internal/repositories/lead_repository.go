package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"townkit/internal/models"
)

type LeadRepository struct {
	pool *pgxpool.Pool
}

func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

func (r *LeadRepository) Create(lead *models.Lead) error {
	ctx := context.Background()

	lead.Prepare()

	query := `
		INSERT INTO leads (id, homeowner_name, email, phone, project_type, project_description, budget, timeline, status, city_id, project_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	now := time.Now()
	lead.CreatedAt = now
	_, err := r.pool.Exec(ctx, query,
		lead.ID,
		lead.HomeownerName,
		lead.Email,
		lead.Phone,
		lead.ProjectType,
		lead.ProjectDescription,
		lead.Budget,
		lead.Timeline,
		lead.Status,
		lead.CityID,
		lead.ProjectID,
		now,
	)

	return err
}

func (r *LeadRepository) FindByID(id string) (*models.Lead, error) {
	ctx := context.Background()

	query := `
		SELECT id, homeowner_name, email, phone, project_type, project_description, budget, timeline, status, city_id, project_id, created_at
		FROM leads WHERE id = $1
	`

	var lead models.Lead
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&lead.ID,
		&lead.HomeownerName,
		&lead.Email,
		&lead.Phone,
		&lead.ProjectType,
		&lead.ProjectDescription,
		&lead.Budget,
		&lead.Timeline,
		&lead.Status,
		&lead.CityID,
		&lead.ProjectID,
		&lead.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &lead, nil
}
