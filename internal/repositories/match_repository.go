package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"townkit/internal/models"
)

type MatchRepository struct {
	pool *pgxpool.Pool
}

func NewMatchRepository(pool *pgxpool.Pool) *MatchRepository {
	return &MatchRepository{pool: pool}
}

func (r *MatchRepository) Create(match *models.LeadContractorMatch) error {
	ctx := context.Background()

	match.Prepare()

	query := `
		INSERT INTO lead_contractor_matches (id, lead_id, contractor_id, price, status, matched_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	now := time.Now()
	match.MatchedAt = now
	_, err := r.pool.Exec(ctx, query,
		match.ID,
		match.LeadID,
		match.ContractorID,
		match.Price,
		match.Status,
		now,
	)

	return err
}

// FindSummariesByLeadID joins matches with contractor names for the
// lead-status read path.
func (r *MatchRepository) FindSummariesByLeadID(leadID string) ([]models.MatchSummary, error) {
	ctx := context.Background()

	query := `
		SELECT c.business_name, m.status, m.matched_at
		FROM lead_contractor_matches m
		JOIN contractors c ON c.id = m.contractor_id
		WHERE m.lead_id = $1
		ORDER BY m.matched_at ASC
	`

	rows, err := r.pool.Query(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.MatchSummary
	for rows.Next() {
		var summary models.MatchSummary
		err := rows.Scan(
			&summary.ContractorName,
			&summary.Status,
			&summary.MatchedAt,
		)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}
