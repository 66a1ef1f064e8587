package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"townkit/internal/models"
)

type ContractorRepository struct {
	pool *pgxpool.Pool
}

func NewContractorRepository(pool *pgxpool.Pool) *ContractorRepository {
	return &ContractorRepository{pool: pool}
}

func (r *ContractorRepository) Create(contractor *models.Contractor) error {
	ctx := context.Background()

	contractor.Prepare()

	query := `
		INSERT INTO contractors (id, city_id, business_name, contact_email, contact_phone, license_number, specialties, is_verified, subscription_tier, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	now := time.Now()
	_, err := r.pool.Exec(ctx, query,
		contractor.ID,
		contractor.CityID,
		contractor.BusinessName,
		contractor.ContactEmail,
		contractor.ContactPhone,
		contractor.LicenseNumber,
		contractor.Specialties,
		contractor.IsVerified,
		contractor.SubscriptionTier,
		now,
	)

	return err
}

func (r *ContractorRepository) FindByID(id uuid.UUID) (*models.Contractor, error) {
	ctx := context.Background()

	query := `
		SELECT id, city_id, business_name, contact_email, contact_phone, license_number, specialties, is_verified, subscription_tier, created_at
		FROM contractors WHERE id = $1
	`

	var contractor models.Contractor
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&contractor.ID,
		&contractor.CityID,
		&contractor.BusinessName,
		&contractor.ContactEmail,
		&contractor.ContactPhone,
		&contractor.LicenseNumber,
		&contractor.Specialties,
		&contractor.IsVerified,
		&contractor.SubscriptionTier,
		&contractor.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &contractor, nil
}

// FindMatching returns verified contractors in the city, premium tier
// first, earliest-registered first within a tier, capped at limit. When
// projectSlug is non-empty only contractors claiming that specialty are
// returned.
func (r *ContractorRepository) FindMatching(cityID uuid.UUID, projectSlug string, limit int) ([]models.Contractor, error) {
	ctx := context.Background()

	query := `
		SELECT id, city_id, business_name, contact_email, contact_phone, license_number, specialties, is_verified, subscription_tier, created_at
		FROM contractors
		WHERE city_id = $1
		  AND is_verified = TRUE
		  AND ($2 = '' OR specialties @> ARRAY[$2]::text[])
		ORDER BY subscription_tier DESC, created_at ASC
		LIMIT $3
	`

	rows, err := r.pool.Query(ctx, query, cityID, projectSlug, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contractors []models.Contractor
	for rows.Next() {
		var contractor models.Contractor
		err := rows.Scan(
			&contractor.ID,
			&contractor.CityID,
			&contractor.BusinessName,
			&contractor.ContactEmail,
			&contractor.ContactPhone,
			&contractor.LicenseNumber,
			&contractor.Specialties,
			&contractor.IsVerified,
			&contractor.SubscriptionTier,
			&contractor.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		contractors = append(contractors, contractor)
	}

	return contractors, rows.Err()
}
