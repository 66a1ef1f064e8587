package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"townkit/internal/models"
)

type CityRepository struct {
	pool *pgxpool.Pool
}

func NewCityRepository(pool *pgxpool.Pool) *CityRepository {
	return &CityRepository{pool: pool}
}

func (r *CityRepository) Create(city *models.City) error {
	ctx := context.Background()

	city.Prepare()

	infoJSON, err := json.Marshal(city.PermitInfo)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO cities (id, slug, name, state, country, permit_info, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	now := time.Now()
	_, err = r.pool.Exec(ctx, query,
		city.ID,
		city.Slug,
		city.Name,
		city.State,
		city.Country,
		infoJSON,
		now,
	)

	return err
}

func (r *CityRepository) FindBySlug(slug string) (*models.City, error) {
	ctx := context.Background()

	query := `
		SELECT id, slug, name, state, country, permit_info, created_at
		FROM cities WHERE slug = $1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, slug))
}

func (r *CityRepository) FindByID(id string) (*models.City, error) {
	ctx := context.Background()

	query := `
		SELECT id, slug, name, state, country, permit_info, created_at
		FROM cities WHERE id = $1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *CityRepository) List() ([]models.City, error) {
	ctx := context.Background()

	query := `
		SELECT id, slug, name, state, country, permit_info, created_at
		FROM cities
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []models.City
	for rows.Next() {
		var city models.City
		var infoJSON []byte
		err := rows.Scan(
			&city.ID,
			&city.Slug,
			&city.Name,
			&city.State,
			&city.Country,
			&infoJSON,
			&city.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(infoJSON, &city.PermitInfo); err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}

	return cities, rows.Err()
}

func (r *CityRepository) scanOne(row pgx.Row) (*models.City, error) {
	var city models.City
	var infoJSON []byte
	err := row.Scan(
		&city.ID,
		&city.Slug,
		&city.Name,
		&city.State,
		&city.Country,
		&infoJSON,
		&city.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(infoJSON, &city.PermitInfo); err != nil {
		return nil, err
	}

	return &city, nil
}
