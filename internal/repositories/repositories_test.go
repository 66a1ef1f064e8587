package repositories

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"townkit/internal/database"
	"townkit/internal/models"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(0)
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("townkit_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		log.Fatalf("start postgres container: %v", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("container connection string: %v", err)
	}

	testPool, err = pgxpool.New(ctx, connStr)
	if err != nil {
		log.Fatalf("connect test pool: %v", err)
	}

	if err := database.RunMigrations(testPool); err != nil {
		log.Fatalf("run migrations: %v", err)
	}
	if err := database.Seed(testPool); err != nil {
		log.Fatalf("seed: %v", err)
	}

	code := m.Run()

	testPool.Close()
	if err := container.Terminate(ctx); err != nil {
		log.Printf("terminate container: %v", err)
	}
	os.Exit(code)
}

func TestCityRepositoryFindBySlug(t *testing.T) {
	repo := NewCityRepository(testPool)

	city, err := repo.FindBySlug("austin-tx")
	require.NoError(t, err)
	require.NotNil(t, city)
	assert.Equal(t, "Austin", city.Name)
	assert.Equal(t, "TX", city.State)
	assert.Equal(t, "US", city.Country)
	assert.NotEmpty(t, city.PermitInfo.Description)

	byID, err := repo.FindByID(city.ID.String())
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, city.Slug, byID.Slug)

	missing, err := repo.FindBySlug("atlantis")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProjectRepositoryFindBySlug(t *testing.T) {
	repo := NewProjectRepository(testPool)

	project, err := repo.FindBySlug("deck-permit")
	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, "Deck Addition", project.Name)

	projects, err := repo.List()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(projects), 12)
}

// insertContractor writes a row with an explicit created_at so ordering
// assertions are deterministic.
func insertContractor(t *testing.T, cityID uuid.UUID, name, tier string, verified bool, specialties []string, createdAt time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := testPool.Exec(context.Background(), `
		INSERT INTO contractors (id, city_id, business_name, contact_email, contact_phone, license_number, specialties, is_verified, subscription_tier, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, id, cityID, name, fmt.Sprintf("%s@example.com", id), "555-0100", "TX-LIC-000", specialties, verified, tier, createdAt)
	require.NoError(t, err)
	return id
}

func TestContractorRepositoryFindMatching(t *testing.T) {
	cityRepo := NewCityRepository(testPool)
	city := &models.City{Slug: "matchville-tx", Name: "Matchville", State: "TX"}
	require.NoError(t, cityRepo.Create(city))

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	deck := []string{"deck-permit"}
	fence := []string{"fence-permit"}

	oldFree := insertContractor(t, city.ID, "Old Free Decks", models.TierFree, true, deck, base)
	newFree := insertContractor(t, city.ID, "New Free Decks", models.TierFree, true, deck, base.Add(48*time.Hour))
	oldPremium := insertContractor(t, city.ID, "Old Premium Decks", models.TierPremium, true, deck, base.Add(24*time.Hour))
	newPremium := insertContractor(t, city.ID, "New Premium Decks", models.TierPremium, true, deck, base.Add(72*time.Hour))
	insertContractor(t, city.ID, "Unverified Decks", models.TierPremium, false, deck, base)
	fenceOnly := insertContractor(t, city.ID, "Fence Pros", models.TierPremium, true, fence, base)

	repo := NewContractorRepository(testPool)

	matched, err := repo.FindMatching(city.ID, "deck-permit", 4)
	require.NoError(t, err)
	require.Len(t, matched, 4)

	// Premium before free, earliest registration first within a tier.
	assert.Equal(t, oldPremium, matched[0].ID)
	assert.Equal(t, newPremium, matched[1].ID)
	assert.Equal(t, oldFree, matched[2].ID)
	assert.Equal(t, newFree, matched[3].ID)

	limited, err := repo.FindMatching(city.ID, "deck-permit", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, oldPremium, limited[0].ID)
	assert.Equal(t, newPremium, limited[1].ID)

	// Empty slug skips the specialty filter and pulls in the fence crew.
	all, err := repo.FindMatching(city.ID, "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	fencers, err := repo.FindMatching(city.ID, "fence-permit", 4)
	require.NoError(t, err)
	require.Len(t, fencers, 1)
	assert.Equal(t, fenceOnly, fencers[0].ID)
}

func TestLeadAndMatchRoundTrip(t *testing.T) {
	cityRepo := NewCityRepository(testPool)
	city, err := cityRepo.FindBySlug("houston-tx")
	require.NoError(t, err)
	require.NotNil(t, city)

	contractorRepo := NewContractorRepository(testPool)
	contractors, err := contractorRepo.FindMatching(city.ID, "deck-permit", 4)
	require.NoError(t, err)
	require.NotEmpty(t, contractors)

	phone := "555-0101"
	lead := &models.Lead{
		HomeownerName:      "Jane Doe",
		Email:              "jane@example.com",
		Phone:              &phone,
		ProjectType:        "deck-permit",
		ProjectDescription: "Cedar deck off the back porch",
		Budget:             "$5,000 - $15,000",
		Timeline:           "1-3 months",
		CityID:             city.ID,
	}

	leadRepo := NewLeadRepository(testPool)
	require.NoError(t, leadRepo.Create(lead))
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, models.LeadStatusNew, lead.Status)

	matchRepo := NewMatchRepository(testPool)
	for _, contractor := range contractors {
		match := &models.LeadContractorMatch{
			LeadID:       lead.ID,
			ContractorID: contractor.ID,
			Price:        contractor.MatchPrice(),
		}
		require.NoError(t, matchRepo.Create(match))
		assert.Equal(t, models.MatchStatusPending, match.Status)
	}

	found, err := leadRepo.FindByID(lead.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Jane Doe", found.HomeownerName)
	assert.Equal(t, city.ID, found.CityID)

	summaries, err := matchRepo.FindSummariesByLeadID(lead.ID)
	require.NoError(t, err)
	require.Len(t, summaries, len(contractors))
	for _, summary := range summaries {
		assert.Equal(t, models.MatchStatusPending, summary.Status)
		assert.NotEmpty(t, summary.ContractorName)
	}

	missing, err := leadRepo.FindByID("lead_000")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLeadRepositoryAcceptsPlaceholderStyleID(t *testing.T) {
	cityRepo := NewCityRepository(testPool)
	city, err := cityRepo.FindBySlug("austin-tx")
	require.NoError(t, err)
	require.NotNil(t, city)

	lead := &models.Lead{
		ID:                 fmt.Sprintf("lead_%d", time.Now().UnixMilli()),
		HomeownerName:      "John Roe",
		Email:              "john@example.com",
		ProjectType:        "fence-permit",
		ProjectDescription: "Privacy fence",
		Budget:             "Under $5,000",
		Timeline:           "ASAP",
		CityID:             city.ID,
	}

	leadRepo := NewLeadRepository(testPool)
	require.NoError(t, leadRepo.Create(lead))

	found, err := leadRepo.FindByID(lead.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, lead.ID, found.ID)
}

func TestPermitRequirementRepositoryLookup(t *testing.T) {
	repo := NewPermitRequirementRepository(testPool)

	requirement, err := repo.FindByCityAndProject("los-angeles-ca", "deck-permit")
	require.NoError(t, err)
	require.NotNil(t, requirement)
	assert.NotEmpty(t, requirement.Requirements.Permits)
	assert.NotEmpty(t, requirement.Requirements.Fees.Total)
	assert.NotEmpty(t, requirement.EstimatedTimeline)

	missing, err := repo.FindByCityAndProject("austin-tx", "fence-permit")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSeedIsIdempotent(t *testing.T) {
	var before int
	require.NoError(t, testPool.QueryRow(context.Background(), "SELECT COUNT(*) FROM cities").Scan(&before))

	require.NoError(t, database.Seed(testPool))

	var after int
	require.NoError(t, testPool.QueryRow(context.Background(), "SELECT COUNT(*) FROM cities").Scan(&after))
	assert.Equal(t, before, after)
}
