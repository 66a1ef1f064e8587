package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"townkit/internal/models"
)

type seedCity struct {
	Name  string
	State string
	Slug  string
}

var seedCities = []seedCity{
	{"New York", "NY", "new-york-ny"},
	{"Los Angeles", "CA", "los-angeles-ca"},
	{"Chicago", "IL", "chicago-il"},
	{"Houston", "TX", "houston-tx"},
	{"Phoenix", "AZ", "phoenix-az"},
	{"Philadelphia", "PA", "philadelphia-pa"},
	{"San Antonio", "TX", "san-antonio-tx"},
	{"San Diego", "CA", "san-diego-ca"},
	{"Dallas", "TX", "dallas-tx"},
	{"Austin", "TX", "austin-tx"},
	{"San Jose", "CA", "san-jose-ca"},
	{"Fort Worth", "TX", "fort-worth-tx"},
	{"Jacksonville", "FL", "jacksonville-fl"},
	{"Columbus", "OH", "columbus-oh"},
	{"Charlotte", "NC", "charlotte-nc"},
	{"San Francisco", "CA", "san-francisco-ca"},
	{"Indianapolis", "IN", "indianapolis-in"},
	{"Seattle", "WA", "seattle-wa"},
	{"Denver", "CO", "denver-co"},
	{"Washington", "DC", "washington-dc"},
	{"Boston", "MA", "boston-ma"},
	{"El Paso", "TX", "el-paso-tx"},
	{"Nashville", "TN", "nashville-tn"},
	{"Detroit", "MI", "detroit-mi"},
	{"Oklahoma City", "OK", "oklahoma-city-ok"},
	{"Portland", "OR", "portland-or"},
	{"Las Vegas", "NV", "las-vegas-nv"},
	{"Memphis", "TN", "memphis-tn"},
	{"Louisville", "KY", "louisville-ky"},
	{"Baltimore", "MD", "baltimore-md"},
	{"Milwaukee", "WI", "milwaukee-wi"},
	{"Albuquerque", "NM", "albuquerque-nm"},
	{"Tucson", "AZ", "tucson-az"},
	{"Fresno", "CA", "fresno-ca"},
	{"Mesa", "AZ", "mesa-az"},
	{"Sacramento", "CA", "sacramento-ca"},
	{"Atlanta", "GA", "atlanta-ga"},
	{"Kansas City", "MO", "kansas-city-mo"},
	{"Colorado Springs", "CO", "colorado-springs-co"},
	{"Miami", "FL", "miami-fl"},
	{"Raleigh", "NC", "raleigh-nc"},
	{"Omaha", "NE", "omaha-ne"},
	{"Long Beach", "CA", "long-beach-ca"},
	{"Virginia Beach", "VA", "virginia-beach-va"},
	{"Oakland", "CA", "oakland-ca"},
	{"Minneapolis", "MN", "minneapolis-mn"},
	{"Tulsa", "OK", "tulsa-ok"},
	{"Tampa", "FL", "tampa-fl"},
	{"Arlington", "TX", "arlington-tx"},
	{"New Orleans", "LA", "new-orleans-la"},
}

var seedProjects = []models.Project{
	{Name: "Deck Addition", Slug: "deck-permit", TypicalPermits: models.TypicalPermits{
		Permits:       []string{"Building Permit"},
		Description:   "Deck permits are typically required for decks over 30 inches high or attached to the main structure.",
		EstimatedCost: "$200-$600",
		Timeline:      "2-4 weeks",
	}},
	{Name: "Kitchen Remodel", Slug: "kitchen-remodel-permit", TypicalPermits: models.TypicalPermits{
		Permits:       []string{"Building Permit", "Electrical Permit", "Plumbing Permit"},
		Description:   "Kitchen remodels require permits when work involves plumbing, electrical, gas, or structural modifications.",
		EstimatedCost: "$400-$1,200",
		Timeline:      "4-8 weeks",
	}},
	{Name: "Bathroom Remodel", Slug: "bathroom-remodel-permit", TypicalPermits: models.TypicalPermits{
		Permits:       []string{"Building Permit", "Plumbing Permit", "Electrical Permit"},
		Description:   "Bathroom remodels typically require permits for plumbing and electrical work.",
		EstimatedCost: "$300-$800",
		Timeline:      "3-6 weeks",
	}},
	{Name: "Room Addition", Slug: "addition-permit", TypicalPermits: models.TypicalPermits{
		Permits:       []string{"Building Permit", "Electrical Permit", "Plumbing Permit", "Zoning Review"},
		Description:   "Room additions always require comprehensive permits and plan review.",
		EstimatedCost: "$1,000-$3,000",
		Timeline:      "6-12 weeks",
	}},
	{Name: "Swimming Pool", Slug: "pool-permit", TypicalPermits: models.TypicalPermits{
		Permits:       []string{"Building Permit", "Pool Permit", "Electrical Permit"},
		Description:   "Pool installations require specialized permits for safety and structural requirements.",
		EstimatedCost: "$500-$1,500",
		Timeline:      "4-8 weeks",
	}},
	{Name: "Fence Installation", Slug: "fence-permit", TypicalPermits: models.TypicalPermits{
		Permits:       []string{"Fence Permit"},
		Description:   "Fence permits may be required based on height, location, and local zoning requirements.",
		EstimatedCost: "$100-$300",
		Timeline:      "1-2 weeks",
	}},
	{Name: "Shed/Garage", Slug: "accessory-structure-permit", TypicalPermits: models.TypicalPermits{
		Permits:       []string{"Building Permit"},
		Description:   "Accessory structures typically require permits when over a certain square footage.",
		EstimatedCost: "$200-$600",
		Timeline:      "2-4 weeks",
	}},
	{Name: "Solar Panel Installation", Slug: "solar-permit", TypicalPermits: models.TypicalPermits{
		Permits:       []string{"Building Permit", "Electrical Permit"},
		Description:   "Solar installations require both building and electrical permits for safety compliance.",
		EstimatedCost: "$300-$800",
		Timeline:      "2-6 weeks",
	}},
	{Name: "Roofing", Slug: "roofing-permit", TypicalPermits: models.TypicalPermits{
		Permits:       []string{"Building Permit"},
		Description:   "Roofing permits are typically required for major roof replacements or structural changes.",
		EstimatedCost: "$150-$400",
		Timeline:      "1-3 weeks",
	}},
	{Name: "HVAC System", Slug: "hvac-permit", TypicalPermits: models.TypicalPermits{
		Permits:       []string{"Mechanical Permit", "Electrical Permit"},
		Description:   "HVAC installations and major repairs require mechanical and electrical permits.",
		EstimatedCost: "$200-$500",
		Timeline:      "1-3 weeks",
	}},
	{Name: "Driveway/Patio", Slug: "hardscape-permit", TypicalPermits: models.TypicalPermits{
		Permits:       []string{"Building Permit"},
		Description:   "Hardscape permits may be required for significant paving or grading work.",
		EstimatedCost: "$150-$400",
		Timeline:      "1-3 weeks",
	}},
	{Name: "Electrical Work", Slug: "electrical-permit", TypicalPermits: models.TypicalPermits{
		Permits:       []string{"Electrical Permit"},
		Description:   "Electrical permits are required for new circuits, panels, or major electrical modifications.",
		EstimatedCost: "$100-$300",
		Timeline:      "1-2 weeks",
	}},
}

type seedContractor struct {
	BusinessName  string
	ContactEmail  string
	ContactPhone  string
	LicenseNumber string
	Specialties   []string
}

var seedContractors = []seedContractor{
	{
		BusinessName:  "ABC Construction Co.",
		ContactEmail:  "contact@abcconstruction.com",
		ContactPhone:  "(555) 123-4567",
		LicenseNumber: "CA-LIC-123456",
		Specialties:   []string{"deck-permit", "addition-permit", "kitchen-remodel-permit"},
	},
	{
		BusinessName:  "Superior Decks & Outdoor Living",
		ContactEmail:  "info@superiordecks.com",
		ContactPhone:  "(555) 234-5678",
		LicenseNumber: "CA-LIC-234567",
		Specialties:   []string{"deck-permit", "hardscape-permit"},
	},
	{
		BusinessName:  "Kitchen Pro LLC",
		ContactEmail:  "hello@kitchenpro.com",
		ContactPhone:  "(555) 345-6789",
		LicenseNumber: "CA-LIC-345678",
		Specialties:   []string{"kitchen-remodel-permit", "bathroom-remodel-permit"},
	},
	{
		BusinessName:  "Complete Home Solutions",
		ContactEmail:  "info@completehome.com",
		ContactPhone:  "(555) 456-7890",
		LicenseNumber: "CA-LIC-456789",
		Specialties:   []string{"addition-permit", "roofing-permit", "electrical-permit"},
	},
	{
		BusinessName:  "Pool Paradise Builders",
		ContactEmail:  "sales@poolparadise.com",
		ContactPhone:  "(555) 567-8901",
		LicenseNumber: "CA-LIC-567890",
		Specialties:   []string{"pool-permit", "hardscape-permit"},
	},
}

var majorCitySlugs = []string{"los-angeles-ca", "new-york-ny", "chicago-il", "houston-tx", "phoenix-az"}

// Seed loads the permit catalog and sample contractors. Every statement is
// an upsert keyed on the natural unique column, so reruns are harmless.
func Seed(pool *pgxpool.Pool) error {
	ctx := context.Background()

	log.Println("Seeding cities...")
	for _, city := range seedCities {
		info := models.PermitInfo{
			Description:  fmt.Sprintf("%s, %s has comprehensive building permit requirements for residential and commercial projects.", city.Name, city.State),
			PermitOffice: fmt.Sprintf("%s Department of Building and Safety", city.Name),
			Website:      fmt.Sprintf("https://www.%s.gov", strings.ReplaceAll(city.Slug, "-", "")),
			Phone:        "(555) 123-4567",
		}
		infoJSON, err := json.Marshal(info)
		if err != nil {
			return fmt.Errorf("marshal permit info for %s: %w", city.Slug, err)
		}

		query := `
			INSERT INTO cities (slug, name, state, country, permit_info)
			VALUES ($1, $2, $3, 'US', $4)
			ON CONFLICT (slug) DO NOTHING
		`
		if _, err := pool.Exec(ctx, query, city.Slug, city.Name, city.State, infoJSON); err != nil {
			return fmt.Errorf("seed city %s: %w", city.Slug, err)
		}
	}

	log.Println("Seeding projects...")
	for _, project := range seedProjects {
		permitsJSON, err := json.Marshal(project.TypicalPermits)
		if err != nil {
			return fmt.Errorf("marshal permits for %s: %w", project.Slug, err)
		}

		query := `
			INSERT INTO projects (slug, name, description, typical_permits_required)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (slug) DO NOTHING
		`
		if _, err := pool.Exec(ctx, query, project.Slug, project.Name, project.TypicalPermits.Description, permitsJSON); err != nil {
			return fmt.Errorf("seed project %s: %w", project.Slug, err)
		}
	}

	log.Println("Seeding contractors...")
	for _, citySlug := range majorCitySlugs {
		var cityID string
		var cityName, cityState string
		err := pool.QueryRow(ctx, `SELECT id, name, state FROM cities WHERE slug = $1`, citySlug).Scan(&cityID, &cityName, &cityState)
		if err != nil {
			return fmt.Errorf("look up city %s: %w", citySlug, err)
		}

		for i, contractor := range seedContractors {
			// Alias the contact email per city so the unique constraint
			// holds across the replicated sample set.
			parts := strings.SplitN(contractor.ContactEmail, "@", 2)
			email := fmt.Sprintf("%s+%s@%s", parts[0], citySlug, parts[1])
			license := strings.Replace(contractor.LicenseNumber, "CA-LIC", cityState+"-LIC", 1)

			// Alternate tiers deterministically so reseeded environments
			// and tests see stable ordering.
			tier := models.TierFree
			if i%2 == 0 {
				tier = models.TierPremium
			}

			query := `
				INSERT INTO contractors (city_id, business_name, contact_email, contact_phone, license_number, specialties, is_verified, subscription_tier)
				VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7)
				ON CONFLICT (contact_email) DO NOTHING
			`
			businessName := fmt.Sprintf("%s - %s", contractor.BusinessName, cityName)
			if _, err := pool.Exec(ctx, query, cityID, businessName, email, contractor.ContactPhone, license, contractor.Specialties, tier); err != nil {
				return fmt.Errorf("seed contractor %s in %s: %w", contractor.BusinessName, citySlug, err)
			}
		}
	}

	log.Println("Seeding permit requirements...")
	requirementCities := []string{"los-angeles-ca", "new-york-ny", "chicago-il"}
	requirementProjects := []string{"deck-permit", "kitchen-remodel-permit", "pool-permit"}

	for _, citySlug := range requirementCities {
		var cityID, cityName string
		err := pool.QueryRow(ctx, `SELECT id, name FROM cities WHERE slug = $1`, citySlug).Scan(&cityID, &cityName)
		if err != nil {
			return fmt.Errorf("look up city %s: %w", citySlug, err)
		}

		for _, projectSlug := range requirementProjects {
			var projectID string
			err := pool.QueryRow(ctx, `SELECT id FROM projects WHERE slug = $1`, projectSlug).Scan(&projectID)
			if err != nil {
				return fmt.Errorf("look up project %s: %w", projectSlug, err)
			}

			reqs := models.Requirements{
				Permits:   []string{"Building Permit"},
				Documents: []string{"Application form", "Site plan", "Proof of ownership"},
				Fees: models.FeeBreakdown{
					PermitFee:    "$250",
					PlanCheckFee: "$150",
					Total:        "$400",
				},
				Timeline:    "2-4 weeks",
				Inspections: []string{"Foundation", "Framing", "Final"},
				Codes:       []string{cityName + " Building Code", "State Building Code"},
			}
			reqsJSON, err := json.Marshal(reqs)
			if err != nil {
				return fmt.Errorf("marshal requirements for %s/%s: %w", citySlug, projectSlug, err)
			}

			query := `
				INSERT INTO permit_requirements (city_id, project_id, requirements, estimated_cost, estimated_timeline)
				VALUES ($1, $2, $3, '$200-$600', '2-4 weeks')
				ON CONFLICT (city_id, project_id) DO NOTHING
			`
			if _, err := pool.Exec(ctx, query, cityID, projectID, reqsJSON); err != nil {
				return fmt.Errorf("seed requirement %s/%s: %w", citySlug, projectSlug, err)
			}
		}
	}

	log.Println("Database seeded successfully")
	return nil
}
