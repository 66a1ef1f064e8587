package services

// The permit calculator is a deterministic decision table. It never
// touches the store: the funnel UI calls it before a lead exists, and
// its answers are estimates, not the seeded per-city requirements.

type CalculatorInput struct {
	CitySlug    string `json:"citySlug" binding:"required"`
	ProjectSlug string `json:"projectSlug" binding:"required"`
	Size        string `json:"size"`  // 'small', 'medium' or 'large'
	Scope       string `json:"scope"` // 'diy', 'contractor' or 'mixed'
	Structural  bool   `json:"structuralChanges"`
	Electrical  bool   `json:"electricalWork"`
	Plumbing    bool   `json:"plumbingWork"`
}

type CalculatorResult struct {
	NeedsPermit   bool     `json:"needsPermit"`
	Permits       []string `json:"permits"`
	EstimatedCost string   `json:"estimatedCost"`
	Timeline      string   `json:"timeline"`
	NextSteps     []string `json:"nextSteps"`
	CitySlug      string   `json:"citySlug"`
	ProjectSlug   string   `json:"projectSlug"`
}

var calculatorCities = map[string]bool{
	"new-york-ny": true, "los-angeles-ca": true, "chicago-il": true,
	"houston-tx": true, "phoenix-az": true, "philadelphia-pa": true,
	"san-antonio-tx": true, "san-diego-ca": true, "dallas-tx": true,
	"austin-tx": true, "san-jose-ca": true, "fort-worth-tx": true,
	"jacksonville-fl": true, "columbus-oh": true, "charlotte-nc": true,
	"san-francisco-ca": true, "indianapolis-in": true, "seattle-wa": true,
	"denver-co": true, "washington-dc": true, "boston-ma": true,
	"el-paso-tx": true, "nashville-tn": true, "detroit-mi": true,
	"oklahoma-city-ok": true, "portland-or": true, "las-vegas-nv": true,
	"memphis-tn": true, "louisville-ky": true, "baltimore-md": true,
	"milwaukee-wi": true, "albuquerque-nm": true, "tucson-az": true,
	"fresno-ca": true, "mesa-az": true, "sacramento-ca": true,
	"atlanta-ga": true, "kansas-city-mo": true, "colorado-springs-co": true,
	"miami-fl": true, "raleigh-nc": true, "omaha-ne": true,
	"long-beach-ca": true, "virginia-beach-va": true, "oakland-ca": true,
	"minneapolis-mn": true, "tulsa-ok": true, "tampa-fl": true,
	"arlington-tx": true, "new-orleans-la": true,
}

var calculatorProjects = map[string]bool{
	"deck-permit":                true,
	"kitchen-remodel-permit":     true,
	"addition-permit":            true,
	"pool-permit":                true,
	"fence-permit":               true,
	"accessory-structure-permit": true,
	"bathroom-remodel-permit":    true,
	"solar-permit":               true,
	"hardscape-permit":           true,
	"hvac-permit":                true,
}

// Evaluate applies the hand-coded permit rules for the given project
// attributes. Unknown city or project produces a "no permit" result with
// an explanatory step rather than an error.
func Evaluate(in CalculatorInput) CalculatorResult {
	if !calculatorCities[in.CitySlug] || !calculatorProjects[in.ProjectSlug] {
		return CalculatorResult{
			NeedsPermit:   false,
			Permits:       []string{},
			EstimatedCost: "$0",
			Timeline:      "0 weeks",
			NextSteps:     []string{"Please select a valid city and project type."},
			CitySlug:      in.CitySlug,
			ProjectSlug:   in.ProjectSlug,
		}
	}

	needsPermit := false
	permits := []string{}
	estimatedCost := "$0"
	timeline := "0 weeks"

	switch in.ProjectSlug {
	case "deck-permit":
		if in.Size == "large" || in.Structural {
			needsPermit = true
			permits = append(permits, "Building Permit")
			estimatedCost = "$300-$600"
			if in.CitySlug == "los-angeles-ca" {
				estimatedCost = "$285-$545"
			}
			timeline = "3-6 weeks"
		}
		if in.Electrical {
			permits = append(permits, "Electrical Permit")
			estimatedCost = "$450-$850"
			if in.CitySlug == "los-angeles-ca" {
				estimatedCost = "$370-$730"
			}
		}

	case "kitchen-remodel-permit":
		needsPermit = true
		permits = append(permits, "Building Permit")
		estimatedCost = "$400-$800"
		timeline = "4-8 weeks"

		if in.Electrical {
			permits = append(permits, "Electrical Permit")
		}
		if in.Plumbing {
			permits = append(permits, "Plumbing Permit")
		}
		if in.Structural {
			permits = append(permits, "Structural Permit")
		}

		if len(permits) > 1 {
			estimatedCost = "$1,000-$2,000"
			if in.CitySlug == "los-angeles-ca" {
				estimatedCost = "$800-$1,600"
			}
			timeline = "6-12 weeks"
		}

	case "addition-permit":
		needsPermit = true
		permits = append(permits, "Building Permit", "Zoning Review")
		estimatedCost = "$1,200-$3,000"
		timeline = "8-16 weeks"

		if in.Electrical {
			permits = append(permits, "Electrical Permit")
		}
		if in.Plumbing {
			permits = append(permits, "Plumbing Permit")
		}

	case "pool-permit":
		needsPermit = true
		permits = append(permits, "Building Permit", "Pool Permit", "Safety Inspection")
		estimatedCost = "$800-$1,500"
		timeline = "6-12 weeks"

		if in.Electrical {
			permits = append(permits, "Electrical Permit")
		}

	case "fence-permit":
		if in.Size == "large" || in.CitySlug == "new-york-ny" {
			needsPermit = true
			permits = append(permits, "Fence Permit")
			estimatedCost = "$150-$400"
			timeline = "1-3 weeks"
		}

	case "accessory-structure-permit":
		if in.Size != "small" {
			needsPermit = true
			permits = append(permits, "Building Permit")
			estimatedCost = "$300-$800"
			timeline = "3-6 weeks"
		}

	default:
		needsPermit = true
		permits = append(permits, "Building Permit")
		estimatedCost = "$200-$600"
		timeline = "2-6 weeks"
	}

	var nextSteps []string
	if needsPermit {
		nextSteps = []string{
			"Review detailed requirements for your specific project",
			"Prepare required documents and plans",
			"Submit permit application with fees",
			"Schedule required inspections",
			"Connect with qualified contractors",
		}
	} else {
		nextSteps = []string{
			"No permit required for this project scope",
			"Check with contractors for best practices",
			"Consider HOA approval if applicable",
			"Verify property line setbacks",
		}
	}

	return CalculatorResult{
		NeedsPermit:   needsPermit,
		Permits:       permits,
		EstimatedCost: estimatedCost,
		Timeline:      timeline,
		NextSteps:     nextSteps,
		CitySlug:      in.CitySlug,
		ProjectSlug:   in.ProjectSlug,
	}
}
