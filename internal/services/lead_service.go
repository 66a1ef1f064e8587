package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"townkit/internal/email"
	"townkit/internal/models"
	"townkit/internal/utils"
)

// Store interfaces are owned here so the intake flow can be exercised
// without a live database; the pgx repositories satisfy them.

type CityStore interface {
	FindBySlug(slug string) (*models.City, error)
	FindByID(id string) (*models.City, error)
}

type ProjectStore interface {
	FindBySlug(slug string) (*models.Project, error)
}

type LeadStore interface {
	Create(lead *models.Lead) error
	FindByID(id string) (*models.Lead, error)
}

type ContractorStore interface {
	FindMatching(cityID uuid.UUID, projectSlug string, limit int) ([]models.Contractor, error)
}

type MatchStore interface {
	Create(match *models.LeadContractorMatch) error
	FindSummariesByLeadID(leadID string) ([]models.MatchSummary, error)
}

type Mailer interface {
	SendContractorNotification(ctx context.Context, data email.NotificationData) error
	SendConfirmation(ctx context.Context, data email.ConfirmationData, to string) error
}

const maxContractorsPerLead = 4

type LeadService struct {
	cities      CityStore
	projects    ProjectStore
	leads       LeadStore
	contractors ContractorStore
	matches     MatchStore
	mailer      Mailer
}

func NewLeadService(
	cities CityStore,
	projects ProjectStore,
	leads LeadStore,
	contractors ContractorStore,
	matches MatchStore,
	mailer Mailer,
) *LeadService {
	return &LeadService{
		cities:      cities,
		projects:    projects,
		leads:       leads,
		contractors: contractors,
		matches:     matches,
		mailer:      mailer,
	}
}

type SubmitLeadRequest struct {
	FirstName          string   `json:"firstName" binding:"required"`
	LastName           string   `json:"lastName" binding:"required"`
	Email              string   `json:"email" binding:"required"`
	Phone              string   `json:"phone"`
	ProjectType        string   `json:"projectType" binding:"required"`
	ProjectDescription string   `json:"projectDescription" binding:"required"`
	Timeline           string   `json:"timeline" binding:"required"`
	Budget             string   `json:"budget" binding:"required"`
	PropertyType       string   `json:"propertyType"`
	HomeOwnership      string   `json:"homeOwnership"`
	CitySlug           string   `json:"citySlug" binding:"required"`
	ProjectSlug        string   `json:"projectSlug"`
	PermitHelp         string   `json:"permitHelp"`
	AdditionalServices []string `json:"additionalServices"`
}

// Validate checks presence only. Email and phone formats are deliberately
// not verified.
func (r *SubmitLeadRequest) Validate() error {
	if r.FirstName == "" || r.LastName == "" || r.Email == "" || r.ProjectType == "" ||
		r.ProjectDescription == "" || r.Timeline == "" || r.Budget == "" || r.CitySlug == "" {
		return ErrValidation
	}
	return nil
}

type SubmitLeadResponse struct {
	Success            bool   `json:"success"`
	LeadID             string `json:"leadId"`
	ContractorsMatched int    `json:"contractorsMatched"`
	Message            string `json:"message"`
	Degraded           bool   `json:"degraded,omitempty"`
}

// Submit runs the full intake flow: resolve catalog references, persist
// the lead, select contractors, record matches, and fan out emails.
//
// Failure policy: an unknown city slug against a healthy store is the
// caller's error. Store outages degrade instead of failing — the response
// is built from synthesized values and tagged Degraded so the fallback is
// observable. Email failures never fail the request.
func (s *LeadService) Submit(ctx context.Context, req *SubmitLeadRequest) (*SubmitLeadResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	degraded := false

	city, err := s.cities.FindBySlug(req.CitySlug)
	if err != nil {
		log.Printf("city lookup failed for %q, continuing degraded: %v", req.CitySlug, err)
		degraded = true
		city = placeholderCity(req.CitySlug)
	} else if city == nil {
		return nil, ErrCityNotFound
	}

	// A project slug that doesn't resolve is non-fatal; the lead keeps
	// the free-text project type either way.
	var projectID *uuid.UUID
	if req.ProjectSlug != "" {
		project, err := s.projects.FindBySlug(req.ProjectSlug)
		if err != nil {
			log.Printf("project lookup failed for %q: %v", req.ProjectSlug, err)
		} else if project != nil {
			projectID = &project.ID
		}
	}

	lead := &models.Lead{
		HomeownerName:      req.FirstName + " " + req.LastName,
		Email:              req.Email,
		ProjectType:        req.ProjectType,
		ProjectDescription: req.ProjectDescription,
		Budget:             req.Budget,
		Timeline:           req.Timeline,
		Status:             models.LeadStatusNew,
		CityID:             city.ID,
		ProjectID:          projectID,
	}
	if req.Phone != "" {
		lead.Phone = &req.Phone
	}

	if err := s.leads.Create(lead); err != nil {
		log.Printf("lead persist failed, continuing degraded: %v", err)
		degraded = true
		lead.ID = fmt.Sprintf("lead_%d", time.Now().UnixMilli())
		lead.CreatedAt = time.Now()
	}

	contractors, err := s.contractors.FindMatching(city.ID, req.ProjectSlug, maxContractorsPerLead)
	if err != nil {
		log.Printf("contractor selection failed, using placeholders: %v", err)
		degraded = true
		contractors = placeholderContractors(city.ID)
	}

	// One match per selected contractor. A failed insert is logged and
	// skipped; the contractor is still notified and still counted.
	for i := range contractors {
		match := &models.LeadContractorMatch{
			LeadID:       lead.ID,
			ContractorID: contractors[i].ID,
			Price:        contractors[i].MatchPrice(),
			Status:       models.MatchStatusPending,
		}
		if err := s.matches.Create(match); err != nil {
			log.Printf("match create failed for contractor %s on lead %s: %v", contractors[i].ID, lead.ID, err)
		}
	}

	s.notifyAll(ctx, lead, req, city, contractors)

	return &SubmitLeadResponse{
		Success:            true,
		LeadID:             lead.ID,
		ContractorsMatched: len(contractors),
		Message:            fmt.Sprintf("Successfully matched with %d contractors", len(contractors)),
		Degraded:           degraded,
	}, nil
}

// notifyAll launches every contractor notification plus the homeowner
// confirmation concurrently and waits for all of them to settle. Failures
// are counted, never propagated, and never cancel sibling sends.
func (s *LeadService) notifyAll(ctx context.Context, lead *models.Lead, req *SubmitLeadRequest, city *models.City, contractors []models.Contractor) {
	cityLabel := fmt.Sprintf("%s, %s", city.Name, city.State)

	var wg sync.WaitGroup
	var failed atomic.Int32

	for i := range contractors {
		contractor := contractors[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			data := email.NotificationData{
				HomeownerName:      lead.HomeownerName,
				Email:              lead.Email,
				ProjectType:        req.ProjectType,
				ProjectDescription: req.ProjectDescription,
				Timeline:           req.Timeline,
				Budget:             req.Budget,
				City:               cityLabel,
				ContractorName:     contractor.BusinessName,
				ContractorEmail:    contractor.ContactEmail,
			}
			if lead.Phone != nil {
				data.Phone = *lead.Phone
			}
			if err := s.mailer.SendContractorNotification(ctx, data); err != nil {
				failed.Add(1)
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		data := email.ConfirmationData{
			HomeownerName: req.FirstName,
			ProjectType:   req.ProjectType,
			City:          cityLabel,
			SubmittedAt:   time.Now().Format("1/2/2006, 3:04:05 PM"),
		}
		if err := s.mailer.SendConfirmation(ctx, data, req.Email); err != nil {
			failed.Add(1)
		}
	}()

	wg.Wait()

	if n := failed.Load(); n > 0 {
		log.Printf("%d emails failed to send for lead %s", n, lead.ID)
	}
}

type LeadDetails struct {
	ID                string                `json:"id"`
	HomeownerName     string                `json:"homeownerName"`
	ProjectType       string                `json:"projectType"`
	Status            string                `json:"status"`
	CreatedAt         time.Time             `json:"createdAt"`
	City              string                `json:"city"`
	ContractorMatches []models.MatchSummary `json:"contractorMatches"`
}

// Get returns the lead status view for follow-up. Pure read.
func (s *LeadService) Get(leadID string) (*LeadDetails, error) {
	lead, err := s.leads.FindByID(leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrLeadNotFound
	}

	cityName := ""
	city, err := s.cities.FindByID(lead.CityID.String())
	if err == nil && city != nil {
		cityName = city.Name
	}

	matches, err := s.matches.FindSummariesByLeadID(leadID)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []models.MatchSummary{}
	}

	return &LeadDetails{
		ID:                lead.ID,
		HomeownerName:     lead.HomeownerName,
		ProjectType:       lead.ProjectType,
		Status:            lead.Status,
		CreatedAt:         lead.CreatedAt,
		City:              cityName,
		ContractorMatches: matches,
	}, nil
}

func placeholderCity(slug string) *models.City {
	return &models.City{
		ID:    uuid.New(),
		Slug:  slug,
		Name:  utils.TitleFromSlug(slug),
		State: "Unknown",
	}
}

// placeholderContractors keeps the funnel responsive when the store
// cannot answer the selection query. The pair is fixed and routes to the
// internal partner inbox rather than fabricating real businesses.
func placeholderContractors(cityID uuid.UUID) []models.Contractor {
	return []models.Contractor{
		{
			ID:               uuid.New(),
			CityID:           cityID,
			BusinessName:     "TownKit Partner Network",
			ContactEmail:     "partners@townkit.com",
			IsVerified:       true,
			SubscriptionTier: models.TierPremium,
		},
		{
			ID:               uuid.New(),
			CityID:           cityID,
			BusinessName:     "Local Licensed Contractors",
			ContactEmail:     "leads@townkit.com",
			IsVerified:       true,
			SubscriptionTier: models.TierFree,
		},
	}
}
