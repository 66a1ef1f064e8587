package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"townkit/internal/email"
	"townkit/internal/models"
)

type fakeStore struct {
	mu sync.Mutex

	cities        map[string]*models.City
	cityLookupErr error

	projects map[string]*models.Project

	leads         map[string]*models.Lead
	leadCreateErr error

	contractors   []models.Contractor
	contractorErr error

	matches        []*models.LeadContractorMatch
	matchCreateErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		cities:   make(map[string]*models.City),
		projects: make(map[string]*models.Project),
		leads:    make(map[string]*models.Lead),
	}
}

func (f *fakeStore) FindBySlug(slug string) (*models.City, error) {
	if f.cityLookupErr != nil {
		return nil, f.cityLookupErr
	}
	return f.cities[slug], nil
}

func (f *fakeStore) FindByID(id string) (*models.City, error) {
	for _, city := range f.cities {
		if city.ID.String() == id {
			return city, nil
		}
	}
	return nil, nil
}

type fakeProjects struct {
	store *fakeStore
}

func (f fakeProjects) FindBySlug(slug string) (*models.Project, error) {
	return f.store.projects[slug], nil
}

type fakeLeads struct {
	store *fakeStore
}

func (f fakeLeads) Create(lead *models.Lead) error {
	if f.store.leadCreateErr != nil {
		return f.store.leadCreateErr
	}
	lead.Prepare()
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.leads[lead.ID] = lead
	return nil
}

func (f fakeLeads) FindByID(id string) (*models.Lead, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.leads[id], nil
}

type fakeContractors struct {
	store *fakeStore
}

func (f fakeContractors) FindMatching(cityID uuid.UUID, projectSlug string, limit int) ([]models.Contractor, error) {
	if f.store.contractorErr != nil {
		return nil, f.store.contractorErr
	}
	var out []models.Contractor
	for _, c := range f.store.contractors {
		if c.CityID != cityID || !c.IsVerified {
			continue
		}
		if projectSlug != "" && !containsString(c.Specialties, projectSlug) {
			continue
		}
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

type fakeMatches struct {
	store *fakeStore
}

func (f fakeMatches) Create(match *models.LeadContractorMatch) error {
	if f.store.matchCreateErr != nil {
		return f.store.matchCreateErr
	}
	match.Prepare()
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.matches = append(f.store.matches, match)
	return nil
}

func (f fakeMatches) FindSummariesByLeadID(leadID string) ([]models.MatchSummary, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []models.MatchSummary
	for _, m := range f.store.matches {
		if m.LeadID == leadID {
			out = append(out, models.MatchSummary{Status: m.Status, MatchedAt: m.MatchedAt})
		}
	}
	return out, nil
}

type fakeMailer struct {
	mu            sync.Mutex
	notifications []email.NotificationData
	confirmations []email.ConfirmationData
	sendErr       error
}

func (f *fakeMailer) SendContractorNotification(_ context.Context, data email.NotificationData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = append(f.notifications, data)
	return f.sendErr
}

func (f *fakeMailer) SendConfirmation(_ context.Context, data email.ConfirmationData, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmations = append(f.confirmations, data)
	return f.sendErr
}

func newTestService(store *fakeStore, mailer *fakeMailer) *LeadService {
	return NewLeadService(
		store,
		fakeProjects{store},
		fakeLeads{store},
		fakeContractors{store},
		fakeMatches{store},
		mailer,
	)
}

func seedCity(store *fakeStore, slug string) *models.City {
	city := &models.City{ID: uuid.New(), Slug: slug, Name: "Austin", State: "TX"}
	store.cities[slug] = city
	return city
}

func seedContractor(store *fakeStore, cityID uuid.UUID, name, tier string, specialties ...string) models.Contractor {
	c := models.Contractor{
		ID:               uuid.New(),
		CityID:           cityID,
		BusinessName:     name,
		ContactEmail:     strings.ToLower(strings.ReplaceAll(name, " ", "")) + "@example.com",
		Specialties:      specialties,
		IsVerified:       true,
		SubscriptionTier: tier,
	}
	store.contractors = append(store.contractors, c)
	return c
}

func validRequest() *SubmitLeadRequest {
	return &SubmitLeadRequest{
		FirstName:          "Jane",
		LastName:           "Doe",
		Email:              "jane@example.com",
		Phone:              "(555) 111-2222",
		ProjectType:        "Deck Addition",
		ProjectDescription: "A 400 sq ft cedar deck off the back porch",
		Timeline:           "1-3 months",
		Budget:             "$5,000 - $15,000",
		CitySlug:           "austin-tx",
	}
}

func TestSubmitMatchesContractorsAndCreatesRecords(t *testing.T) {
	store := newFakeStore()
	city := seedCity(store, "austin-tx")
	seedContractor(store, city.ID, "Premium Decks", models.TierPremium, "deck-permit")
	seedContractor(store, city.ID, "Budget Builders", models.TierFree, "deck-permit")
	mailer := &fakeMailer{}
	svc := newTestService(store, mailer)

	resp, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.False(t, resp.Degraded)
	assert.Equal(t, 2, resp.ContractorsMatched)
	assert.Equal(t, "Successfully matched with 2 contractors", resp.Message)
	assert.NotEmpty(t, resp.LeadID)

	require.Len(t, store.leads, 1)
	lead := store.leads[resp.LeadID]
	require.NotNil(t, lead)
	assert.Equal(t, "Jane Doe", lead.HomeownerName)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.Equal(t, city.ID, lead.CityID)
	assert.Nil(t, lead.ProjectID)

	require.Len(t, store.matches, 2)
	prices := map[uuid.UUID]int{}
	for _, m := range store.matches {
		assert.Equal(t, resp.LeadID, m.LeadID)
		assert.Equal(t, models.MatchStatusPending, m.Status)
		prices[m.ContractorID] = m.Price
	}
	assert.Contains(t, []int{100, 150}, store.matches[0].Price)
	assert.Contains(t, []int{100, 150}, store.matches[1].Price)

	assert.Len(t, mailer.notifications, 2)
	assert.Len(t, mailer.confirmations, 1)
	assert.Equal(t, "Austin, TX", mailer.confirmations[0].City)
}

func TestSubmitTierPricing(t *testing.T) {
	store := newFakeStore()
	city := seedCity(store, "austin-tx")
	premium := seedContractor(store, city.ID, "Premium Decks", models.TierPremium, "deck-permit")
	free := seedContractor(store, city.ID, "Budget Builders", models.TierFree, "deck-permit")
	svc := newTestService(store, &fakeMailer{})

	_, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	byContractor := map[uuid.UUID]int{}
	for _, m := range store.matches {
		byContractor[m.ContractorID] = m.Price
	}
	assert.Equal(t, 150, byContractor[premium.ID])
	assert.Equal(t, 100, byContractor[free.ID])
}

func TestSubmitFiltersBySpecialty(t *testing.T) {
	store := newFakeStore()
	city := seedCity(store, "austin-tx")
	seedContractor(store, city.ID, "Deck Experts", models.TierFree, "deck-permit")
	seedContractor(store, city.ID, "Pool People", models.TierFree, "pool-permit")
	mailer := &fakeMailer{}
	svc := newTestService(store, mailer)

	req := validRequest()
	req.ProjectSlug = "deck-permit"
	resp, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.ContractorsMatched)
	require.Len(t, mailer.notifications, 1)
	assert.Equal(t, "Deck Experts", mailer.notifications[0].ContractorName)
}

func TestSubmitCapsAtFourContractors(t *testing.T) {
	store := newFakeStore()
	city := seedCity(store, "austin-tx")
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		seedContractor(store, city.ID, "Contractor "+name, models.TierFree, "deck-permit")
	}
	svc := newTestService(store, &fakeMailer{})

	resp, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 4, resp.ContractorsMatched)
	assert.Len(t, store.matches, 4)
}

func TestSubmitMissingFields(t *testing.T) {
	fields := []func(*SubmitLeadRequest){
		func(r *SubmitLeadRequest) { r.FirstName = "" },
		func(r *SubmitLeadRequest) { r.LastName = "" },
		func(r *SubmitLeadRequest) { r.Email = "" },
		func(r *SubmitLeadRequest) { r.ProjectType = "" },
		func(r *SubmitLeadRequest) { r.ProjectDescription = "" },
		func(r *SubmitLeadRequest) { r.Timeline = "" },
		func(r *SubmitLeadRequest) { r.Budget = "" },
		func(r *SubmitLeadRequest) { r.CitySlug = "" },
	}

	for _, clear := range fields {
		store := newFakeStore()
		seedCity(store, "austin-tx")
		svc := newTestService(store, &fakeMailer{})

		req := validRequest()
		clear(req)

		_, err := svc.Submit(context.Background(), req)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Empty(t, store.leads)
		assert.Empty(t, store.matches)
	}
}

func TestSubmitUnknownCity(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, &fakeMailer{})

	_, err := svc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCityNotFound)
	assert.Empty(t, store.leads)
}

func TestSubmitDegradesWhenCityLookupFails(t *testing.T) {
	store := newFakeStore()
	store.cityLookupErr = assert.AnError
	store.leadCreateErr = assert.AnError
	store.contractorErr = assert.AnError
	store.matchCreateErr = assert.AnError
	mailer := &fakeMailer{}
	svc := newTestService(store, mailer)

	resp, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Degraded)
	assert.True(t, strings.HasPrefix(resp.LeadID, "lead_"))
	// The fixed placeholder pair keeps the funnel responsive.
	assert.Equal(t, 2, resp.ContractorsMatched)
	assert.Len(t, mailer.notifications, 2)
	assert.Equal(t, "Austin Tx, Unknown", mailer.notifications[0].City)
}

func TestSubmitDegradesWhenLeadPersistFails(t *testing.T) {
	store := newFakeStore()
	city := seedCity(store, "austin-tx")
	seedContractor(store, city.ID, "Deck Experts", models.TierFree, "deck-permit")
	store.leadCreateErr = assert.AnError
	svc := newTestService(store, &fakeMailer{})

	resp, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Degraded)
	assert.True(t, strings.HasPrefix(resp.LeadID, "lead_"))
	assert.Equal(t, 1, resp.ContractorsMatched)
}

func TestSubmitCountsSelectedNotNotified(t *testing.T) {
	store := newFakeStore()
	city := seedCity(store, "austin-tx")
	seedContractor(store, city.ID, "Deck Experts", models.TierFree, "deck-permit")
	seedContractor(store, city.ID, "Pool People", models.TierFree, "pool-permit")
	mailer := &fakeMailer{sendErr: assert.AnError}
	svc := newTestService(store, mailer)

	resp, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	// Every email fails but the response still reports both selections.
	assert.Equal(t, 2, resp.ContractorsMatched)
	assert.True(t, resp.Success)
}

func TestSubmitMatchFailureDoesNotAbort(t *testing.T) {
	store := newFakeStore()
	city := seedCity(store, "austin-tx")
	seedContractor(store, city.ID, "Deck Experts", models.TierFree, "deck-permit")
	store.matchCreateErr = assert.AnError
	mailer := &fakeMailer{}
	svc := newTestService(store, mailer)

	resp, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.ContractorsMatched)
	assert.Empty(t, store.matches)
	assert.Len(t, mailer.notifications, 1)
}

func TestSubmitTwiceCreatesTwoLeads(t *testing.T) {
	store := newFakeStore()
	seedCity(store, "austin-tx")
	svc := newTestService(store, &fakeMailer{})

	first, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.LeadID, second.LeadID)
	assert.Len(t, store.leads, 2)
}

func TestGetLead(t *testing.T) {
	store := newFakeStore()
	city := seedCity(store, "austin-tx")
	seedContractor(store, city.ID, "Deck Experts", models.TierFree, "deck-permit")
	svc := newTestService(store, &fakeMailer{})

	resp, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	details, err := svc.Get(resp.LeadID)
	require.NoError(t, err)

	assert.Equal(t, resp.LeadID, details.ID)
	assert.Equal(t, "Jane Doe", details.HomeownerName)
	assert.Equal(t, models.LeadStatusNew, details.Status)
	assert.Equal(t, "Austin", details.City)
	assert.Len(t, details.ContractorMatches, 1)
}

func TestGetLeadNotFound(t *testing.T) {
	svc := newTestService(newFakeStore(), &fakeMailer{})

	_, err := svc.Get("nope")
	assert.ErrorIs(t, err, ErrLeadNotFound)
}
