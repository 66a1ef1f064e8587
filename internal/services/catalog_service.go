package services

import (
	"context"
	"log"

	"townkit/internal/models"
	"townkit/internal/repositories"
)

// CatalogService serves the read-only permit catalog: cities, project
// types, and seeded per-city permit requirements. Requirement reads go
// through the redis cache when one is configured; cache errors are logged
// and the store answers instead.
type CatalogService struct {
	cityRepo        *repositories.CityRepository
	projectRepo     *repositories.ProjectRepository
	requirementRepo *repositories.PermitRequirementRepository
	cache           *repositories.CacheRepository
}

func NewCatalogService(
	cityRepo *repositories.CityRepository,
	projectRepo *repositories.ProjectRepository,
	requirementRepo *repositories.PermitRequirementRepository,
	cache *repositories.CacheRepository,
) *CatalogService {
	return &CatalogService{
		cityRepo:        cityRepo,
		projectRepo:     projectRepo,
		requirementRepo: requirementRepo,
		cache:           cache,
	}
}

func (s *CatalogService) ListCities() ([]models.City, error) {
	return s.cityRepo.List()
}

func (s *CatalogService) GetCity(slug string) (*models.City, error) {
	city, err := s.cityRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, ErrCityNotFound
	}
	return city, nil
}

func (s *CatalogService) ListProjects() ([]models.Project, error) {
	return s.projectRepo.List()
}

// GetRequirements returns nil without error when no requirement row is
// seeded for the pair.
func (s *CatalogService) GetRequirements(ctx context.Context, citySlug, projectSlug string) (*models.PermitRequirement, error) {
	cached, err := s.cache.GetRequirement(ctx, citySlug, projectSlug)
	if err != nil {
		log.Printf("requirement cache read failed for %s/%s: %v", citySlug, projectSlug, err)
	} else if cached != nil {
		return cached, nil
	}

	requirement, err := s.requirementRepo.FindByCityAndProject(citySlug, projectSlug)
	if err != nil {
		return nil, err
	}
	if requirement == nil {
		return nil, nil
	}

	if err := s.cache.StoreRequirement(ctx, citySlug, projectSlug, requirement); err != nil {
		log.Printf("requirement cache write failed for %s/%s: %v", citySlug, projectSlug, err)
	}

	return requirement, nil
}
