package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"townkit/internal/responses"
	"townkit/internal/services"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// ListCities handles GET /api/cities
func (h *CatalogHandler) ListCities(c *gin.Context) {
	cities, err := h.catalogService.ListCities()
	if err != nil {
		log.Printf("error listing cities: %v", err)
		responses.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	responses.OK(c, gin.H{"cities": cities})
}

// GetCity handles GET /api/cities/:slug
func (h *CatalogHandler) GetCity(c *gin.Context) {
	city, err := h.catalogService.GetCity(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrCityNotFound) {
			responses.Error(c, http.StatusNotFound, "City not found")
			return
		}
		log.Printf("error retrieving city: %v", err)
		responses.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	responses.OK(c, gin.H{"city": city})
}

// ListProjects handles GET /api/projects
func (h *CatalogHandler) ListProjects(c *gin.Context) {
	projects, err := h.catalogService.ListProjects()
	if err != nil {
		log.Printf("error listing projects: %v", err)
		responses.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	responses.OK(c, gin.H{"projects": projects})
}

// GetRequirements handles GET /api/permit-requirements?city=<slug>&project=<slug>
func (h *CatalogHandler) GetRequirements(c *gin.Context) {
	citySlug := c.Query("city")
	projectSlug := c.Query("project")
	if citySlug == "" || projectSlug == "" {
		responses.Error(c, http.StatusBadRequest, "City and project are required")
		return
	}

	requirement, err := h.catalogService.GetRequirements(c.Request.Context(), citySlug, projectSlug)
	if err != nil {
		log.Printf("error retrieving requirements for %s/%s: %v", citySlug, projectSlug, err)
		responses.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if requirement == nil {
		responses.Error(c, http.StatusNotFound, "Permit requirements not found")
		return
	}

	responses.OK(c, gin.H{"requirements": requirement})
}
