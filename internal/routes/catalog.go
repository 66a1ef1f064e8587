package routes

import (
	"github.com/gin-gonic/gin"

	"townkit/internal/handlers"
)

type CatalogRoutes struct {
	handler *handlers.CatalogHandler
}

func NewCatalogRoutes(handler *handlers.CatalogHandler) *CatalogRoutes {
	return &CatalogRoutes{handler: handler}
}

func (r *CatalogRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/cities", r.handler.ListCities)
	router.GET("/cities/:slug", r.handler.GetCity)
	router.GET("/projects", r.handler.ListProjects)
	router.GET("/permit-requirements", r.handler.GetRequirements)
}
