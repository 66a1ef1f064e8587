package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"townkit/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, leadHandler *handlers.LeadHandler, catalogHandler *handlers.CatalogHandler, calculatorHandler *handlers.CalculatorHandler) {
	api := router.Group("/api")

	leadRoutes := NewLeadRoutes(leadHandler)
	leadRoutes.RegisterRoutes(api)

	catalogRoutes := NewCatalogRoutes(catalogHandler)
	catalogRoutes.RegisterRoutes(api)

	calculatorRoutes := NewCalculatorRoutes(calculatorHandler)
	calculatorRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
