package routes

import (
	"github.com/gin-gonic/gin"

	"townkit/internal/handlers"
)

type CalculatorRoutes struct {
	handler *handlers.CalculatorHandler
}

func NewCalculatorRoutes(handler *handlers.CalculatorHandler) *CalculatorRoutes {
	return &CalculatorRoutes{handler: handler}
}

func (r *CalculatorRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/calculator", r.handler.Evaluate)
}
