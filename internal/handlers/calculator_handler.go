package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"townkit/internal/responses"
	"townkit/internal/services"
)

type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// Evaluate handles POST /api/calculator
func (h *CalculatorHandler) Evaluate(c *gin.Context) {
	var input services.CalculatorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		responses.Error(c, http.StatusBadRequest, "City and project type are required")
		return
	}

	responses.OK(c, services.Evaluate(input))
}
