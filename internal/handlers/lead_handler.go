package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"townkit/internal/responses"
	"townkit/internal/services"
)

type LeadHandler struct {
	leadService *services.LeadService
}

func NewLeadHandler(leadService *services.LeadService) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

// SubmitLead handles POST /api/leads
func (h *LeadHandler) SubmitLead(c *gin.Context) {
	var req services.SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	resp, err := h.leadService.Submit(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			responses.Error(c, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, services.ErrCityNotFound):
			responses.Error(c, http.StatusNotFound, "City not found")
		default:
			log.Printf("error processing lead: %v", err)
			responses.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	responses.OK(c, resp)
}

// GetLead handles GET /api/leads?leadId=<id>
func (h *LeadHandler) GetLead(c *gin.Context) {
	leadID := c.Query("leadId")
	if leadID == "" {
		responses.Error(c, http.StatusBadRequest, "Lead ID required")
		return
	}

	details, err := h.leadService.Get(leadID)
	if err != nil {
		if errors.Is(err, services.ErrLeadNotFound) {
			responses.Error(c, http.StatusNotFound, "Lead not found")
			return
		}
		log.Printf("error retrieving lead %s: %v", leadID, err)
		responses.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	responses.OK(c, gin.H{"lead": details})
}
