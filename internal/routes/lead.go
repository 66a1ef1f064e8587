package routes

import (
	"github.com/gin-gonic/gin"

	"townkit/internal/handlers"
)

type LeadRoutes struct {
	handler *handlers.LeadHandler
}

func NewLeadRoutes(handler *handlers.LeadHandler) *LeadRoutes {
	return &LeadRoutes{handler: handler}
}

func (r *LeadRoutes) RegisterRoutes(router *gin.RouterGroup) {
	leads := router.Group("/leads")
	{
		leads.POST("", r.handler.SubmitLead)
		leads.GET("", r.handler.GetLead)
	}
}
