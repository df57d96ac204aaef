package v1

import (
	"net/http"

	"capitalhub-backend/internal/delivery/http/response"
	"capitalhub-backend/internal/domain"
	"capitalhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

// NewDashboardHandler registers dashboard routes
func NewDashboardHandler(r *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}

	r.GET("/company/dashboard/stats", handler.CompanyStats)
	r.GET("/rep/dashboard/stats", handler.RepStats)
}

// CompanyStats godoc
// @Summary      Company dashboard stats
// @Description  Offer and application counters for the current company
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CompanyStats}
// @Router       /company/dashboard/stats [get]
// @Security     BearerAuth
func (h *DashboardHandler) CompanyStats(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleCompany {
		c.Error(apperror.Forbidden("Only companies can view company stats"))
		return
	}

	stats, err := h.dashboardUC.CompanyStats(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Stats retrieved", stats)
}

// RepStats godoc
// @Summary      Rep dashboard stats
// @Description  Market totals and engagement placeholders for the current rep
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.RepStats}
// @Router       /rep/dashboard/stats [get]
// @Security     BearerAuth
func (h *DashboardHandler) RepStats(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleRep {
		c.Error(apperror.Forbidden("Only reps can view rep stats"))
		return
	}

	stats, err := h.dashboardUC.RepStats(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Stats retrieved", stats)
}
