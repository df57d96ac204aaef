package v1

import (
	"net/http"
	"strconv"

	"capitalhub-backend/internal/delivery/http/response"
	"capitalhub-backend/internal/domain"
	"capitalhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobOfferHandler struct {
	offerUC domain.JobOfferUsecase
}

// NewJobOfferHandler registers job offer routes
func NewJobOfferHandler(r *gin.RouterGroup, offerUC domain.JobOfferUsecase) {
	handler := &JobOfferHandler{offerUC: offerUC}

	company := r.Group("/company")
	{
		company.POST("/jobs", handler.Create)
		company.GET("/jobs", handler.ListCompanyOffers)
		company.PATCH("/jobs/:id/status", handler.UpdateStatus)
	}

	rep := r.Group("/rep")
	{
		rep.GET("/jobs", handler.ListForRep)
	}

	// Offer detail is visible to any authenticated actor
	r.GET("/jobs/:id", handler.GetOffer)
}

// Create godoc
// @Summary      Create an offer
// @Description  Publish a new sales-role offer (Company only)
// @Tags         offers
// @Accept       json
// @Produce      json
// @Param        body  body      domain.JobOfferInput  true  "Offer data"
// @Success      201   {object}  response.Response{data=domain.JobOfferView}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /company/jobs [post]
// @Security     BearerAuth
func (h *JobOfferHandler) Create(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleCompany {
		c.Error(apperror.Forbidden("Only companies can create offers"))
		return
	}

	var req domain.JobOfferInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	offer, err := h.offerUC.CreateOffer(c.Request.Context(), userID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Offer created", offer)
}

// ListCompanyOffers godoc
// @Summary      List my offers
// @Description  Get all offers created by the current company
// @Tags         offers
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.JobOfferView}
// @Failure      404  {object}  response.Response
// @Router       /company/jobs [get]
// @Security     BearerAuth
func (h *JobOfferHandler) ListCompanyOffers(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleCompany {
		c.Error(apperror.Forbidden("Only companies can list their offers"))
		return
	}

	offers, err := h.offerUC.ListCompanyOffers(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Offers retrieved", offers)
}

// UpdateStatus godoc
// @Summary      Update offer status
// @Description  Open, pause or close an offer (owning company only)
// @Tags         offers
// @Produce      json
// @Param        id      path      int     true  "Offer ID"
// @Param        status  query     string  true  "Target status (ACTIVE, PAUSED, CLOSED)"
// @Success      200     {object}  response.Response{data=domain.JobOfferView}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /company/jobs/{id}/status [patch]
// @Security     BearerAuth
func (h *JobOfferHandler) UpdateStatus(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleCompany {
		c.Error(apperror.Forbidden("Only companies can update offer status"))
		return
	}

	offerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid offer ID"))
		return
	}

	status, ok := domain.ParseJobStatus(c.Query("status"))
	if !ok {
		c.Error(apperror.BadRequest("Invalid status value"))
		return
	}

	offer, err := h.offerUC.UpdateOfferStatus(c.Request.Context(), userID, offerID, status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Offer status updated", offer)
}

// ListForRep godoc
// @Summary      Browse the offer market
// @Description  List active offers, optionally filtered by rep role
// @Tags         offers
// @Produce      json
// @Param        role  query     string  false  "Role filter (SETTER, CLOSER, COLD_CALLER, BOTH)"
// @Success      200   {object}  response.Response{data=[]domain.JobOfferView}
// @Router       /rep/jobs [get]
// @Security     BearerAuth
func (h *JobOfferHandler) ListForRep(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleRep {
		c.Error(apperror.Forbidden("Only reps can browse the offer market"))
		return
	}

	offers, err := h.offerUC.ListOffersForRep(c.Request.Context(), c.Query("role"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Offers retrieved", offers)
}

// GetOffer godoc
// @Summary      Get offer detail
// @Description  Get a single offer by id (any authenticated actor)
// @Tags         offers
// @Produce      json
// @Param        id   path      int  true  "Offer ID"
// @Success      200  {object}  response.Response{data=domain.JobOfferView}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobOfferHandler) GetOffer(c *gin.Context) {
	offerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid offer ID"))
		return
	}

	offer, err := h.offerUC.GetOffer(c.Request.Context(), offerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Offer retrieved", offer)
}
