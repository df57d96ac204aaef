package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"capitalhub-backend/internal/delivery/http/response"
	"capitalhub-backend/internal/domain"
	"capitalhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.JobApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.JobApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	// Rep routes
	rep := r.Group("/rep")
	{
		rep.POST("/jobs/:id/apply", handler.Apply)
		rep.GET("/applications", handler.MyApplications)
	}

	// Company routes
	company := r.Group("/company")
	{
		company.GET("/jobs/:id/applications", handler.ListForOffer)
		company.GET("/applications", handler.ListAllForCompany)
		company.PATCH("/applications/:id/status", handler.UpdateStatus)
	}
}

// ApplyRequest is the optional request payload when applying to an offer
type ApplyRequest struct {
	RepMessage *string `json:"rep_message"`
}

// Apply godoc
// @Summary      Apply to an offer
// @Description  Submit an application against an active offer (Rep only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int           true   "Offer ID"
// @Param        body  body      ApplyRequest  false  "Application data"
// @Success      201   {object}  response.Response{data=domain.JobApplication}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /rep/jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleRep {
		c.Error(apperror.Forbidden("Only reps can apply to offers"))
		return
	}

	offerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid offer ID"))
		return
	}

	// Body is optional; an empty apply is valid. EOF covers empty bodies
	// without relying on Content-Length, which chunked requests omit.
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), userID, offerID, req.RepMessage)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// MyApplications godoc
// @Summary      Get my applications
// @Description  Get all applications submitted by the current rep
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.JobApplication}
// @Failure      404  {object}  response.Response
// @Router       /rep/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleRep {
		c.Error(apperror.Forbidden("Only reps can view their applications"))
		return
	}

	applications, err := h.applicationUC.ListMyApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ListForOffer godoc
// @Summary      List applications for an offer
// @Description  Get all applications for one of the company's offers (owner only)
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Offer ID"
// @Success      200 {object}  response.Response{data=[]domain.JobApplication}
// @Failure      403 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Router       /company/jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForOffer(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleCompany {
		c.Error(apperror.Forbidden("Only companies can view offer applications"))
		return
	}

	offerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid offer ID"))
		return
	}

	applications, err := h.applicationUC.ListForOffer(c.Request.Context(), userID, offerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ListAllForCompany godoc
// @Summary      List all received applications
// @Description  Get every application across all of the company's offers
// @Tags         applications
// @Produce      json
// @Success      200 {object}  response.Response{data=[]domain.JobApplication}
// @Failure      404 {object}  response.Response
// @Router       /company/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListAllForCompany(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleCompany {
		c.Error(apperror.Forbidden("Only companies can view received applications"))
		return
	}

	applications, err := h.applicationUC.ListAllForCompany(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Move an application through its lifecycle (owning company only)
// @Tags         applications
// @Produce      json
// @Param        id            path      int     true   "Application ID"
// @Param        status        query     string  true   "Target status"
// @Param        companyNotes  query     string  false  "Company notes"
// @Param        interviewUrl  query     string  false  "Interview link"
// @Success      200  {object}  response.Response{data=domain.JobApplication}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /company/applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleCompany {
		c.Error(apperror.Forbidden("Only companies can update application status"))
		return
	}

	applicationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	status, ok := domain.ParseApplicationStatus(c.Query("status"))
	if !ok {
		c.Error(apperror.BadRequest("Invalid status value"))
		return
	}

	upd := domain.StatusUpdate{Status: status}
	if notes, exists := c.GetQuery("companyNotes"); exists {
		upd.CompanyNotes = &notes
	}
	if url, exists := c.GetQuery("interviewUrl"); exists {
		upd.InterviewURL = &url
	}

	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), userID, applicationID, upd)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}
