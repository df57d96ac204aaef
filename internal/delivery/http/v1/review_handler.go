package v1

import (
	"net/http"

	"capitalhub-backend/internal/delivery/http/response"
	"capitalhub-backend/internal/domain"
	"capitalhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUC domain.ReviewUsecase
}

// NewReviewHandler registers review routes
func NewReviewHandler(r *gin.RouterGroup, reviewUC domain.ReviewUsecase) {
	handler := &ReviewHandler{reviewUC: reviewUC}

	r.POST("/company/reviews", handler.Create)
	r.GET("/company/reviews", handler.ListForCompany)
	r.GET("/rep/reviews", handler.ListForRep)
}

// Create godoc
// @Summary      Review a rep
// @Description  Record a rating of a rep, optionally tied to one of the company's offers
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ReviewInput  true  "Review data"
// @Success      201   {object}  response.Response{data=domain.Review}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /company/reviews [post]
// @Security     BearerAuth
func (h *ReviewHandler) Create(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleCompany {
		c.Error(apperror.Forbidden("Only companies can leave reviews"))
		return
	}

	var req domain.ReviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	review, err := h.reviewUC.CreateReview(c.Request.Context(), userID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Review created", review)
}

// ListForCompany godoc
// @Summary      List authored reviews
// @Description  Get all reviews the company has written, hidden ones included
// @Tags         reviews
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Review}
// @Failure      404  {object}  response.Response
// @Router       /company/reviews [get]
// @Security     BearerAuth
func (h *ReviewHandler) ListForCompany(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleCompany {
		c.Error(apperror.Forbidden("Only companies can list their reviews"))
		return
	}

	reviews, err := h.reviewUC.ListReviewsForCompany(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reviews retrieved", reviews)
}

// ListForRep godoc
// @Summary      List my reviews
// @Description  Get the visible reviews written about the current rep
// @Tags         reviews
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Review}
// @Failure      404  {object}  response.Response
// @Router       /rep/reviews [get]
// @Security     BearerAuth
func (h *ReviewHandler) ListForRep(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleRep {
		c.Error(apperror.Forbidden("Only reps can view their reviews"))
		return
	}

	reviews, err := h.reviewUC.ListReviewsForRep(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reviews retrieved", reviews)
}
