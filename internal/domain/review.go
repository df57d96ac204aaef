package domain

import (
	"context"
	"time"
)

// Rating bounds for reviews
const (
	RatingMin = 1
	RatingMax = 5
)

// Review is a company-authored rating of a rep, optionally scoped to one
// of the company's own offers. Reviews are immutable once written; the
// visible flag lets an administrator hide abusive content from the rep
// without deleting it.
type Review struct {
	ID         int64  `json:"id"`
	CompanyID  int64  `json:"company_id"`
	RepID      int64  `json:"rep_id"`
	JobOfferID *int64 `json:"job_offer_id,omitempty"`

	Rating  int     `json:"rating"` // 1..5
	Comment *string `json:"comment,omitempty"`

	// Achieved metrics during the engagement
	CallsMade        *int     `json:"calls_made,omitempty"`
	DealsClosed      *int     `json:"deals_closed,omitempty"`
	GeneratedRevenue *float64 `json:"generated_revenue,omitempty"`

	Visible   bool      `json:"visible"`
	CreatedAt time.Time `json:"created_at"`

	// Joined data for list responses
	CompanyName *string `json:"company_name,omitempty"`
	RepFullName *string `json:"rep_full_name,omitempty"`
	JobTitle    *string `json:"job_title,omitempty"`
}

// ReviewInput carries the company-supplied fields for review creation.
type ReviewInput struct {
	RepID            int64    `json:"rep_id" binding:"required"`
	JobOfferID       *int64   `json:"job_offer_id"`
	Rating           int      `json:"rating" binding:"required"`
	Comment          *string  `json:"comment"`
	CallsMade        *int     `json:"calls_made"`
	DealsClosed      *int     `json:"deals_closed"`
	GeneratedRevenue *float64 `json:"generated_revenue"`
}

type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	GetByRepID(ctx context.Context, repID int64, visibleOnly bool) ([]Review, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]Review, error)
}

type ReviewUsecase interface {
	CreateReview(ctx context.Context, companyUserID int64, in *ReviewInput) (*Review, error)
	ListReviewsForRep(ctx context.Context, repUserID int64) ([]Review, error)
	ListReviewsForCompany(ctx context.Context, companyUserID int64) ([]Review, error)
}
