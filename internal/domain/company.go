package domain

import (
	"context"
	"time"
)

// Company is the offer-owning tenant. One company profile per COMPANY user.
type Company struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	Name             string    `json:"name"`
	Industry         *string   `json:"industry,omitempty"`
	Website          *string   `json:"website,omitempty"`
	About            *string   `json:"about,omitempty"`
	VideoOfferURL    *string   `json:"video_offer_url,omitempty"`
	ProjectionMRR    *int      `json:"projection_mrr,omitempty"`
	ProjectionGrowth *int      `json:"projection_growth,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*Company, error)
	GetByUserID(ctx context.Context, userID int64) (*Company, error)
}
