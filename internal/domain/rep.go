package domain

import (
	"context"
	"strings"
	"time"
)

// RepRole is the closed set of sales roles an offer can require
// and a rep can hold.
type RepRole string

const (
	RepRoleSetter     RepRole = "SETTER"
	RepRoleCloser     RepRole = "CLOSER"
	RepRoleColdCaller RepRole = "COLD_CALLER"
	RepRoleBoth       RepRole = "BOTH"
)

// ParseRepRole maps free-text role input to the closed enum. It is total:
// unrecognized or empty input falls back to CLOSER instead of failing,
// and SDR is accepted as an alias for COLD_CALLER.
func ParseRepRole(s string) RepRole {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SETTER":
		return RepRoleSetter
	case "CLOSER":
		return RepRoleCloser
	case "COLD_CALLER", "SDR":
		return RepRoleColdCaller
	case "BOTH":
		return RepRoleBoth
	default:
		return RepRoleCloser
	}
}

// RepProfile is an independent sales representative's marketplace profile.
type RepProfile struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	RoleType      RepRole   `json:"role_type"`
	Bio           *string   `json:"bio,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	City          *string   `json:"city,omitempty"`
	Country       *string   `json:"country,omitempty"`
	LinkedinURL   *string   `json:"linkedin_url,omitempty"`
	PortfolioURL  *string   `json:"portfolio_url,omitempty"`
	AvatarURL     *string   `json:"avatar_url,omitempty"`
	IntroVideoURL *string   `json:"intro_video_url,omitempty"`
	BestCallURL   *string   `json:"best_call_url,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`

	// Joined from users for list responses
	FullName *string `json:"full_name,omitempty"`
}

type RepProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*RepProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*RepProfile, error)
}
