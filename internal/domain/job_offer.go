package domain

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// JobStatus is the offer lifecycle state. Offers are never deleted;
// closing is a soft transition.
type JobStatus string

const (
	JobStatusActive JobStatus = "ACTIVE"
	JobStatusPaused JobStatus = "PAUSED"
	JobStatusClosed JobStatus = "CLOSED"
)

// ParseJobStatus validates a status query value. Unlike role parsing this
// is strict: an unknown status is a caller error, not a default.
func ParseJobStatus(s string) (JobStatus, bool) {
	switch JobStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case JobStatusActive:
		return JobStatusActive, true
	case JobStatusPaused:
		return JobStatusPaused, true
	case JobStatusClosed:
		return JobStatusClosed, true
	}
	return "", false
}

// Contact channel constants for the interview call link
const (
	CallToolCalendly = "CALENDLY"
	CallToolZoom     = "ZOOM"
	CallToolWhatsapp = "WHATSAPP"
)

type JobOffer struct {
	ID              int64   `json:"id"`
	CompanyID       int64   `json:"company_id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Role            RepRole `json:"role"`
	Seats           int     `json:"seats"`
	MaxApplicants   int     `json:"max_applicants"`
	ApplicantsCount int     `json:"applicants_count"`

	// Economic metadata, opaque to the lifecycle rules
	Salary                   *float64 `json:"salary,omitempty"`
	CommissionPercent        *float64 `json:"commission_percent,omitempty"`
	AvgTicket                *float64 `json:"avg_ticket,omitempty"`
	EstimatedMonthlyEarnings *float64 `json:"estimated_monthly_earnings,omitempty"`

	Language string  `json:"language"`
	CRM      *string `json:"crm,omitempty"`
	Modality *string `json:"modality,omitempty"`
	Market   *string `json:"market,omitempty"`

	CalendlyURL *string `json:"calendly_url,omitempty"`
	ZoomURL     *string `json:"zoom_url,omitempty"`
	WhatsappURL *string `json:"whatsapp_url,omitempty"`

	Status    JobStatus `json:"status"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined from companies for list responses
	CompanyName *string `json:"company_name,omitempty"`
}

// CallChannel resolves the single contact channel from the stored
// per-channel URLs, in calendly -> zoom -> whatsapp priority order.
func (o *JobOffer) CallChannel() (tool string, link string) {
	switch {
	case o.CalendlyURL != nil && *o.CalendlyURL != "":
		return CallToolCalendly, *o.CalendlyURL
	case o.ZoomURL != nil && *o.ZoomURL != "":
		return CallToolZoom, *o.ZoomURL
	case o.WhatsappURL != nil && *o.WhatsappURL != "":
		return CallToolWhatsapp, *o.WhatsappURL
	}
	return "", ""
}

// SalaryHint builds the human-readable compensation line from the stored
// numeric fields. Empty when no commission data exists.
func (o *JobOffer) SalaryHint() string {
	if o.CommissionPercent == nil {
		return ""
	}
	hint := formatRate(*o.CommissionPercent) + "% comisión"
	if o.AvgTicket != nil {
		hint += fmt.Sprintf(" · ticket %d €", int(*o.AvgTicket))
	}
	return hint
}

// formatRate keeps a trailing .0 on whole numbers (15.0, 12.5); clients
// string-match the hint, so whole rates must not collapse to "15".
func formatRate(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// JobOfferView is the read model for API responses. The display fields
// (call tool, salary hint, model) are derived at read time, never stored.
type JobOfferView struct {
	JobOffer
	SalaryHint string  `json:"salary_hint,omitempty"`
	Model      string  `json:"model"`
	Type       *string `json:"type,omitempty"`
	CallTool   string  `json:"call_tool,omitempty"`
	CallLink   string  `json:"call_link,omitempty"`
}

// View derives the presentation fields from the persisted offer.
func (o *JobOffer) View() *JobOfferView {
	tool, link := o.CallChannel()
	return &JobOfferView{
		JobOffer:   *o,
		SalaryHint: o.SalaryHint(),
		Model:      "Variable",
		Type:       o.Modality,
		CallTool:   tool,
		CallLink:   link,
	}
}

// JobOfferInput carries the company-supplied fields for offer creation.
type JobOfferInput struct {
	Title       string `json:"title" binding:"required" validate:"required"`
	Description string `json:"description"`
	Role        string `json:"role"`

	// Frontend shorthand fields
	SalaryHint *string `json:"salary_hint"`
	Model      *string `json:"model"`
	Type       *string `json:"type"`
	CallTool   *string `json:"call_tool"`
	CallLink   *string `json:"call_link"`

	Seats                    *int     `json:"seats" binding:"omitempty,gte=1" validate:"omitempty,gte=1"`
	Language                 *string  `json:"language"`
	CRM                      *string  `json:"crm"`
	CommissionPercent        *float64 `json:"commission_percent" validate:"omitempty,gte=0,lte=100"`
	AvgTicket                *float64 `json:"avg_ticket" validate:"omitempty,gte=0"`
	EstimatedMonthlyEarnings *float64 `json:"estimated_monthly_earnings"`
	Modality                 *string  `json:"modality"`
	Market                   *string  `json:"market"`
	CalendlyURL              *string  `json:"calendly_url"`
	ZoomURL                  *string  `json:"zoom_url"`
	WhatsappURL              *string  `json:"whatsapp_url"`
}

type JobOfferRepository interface {
	Create(ctx context.Context, offer *JobOffer) error
	GetByID(ctx context.Context, id int64) (*JobOffer, error)
	FetchByCompanyID(ctx context.Context, companyID int64) ([]JobOffer, error)
	FetchActiveByRoles(ctx context.Context, roles []RepRole) ([]JobOffer, error)
	FetchAllActive(ctx context.Context) ([]JobOffer, error)
	UpdateStatus(ctx context.Context, id int64, status JobStatus, active bool) error

	// Dashboard projections
	CountByCompanyIDAndActive(ctx context.Context, companyID int64, active bool) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type JobOfferUsecase interface {
	CreateOffer(ctx context.Context, companyUserID int64, in *JobOfferInput) (*JobOfferView, error)
	ListCompanyOffers(ctx context.Context, companyUserID int64) ([]JobOfferView, error)
	ListOffersForRep(ctx context.Context, roleFilter string) ([]JobOfferView, error)
	GetOffer(ctx context.Context, id int64) (*JobOfferView, error)
	UpdateOfferStatus(ctx context.Context, companyUserID, offerID int64, status JobStatus) (*JobOfferView, error)
}
