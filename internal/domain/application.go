package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateApplication is returned by the repository when the storage
// uniqueness constraint on (rep_id, job_offer_id) rejects an insert.
var ErrDuplicateApplication = errors.New("application already exists for this rep and offer")

// ApplicationStatus is the application lifecycle state.
//
// The company-facing status update accepts any target value; only some
// targets trigger side effects (see the Mark* helpers). WITHDRAWN exists
// for rep-initiated withdrawal but is not reachable through any endpoint
// yet.
type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "APPLIED"
	ApplicationStatusInterview ApplicationStatus = "INTERVIEW"
	ApplicationStatusOfferSent ApplicationStatus = "OFFER_SENT"
	ApplicationStatusHired     ApplicationStatus = "HIRED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn ApplicationStatus = "WITHDRAWN"
)

// ParseApplicationStatus validates a status query value.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch ApplicationStatus(s) {
	case ApplicationStatusApplied, ApplicationStatusInterview, ApplicationStatusOfferSent,
		ApplicationStatusHired, ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return ApplicationStatus(s), true
	}
	return "", false
}

// JobApplication is a rep's claim against an offer. At most one exists
// per (rep, offer) pair, enforced at creation and by a unique constraint.
type JobApplication struct {
	ID         int64             `json:"id"`
	RepID      int64             `json:"rep_id"`
	JobOfferID int64             `json:"job_offer_id"`
	Status     ApplicationStatus `json:"status"`

	RepMessage   *string `json:"rep_message,omitempty"`
	CompanyNotes *string `json:"company_notes,omitempty"`
	InterviewURL *string `json:"interview_url,omitempty"`

	InterviewAt *time.Time `json:"interview_at,omitempty"`
	HiredAt     *time.Time `json:"hired_at,omitempty"`
	RejectedAt  *time.Time `json:"rejected_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined data for list responses
	JobTitle    *string `json:"job_title,omitempty"`
	JobRole     *string `json:"job_role,omitempty"`
	CompanyID   *int64  `json:"company_id,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	RepFullName *string `json:"rep_full_name,omitempty"`
}

// MarkInterview moves the application to INTERVIEW and records the
// interview link and timestamp.
func (a *JobApplication) MarkInterview(url string, now time.Time) {
	a.Status = ApplicationStatusInterview
	a.InterviewURL = &url
	a.InterviewAt = &now
}

// MarkHired moves the application to HIRED and records the timestamp.
func (a *JobApplication) MarkHired(now time.Time) {
	a.Status = ApplicationStatusHired
	a.HiredAt = &now
}

// MarkRejected moves the application to REJECTED, storing the company's
// notes and the rejection timestamp.
func (a *JobApplication) MarkRejected(notes *string, now time.Time) {
	a.Status = ApplicationStatusRejected
	a.CompanyNotes = notes
	a.RejectedAt = &now
}

// StatusUpdate carries the company-supplied fields for a status change.
type StatusUpdate struct {
	Status       ApplicationStatus
	CompanyNotes *string
	InterviewURL *string
}

type JobApplicationRepository interface {
	// Create inserts the application and increments the offer's
	// applicants_count in one transaction. A duplicate (rep, offer)
	// pair must surface as ErrDuplicateApplication.
	Create(ctx context.Context, app *JobApplication) error
	GetByID(ctx context.Context, id int64) (*JobApplication, error)
	GetByRepID(ctx context.Context, repID int64) ([]JobApplication, error)
	GetByJobOfferID(ctx context.Context, offerID int64) ([]JobApplication, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]JobApplication, error)
	CheckExists(ctx context.Context, repID, offerID int64) (bool, error)
	Update(ctx context.Context, app *JobApplication) error

	// Dashboard projections
	CountByCompanyID(ctx context.Context, companyID int64) (int64, error)
	CountByCompanyIDAndStatus(ctx context.Context, companyID int64, status ApplicationStatus) (int64, error)
}

type JobApplicationUsecase interface {
	// Rep operations
	Apply(ctx context.Context, repUserID, offerID int64, repMessage *string) (*JobApplication, error)
	ListMyApplications(ctx context.Context, repUserID int64) ([]JobApplication, error)

	// Company operations
	ListForOffer(ctx context.Context, companyUserID, offerID int64) ([]JobApplication, error)
	ListAllForCompany(ctx context.Context, companyUserID int64) ([]JobApplication, error)
	UpdateStatus(ctx context.Context, companyUserID, applicationID int64, upd StatusUpdate) (*JobApplication, error)
}
