package usecase

import (
	"context"
	"errors"
	"time"

	"capitalhub-backend/internal/domain"
	"capitalhub-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.JobApplicationRepository
	offerRepo       domain.JobOfferRepository
	repRepo         domain.RepProfileRepository
	companyRepo     domain.CompanyRepository
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	applicationRepo domain.JobApplicationRepository,
	offerRepo domain.JobOfferRepository,
	repRepo domain.RepProfileRepository,
	companyRepo domain.CompanyRepository,
) domain.JobApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		offerRepo:       offerRepo,
		repRepo:         repRepo,
		companyRepo:     companyRepo,
	}
}

// Apply submits a rep's application against an active offer. The repository
// insert and the offer counter increment commit atomically.
func (uc *applicationUsecase) Apply(ctx context.Context, repUserID, offerID int64, repMessage *string) (*domain.JobApplication, error) {
	// 1. Resolve rep profile
	rep, err := uc.repRepo.GetByUserID(ctx, repUserID)
	if err != nil {
		return nil, apperror.NotFound("Rep profile not found")
	}

	// 2. Resolve offer and require it to be accepting applications
	offer, err := uc.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return nil, apperror.NotFound("Offer not found")
	}
	if !offer.Active || offer.Status != domain.JobStatusActive {
		return nil, apperror.BadRequest("This offer is no longer active")
	}

	// 3. Duplicate pre-check; the unique constraint is the backstop
	exists, err := uc.applicationRepo.CheckExists(ctx, rep.ID, offer.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this offer")
	}

	// 4. Create application (insert + counter increment, one transaction)
	app := &domain.JobApplication{
		RepID:      rep.ID,
		JobOfferID: offer.ID,
		Status:     domain.ApplicationStatusApplied,
		RepMessage: repMessage,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicateApplication) {
			return nil, apperror.Conflict("You have already applied to this offer")
		}
		return nil, apperror.Internal(err)
	}

	return app, nil
}

// ListMyApplications returns all applications owned by the resolved rep.
func (uc *applicationUsecase) ListMyApplications(ctx context.Context, repUserID int64) ([]domain.JobApplication, error) {
	rep, err := uc.repRepo.GetByUserID(ctx, repUserID)
	if err != nil {
		return nil, apperror.NotFound("Rep profile not found")
	}
	apps, err := uc.applicationRepo.GetByRepID(ctx, rep.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// ListForOffer returns all applications for an offer the company owns.
func (uc *applicationUsecase) ListForOffer(ctx context.Context, companyUserID, offerID int64) ([]domain.JobApplication, error) {
	if _, err := uc.resolveOwnedOffer(ctx, companyUserID, offerID); err != nil {
		return nil, err
	}
	apps, err := uc.applicationRepo.GetByJobOfferID(ctx, offerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// ListAllForCompany returns every application across all of the company's offers.
func (uc *applicationUsecase) ListAllForCompany(ctx context.Context, companyUserID int64) ([]domain.JobApplication, error) {
	company, err := uc.companyRepo.GetByUserID(ctx, companyUserID)
	if err != nil {
		return nil, apperror.NotFound("Company not found")
	}
	apps, err := uc.applicationRepo.GetByCompanyID(ctx, company.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// UpdateStatus applies a company-driven status transition.
//
// The transition table is permissive: any target status is accepted from
// any current status. Only INTERVIEW, HIRED and REJECTED trigger derived
// timestamps, and a non-nil notes payload always overwrites company notes.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, companyUserID, applicationID int64, upd domain.StatusUpdate) (*domain.JobApplication, error) {
	// 1. Resolve application
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, apperror.NotFound("Application not found")
	}

	// 2. Ownership chain: application -> offer -> company
	if _, err := uc.resolveOwnedOffer(ctx, companyUserID, app.JobOfferID); err != nil {
		return nil, err
	}

	// 3. Apply transition and side effects
	now := time.Now()
	app.Status = upd.Status
	switch {
	case upd.Status == domain.ApplicationStatusInterview && upd.InterviewURL != nil:
		app.MarkInterview(*upd.InterviewURL, now)
	case upd.Status == domain.ApplicationStatusHired:
		app.MarkHired(now)
	case upd.Status == domain.ApplicationStatusRejected:
		app.MarkRejected(upd.CompanyNotes, now)
	}
	if upd.CompanyNotes != nil {
		app.CompanyNotes = upd.CompanyNotes
	}

	// 4. Persist
	if err := uc.applicationRepo.Update(ctx, app); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

// resolveOwnedOffer checks the transitive ownership chain offer -> company
// -> user. Every company-scoped read and mutation goes through it.
func (uc *applicationUsecase) resolveOwnedOffer(ctx context.Context, companyUserID, offerID int64) (*domain.JobOffer, error) {
	company, err := uc.companyRepo.GetByUserID(ctx, companyUserID)
	if err != nil {
		return nil, apperror.NotFound("Company not found")
	}

	offer, err := uc.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return nil, apperror.NotFound("Offer not found")
	}

	if offer.CompanyID != company.ID {
		return nil, apperror.Forbidden("You do not own this offer")
	}
	return offer, nil
}
