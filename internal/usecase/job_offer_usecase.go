package usecase

import (
	"context"
	"strings"

	"capitalhub-backend/internal/domain"
	"capitalhub-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type jobOfferUsecase struct {
	offerRepo   domain.JobOfferRepository
	companyRepo domain.CompanyRepository
	validate    *validator.Validate
}

func NewJobOfferUsecase(offerRepo domain.JobOfferRepository, companyRepo domain.CompanyRepository, validate *validator.Validate) domain.JobOfferUsecase {
	return &jobOfferUsecase{
		offerRepo:   offerRepo,
		companyRepo: companyRepo,
		validate:    validate,
	}
}

// CreateOffer creates an offer for the resolved company. Free-text role
// input defaults to CLOSER, the callTool/callLink pair takes precedence
// over the explicit per-channel URLs, and capacity defaults to one seat
// with a 20x applicant ceiling.
func (uc *jobOfferUsecase) CreateOffer(ctx context.Context, companyUserID int64, in *domain.JobOfferInput) (*domain.JobOfferView, error) {
	company, err := uc.companyRepo.GetByUserID(ctx, companyUserID)
	if err != nil {
		return nil, apperror.NotFound("Company not found")
	}

	if err := uc.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	// Route the call link to its channel column
	var calendlyURL, zoomURL, whatsappURL *string
	if in.CallTool != nil && in.CallLink != nil {
		switch strings.ToUpper(*in.CallTool) {
		case domain.CallToolCalendly:
			calendlyURL = in.CallLink
		case domain.CallToolZoom:
			zoomURL = in.CallLink
		case domain.CallToolWhatsapp:
			whatsappURL = in.CallLink
		}
	}
	if calendlyURL == nil {
		calendlyURL = in.CalendlyURL
	}
	if zoomURL == nil {
		zoomURL = in.ZoomURL
	}
	if whatsappURL == nil {
		whatsappURL = in.WhatsappURL
	}

	seats := 1
	if in.Seats != nil {
		seats = *in.Seats
	}

	language := "Español"
	if in.Language != nil {
		language = *in.Language
	}

	// "type" from the frontend is the modality
	modality := in.Modality
	if in.Type != nil {
		modality = in.Type
	}

	offer := &domain.JobOffer{
		CompanyID:                company.ID,
		Title:                    in.Title,
		Description:              in.Description,
		Role:                     domain.ParseRepRole(in.Role),
		Seats:                    seats,
		MaxApplicants:            seats * 20,
		ApplicantsCount:          0,
		CommissionPercent:        in.CommissionPercent,
		AvgTicket:                in.AvgTicket,
		EstimatedMonthlyEarnings: in.EstimatedMonthlyEarnings,
		Language:                 language,
		CRM:                      in.CRM,
		Modality:                 modality,
		Market:                   in.Market,
		CalendlyURL:              calendlyURL,
		ZoomURL:                  zoomURL,
		WhatsappURL:              whatsappURL,
		Status:                   domain.JobStatusActive,
		Active:                   true,
		CompanyName:              &company.Name,
	}

	if err := uc.offerRepo.Create(ctx, offer); err != nil {
		return nil, apperror.Internal(err)
	}
	return offer.View(), nil
}

func (uc *jobOfferUsecase) ListCompanyOffers(ctx context.Context, companyUserID int64) ([]domain.JobOfferView, error) {
	company, err := uc.companyRepo.GetByUserID(ctx, companyUserID)
	if err != nil {
		return nil, apperror.NotFound("Company not found")
	}

	offers, err := uc.offerRepo.FetchByCompanyID(ctx, company.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return toViews(offers), nil
}

// ListOffersForRep returns the active market listing. A role filter
// narrows it to offers tagged with that role or the generic BOTH tag.
func (uc *jobOfferUsecase) ListOffersForRep(ctx context.Context, roleFilter string) ([]domain.JobOfferView, error) {
	var offers []domain.JobOffer
	var err error

	if roleFilter == "" {
		offers, err = uc.offerRepo.FetchAllActive(ctx)
	} else {
		role := domain.ParseRepRole(roleFilter)
		roles := []domain.RepRole{role}
		if role != domain.RepRoleBoth {
			roles = append(roles, domain.RepRoleBoth)
		}
		offers, err = uc.offerRepo.FetchActiveByRoles(ctx, roles)
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return toViews(offers), nil
}

func (uc *jobOfferUsecase) GetOffer(ctx context.Context, id int64) (*domain.JobOfferView, error) {
	offer, err := uc.offerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Offer not found")
	}
	return offer.View(), nil
}

// UpdateOfferStatus is ownership-checked; CLOSED also deactivates the offer.
func (uc *jobOfferUsecase) UpdateOfferStatus(ctx context.Context, companyUserID, offerID int64, status domain.JobStatus) (*domain.JobOfferView, error) {
	company, err := uc.companyRepo.GetByUserID(ctx, companyUserID)
	if err != nil {
		return nil, apperror.NotFound("Company not found")
	}

	offer, err := uc.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return nil, apperror.NotFound("Offer not found")
	}
	if offer.CompanyID != company.ID {
		return nil, apperror.Forbidden("You cannot edit an offer that is not yours")
	}

	active := status != domain.JobStatusClosed
	if err := uc.offerRepo.UpdateStatus(ctx, offer.ID, status, active); err != nil {
		return nil, apperror.Internal(err)
	}

	offer.Status = status
	offer.Active = active
	return offer.View(), nil
}

func toViews(offers []domain.JobOffer) []domain.JobOfferView {
	views := make([]domain.JobOfferView, 0, len(offers))
	for i := range offers {
		views = append(views, *offers[i].View())
	}
	return views
}
