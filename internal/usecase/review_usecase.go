package usecase

import (
	"context"

	"capitalhub-backend/internal/domain"
	"capitalhub-backend/pkg/apperror"
)

type reviewUsecase struct {
	reviewRepo  domain.ReviewRepository
	companyRepo domain.CompanyRepository
	repRepo     domain.RepProfileRepository
	offerRepo   domain.JobOfferRepository
}

func NewReviewUsecase(
	reviewRepo domain.ReviewRepository,
	companyRepo domain.CompanyRepository,
	repRepo domain.RepProfileRepository,
	offerRepo domain.JobOfferRepository,
) domain.ReviewUsecase {
	return &reviewUsecase{
		reviewRepo:  reviewRepo,
		companyRepo: companyRepo,
		repRepo:     repRepo,
		offerRepo:   offerRepo,
	}
}

// CreateReview records a company's rating of a rep. When the review is
// scoped to an offer, the offer must belong to the authoring company.
func (uc *reviewUsecase) CreateReview(ctx context.Context, companyUserID int64, in *domain.ReviewInput) (*domain.Review, error) {
	if in.Rating < domain.RatingMin || in.Rating > domain.RatingMax {
		return nil, apperror.BadRequest("Rating must be between 1 and 5")
	}

	company, err := uc.companyRepo.GetByUserID(ctx, companyUserID)
	if err != nil {
		return nil, apperror.NotFound("Company not found")
	}

	rep, err := uc.repRepo.GetByID(ctx, in.RepID)
	if err != nil {
		return nil, apperror.NotFound("Rep not found")
	}

	if in.JobOfferID != nil {
		offer, err := uc.offerRepo.GetByID(ctx, *in.JobOfferID)
		if err != nil {
			return nil, apperror.NotFound("Offer not found")
		}
		if offer.CompanyID != company.ID {
			return nil, apperror.Forbidden("You cannot review through an offer that is not yours")
		}
	}

	review := &domain.Review{
		CompanyID:        company.ID,
		RepID:            rep.ID,
		JobOfferID:       in.JobOfferID,
		Rating:           in.Rating,
		Comment:          in.Comment,
		CallsMade:        in.CallsMade,
		DealsClosed:      in.DealsClosed,
		GeneratedRevenue: in.GeneratedRevenue,
		Visible:          true,
	}
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, apperror.Internal(err)
	}
	return review, nil
}

// ListReviewsForRep returns only visible reviews: the subject never sees
// content an administrator has hidden.
func (uc *reviewUsecase) ListReviewsForRep(ctx context.Context, repUserID int64) ([]domain.Review, error) {
	rep, err := uc.repRepo.GetByUserID(ctx, repUserID)
	if err != nil {
		return nil, apperror.NotFound("Rep profile not found")
	}
	reviews, err := uc.reviewRepo.GetByRepID(ctx, rep.ID, true)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return reviews, nil
}

// ListReviewsForCompany returns everything the company authored, hidden
// reviews included; hiding protects the subject, not the author.
func (uc *reviewUsecase) ListReviewsForCompany(ctx context.Context, companyUserID int64) ([]domain.Review, error) {
	company, err := uc.companyRepo.GetByUserID(ctx, companyUserID)
	if err != nil {
		return nil, apperror.NotFound("Company not found")
	}
	reviews, err := uc.reviewRepo.GetByCompanyID(ctx, company.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return reviews, nil
}
