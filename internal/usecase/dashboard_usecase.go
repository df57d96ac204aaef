package usecase

import (
	"context"
	"errors"

	"capitalhub-backend/internal/domain"
	"capitalhub-backend/pkg/apperror"
)

type dashboardUsecase struct {
	companyRepo     domain.CompanyRepository
	offerRepo       domain.JobOfferRepository
	applicationRepo domain.JobApplicationRepository
}

func NewDashboardUsecase(
	companyRepo domain.CompanyRepository,
	offerRepo domain.JobOfferRepository,
	applicationRepo domain.JobApplicationRepository,
) domain.DashboardUsecase {
	return &dashboardUsecase{
		companyRepo:     companyRepo,
		offerRepo:       offerRepo,
		applicationRepo: applicationRepo,
	}
}

// CompanyStats projects counters over the company's offers and their
// applications. A company user without a profile gets zeros, not an error.
func (uc *dashboardUsecase) CompanyStats(ctx context.Context, companyUserID int64) (*domain.CompanyStats, error) {
	company, err := uc.companyRepo.GetByUserID(ctx, companyUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.CompanyStats{}, nil
		}
		return nil, apperror.Internal(err)
	}

	activeJobs, err := uc.offerRepo.CountByCompanyIDAndActive(ctx, company.ID, true)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	total, err := uc.applicationRepo.CountByCompanyID(ctx, company.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	pending, err := uc.applicationRepo.CountByCompanyIDAndStatus(ctx, company.ID, domain.ApplicationStatusApplied)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	hired, err := uc.applicationRepo.CountByCompanyIDAndStatus(ctx, company.ID, domain.ApplicationStatusHired)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.CompanyStats{
		ActiveJobs:          activeJobs,
		TotalApplications:   total,
		PendingApplications: pending,
		HiredCount:          hired,
		CompanyName:         company.Name,
	}, nil
}

// RepStats is a stub projection: a real offer total plus zeroed
// engagement metrics that nothing computes yet.
func (uc *dashboardUsecase) RepStats(ctx context.Context, repUserID int64) (*domain.RepStats, error) {
	totalOffers, err := uc.offerRepo.Count(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.RepStats{
		TotalOffers:     totalOffers,
		MonthlyStats:    domain.RepMonthlyStats{},
		LatestProcesses: []domain.JobApplication{},
	}, nil
}
