package usecase_test

import (
	"context"

	"capitalhub-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

type MockRepProfileRepo struct {
	mock.Mock
}

func (m *MockRepProfileRepo) GetByID(ctx context.Context, id int64) (*domain.RepProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RepProfile), args.Error(1)
}

func (m *MockRepProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.RepProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RepProfile), args.Error(1)
}

type MockJobOfferRepo struct {
	mock.Mock
}

func (m *MockJobOfferRepo) Create(ctx context.Context, offer *domain.JobOffer) error {
	return m.Called(ctx, offer).Error(0)
}

func (m *MockJobOfferRepo) GetByID(ctx context.Context, id int64) (*domain.JobOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobOffer), args.Error(1)
}

func (m *MockJobOfferRepo) FetchByCompanyID(ctx context.Context, companyID int64) ([]domain.JobOffer, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobOffer), args.Error(1)
}

func (m *MockJobOfferRepo) FetchActiveByRoles(ctx context.Context, roles []domain.RepRole) ([]domain.JobOffer, error) {
	args := m.Called(ctx, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobOffer), args.Error(1)
}

func (m *MockJobOfferRepo) FetchAllActive(ctx context.Context) ([]domain.JobOffer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobOffer), args.Error(1)
}

func (m *MockJobOfferRepo) UpdateStatus(ctx context.Context, id int64, status domain.JobStatus, active bool) error {
	return m.Called(ctx, id, status, active).Error(0)
}

func (m *MockJobOfferRepo) CountByCompanyIDAndActive(ctx context.Context, companyID int64, active bool) (int64, error) {
	args := m.Called(ctx, companyID, active)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobOfferRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) GetByRepID(ctx context.Context, repID int64) ([]domain.JobApplication, error) {
	args := m.Called(ctx, repID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) GetByJobOfferID(ctx context.Context, offerID int64) ([]domain.JobApplication, error) {
	args := m.Called(ctx, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.JobApplication, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) CheckExists(ctx context.Context, repID, offerID int64) (bool, error) {
	args := m.Called(ctx, repID, offerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) Update(ctx context.Context, app *domain.JobApplication) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) CountByCompanyID(ctx context.Context, companyID int64) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepo) CountByCompanyIDAndStatus(ctx context.Context, companyID int64, status domain.ApplicationStatus) (int64, error) {
	args := m.Called(ctx, companyID, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepo) GetByRepID(ctx context.Context, repID int64, visibleOnly bool) ([]domain.Review, error) {
	args := m.Called(ctx, repID, visibleOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepo) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Review, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}
