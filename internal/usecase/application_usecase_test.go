package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"capitalhub-backend/internal/domain"
	"capitalhub-backend/internal/usecase"
	"capitalhub-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func strPtr(s string) *string { return &s }

func activeOffer(id, companyID int64) *domain.JobOffer {
	return &domain.JobOffer{
		ID:        id,
		CompanyID: companyID,
		Title:     "Closer para SaaS B2B",
		Role:      domain.RepRoleCloser,
		Status:    domain.JobStatusActive,
		Active:    true,
	}
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	rep := &domain.RepProfile{ID: 7, UserID: 70, RoleType: domain.RepRoleCloser, Active: true}

	t.Run("Should create an APPLIED application against an active offer", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		offerRepo := new(MockJobOfferRepo)
		repRepo := new(MockRepProfileRepo)
		uc := usecase.NewApplicationUsecase(appRepo, offerRepo, repRepo, new(MockCompanyRepo))

		repRepo.On("GetByUserID", ctx, int64(70)).Return(rep, nil)
		offerRepo.On("GetByID", ctx, int64(1)).Return(activeOffer(1, 3), nil)
		appRepo.On("CheckExists", ctx, int64(7), int64(1)).Return(false, nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.JobApplication")).Return(nil)

		app, err := uc.Apply(ctx, 70, 1, strPtr("Tengo 3 años cerrando high ticket"))
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
		assert.Equal(t, int64(7), app.RepID)
		assert.Equal(t, int64(1), app.JobOfferID)
		assert.Equal(t, "Tengo 3 años cerrando high ticket", *app.RepMessage)
	})

	t.Run("Should reject a paused offer", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		offerRepo := new(MockJobOfferRepo)
		repRepo := new(MockRepProfileRepo)
		uc := usecase.NewApplicationUsecase(appRepo, offerRepo, repRepo, new(MockCompanyRepo))

		paused := activeOffer(1, 3)
		paused.Status = domain.JobStatusPaused
		repRepo.On("GetByUserID", ctx, int64(70)).Return(rep, nil)
		offerRepo.On("GetByID", ctx, int64(1)).Return(paused, nil)

		_, err := uc.Apply(ctx, 70, 1, nil)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should reject a closed offer even before the duplicate check", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		offerRepo := new(MockJobOfferRepo)
		repRepo := new(MockRepProfileRepo)
		uc := usecase.NewApplicationUsecase(appRepo, offerRepo, repRepo, new(MockCompanyRepo))

		closed := activeOffer(1, 3)
		closed.Status = domain.JobStatusClosed
		closed.Active = false
		repRepo.On("GetByUserID", ctx, int64(70)).Return(rep, nil)
		offerRepo.On("GetByID", ctx, int64(1)).Return(closed, nil)

		_, err := uc.Apply(ctx, 70, 1, nil)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		appRepo.AssertNotCalled(t, "CheckExists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should conflict on a second application to the same offer", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		offerRepo := new(MockJobOfferRepo)
		repRepo := new(MockRepProfileRepo)
		uc := usecase.NewApplicationUsecase(appRepo, offerRepo, repRepo, new(MockCompanyRepo))

		repRepo.On("GetByUserID", ctx, int64(70)).Return(rep, nil)
		offerRepo.On("GetByID", ctx, int64(1)).Return(activeOffer(1, 3), nil)
		appRepo.On("CheckExists", ctx, int64(7), int64(1)).Return(true, nil)

		_, err := uc.Apply(ctx, 70, 1, nil)
		assert.Equal(t, http.StatusConflict, appErrCode(t, err))
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should conflict when the unique constraint catches a race", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		offerRepo := new(MockJobOfferRepo)
		repRepo := new(MockRepProfileRepo)
		uc := usecase.NewApplicationUsecase(appRepo, offerRepo, repRepo, new(MockCompanyRepo))

		repRepo.On("GetByUserID", ctx, int64(70)).Return(rep, nil)
		offerRepo.On("GetByID", ctx, int64(1)).Return(activeOffer(1, 3), nil)
		appRepo.On("CheckExists", ctx, int64(7), int64(1)).Return(false, nil)
		appRepo.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicateApplication)

		_, err := uc.Apply(ctx, 70, 1, nil)
		assert.Equal(t, http.StatusConflict, appErrCode(t, err))
	})

	t.Run("Should 404 when the rep has no profile", func(t *testing.T) {
		repRepo := new(MockRepProfileRepo)
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), new(MockJobOfferRepo), repRepo, new(MockCompanyRepo))

		repRepo.On("GetByUserID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.Apply(ctx, 99, 1, nil)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})
}

func TestListForOfferOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("Should forbid listing applicants of another company's offer", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		offerRepo := new(MockJobOfferRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewApplicationUsecase(appRepo, offerRepo, new(MockRepProfileRepo), companyRepo)

		companyRepo.On("GetByUserID", ctx, int64(30)).Return(&domain.Company{ID: 3, UserID: 30, Name: "Acme"}, nil)
		offerRepo.On("GetByID", ctx, int64(1)).Return(activeOffer(1, 99), nil)

		_, err := uc.ListForOffer(ctx, 30, 1)
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
		appRepo.AssertNotCalled(t, "GetByJobOfferID", mock.Anything, mock.Anything)
	})

	t.Run("Should list applicants of an owned offer", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		offerRepo := new(MockJobOfferRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewApplicationUsecase(appRepo, offerRepo, new(MockRepProfileRepo), companyRepo)

		companyRepo.On("GetByUserID", ctx, int64(30)).Return(&domain.Company{ID: 3, UserID: 30, Name: "Acme"}, nil)
		offerRepo.On("GetByID", ctx, int64(1)).Return(activeOffer(1, 3), nil)
		appRepo.On("GetByJobOfferID", ctx, int64(1)).Return([]domain.JobApplication{{ID: 11, JobOfferID: 1}}, nil)

		apps, err := uc.ListForOffer(ctx, 30, 1)
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})
}

func TestListMyApplicationsRepoFailure(t *testing.T) {
	ctx := context.Background()
	appRepo := new(MockApplicationRepo)
	repRepo := new(MockRepProfileRepo)
	uc := usecase.NewApplicationUsecase(appRepo, new(MockJobOfferRepo), repRepo, new(MockCompanyRepo))

	repRepo.On("GetByUserID", ctx, int64(70)).Return(&domain.RepProfile{ID: 7, UserID: 70}, nil)
	appRepo.On("GetByRepID", ctx, int64(7)).Return(nil, errors.New("connection reset"))

	_, err := uc.ListMyApplications(ctx, 70)
	assert.Equal(t, http.StatusInternalServerError, appErrCode(t, err))
}

func TestUpdateStatusSideEffects(t *testing.T) {
	ctx := context.Background()

	// Single owned application behind a fresh set of mocks per subtest.
	setup := func(current domain.ApplicationStatus) (*MockApplicationRepo, domain.JobApplicationUsecase) {
		appRepo := new(MockApplicationRepo)
		offerRepo := new(MockJobOfferRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewApplicationUsecase(appRepo, offerRepo, new(MockRepProfileRepo), companyRepo)

		appRepo.On("GetByID", ctx, int64(11)).Return(&domain.JobApplication{
			ID: 11, RepID: 7, JobOfferID: 1, Status: current,
		}, nil)
		companyRepo.On("GetByUserID", ctx, int64(30)).Return(&domain.Company{ID: 3, UserID: 30, Name: "Acme"}, nil)
		offerRepo.On("GetByID", ctx, int64(1)).Return(activeOffer(1, 3), nil)
		appRepo.On("Update", ctx, mock.AnythingOfType("*domain.JobApplication")).Return(nil)
		return appRepo, uc
	}

	t.Run("INTERVIEW with a link records the link and timestamp", func(t *testing.T) {
		_, uc := setup(domain.ApplicationStatusApplied)

		app, err := uc.UpdateStatus(ctx, 30, 11, domain.StatusUpdate{
			Status:       domain.ApplicationStatusInterview,
			InterviewURL: strPtr("https://zoom.us/j/123"),
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusInterview, app.Status)
		assert.Equal(t, "https://zoom.us/j/123", *app.InterviewURL)
		assert.NotNil(t, app.InterviewAt)
		assert.Nil(t, app.HiredAt)
		assert.Nil(t, app.RejectedAt)
	})

	t.Run("INTERVIEW without a link changes status only", func(t *testing.T) {
		_, uc := setup(domain.ApplicationStatusApplied)

		app, err := uc.UpdateStatus(ctx, 30, 11, domain.StatusUpdate{
			Status: domain.ApplicationStatusInterview,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusInterview, app.Status)
		assert.Nil(t, app.InterviewURL)
		assert.Nil(t, app.InterviewAt)
	})

	t.Run("HIRED stamps hired_at and nothing else", func(t *testing.T) {
		_, uc := setup(domain.ApplicationStatusInterview)

		app, err := uc.UpdateStatus(ctx, 30, 11, domain.StatusUpdate{
			Status: domain.ApplicationStatusHired,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusHired, app.Status)
		assert.NotNil(t, app.HiredAt)
		assert.Nil(t, app.RejectedAt)
	})

	t.Run("REJECTED stores the notes and stamps rejected_at", func(t *testing.T) {
		_, uc := setup(domain.ApplicationStatusApplied)

		app, err := uc.UpdateStatus(ctx, 30, 11, domain.StatusUpdate{
			Status:       domain.ApplicationStatusRejected,
			CompanyNotes: strPtr("Demasiado lento en las llamadas"),
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusRejected, app.Status)
		assert.Equal(t, "Demasiado lento en las llamadas", *app.CompanyNotes)
		assert.NotNil(t, app.RejectedAt)
	})

	t.Run("OFFER_SENT changes status without timestamps", func(t *testing.T) {
		_, uc := setup(domain.ApplicationStatusInterview)

		app, err := uc.UpdateStatus(ctx, 30, 11, domain.StatusUpdate{
			Status: domain.ApplicationStatusOfferSent,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusOfferSent, app.Status)
		assert.Nil(t, app.InterviewAt)
		assert.Nil(t, app.HiredAt)
		assert.Nil(t, app.RejectedAt)
	})

	t.Run("Backward transition HIRED to APPLIED is accepted", func(t *testing.T) {
		_, uc := setup(domain.ApplicationStatusHired)

		app, err := uc.UpdateStatus(ctx, 30, 11, domain.StatusUpdate{
			Status: domain.ApplicationStatusApplied,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
	})

	t.Run("Notes overwrite on a non-rejection update too", func(t *testing.T) {
		_, uc := setup(domain.ApplicationStatusApplied)

		app, err := uc.UpdateStatus(ctx, 30, 11, domain.StatusUpdate{
			Status:       domain.ApplicationStatusOfferSent,
			CompanyNotes: strPtr("Buen perfil, enviada propuesta"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "Buen perfil, enviada propuesta", *app.CompanyNotes)
	})

	t.Run("Should forbid updating an application on a foreign offer", func(t *testing.T) {
		appRepo := new(MockApplicationRepo)
		offerRepo := new(MockJobOfferRepo)
		companyRepo := new(MockCompanyRepo)
		uc := usecase.NewApplicationUsecase(appRepo, offerRepo, new(MockRepProfileRepo), companyRepo)

		appRepo.On("GetByID", ctx, int64(11)).Return(&domain.JobApplication{ID: 11, JobOfferID: 1}, nil)
		companyRepo.On("GetByUserID", ctx, int64(30)).Return(&domain.Company{ID: 3, UserID: 30, Name: "Acme"}, nil)
		offerRepo.On("GetByID", ctx, int64(1)).Return(activeOffer(1, 99), nil)

		_, err := uc.UpdateStatus(ctx, 30, 11, domain.StatusUpdate{Status: domain.ApplicationStatusHired})
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
		appRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestApplicationLifecycle(t *testing.T) {
	ctx := context.Background()

	memRepo := newMemApplicationRepo()
	offerRepo := new(MockJobOfferRepo)
	repRepo := new(MockRepProfileRepo)
	companyRepo := new(MockCompanyRepo)
	uc := usecase.NewApplicationUsecase(memRepo, offerRepo, repRepo, companyRepo)

	offer := activeOffer(1, 3)
	offer.Seats = 2
	offer.MaxApplicants = 40
	offerRepo.On("GetByID", mock.Anything, int64(1)).Return(offer, nil)
	repRepo.On("GetByUserID", ctx, int64(100)).Return(&domain.RepProfile{ID: 1, UserID: 100}, nil)
	repRepo.On("GetByUserID", ctx, int64(200)).Return(&domain.RepProfile{ID: 2, UserID: 200}, nil)
	companyRepo.On("GetByUserID", ctx, int64(30)).Return(&domain.Company{ID: 3, UserID: 30, Name: "Acme"}, nil)

	// Rep 1 applies
	app1, err := uc.Apply(ctx, 100, 1, strPtr("hi"))
	assert.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusApplied, app1.Status)
	assert.Equal(t, 1, memRepo.counter[1])

	// Company schedules the interview
	app1, err = uc.UpdateStatus(ctx, 30, app1.ID, domain.StatusUpdate{
		Status:       domain.ApplicationStatusInterview,
		InterviewURL: strPtr("https://meet/1"),
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusInterview, app1.Status)
	assert.Equal(t, "https://meet/1", *app1.InterviewURL)
	assert.NotNil(t, app1.InterviewAt)

	// Company hires
	app1, err = uc.UpdateStatus(ctx, 30, app1.ID, domain.StatusUpdate{
		Status: domain.ApplicationStatusHired,
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusHired, app1.Status)
	assert.NotNil(t, app1.HiredAt)

	// Rep 2 applies to the same offer
	_, err = uc.Apply(ctx, 200, 1, nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, memRepo.counter[1])

	// Rep 1 cannot apply twice
	_, err = uc.Apply(ctx, 100, 1, nil)
	assert.Equal(t, http.StatusConflict, appErrCode(t, err))
	assert.Equal(t, 2, memRepo.counter[1])
}

// memApplicationRepo is an in-memory JobApplicationRepository that mimics
// the transactional insert plus counter increment, including the unique
// constraint on (rep_id, job_offer_id).
type memApplicationRepo struct {
	mu      sync.Mutex
	nextID  int64
	apps    map[int64]*domain.JobApplication
	pairs   map[[2]int64]bool
	counter map[int64]int
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{
		nextID:  1,
		apps:    make(map[int64]*domain.JobApplication),
		pairs:   make(map[[2]int64]bool),
		counter: make(map[int64]int),
	}
}

func (r *memApplicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := [2]int64{app.RepID, app.JobOfferID}
	if r.pairs[key] {
		return domain.ErrDuplicateApplication
	}
	r.pairs[key] = true
	app.ID = r.nextID
	r.nextID++
	r.apps[app.ID] = app
	r.counter[app.JobOfferID]++
	return nil
}

func (r *memApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return app, nil
}

func (r *memApplicationRepo) GetByRepID(ctx context.Context, repID int64) ([]domain.JobApplication, error) {
	return nil, nil
}

func (r *memApplicationRepo) GetByJobOfferID(ctx context.Context, offerID int64) ([]domain.JobApplication, error) {
	return nil, nil
}

func (r *memApplicationRepo) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.JobApplication, error) {
	return nil, nil
}

func (r *memApplicationRepo) CheckExists(ctx context.Context, repID, offerID int64) (bool, error) {
	// Deliberately stale: always reports no prior application so that
	// the race lands on the constraint.
	return false, nil
}

func (r *memApplicationRepo) Update(ctx context.Context, app *domain.JobApplication) error {
	return nil
}

func (r *memApplicationRepo) CountByCompanyID(ctx context.Context, companyID int64) (int64, error) {
	return 0, nil
}

func (r *memApplicationRepo) CountByCompanyIDAndStatus(ctx context.Context, companyID int64, status domain.ApplicationStatus) (int64, error) {
	return 0, nil
}

func TestApplyConcurrent(t *testing.T) {
	ctx := context.Background()
	const n = 50

	t.Run("N distinct reps produce N applications and an exact counter", func(t *testing.T) {
		memRepo := newMemApplicationRepo()
		offerRepo := new(MockJobOfferRepo)
		repRepo := new(MockRepProfileRepo)
		uc := usecase.NewApplicationUsecase(memRepo, offerRepo, repRepo, new(MockCompanyRepo))

		offerRepo.On("GetByID", mock.Anything, int64(1)).Return(activeOffer(1, 3), nil)
		for i := int64(1); i <= n; i++ {
			repRepo.On("GetByUserID", mock.Anything, i*100).Return(&domain.RepProfile{ID: i, UserID: i * 100}, nil)
		}

		var wg sync.WaitGroup
		errs := make([]error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = uc.Apply(ctx, int64(i+1)*100, 1, nil)
			}(i)
		}
		wg.Wait()

		for i, err := range errs {
			assert.NoError(t, err, "rep %d", i+1)
		}
		assert.Len(t, memRepo.apps, n)
		assert.Equal(t, n, memRepo.counter[1])
	})

	t.Run("Same rep racing N times wins exactly once", func(t *testing.T) {
		memRepo := newMemApplicationRepo()
		offerRepo := new(MockJobOfferRepo)
		repRepo := new(MockRepProfileRepo)
		uc := usecase.NewApplicationUsecase(memRepo, offerRepo, repRepo, new(MockCompanyRepo))

		offerRepo.On("GetByID", mock.Anything, int64(1)).Return(activeOffer(1, 3), nil)
		repRepo.On("GetByUserID", mock.Anything, int64(700)).Return(&domain.RepProfile{ID: 7, UserID: 700}, nil)

		var wg sync.WaitGroup
		errs := make([]error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = uc.Apply(ctx, 700, 1, nil)
			}(i)
		}
		wg.Wait()

		successes := 0
		for _, err := range errs {
			if err == nil {
				successes++
				continue
			}
			assert.Equal(t, http.StatusConflict, appErrCode(t, err))
		}
		assert.Equal(t, 1, successes)
		assert.Len(t, memRepo.apps, 1)
		assert.Equal(t, 1, memRepo.counter[1])
	})
}
