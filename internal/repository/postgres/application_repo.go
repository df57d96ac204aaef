package postgres

import (
	"context"
	"errors"
	"time"

	"capitalhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.JobApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationSelect = `
	SELECT
		a.id, a.rep_id, a.job_offer_id, a.status,
		a.rep_message, a.company_notes, a.interview_url,
		a.interview_at, a.hired_at, a.rejected_at,
		a.created_at, a.updated_at,
		o.title AS job_title,
		o.role AS job_role,
		o.company_id,
		c.name AS company_name,
		u.first_name || ' ' || u.last_name AS rep_full_name
	FROM job_applications a
	LEFT JOIN job_offers o ON a.job_offer_id = o.id
	LEFT JOIN companies c ON o.company_id = c.id
	LEFT JOIN rep_profiles rp ON a.rep_id = rp.id
	LEFT JOIN users u ON rp.user_id = u.id`

func scanApplication(row pgx.Row) (*domain.JobApplication, error) {
	var app domain.JobApplication
	err := row.Scan(
		&app.ID, &app.RepID, &app.JobOfferID, &app.Status,
		&app.RepMessage, &app.CompanyNotes, &app.InterviewURL,
		&app.InterviewAt, &app.HiredAt, &app.RejectedAt,
		&app.CreatedAt, &app.UpdatedAt,
		&app.JobTitle, &app.JobRole, &app.CompanyID, &app.CompanyName, &app.RepFullName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) collect(ctx context.Context, query string, args ...interface{}) ([]domain.JobApplication, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.JobApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

// Create inserts the application and increments the offer's applicants_count
// in a single transaction. The in-place SQL increment serializes concurrent
// applies to the same offer at the row level; the unique constraint on
// (rep_id, job_offer_id) closes the check-then-insert race.
func (r *applicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}

	insert := `
		INSERT INTO job_applications (rep_id, job_offer_id, status, rep_message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err = tx.QueryRow(ctx, insert,
		app.RepID, app.JobOfferID, app.Status, app.RepMessage, app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateApplication
		}
		return err
	}

	increment := `UPDATE job_offers SET applicants_count = applicants_count + 1, updated_at = $2 WHERE id = $1`
	if _, err := tx.Exec(ctx, increment, app.JobOfferID, now); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	return scanApplication(r.db.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id))
}

func (r *applicationRepo) GetByRepID(ctx context.Context, repID int64) ([]domain.JobApplication, error) {
	return r.collect(ctx, applicationSelect+` WHERE a.rep_id = $1 ORDER BY a.created_at DESC`, repID)
}

func (r *applicationRepo) GetByJobOfferID(ctx context.Context, offerID int64) ([]domain.JobApplication, error) {
	return r.collect(ctx, applicationSelect+` WHERE a.job_offer_id = $1 ORDER BY a.created_at DESC`, offerID)
}

func (r *applicationRepo) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.JobApplication, error) {
	return r.collect(ctx, applicationSelect+` WHERE o.company_id = $1 ORDER BY a.created_at DESC`, companyID)
}

func (r *applicationRepo) CheckExists(ctx context.Context, repID, offerID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM job_applications WHERE rep_id = $1 AND job_offer_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, repID, offerID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) Update(ctx context.Context, app *domain.JobApplication) error {
	query := `
		UPDATE job_applications
		SET status = $2, company_notes = $3, interview_url = $4,
		    interview_at = $5, hired_at = $6, rejected_at = $7, updated_at = $8
		WHERE id = $1`

	app.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		app.ID, app.Status, app.CompanyNotes, app.InterviewURL,
		app.InterviewAt, app.HiredAt, app.RejectedAt, app.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) CountByCompanyID(ctx context.Context, companyID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM job_applications a
		JOIN job_offers o ON a.job_offer_id = o.id
		WHERE o.company_id = $1`
	var count int64
	err := r.db.QueryRow(ctx, query, companyID).Scan(&count)
	return count, err
}

func (r *applicationRepo) CountByCompanyIDAndStatus(ctx context.Context, companyID int64, status domain.ApplicationStatus) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM job_applications a
		JOIN job_offers o ON a.job_offer_id = o.id
		WHERE o.company_id = $1 AND a.status = $2`
	var count int64
	err := r.db.QueryRow(ctx, query, companyID, status).Scan(&count)
	return count, err
}
