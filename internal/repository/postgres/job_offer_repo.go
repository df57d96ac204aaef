package postgres

import (
	"context"
	"errors"
	"time"

	"capitalhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobOfferRepo struct {
	db *pgxpool.Pool
}

func NewJobOfferRepository(db *pgxpool.Pool) domain.JobOfferRepository {
	return &jobOfferRepo{db: db}
}

const jobOfferSelect = `
	SELECT
		o.id, o.company_id, o.title, o.description, o.role, o.seats,
		o.max_applicants, o.applicants_count,
		o.salary, o.commission_percent, o.avg_ticket, o.estimated_monthly_earnings,
		o.language, o.crm, o.modality, o.market,
		o.calendly_url, o.zoom_url, o.whatsapp_url,
		o.status, o.active, o.created_at, o.updated_at,
		c.name AS company_name
	FROM job_offers o
	LEFT JOIN companies c ON o.company_id = c.id`

func scanJobOffer(row pgx.Row) (*domain.JobOffer, error) {
	var o domain.JobOffer
	err := row.Scan(
		&o.ID, &o.CompanyID, &o.Title, &o.Description, &o.Role, &o.Seats,
		&o.MaxApplicants, &o.ApplicantsCount,
		&o.Salary, &o.CommissionPercent, &o.AvgTicket, &o.EstimatedMonthlyEarnings,
		&o.Language, &o.CRM, &o.Modality, &o.Market,
		&o.CalendlyURL, &o.ZoomURL, &o.WhatsappURL,
		&o.Status, &o.Active, &o.CreatedAt, &o.UpdatedAt,
		&o.CompanyName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *jobOfferRepo) collect(ctx context.Context, query string, args ...interface{}) ([]domain.JobOffer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []domain.JobOffer
	for rows.Next() {
		o, err := scanJobOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, *o)
	}
	return offers, rows.Err()
}

func (r *jobOfferRepo) Create(ctx context.Context, offer *domain.JobOffer) error {
	query := `
		INSERT INTO job_offers (
			company_id, title, description, role, seats, max_applicants, applicants_count,
			salary, commission_percent, avg_ticket, estimated_monthly_earnings,
			language, crm, modality, market,
			calendly_url, zoom_url, whatsapp_url,
			status, active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id`

	now := time.Now()
	offer.CreatedAt = now
	offer.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		offer.CompanyID, offer.Title, offer.Description, offer.Role, offer.Seats,
		offer.MaxApplicants, offer.ApplicantsCount,
		offer.Salary, offer.CommissionPercent, offer.AvgTicket, offer.EstimatedMonthlyEarnings,
		offer.Language, offer.CRM, offer.Modality, offer.Market,
		offer.CalendlyURL, offer.ZoomURL, offer.WhatsappURL,
		offer.Status, offer.Active, offer.CreatedAt, offer.UpdatedAt,
	).Scan(&offer.ID)
}

func (r *jobOfferRepo) GetByID(ctx context.Context, id int64) (*domain.JobOffer, error) {
	return scanJobOffer(r.db.QueryRow(ctx, jobOfferSelect+` WHERE o.id = $1`, id))
}

func (r *jobOfferRepo) FetchByCompanyID(ctx context.Context, companyID int64) ([]domain.JobOffer, error) {
	return r.collect(ctx, jobOfferSelect+` WHERE o.company_id = $1 ORDER BY o.created_at DESC`, companyID)
}

func (r *jobOfferRepo) FetchActiveByRoles(ctx context.Context, roles []domain.RepRole) ([]domain.JobOffer, error) {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	query := jobOfferSelect + ` WHERE o.active = TRUE AND o.status = 'ACTIVE' AND o.role = ANY($1) ORDER BY o.created_at DESC`
	return r.collect(ctx, query, names)
}

func (r *jobOfferRepo) FetchAllActive(ctx context.Context) ([]domain.JobOffer, error) {
	query := jobOfferSelect + ` WHERE o.active = TRUE AND o.status = 'ACTIVE' ORDER BY o.created_at DESC`
	return r.collect(ctx, query)
}

func (r *jobOfferRepo) UpdateStatus(ctx context.Context, id int64, status domain.JobStatus, active bool) error {
	query := `UPDATE job_offers SET status = $2, active = $3, updated_at = $4 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, active, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobOfferRepo) CountByCompanyIDAndActive(ctx context.Context, companyID int64, active bool) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_offers WHERE company_id = $1 AND active = $2`, companyID, active).Scan(&count)
	return count, err
}

func (r *jobOfferRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_offers`).Scan(&count)
	return count, err
}
