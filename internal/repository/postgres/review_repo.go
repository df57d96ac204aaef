package postgres

import (
	"context"
	"time"

	"capitalhub-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type reviewRepo struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) domain.ReviewRepository {
	return &reviewRepo{db: db}
}

const reviewSelect = `
	SELECT
		r.id, r.company_id, r.rep_id, r.job_offer_id,
		r.rating, r.comment, r.calls_made, r.deals_closed, r.generated_revenue,
		r.visible, r.created_at,
		c.name AS company_name,
		u.first_name || ' ' || u.last_name AS rep_full_name,
		o.title AS job_title
	FROM reviews r
	LEFT JOIN companies c ON r.company_id = c.id
	LEFT JOIN rep_profiles rp ON r.rep_id = rp.id
	LEFT JOIN users u ON rp.user_id = u.id
	LEFT JOIN job_offers o ON r.job_offer_id = o.id`

func (r *reviewRepo) collect(ctx context.Context, query string, args ...interface{}) ([]domain.Review, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(
			&rv.ID, &rv.CompanyID, &rv.RepID, &rv.JobOfferID,
			&rv.Rating, &rv.Comment, &rv.CallsMade, &rv.DealsClosed, &rv.GeneratedRevenue,
			&rv.Visible, &rv.CreatedAt,
			&rv.CompanyName, &rv.RepFullName, &rv.JobTitle,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *reviewRepo) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (company_id, rep_id, job_offer_id, rating, comment, calls_made, deals_closed, generated_revenue, visible, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	review.CreatedAt = time.Now()
	return r.db.QueryRow(ctx, query,
		review.CompanyID, review.RepID, review.JobOfferID,
		review.Rating, review.Comment, review.CallsMade, review.DealsClosed, review.GeneratedRevenue,
		review.Visible, review.CreatedAt,
	).Scan(&review.ID)
}

func (r *reviewRepo) GetByRepID(ctx context.Context, repID int64, visibleOnly bool) ([]domain.Review, error) {
	query := reviewSelect + ` WHERE r.rep_id = $1`
	if visibleOnly {
		query += ` AND r.visible = TRUE`
	}
	query += ` ORDER BY r.created_at DESC`
	return r.collect(ctx, query, repID)
}

func (r *reviewRepo) GetByCompanyID(ctx context.Context, companyID int64) ([]domain.Review, error) {
	return r.collect(ctx, reviewSelect+` WHERE r.company_id = $1 ORDER BY r.created_at DESC`, companyID)
}
