package postgres

import (
	"context"
	"errors"

	"capitalhub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repProfileRepo struct {
	db *pgxpool.Pool
}

func NewRepProfileRepository(db *pgxpool.Pool) domain.RepProfileRepository {
	return &repProfileRepo{db: db}
}

const repProfileSelect = `
	SELECT
		rp.id, rp.user_id, rp.role_type, rp.bio, rp.phone, rp.city, rp.country,
		rp.linkedin_url, rp.portfolio_url, rp.avatar_url, rp.intro_video_url, rp.best_call_url,
		rp.is_active, rp.created_at,
		u.first_name || ' ' || u.last_name AS full_name
	FROM rep_profiles rp
	LEFT JOIN users u ON rp.user_id = u.id`

func (r *repProfileRepo) scanRep(row pgx.Row) (*domain.RepProfile, error) {
	var rep domain.RepProfile
	err := row.Scan(
		&rep.ID, &rep.UserID, &rep.RoleType, &rep.Bio, &rep.Phone, &rep.City, &rep.Country,
		&rep.LinkedinURL, &rep.PortfolioURL, &rep.AvatarURL, &rep.IntroVideoURL, &rep.BestCallURL,
		&rep.Active, &rep.CreatedAt, &rep.FullName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rep, nil
}

func (r *repProfileRepo) GetByID(ctx context.Context, id int64) (*domain.RepProfile, error) {
	return r.scanRep(r.db.QueryRow(ctx, repProfileSelect+` WHERE rp.id = $1`, id))
}

func (r *repProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.RepProfile, error) {
	return r.scanRep(r.db.QueryRow(ctx, repProfileSelect+` WHERE rp.user_id = $1`, userID))
}
