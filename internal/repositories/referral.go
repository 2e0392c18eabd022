package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dyorhub/referral-service/internal/logger"
	"github.com/dyorhub/referral-service/internal/models"
)

type ReferralWriteRepository struct {
	db *sqlx.DB
}

func NewReferralWriteRepository(db *sqlx.DB) *ReferralWriteRepository {
	return &ReferralWriteRepository{db: db}
}

// Save inserts a referral row and returns the generated referral ID.
// The unique constraint on referred_user_id is the enforcement point for
// "at most one referral per referred user"; a concurrent duplicate insert
// surfaces here as a unique violation.
func (r *ReferralWriteRepository) Save(ctx context.Context, referrerID, referredUserID uuid.UUID) (uuid.UUID, error) {
	query := `
		INSERT INTO referrals (referrer_id, referred_user_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING referral_id
	`
	args := []any{referrerID, referredUserID}

	var referralID uuid.UUID
	err := r.db.GetContext(ctx, &referralID, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", referralID,
		"error", err,
	)

	return referralID, err
}

type ReferralReadRepository struct {
	db *sqlx.DB
}

func NewReferralReadRepository(db *sqlx.DB) *ReferralReadRepository {
	return &ReferralReadRepository{db: db}
}

// GetByReferredUserID returns the referral row for the given referred user
// joined with the referrer's username, or nil if the user has never been
// referred.
func (r *ReferralReadRepository) GetByReferredUserID(ctx context.Context, referredUserID uuid.UUID) (*models.ReferralWithReferrer, error) {
	const query = `
		SELECT r.referral_id, r.referrer_id, u.username AS referrer_username, r.created_at
		FROM referrals r
		JOIN users u ON u.user_id = r.referrer_id
		WHERE r.referred_user_id = $1
	`

	var referral models.ReferralWithReferrer
	err := r.db.GetContext(ctx, &referral, query, referredUserID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{referredUserID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &referral, nil
}

// ListByReferrerID returns all referrals made by the given user, newest
// first, with the referred users' profile fields joined.
func (r *ReferralReadRepository) ListByReferrerID(ctx context.Context, referrerID uuid.UUID) ([]models.ReferralWithUser, error) {
	const query = `
		SELECT r.referral_id, r.referred_user_id, u.username, u.display_name, u.avatar_url, r.created_at
		FROM referrals r
		JOIN users u ON u.user_id = r.referred_user_id
		WHERE r.referrer_id = $1
		ORDER BY r.created_at DESC
	`

	var referrals []models.ReferralWithUser
	err := r.db.SelectContext(ctx, &referrals, query, referrerID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{referrerID},
		"result", len(referrals),
		"error", err,
	)

	return referrals, err
}

// Leaderboard returns referrers ordered by their referral count descending,
// joined with profile fields, for one page.
func (r *ReferralReadRepository) Leaderboard(ctx context.Context, limit, offset int) ([]models.LeaderboardEntry, error) {
	const query = `
		SELECT u.user_id, u.username, u.display_name, u.avatar_url, COUNT(r.referral_id) AS referral_count
		FROM referrals r
		JOIN users u ON u.user_id = r.referrer_id
		GROUP BY u.user_id, u.username, u.display_name, u.avatar_url
		ORDER BY referral_count DESC, u.username ASC
		LIMIT $1 OFFSET $2
	`

	var entries []models.LeaderboardEntry
	err := r.db.SelectContext(ctx, &entries, query, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit, offset},
		"result", len(entries),
		"error", err,
	)

	return entries, err
}

// CountReferrers returns the number of distinct referrers, used for the
// leaderboard's total page count.
func (r *ReferralReadRepository) CountReferrers(ctx context.Context) (int, error) {
	const query = `
		SELECT COUNT(DISTINCT referrer_id)
		FROM referrals
	`

	var total int
	err := r.db.GetContext(ctx, &total, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", total,
		"error", err,
	)

	return total, err
}
