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

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, display_name, avatar_url, referral_code, created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NULL OR username = $1)
		  AND ($2::VARCHAR IS NULL OR email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, display_name, avatar_url, referral_code, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// GetByReferralCode returns the user owning the given referral code, or nil
// if no user has that code.
func (r *UserReadRepository) GetByReferralCode(ctx context.Context, code string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, display_name, avatar_url, referral_code, created_at, updated_at
		FROM users
		WHERE referral_code = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, code)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{code},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the generated user ID.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, email string) (uuid.UUID, error) {
	query := `
		INSERT INTO users (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING user_id
	`
	args := []any{username, email, passwordHash}

	var userID uuid.UUID
	err := r.db.GetContext(ctx, &userID, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"result", userID,
		"error", err,
	)

	return userID, err
}

// SetReferralCode assigns a referral code to a user. The WHERE clause keeps
// an already assigned code immutable.
func (r *UserWriteRepository) SetReferralCode(ctx context.Context, userID uuid.UUID, code string) error {
	query := `
		UPDATE users
		SET referral_code = $2, updated_at = NOW()
		WHERE user_id = $1 AND referral_code IS NULL
	`
	args := []any{userID, code}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
