package models

import (
	"time"

	"github.com/google/uuid"
)

// ReferralDB represents a referral record in the database.
// Rows are insert-only: a user is referred at most once, ever.
type ReferralDB struct {
	ReferralID     uuid.UUID `json:"referral_id" db:"referral_id"`           // Primary key
	ReferrerID     uuid.UUID `json:"referrer_id" db:"referrer_id"`           // Owner of the redeemed code
	ReferredUserID uuid.UUID `json:"referred_user_id" db:"referred_user_id"` // Unique across all referrals
	CreatedAt      time.Time `json:"created_at" db:"created_at"`             // Redemption timestamp
}

// ReferralWithUser is a referral row joined with the referred user's profile,
// as returned by the referral history query.
type ReferralWithUser struct {
	ReferralID     uuid.UUID `json:"referral_id" db:"referral_id"`
	ReferredUserID uuid.UUID `json:"referred_user_id" db:"referred_user_id"`
	Username       string    `json:"username" db:"username"`
	DisplayName    *string   `json:"display_name" db:"display_name"`
	AvatarURL      *string   `json:"avatar_url" db:"avatar_url"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// ReferralWithReferrer is a referral row joined with the referrer's username,
// as returned by the status lookup.
type ReferralWithReferrer struct {
	ReferralID       uuid.UUID `json:"referral_id" db:"referral_id"`
	ReferrerID       uuid.UUID `json:"referrer_id" db:"referrer_id"`
	ReferrerUsername string    `json:"referrer_username" db:"referrer_username"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// ReferralStatus describes whether a user has been referred and by whom.
type ReferralStatus struct {
	HasBeenReferred  bool    `json:"has_been_referred"`
	ReferrerUsername *string `json:"referrer_username,omitempty"`
}
