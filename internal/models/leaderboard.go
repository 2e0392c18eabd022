package models

import "github.com/google/uuid"

// LeaderboardEntry is one row of the referral leaderboard: a referrer's
// profile joined with their count of successful redemptions.
type LeaderboardEntry struct {
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Username      string    `json:"username" db:"username"`
	DisplayName   *string   `json:"display_name" db:"display_name"`
	AvatarURL     *string   `json:"avatar_url" db:"avatar_url"`
	ReferralCount int       `json:"referral_count" db:"referral_count"`
}

// LeaderboardPage is a paginated slice of the referral leaderboard.
type LeaderboardPage struct {
	Entries    []LeaderboardEntry `json:"entries"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}
