package models

// ReferralEvent is published to Kafka when a redemption succeeds, for
// downstream consumers such as gamification and notifications. Delivery is
// at-least-once; consumers must tolerate duplicates.
type ReferralEvent struct {
	Event          string `json:"event"`            // Event name, e.g. "referral.successful"
	ReferralID     string `json:"referral_id"`      // ID of the created referral row
	ReferrerID     string `json:"referrer_id"`      // Owner of the redeemed code
	ReferredUserID string `json:"referred_user_id"` // User who was referred
	Timestamp      int64  `json:"timestamp"`        // Unix timestamp (seconds) of the redemption
}

// EventReferralSuccessful is the event name carried by ReferralEvent.
const EventReferralSuccessful = "referral.successful"
