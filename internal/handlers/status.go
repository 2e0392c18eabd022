package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dyorhub/referral-service/internal/logger"
	"github.com/dyorhub/referral-service/internal/models"
)

// StatusGetter defines the interface that the service must implement.
type StatusGetter interface {
	GetReferralStatus(ctx context.Context, userID uuid.UUID) (*models.ReferralStatus, error)
}

// ReferralStatusResponse represents the user's referral status
// swagger:model ReferralStatusResponse
type ReferralStatusResponse struct {
	// Whether the user has been referred
	HasBeenReferred bool `json:"has_been_referred"`

	// Username of the referrer, present only when referred
	ReferrerUsername *string `json:"referrer_username,omitempty"`
}

// ReferralStatusErrorResponse represents an error response for the status lookup
// swagger:model ReferralStatusErrorResponse
type ReferralStatusErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewGetReferralStatusHandler returns an HTTP handler reporting whether the
// authenticated user has been referred and by whom.
// @Summary Get my referral status
// @Description Reports whether the user has been referred, with the referrer's username when they have.
// @Tags referrals
// @Produce json
// @Success 200 {object} handlers.ReferralStatusResponse "Referral status"
// @Failure 401 {object} handlers.ReferralStatusErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ReferralStatusErrorResponse "Internal server error"
// @Router /referrals/me/status [get]
// @Security BearerAuth
func NewGetReferralStatusHandler(svc StatusGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized status request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReferralStatusErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		userID, err := tokener.GetUserID(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReferralStatusErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		status, err := svc.GetReferralStatus(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get referral status", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ReferralStatusErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ReferralStatusResponse{
			HasBeenReferred:  status.HasBeenReferred,
			ReferrerUsername: status.ReferrerUsername,
		})
	}
}
