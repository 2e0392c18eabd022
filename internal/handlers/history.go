package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dyorhub/referral-service/internal/logger"
	"github.com/dyorhub/referral-service/internal/models"
)

// HistoryGetter defines the interface that the service must implement.
type HistoryGetter interface {
	GetReferralsMadeByUser(ctx context.Context, userID uuid.UUID) ([]models.ReferralWithUser, error)
}

// ReferralHistoryErrorResponse represents an error response for the history lookup
// swagger:model ReferralHistoryErrorResponse
type ReferralHistoryErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewGetReferralHistoryHandler returns an HTTP handler listing all referrals
// made by the authenticated user, newest first.
// @Summary Get my referral history
// @Description Lists all users referred by the authenticated user, newest first, with profile details.
// @Tags referrals
// @Produce json
// @Success 200 {array} models.ReferralWithUser "Referrals made by the user"
// @Failure 401 {object} handlers.ReferralHistoryErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ReferralHistoryErrorResponse "Internal server error"
// @Router /referrals/me/history [get]
// @Security BearerAuth
func NewGetReferralHistoryHandler(svc HistoryGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized history request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReferralHistoryErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		userID, err := tokener.GetUserID(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReferralHistoryErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		referrals, err := svc.GetReferralsMadeByUser(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get referral history", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ReferralHistoryErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if referrals == nil {
			referrals = []models.ReferralWithUser{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(referrals)
	}
}
