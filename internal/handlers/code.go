package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dyorhub/referral-service/internal/logger"
)

// ReferralCodeGetter defines the interface that the service must implement.
type ReferralCodeGetter interface {
	GetReferralCode(ctx context.Context, userID uuid.UUID) (string, error)
}

// ReferralCodeResponse represents the user's referral code
// swagger:model ReferralCodeResponse
type ReferralCodeResponse struct {
	// 5-character referral code
	// default: AB12C
	ReferralCode string `json:"referral_code"`
}

// ReferralCodeErrorResponse represents an error response when fetching the code
// swagger:model ReferralCodeErrorResponse
type ReferralCodeErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewGetReferralCodeHandler returns an HTTP handler for fetching the
// authenticated user's referral code, assigning one on first request.
// @Summary Get my referral code
// @Description Returns the user's referral code. The code is lazily assigned on first request and never changes afterwards.
// @Tags referrals
// @Produce json
// @Success 200 {object} handlers.ReferralCodeResponse "Referral code"
// @Failure 401 {object} handlers.ReferralCodeErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ReferralCodeErrorResponse "Internal server error"
// @Router /referrals/me/code [get]
// @Security BearerAuth
func NewGetReferralCodeHandler(svc ReferralCodeGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized referral code request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReferralCodeErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		userID, err := tokener.GetUserID(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReferralCodeErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		code, err := svc.GetReferralCode(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get referral code", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ReferralCodeErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ReferralCodeResponse{
			ReferralCode: code,
		})
	}
}
