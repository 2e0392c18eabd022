package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dyorhub/referral-service/internal/logger"
	"github.com/dyorhub/referral-service/internal/services"
)

// ManualApplier defines the interface that the service must implement.
type ManualApplier interface {
	ApplyManualReferral(ctx context.Context, userID uuid.UUID, code string) (string, error)
}

// ApplyReferralRequest represents the JSON body for manual code redemption
// swagger:model ApplyReferralRequest
type ApplyReferralRequest struct {
	// Referral code, exactly 5 characters
	// required: true
	// default: AB12C
	ReferralCode string `json:"referral_code"`
}

// ApplyReferralResponse represents a successful manual redemption
// swagger:model ApplyReferralResponse
type ApplyReferralResponse struct {
	// Username of the code owner
	// default: john_doe
	ReferrerUsername string `json:"referrer_username"`
}

// ApplyReferralErrorResponse represents an error response for manual redemption
// swagger:model ApplyReferralErrorResponse
type ApplyReferralErrorResponse struct {
	// Error message
	// default: Invalid referral code.
	Error string `json:"error"`
}

// NewApplyReferralHandler returns an HTTP handler for manual referral code
// redemption by the authenticated user.
// @Summary Apply a referral code
// @Description Records the authenticated user as referred by the code owner. A user can be referred at most once, ever.
// @Tags referrals
// @Accept json
// @Produce json
// @Param applyReferralRequest body handlers.ApplyReferralRequest true "Referral code to apply"
// @Success 200 {object} handlers.ApplyReferralResponse "Referrer username"
// @Failure 400 {object} handlers.ApplyReferralErrorResponse "Invalid referral code"
// @Failure 401 {object} handlers.ApplyReferralErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ApplyReferralErrorResponse "Already referred or own code"
// @Router /referrals/me/apply [post]
// @Security BearerAuth
func NewApplyReferralHandler(svc ManualApplier, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized apply request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ApplyReferralErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		userID, err := tokener.GetUserID(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ApplyReferralErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req ApplyReferralRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApplyReferralErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if len(req.ReferralCode) != 5 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ApplyReferralErrorResponse{
				Error: "Invalid referral code.",
			})
			return
		}

		referrerUsername, err := svc.ApplyManualReferral(ctx, userID, req.ReferralCode)
		if err != nil {
			switch err {
			case services.ErrAlreadyReferred, services.ErrSelfReferral:
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ApplyReferralErrorResponse{
					Error: err.Error(),
				})
			case services.ErrReferralCodeNotFound:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ApplyReferralErrorResponse{
					Error: "Invalid referral code.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ApplyReferralErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ApplyReferralResponse{
			ReferrerUsername: referrerUsername,
		})
	}
}
