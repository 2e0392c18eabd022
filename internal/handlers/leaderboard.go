package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dyorhub/referral-service/internal/logger"
	"github.com/dyorhub/referral-service/internal/models"
)

// LeaderboardGetter defines the interface that the service must implement.
type LeaderboardGetter interface {
	GetReferralLeaderboard(ctx context.Context, page, limit int) (*models.LeaderboardPage, error)
}

// LeaderboardErrorResponse represents an error response for the leaderboard
// swagger:model LeaderboardErrorResponse
type LeaderboardErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewGetLeaderboardHandler returns an HTTP handler for the public referral
// leaderboard.
// @Summary Get the referral leaderboard
// @Description Returns referrers ranked by referral count descending, paginated. Page defaults to 1, limit to 20; limit is clamped to 1-100.
// @Tags referrals
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size, 1-100"
// @Success 200 {object} models.LeaderboardPage "Leaderboard page"
// @Failure 500 {object} handlers.LeaderboardErrorResponse "Internal server error"
// @Router /referrals/leaderboard [get]
func NewGetLeaderboardHandler(svc LeaderboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		page := 1
		if v := r.URL.Query().Get("page"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil {
				page = parsed
			}
		}

		limit := 20
		if v := r.URL.Query().Get("limit"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil {
				limit = parsed
			}
		}

		result, err := svc.GetReferralLeaderboard(ctx, page, limit)
		if err != nil {
			logger.Log.Errorw("failed to get leaderboard", "page", page, "limit", limit, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LeaderboardErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(result)
	}
}
