package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dyorhub/referral-service/internal/models"
)

func TestGetLeaderboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLeaderboardGetter(ctrl)

	page := &models.LeaderboardPage{
		Entries: []models.LeaderboardEntry{
			{UserID: uuid.New(), Username: "john", ReferralCount: 7},
			{UserID: uuid.New(), Username: "jane", ReferralCount: 3},
		},
		Total:      2,
		Page:       1,
		Limit:      20,
		TotalPages: 1,
	}

	t.Run("defaults when no query params", func(t *testing.T) {
		mockSvc.EXPECT().
			GetReferralLeaderboard(gomock.Any(), 1, 20).
			Return(page, nil)

		req := httptest.NewRequest(http.MethodGet, "/referrals/leaderboard", nil)
		w := httptest.NewRecorder()

		NewGetLeaderboardHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got models.LeaderboardPage
		err := json.Unmarshal(w.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Equal(t, *page, got)
	})

	t.Run("explicit page and limit", func(t *testing.T) {
		mockSvc.EXPECT().
			GetReferralLeaderboard(gomock.Any(), 3, 50).
			Return(&models.LeaderboardPage{
				Entries:    []models.LeaderboardEntry{},
				Total:      0,
				Page:       3,
				Limit:      50,
				TotalPages: 0,
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/referrals/leaderboard?page=3&limit=50", nil)
		w := httptest.NewRecorder()

		NewGetLeaderboardHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-numeric params fall back to defaults", func(t *testing.T) {
		mockSvc.EXPECT().
			GetReferralLeaderboard(gomock.Any(), 1, 20).
			Return(page, nil)

		req := httptest.NewRequest(http.MethodGet, "/referrals/leaderboard?page=abc&limit=xyz", nil)
		w := httptest.NewRecorder()

		NewGetLeaderboardHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().
			GetReferralLeaderboard(gomock.Any(), 1, 20).
			Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/referrals/leaderboard", nil)
		w := httptest.NewRecorder()

		NewGetLeaderboardHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp LeaderboardErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, "Internal server error", resp.Error)
	})
}
