package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dyorhub/referral-service/internal/models"
)

func TestGetReferralHistoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockHistoryGetter(ctrl)
	mockTokener := NewMockHandlerTokener(ctrl)

	userID := uuid.New()

	authOK := func() {
		mockTokener.EXPECT().
			GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("token", nil)
		mockTokener.EXPECT().
			GetUserID(gomock.Any(), "token").
			Return(userID, nil)
	}

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	referrals := []models.ReferralWithUser{
		{
			ReferralID:     uuid.New(),
			ReferredUserID: uuid.New(),
			Username:       "jane",
			CreatedAt:      createdAt,
		},
	}

	t.Run("success", func(t *testing.T) {
		authOK()
		mockSvc.EXPECT().
			GetReferralsMadeByUser(gomock.Any(), userID).
			Return(referrals, nil)

		req := httptest.NewRequest(http.MethodGet, "/referrals/me/history", nil)
		w := httptest.NewRecorder()

		NewGetReferralHistoryHandler(mockSvc, mockTokener).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []models.ReferralWithUser
		err := json.Unmarshal(w.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Equal(t, referrals, got)
	})

	t.Run("no referrals yields empty array", func(t *testing.T) {
		authOK()
		mockSvc.EXPECT().
			GetReferralsMadeByUser(gomock.Any(), userID).
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/referrals/me/history", nil)
		w := httptest.NewRecorder()

		NewGetReferralHistoryHandler(mockSvc, mockTokener).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		mockTokener.EXPECT().
			GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("", errors.New("no auth header"))

		req := httptest.NewRequest(http.MethodGet, "/referrals/me/history", nil)
		w := httptest.NewRecorder()

		NewGetReferralHistoryHandler(mockSvc, mockTokener).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp ReferralHistoryErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, "Unauthorized", resp.Error)
	})

	t.Run("internal error", func(t *testing.T) {
		authOK()
		mockSvc.EXPECT().
			GetReferralsMadeByUser(gomock.Any(), userID).
			Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/referrals/me/history", nil)
		w := httptest.NewRecorder()

		NewGetReferralHistoryHandler(mockSvc, mockTokener).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp ReferralHistoryErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, "Internal server error", resp.Error)
	})
}
