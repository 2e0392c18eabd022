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

func TestGetReferralStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockStatusGetter(ctrl)
	mockTokener := NewMockHandlerTokener(ctrl)

	userID := uuid.New()
	referrer := "john_doe"

	tests := []struct {
		name         string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "referred",
			mockSetup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token", nil)
				mockTokener.EXPECT().
					GetUserID(gomock.Any(), "token").
					Return(userID, nil)
				mockSvc.EXPECT().
					GetReferralStatus(gomock.Any(), userID).
					Return(&models.ReferralStatus{
						HasBeenReferred:  true,
						ReferrerUsername: &referrer,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &ReferralStatusResponse{
				HasBeenReferred:  true,
				ReferrerUsername: &referrer,
			},
		},
		{
			name: "not referred",
			mockSetup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token", nil)
				mockTokener.EXPECT().
					GetUserID(gomock.Any(), "token").
					Return(userID, nil)
				mockSvc.EXPECT().
					GetReferralStatus(gomock.Any(), userID).
					Return(&models.ReferralStatus{HasBeenReferred: false}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &ReferralStatusResponse{
				HasBeenReferred: false,
			},
		},
		{
			name: "missing token",
			mockSetup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no auth header"))
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &ReferralStatusErrorResponse{
				Error: "Unauthorized",
			},
		},
		{
			name: "internal error",
			mockSetup: func() {
				mockTokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token", nil)
				mockTokener.EXPECT().
					GetUserID(gomock.Any(), "token").
					Return(userID, nil)
				mockSvc.EXPECT().
					GetReferralStatus(gomock.Any(), userID).
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ReferralStatusErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/referrals/me/status", nil)
			w := httptest.NewRecorder()

			handler := NewGetReferralStatusHandler(mockSvc, mockTokener)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &ReferralStatusResponse{}
			default:
				respBody = &ReferralStatusErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
