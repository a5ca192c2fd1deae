package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAID-SWIAAID/stagep/internal/pkg/models"
	"github.com/SAID-SWIAAID/stagep/services/auth"
	"github.com/SAID-SWIAAID/stagep/services/auth/mocks"
)

func setupHandlerTest(t *testing.T, method, path, body string) (*AuthHandler, *mocks.MockAuthUC, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockAuthUC(ctrl)
	handler := NewAuthHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return handler, mockUC, c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestGenerateOTP_Success(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/otp/generate", `{"phone_number": "+628123456789"}`)

	mockUC.EXPECT().
		GenerateOTP(gomock.Any(), "+628123456789").
		Return(&models.GenerateOTPResponse{
			Code:      "123456",
			ExpiresAt: time.Now().Add(15 * time.Minute),
		}, nil)

	err := handler.GenerateOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "OTP sent successfully", response["message"])
}

func TestGenerateOTP_EmptyPhoneNumber(t *testing.T) {
	handler, _, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/otp/generate", `{"phone_number": ""}`)

	err := handler.GenerateOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateOTP_InvalidPhoneNumber(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/otp/generate", `{"phone_number": "garbage"}`)

	mockUC.EXPECT().
		GenerateOTP(gomock.Any(), "garbage").
		Return(nil, auth.ErrInvalidPhoneNumber)

	err := handler.GenerateOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, "Invalid phone number format", response["error"])
}

func TestVerifyOTP_Success(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/otp/verify", `{"phone_number": "+628123456789", "otp": "123456"}`)

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "+628123456789", "123456").
		Return(&models.AuthResponse{
			Token:     "signed-token",
			User:      &models.User{UID: "uid-1", PhoneNumber: "+628123456789"},
			ExpiresAt: time.Now().Add(time.Hour).UTC(),
		}, nil)

	err := handler.VerifyOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "signed-token", data["token"])
}

func TestVerifyOTP_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
		wantError  string
	}{
		{
			name:       "not found",
			ucErr:      auth.ErrOTPNotFound,
			wantStatus: http.StatusBadRequest,
			wantError:  "No OTP found for this phone number.",
		},
		{
			name:       "expired",
			ucErr:      auth.ErrOTPExpired,
			wantStatus: http.StatusBadRequest,
			wantError:  "OTP has expired. Please request a new one.",
		},
		{
			name:       "already used",
			ucErr:      auth.ErrOTPAlreadyUsed,
			wantStatus: http.StatusBadRequest,
			wantError:  "OTP has already been used.",
		},
		{
			name:       "wrong code",
			ucErr:      auth.ErrInvalidOTP,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid OTP.",
		},
		{
			name:       "infrastructure fault",
			ucErr:      errors.New("store unreachable"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to verify OTP",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockUC, c, rec := setupHandlerTest(t,
				http.MethodPost, "/auth/otp/verify", `{"phone_number": "+628123456789", "otp": "123456"}`)

			mockUC.EXPECT().
				VerifyOTP(gomock.Any(), "+628123456789", "123456").
				Return(nil, tt.ucErr)

			err := handler.VerifyOTP(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			response := decodeBody(t, rec)
			assert.Equal(t, false, response["success"])
			assert.Equal(t, tt.wantError, response["error"])
		})
	}
}

func TestVerifyOTP_MissingFields(t *testing.T) {
	handler, _, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/otp/verify", `{"phone_number": "+628123456789"}`)

	err := handler.VerifyOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOTPStatus_Success(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodGet, "/auth/otp/status/+628123456789", "")
	c.SetParamNames("phone")
	c.SetParamValues("+628123456789")

	mockUC.EXPECT().
		OTPStatus(gomock.Any(), "+628123456789").
		Return(&models.OTPStatus{
			PhoneNumber: "+628123456789",
			ExpiresAt:   time.Now().Add(10 * time.Minute),
		}, nil)

	err := handler.OTPStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOTPStatus_NotFound(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodGet, "/auth/otp/status/+628123456789", "")
	c.SetParamNames("phone")
	c.SetParamValues("+628123456789")

	mockUC.EXPECT().
		OTPStatus(gomock.Any(), "+628123456789").
		Return(nil, auth.ErrOTPNotFound)

	err := handler.OTPStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCleanupOTPs_Success(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/otp/cleanup", "")

	mockUC.EXPECT().
		CleanupExpiredOTPs(gomock.Any()).
		Return(int64(3), nil)

	err := handler.CleanupOTPs(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeBody(t, rec)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["removed"])
}

func TestCompleteProfile_Success(t *testing.T) {
	body := `{
		"uid": "uid-1",
		"full_name": "Budi Santoso",
		"email": "budi@example.com",
		"phone_number": "+628123456789",
		"user_type": "supplier",
		"store_name": "Toko Budi",
		"category": "groceries"
	}`
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/complete-profile", body)

	mockUC.EXPECT().
		CompleteProfile(gomock.Any(), gomock.Any()).
		Return(&models.User{UID: "uid-1", ProfileCompleted: true}, nil)

	err := handler.CompleteProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCompleteProfile_ValidationError(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/complete-profile", `{"uid": "uid-1"}`)

	mockUC.EXPECT().
		CompleteProfile(gomock.Any(), gomock.Any()).
		Return(nil, &auth.ValidationError{Missing: []string{"full_name", "email"}})

	err := handler.CompleteProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	response := decodeBody(t, rec)
	assert.Contains(t, response["error"], "full_name")
}

func TestCompleteProfile_UnknownUser(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/complete-profile", `{"uid": "no-such-uid"}`)

	mockUC.EXPECT().
		CompleteProfile(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrIdentityNotFound)

	err := handler.CompleteProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompleteProfile_PhoneConflict(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/complete-profile", `{"uid": "uid-1", "phone_number": "+628123456789"}`)

	mockUC.EXPECT().
		CompleteProfile(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrPhoneAlreadyRegistered)

	err := handler.CompleteProfile(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_Conflict(t *testing.T) {
	body := `{"phone_number": "+628123456789", "password": "pass", "store_name": "Toko", "category": "groceries"}`
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/register", body)

	mockUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrPhoneAlreadyRegistered)

	err := handler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodPost, "/auth/login", `{"phone_number": "+628123456789", "password": "wrong"}`)

	mockUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrInvalidCredentials)

	err := handler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	response := decodeBody(t, rec)
	assert.Equal(t, "Invalid phone number or password", response["error"])
}

func TestGetUser_Success(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodGet, "/users/uid-1", "")
	c.SetParamNames("id")
	c.SetParamValues("uid-1")

	mockUC.EXPECT().
		GetUserByUID(gomock.Any(), "uid-1").
		Return(&models.User{UID: "uid-1", PhoneNumber: "+628123456789"}, nil)

	err := handler.GetUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetUser_NotFound(t *testing.T) {
	handler, mockUC, c, rec := setupHandlerTest(t,
		http.MethodGet, "/users/uid-1", "")
	c.SetParamNames("id")
	c.SetParamValues("uid-1")

	mockUC.EXPECT().
		GetUserByUID(gomock.Any(), "uid-1").
		Return(nil, auth.ErrIdentityNotFound)

	err := handler.GetUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
