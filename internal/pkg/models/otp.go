package models

import (
	"time"
)

// OTP represents a one-time password bound to a phone number.
// At most one live record exists per phone number; regenerating
// replaces the record in place.
type OTP struct {
	PhoneNumber string    `json:"phone_number" bson:"phone_number"`
	Code        string    `json:"code" bson:"code"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	ExpiresAt   time.Time `json:"expires_at" bson:"expires_at"`
	Used        bool      `json:"used" bson:"used"`
}

// IsExpired reports whether the OTP has passed its expiry time
func (o *OTP) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// GenerateOTPRequest represents a request to generate an OTP
type GenerateOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// VerifyOTPRequest represents a request to verify an OTP
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	OTP         string `json:"otp" validate:"required"`
}

// GenerateOTPResponse is returned after an OTP has been generated.
// Code is only populated outside production deployments.
type GenerateOTPResponse struct {
	Code      string    `json:"otp,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// OTPStatus describes the state of a pending OTP without exposing the code
type OTPStatus struct {
	PhoneNumber string    `json:"phone_number"`
	ExpiresAt   time.Time `json:"expires_at"`
	Used        bool      `json:"used"`
	IsExpired   bool      `json:"is_expired"`
}

// AuthResponse represents the response after successful authentication.
// ExpiresAt is the token expiry, serialized RFC3339 like every other
// expires_at on the API surface.
type AuthResponse struct {
	Token     string    `json:"token"`
	User      *User     `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}
