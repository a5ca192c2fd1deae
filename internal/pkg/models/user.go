package models

import (
	"time"
)

// User types supported by the platform
const (
	UserTypeSupplier = "supplier"
	UserTypeClient   = "client"
	UserTypeAdmin    = "admin"
)

// ValidUserType reports whether t is a known user type
func ValidUserType(t string) bool {
	switch t {
	case UserTypeSupplier, UserTypeClient, UserTypeAdmin:
		return true
	}
	return false
}

// User represents a durable identity keyed by phone number.
// A record is created with ProfileCompleted=false on first successful
// OTP verification and upgraded through profile completion.
type User struct {
	UID              string    `json:"uid" bson:"uid"`
	PhoneNumber      string    `json:"phone_number" bson:"phone_number"`
	FullName         string    `json:"full_name,omitempty" bson:"full_name,omitempty"`
	Email            string    `json:"email,omitempty" bson:"email,omitempty"`
	UserType         string    `json:"user_type,omitempty" bson:"user_type,omitempty"`
	ProfileCompleted bool      `json:"profile_completed" bson:"profile_completed"`
	PasswordHash     string    `json:"-" bson:"password_hash,omitempty"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" bson:"updated_at"`
}

// Supplier holds supplier-specific fields denormalized from the user
// record. The two records share the same UID but have independent
// lifecycles: a profile can exist before any supplier data does.
type Supplier struct {
	UID             string    `json:"uid" bson:"uid"`
	PhoneNumber     string    `json:"phone_number" bson:"phone_number"`
	StoreName       string    `json:"store_name,omitempty" bson:"store_name,omitempty"`
	Category        string    `json:"category,omitempty" bson:"category,omitempty"`
	Address         string    `json:"address,omitempty" bson:"address,omitempty"`
	DeliveryEnabled bool      `json:"delivery_enabled" bson:"delivery_enabled"`
	DeliveryFee     float64   `json:"delivery_fee" bson:"delivery_fee"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}

// CompleteProfileRequest upgrades a bare identity with profile data
type CompleteProfileRequest struct {
	UID         string `json:"uid" validate:"required"`
	FullName    string `json:"full_name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	UserType    string `json:"user_type" validate:"required"`
	StoreName   string `json:"store_name,omitempty"`
	Category    string `json:"category,omitempty"`
	Address     string `json:"address,omitempty"`
}

// RegisterRequest represents the password-based supplier registration path
type RegisterRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required"`
	StoreName   string `json:"store_name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Address     string `json:"address,omitempty"`
}

// LoginRequest represents a password-based login
type LoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required"`
}
