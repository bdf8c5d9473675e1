package dto

import (
	"time"

	"github.com/spec-kit/job-board/internal/domain"
)

// dateOfBirthLayout is the wire format for member birth dates.
const dateOfBirthLayout = "2006-01-02"

// SignupRequest payload for new members.
type SignupRequest struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=6"`
	PhoneNumber      string `json:"phone_number" validate:"required"`
	Gender           string `json:"gender" validate:"required"`
	DateOfBirth      string `json:"date_of_birth" validate:"required"`
	MembershipStatus string `json:"membership_status" validate:"required"`
}

// ParseDateOfBirth converts the wire date string to a structured date.
func (r SignupRequest) ParseDateOfBirth() (time.Time, bool) {
	if t, err := time.Parse(dateOfBirthLayout, r.DateOfBirth); err == nil {
		return t, true
	}
	t, err := time.Parse(time.RFC3339, r.DateOfBirth)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse returned on signup and login.
type AuthResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// UserResponse is the serialized member record. The password hash is never
// part of this shape.
type UserResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phone_number"`
	Gender           string `json:"gender"`
	DateOfBirth      string `json:"date_of_birth"`
	MembershipStatus string `json:"membership_status"`
}

// NewUserResponse maps a domain user to its wire shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		PhoneNumber:      user.PhoneNumber,
		Gender:           user.Gender,
		DateOfBirth:      user.DateOfBirth.Format(dateOfBirthLayout),
		MembershipStatus: string(user.MembershipStatus),
	}
}
