package domain

import "time"

// MembershipStatus represents the account tier of an end-user.
type MembershipStatus string

const (
	MembershipStatusActive   MembershipStatus = "active"
	MembershipStatusInactive MembershipStatus = "inactive"
)

// User is the domain model for registered members who post jobs.
// PasswordHash never leaves the process boundary.
type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	PhoneNumber      string
	Gender           string
	DateOfBirth      time.Time
	MembershipStatus MembershipStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
