package domain

import "time"

// Company captures the contact details embedded in a job posting.
type Company struct {
	Name         string
	ContactEmail string
	ContactPhone string
}

// Job is the aggregate for job postings. UserID records the posting owner
// and is immutable after creation.
type Job struct {
	ID          string
	Title       string
	Type        string
	Description string
	Company     Company
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
