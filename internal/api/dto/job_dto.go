package dto

import (
	"time"

	"github.com/spec-kit/job-board/internal/domain"
)

// CompanyPayload is the embedded company contact block.
type CompanyPayload struct {
	Name         string `json:"name" validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"required"`
	ContactPhone string `json:"contactPhone" validate:"required"`
}

// ToDomain converts the payload to the domain type.
func (c CompanyPayload) ToDomain() domain.Company {
	return domain.Company{
		Name:         c.Name,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
	}
}

// CreateJobRequest payload for new postings. UserID is only consulted when
// ownership enforcement is disabled; otherwise the owner comes from the
// authenticated principal.
type CreateJobRequest struct {
	Title       string          `json:"title" validate:"required"`
	Type        string          `json:"type" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Company     *CompanyPayload `json:"company" validate:"required"`
	UserID      string          `json:"user_id"`
}

// UpdateJobRequest payload for partial updates.
type UpdateJobRequest struct {
	Title       *string         `json:"title"`
	Type        *string         `json:"type"`
	Description *string         `json:"description"`
	Company     *CompanyPayload `json:"company"`
}

// JobResponse is the serialized posting.
type JobResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
	Company     CompanyPayload `json:"company"`
	UserID      string         `json:"user_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// NewJobResponse maps a domain job to its wire shape.
func NewJobResponse(job *domain.Job) JobResponse {
	return JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Type:        job.Type,
		Description: job.Description,
		Company: CompanyPayload{
			Name:         job.Company.Name,
			ContactEmail: job.Company.ContactEmail,
			ContactPhone: job.Company.ContactPhone,
		},
		UserID:    job.UserID,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
}
