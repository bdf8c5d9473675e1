package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// JobCreateInput carries validated fields for a new posting.
type JobCreateInput struct {
	Title       string
	Type        string
	Description string
	Company     domain.Company
	UserID      string
}

// JobUpdateInput carries the optional fields of a partial update. Ownership
// is immutable, so there is no user id here.
type JobUpdateInput struct {
	Title       *string
	Type        *string
	Description *string
	Company     *domain.Company
}

// JobService implements job posting operations and the ownership policy.
type JobService struct {
	jobs             repository.JobRepository
	dispatcher       events.Dispatcher
	enforceOwnership bool
}

// NewJobService builds the service.
func NewJobService(jobs repository.JobRepository, dispatcher events.Dispatcher, enforceOwnership bool) *JobService {
	return &JobService{jobs: jobs, dispatcher: dispatcher, enforceOwnership: enforceOwnership}
}

// OwnershipEnforced reports whether mutations require an authenticated owner.
func (s *JobService) OwnershipEnforced() bool {
	return s.enforceOwnership
}

// Create persists a new posting.
func (s *JobService) Create(ctx context.Context, input JobCreateInput) (*domain.Job, error) {
	job := &domain.Job{
		Title:       input.Title,
		Type:        input.Type,
		Description: input.Description,
		Company:     input.Company,
		UserID:      input.UserID,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventJobCreated, job)
	return job, nil
}

// List returns all postings.
func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	return s.jobs.List(ctx)
}

// Get fetches a single posting. Malformed ids and absent ids are both
// reported as not found.
func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.lookup(ctx, id)
}

// Update applies a partial update. The posting must exist before ownership is
// considered, so a missing posting yields not-found for every caller.
func (s *JobService) Update(ctx context.Context, principal *auth.Principal, id string, input JobUpdateInput) (*domain.Job, error) {
	job, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.enforceOwnership {
		if err := auth.CheckJobOwnership(job, principal); err != nil {
			return nil, err
		}
	}

	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Type != nil {
		job.Type = *input.Type
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Company != nil {
		job.Company = *input.Company
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", nil)
		}
		return nil, err
	}
	s.publish(ctx, events.EventJobUpdated, job)
	return job, nil
}

// Delete removes a posting after the same existence-then-ownership checks.
func (s *JobService) Delete(ctx context.Context, principal *auth.Principal, id string) error {
	job, err := s.lookup(ctx, id)
	if err != nil {
		return err
	}
	if s.enforceOwnership {
		if err := auth.CheckJobOwnership(job, principal); err != nil {
			return err
		}
	}

	if err := s.jobs.Delete(ctx, job.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("job", nil)
		}
		return err
	}
	s.publish(ctx, events.EventJobDeleted, job)
	return nil
}

func (s *JobService) lookup(ctx context.Context, id string) (*domain.Job, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NewNotFound("job", nil)
	}
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", nil)
		}
		return nil, err
	}
	return job, nil
}

func (s *JobService) publish(ctx context.Context, eventType events.EventType, job *domain.Job) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		ResourceID: job.ID,
		ActorID:    job.UserID,
		Timestamp:  time.Now(),
		Payload:    events.JobChangedPayload{Title: job.Title, CompanyName: job.Company.Name},
	})
}
