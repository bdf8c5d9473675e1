package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// JobsHandler manages job posting endpoints.
type JobsHandler struct {
	service *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{service: jobService}
}

// CreateJob POST /api/jobs.
func (h *JobsHandler) CreateJob(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	ownerID := req.UserID
	if h.service.OwnershipEnforced() {
		principal, ok := auth.PrincipalFromContext(c)
		if !ok || principal.User == nil {
			return apperrors.NewUnauthorized("authorization required")
		}
		ownerID = principal.ID()
	} else if ownerID == "" {
		return apperrors.NewValidationError("user_id required", nil)
	}

	input := service.JobCreateInput{
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		Company:     req.Company.ToDomain(),
		UserID:      ownerID,
	}
	job, err := h.service.Create(c.Context(), input)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewJobResponse(job))
}

// ListJobs GET /api/jobs.
func (h *JobsHandler) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.service.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobResponse(&jobs[i]))
	}
	return c.JSON(items)
}

// GetJob GET /api/jobs/:id.
func (h *JobsHandler) GetJob(c *fiber.Ctx) error {
	job, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobResponse(job))
}

// UpdateJob PUT /api/jobs/:id.
func (h *JobsHandler) UpdateJob(c *fiber.Ctx) error {
	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	principal, _ := auth.PrincipalFromContext(c)
	input := service.JobUpdateInput{
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
	}
	if req.Company != nil {
		company := req.Company.ToDomain()
		input.Company = &company
	}

	job, err := h.service.Update(c.Context(), principal, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobResponse(job))
}

// DeleteJob DELETE /api/jobs/:id.
func (h *JobsHandler) DeleteJob(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	if err := h.service.Delete(c.Context(), principal, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "job deleted"})
}
