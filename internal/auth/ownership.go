package auth

import (
	"github.com/spec-kit/job-board/internal/domain"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// CheckJobOwnership compares a job's recorded owner against the authenticated
// identity. Callers must resolve the job first: existence is always decided
// before ownership, so a missing job can never produce a forbidden response.
func CheckJobOwnership(job *domain.Job, principal *Principal) error {
	if job.UserID != principal.ID() {
		return apperrors.NewForbidden("not permitted to modify this job")
	}
	return nil
}
