package auth

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-board/internal/domain"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (s *stubUserRepo) Create(_ context.Context, _ *domain.User) error { return nil }
func (s *stubUserRepo) Update(_ context.Context, _ *domain.User) error { return nil }

func (s *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if user, ok := s.users[id]; ok {
		return user, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func newProtectedApp(tm *TokenManager, repo *stubUserRepo) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"error": de.Message})
		},
	})
	mw := NewAuthMiddleware(tm, repo)
	app.Get("/protected", mw.Handle, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewInternalError(nil)
		}
		return c.JSON(fiber.Map{"id": principal.ID()})
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	repo := &stubUserRepo{users: map[string]*domain.User{
		"user-1": {ID: "user-1", Email: "a@example.com"},
	}}
	app := newProtectedApp(tm, repo)

	validToken, _, err := tm.GenerateToken("user-1")
	require.NoError(t, err)
	deletedUserToken, _, err := tm.GenerateToken("user-gone")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "missing header", authHeader: "", wantStatus: 401},
		{name: "not bearer shaped", authHeader: "Basic abc123", wantStatus: 401},
		{name: "garbage token", authHeader: "Bearer invalid-token", wantStatus: 401},
		{name: "user deleted after issuance", authHeader: "Bearer " + deletedUserToken, wantStatus: 401},
		{name: "valid token", authHeader: "Bearer " + validToken, wantStatus: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestCheckJobOwnership(t *testing.T) {
	owner := &Principal{User: &domain.User{ID: "user-1"}}
	other := &Principal{User: &domain.User{ID: "user-2"}}
	job := &domain.Job{ID: "job-1", UserID: "user-1"}

	assert.NoError(t, CheckJobOwnership(job, owner))

	err := CheckJobOwnership(job, other)
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, 403, de.HTTPStatus)
}
