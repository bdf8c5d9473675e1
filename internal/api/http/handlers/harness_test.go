package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/job-board/internal/api/http"
	"github.com/spec-kit/job-board/internal/api/http/handlers"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/observability"
	"github.com/spec-kit/job-board/internal/repository"
	"github.com/spec-kit/job-board/internal/service"
)

type fakeUserRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	f.byID[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	f.byID[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.byID[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.byID {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeJobRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Job
}

func (f *fakeJobRepo) Create(_ context.Context, job *domain.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	job.ID = uuid.NewString()
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	clone := *job
	f.byID[job.ID] = &clone
	return nil
}

func (f *fakeJobRepo) Update(_ context.Context, job *domain.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[job.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *job
	f.byID[job.ID] = &clone
	return nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (*domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if job, ok := f.byID[id]; ok {
		clone := *job
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeJobRepo) List(_ context.Context) ([]domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	jobs := make([]domain.Job, 0, len(f.byID))
	for _, job := range f.byID {
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// newTestApp wires the full HTTP stack against in-memory repositories.
func newTestApp(t *testing.T, enforceOwnership bool) *fiber.App {
	t.Helper()

	userRepo := &fakeUserRepo{byID: make(map[string]*domain.User)}
	jobRepo := &fakeJobRepo{byID: make(map[string]*domain.Job)}
	dispatcher := events.NewInMemoryDispatcher()

	authCfg := config.AuthConfig{
		JWTSecret:           "test-secret",
		AccessTokenTTLHours: 72,
		BcryptCost:          4,
		EnforceOwnership:    enforceOwnership,
	}
	authService := service.NewAuthService(authCfg, userRepo, dispatcher)
	jobService := service.NewJobService(jobRepo, dispatcher, enforceOwnership)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	logger := zap.NewNop()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, observability.NewMetrics(), 5*time.Second)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:           handlers.NewHealthHandler("test", "test", nil, nil),
		Users:            handlers.NewUsersHandler(authService),
		Jobs:             handlers.NewJobsHandler(jobService),
		AuthMiddleware:   authMiddleware,
		EnforceOwnership: enforceOwnership,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	decoded := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func signupPayload(email string) map[string]any {
	return map[string]any{
		"name":              "Test User",
		"email":             email,
		"password":          "123456",
		"phone_number":      "0771234567",
		"gender":            "Female",
		"date_of_birth":     "1998-01-01",
		"membership_status": "active",
	}
}

func jobPayload() map[string]any {
	return map[string]any{
		"title":       "Backend Engineer",
		"type":        "Full-time",
		"description": "Build APIs",
		"company": map[string]any{
			"name":         "CompanyX",
			"contactEmail": "hr@companyx.test",
			"contactPhone": "0771234567",
		},
	}
}

func signupUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp, body := doJSON(t, app, "POST", "/api/users/signup", "", signupPayload(email))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}
