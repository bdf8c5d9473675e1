package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
)

type fakeUserRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
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

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(_ events.EventType, _ events.EventHandler) {}

func (d *recordingDispatcher) recorded() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event{}, d.events...)
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:           "test-secret",
		AccessTokenTTLHours: 72,
		BcryptCost:          4, // bcrypt.MinCost keeps tests fast
	}
}

func signupInput(email string) SignupInput {
	return SignupInput{
		Name:             "Test User",
		Email:            email,
		Password:         "123456",
		PhoneNumber:      "0771234567",
		Gender:           "Female",
		DateOfBirth:      time.Date(1998, 1, 1, 0, 0, 0, 0, time.UTC),
		MembershipStatus: "active",
	}
}

func TestSignupHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewAuthService(testAuthConfig(), repo, dispatcher)

	user, token, exp, err := svc.Signup(context.Background(), signupInput("a@example.com"))
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))
	assert.NotEqual(t, "123456", user.PasswordHash)

	other, _, _, err := svc.Signup(context.Background(), signupInput("b@example.com"))
	require.NoError(t, err)
	assert.NotEqual(t, user.PasswordHash, other.PasswordHash,
		"identical passwords must produce different digests")

	recorded := dispatcher.recorded()
	require.Len(t, recorded, 2)
	assert.Equal(t, events.EventUserRegistered, recorded[0].Type)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)

	_, _, _, err := svc.Signup(context.Background(), signupInput("a@example.com"))
	require.NoError(t, err)

	_, _, _, err = svc.Signup(context.Background(), signupInput("a@example.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupDuplicateEmailFromConstraint(t *testing.T) {
	// Simulates losing the check-then-create race: the pre-check passes but
	// the store's unique constraint rejects the insert.
	repo := newFakeUserRepo()
	repo.createErr = repository.ErrDuplicateEmail
	svc := NewAuthService(testAuthConfig(), repo, nil)

	_, _, _, err := svc.Signup(context.Background(), signupInput("a@example.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), repo, nil)

	created, _, _, err := svc.Signup(context.Background(), signupInput("a@example.com"))
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, token, _, err := svc.Login(context.Background(), "a@example.com", "123456")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)

		subject, err := svc.TokenManager().ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, created.ID, subject)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), "a@example.com", "wrong-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "123456")
		assert.ErrorIs(t, err, ErrInvalidCredentials,
			"unknown account and wrong password must be indistinguishable")
	})
}
