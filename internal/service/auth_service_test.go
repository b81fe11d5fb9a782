package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/journalist-portfolio-api/internal/config"
	"github.com/journalist-portfolio-api/internal/mocks"
	"github.com/journalist-portfolio-api/internal/models"
	"github.com/journalist-portfolio-api/internal/service"
)

const testPassword = "segretissimo"

func newAuthService(t *testing.T) (service.AuthService, *mocks.MockUserRepository) {
	t.Helper()
	users := mocks.NewMockUserRepository()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	users.Users["anna@example.com"] = &models.User{
		ID:           "user-1",
		Email:        "anna@example.com",
		FullName:     "Anna Rossi",
		PasswordHash: string(hash),
		Role:         "admin",
		CreatedAt:    time.Now(),
	}

	cfg := &config.AuthConfig{
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
	}
	return service.NewAuthService(users, cfg, zerolog.Nop()), users
}

func TestSignInAndSession(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	token, session, err := svc.SignIn(ctx, "anna@example.com", testPassword)
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if session.Email != "anna@example.com" || session.UserID != "user-1" {
		t.Errorf("session = %+v", session)
	}
	if !session.ExpiresAt.After(time.Now()) {
		t.Error("session already expired")
	}

	got, err := svc.Session(ctx, token)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if got.Email != session.Email || got.UserID != session.UserID {
		t.Errorf("round-tripped session = %+v, want %+v", got, session)
	}
}

func TestSignInNormalizesEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, session, err := svc.SignIn(context.Background(), "  Anna@Example.com ", testPassword)
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if session.Email != "anna@example.com" {
		t.Errorf("email = %q", session.Email)
	}
}

func TestSignInInvalidCredentials(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "anna@example.com", "sbagliata"},
		{"unknown user", "nessuno@example.com", testPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.SignIn(ctx, tt.email, tt.password)
			if !errors.Is(err, models.ErrInvalidCredentials) {
				t.Errorf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestSignInWithoutSecret(t *testing.T) {
	users := mocks.NewMockUserRepository()
	svc := service.NewAuthService(users, &config.AuthConfig{}, zerolog.Nop())

	_, _, err := svc.SignIn(context.Background(), "anna@example.com", testPassword)
	if !errors.Is(err, models.ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestSignOutRevokesToken(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	token, _, err := svc.SignIn(ctx, "anna@example.com", testPassword)
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}

	if err := svc.SignOut(ctx, token); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if _, err := svc.Session(ctx, token); !errors.Is(err, models.ErrInvalidToken) {
		t.Errorf("revoked token err = %v, want ErrInvalidToken", err)
	}

	// Signing out an invalid token is not an error.
	if err := svc.SignOut(ctx, "non-un-token"); err != nil {
		t.Errorf("sign out garbage: %v", err)
	}
}

func TestSessionInvalidToken(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Session(ctx, token); !errors.Is(err, models.ErrInvalidToken) {
			t.Errorf("Session(%q) err = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestSessionWrongSigningKey(t *testing.T) {
	svc, users := newAuthService(t)
	other := service.NewAuthService(users, &config.AuthConfig{
		SessionSecret: "another-secret",
		SessionTTL:    time.Hour,
	}, zerolog.Nop())

	token, _, err := other.SignIn(context.Background(), "anna@example.com", testPassword)
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if _, err := svc.Session(context.Background(), token); !errors.Is(err, models.ErrInvalidToken) {
		t.Errorf("foreign token err = %v, want ErrInvalidToken", err)
	}
}

func TestSubscribeReceivesEvents(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	events, unsubscribe := svc.Subscribe()
	defer unsubscribe()

	token, _, err := svc.SignIn(ctx, "anna@example.com", testPassword)
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}

	select {
	case ev := <-events:
		if !ev.SignedIn || ev.Email != "anna@example.com" {
			t.Errorf("event = %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no sign-in event received")
	}

	if err := svc.SignOut(ctx, token); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	select {
	case ev := <-events:
		if ev.SignedIn {
			t.Errorf("event = %+v, want sign-out", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no sign-out event received")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	svc, _ := newAuthService(t)

	events, unsubscribe := svc.Subscribe()
	unsubscribe()
	unsubscribe() // safe to call twice

	if _, open := <-events; open {
		t.Error("channel still open after unsubscribe")
	}

	// Publishing after unsubscribe must not panic.
	if _, _, err := svc.SignIn(context.Background(), "anna@example.com", testPassword); err != nil {
		t.Fatalf("sign in: %v", err)
	}
}

func TestEnsureAdmin(t *testing.T) {
	t.Run("creates bootstrap account", func(t *testing.T) {
		users := mocks.NewMockUserRepository()
		svc := service.NewAuthService(users, &config.AuthConfig{
			SessionSecret: "test-secret",
			SessionTTL:    time.Hour,
			AdminEmail:    "Redazione@Example.com",
			AdminPassword: "password-iniziale",
			AdminName:     "Redazione",
		}, zerolog.Nop())

		if err := svc.EnsureAdmin(context.Background()); err != nil {
			t.Fatalf("ensure admin: %v", err)
		}

		user := users.Users["redazione@example.com"]
		if user == nil {
			t.Fatal("admin account not created (email should be lowercased)")
		}
		if user.Role != "admin" {
			t.Errorf("role = %q", user.Role)
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password-iniziale")) != nil {
			t.Error("stored hash does not match the configured password")
		}

		// The bootstrap credentials must work for sign-in.
		if _, _, err := svc.SignIn(context.Background(), "redazione@example.com", "password-iniziale"); err != nil {
			t.Errorf("sign in as bootstrap admin: %v", err)
		}
	})

	t.Run("skips when users exist", func(t *testing.T) {
		_, users := newAuthService(t)
		svc := service.NewAuthService(users, &config.AuthConfig{
			SessionSecret: "test-secret",
			SessionTTL:    time.Hour,
			AdminEmail:    "redazione@example.com",
			AdminPassword: "password-iniziale",
		}, zerolog.Nop())
		if err := svc.EnsureAdmin(context.Background()); err != nil {
			t.Fatalf("ensure admin: %v", err)
		}
		if len(users.Users) != 1 {
			t.Errorf("user count = %d, want 1", len(users.Users))
		}
	})

	t.Run("no-op without configuration", func(t *testing.T) {
		users := mocks.NewMockUserRepository()
		svc := service.NewAuthService(users, &config.AuthConfig{}, zerolog.Nop())
		if err := svc.EnsureAdmin(context.Background()); err != nil {
			t.Fatalf("ensure admin: %v", err)
		}
		if len(users.Users) != 0 {
			t.Errorf("user count = %d, want 0", len(users.Users))
		}
	})
}
