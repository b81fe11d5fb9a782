package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/journalist-portfolio-api/internal/config"
	"github.com/journalist-portfolio-api/internal/models"
	"github.com/journalist-portfolio-api/internal/repository"
)

// authService issues and validates signed session tokens. Sessions are
// ephemeral: revocations live in memory and die with the process.
type authService struct {
	users repository.UserRepository
	cfg   *config.AuthConfig
	log   zerolog.Logger
	now   func() time.Time

	mu          sync.Mutex
	revoked     map[string]time.Time // token ID -> expiry, for cleanup
	subscribers map[int]chan models.SessionEvent
	nextSubID   int
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepository, cfg *config.AuthConfig, log zerolog.Logger) AuthService {
	return &authService{
		users:       users,
		cfg:         cfg,
		log:         log.With().Str("service", "auth").Logger(),
		now:         time.Now,
		revoked:     make(map[string]time.Time),
		subscribers: make(map[int]chan models.SessionEvent),
	}
}

// EnsureAdmin creates the bootstrap admin account from configuration when
// no users exist yet. A no-op when unconfigured or already provisioned.
func (s *authService) EnsureAdmin(ctx context.Context) error {
	if s.cfg.AdminEmail == "" {
		return nil
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(s.cfg.AdminEmail),
		FullName:     s.cfg.AdminName,
		PasswordHash: string(hash),
		Role:         "admin",
		CreatedAt:    s.now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	s.log.Info().Str("email", user.Email).Msg("Bootstrap admin account created")
	return nil
}

// SignIn verifies credentials and issues a session token.
func (s *authService) SignIn(ctx context.Context, email, password string) (string, *models.Session, error) {
	if s.cfg.SessionSecret == "" {
		return "", nil, models.ErrNotConfigured
	}

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, models.ErrNotConfigured) {
			return "", nil, models.ErrNotConfigured
		}
		return "", nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return "", nil, models.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, models.ErrInvalidCredentials
	}

	now := s.now()
	expiresAt := now.Add(s.cfg.SessionTTL)
	claims := sessionClaims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}

	session := &models.Session{
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: expiresAt,
	}

	s.log.Info().Str("email", user.Email).Msg("Session opened")
	s.publish(models.SessionEvent{SignedIn: true, Email: user.Email})

	return token, session, nil
}

// Session validates a token and returns the session it represents.
func (s *authService) Session(ctx context.Context, token string) (*models.Session, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, err
	}

	return &models.Session{
		UserID:    claims.Subject,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// SignOut revokes a session token. Revoking an already-invalid token is
// not an error; the session is gone either way.
func (s *authService) SignOut(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil
	}

	s.mu.Lock()
	s.revoked[claims.ID] = claims.ExpiresAt.Time
	for id, exp := range s.revoked {
		if exp.Before(s.now()) {
			delete(s.revoked, id)
		}
	}
	s.mu.Unlock()

	s.log.Info().Str("email", claims.Email).Msg("Session closed")
	s.publish(models.SessionEvent{SignedIn: false, Email: claims.Email})
	return nil
}

// Subscribe registers a session-change listener. The returned function
// unsubscribes and closes the channel; events are dropped rather than
// blocking a slow listener.
func (s *authService) Subscribe() (<-chan models.SessionEvent, func()) {
	ch := make(chan models.SessionEvent, 8)

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch
	s.mu.Unlock()

	unsubscribe := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, unsubscribe
}

func (s *authService) publish(event models.SessionEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

func (s *authService) parseToken(token string) (*sessionClaims, error) {
	if s.cfg.SessionSecret == "" {
		return nil, models.ErrNotConfigured
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.SessionSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, models.ErrInvalidToken
	}

	s.mu.Lock()
	_, revoked := s.revoked[claims.ID]
	s.mu.Unlock()
	if revoked {
		return nil, models.ErrInvalidToken
	}

	return claims, nil
}
