package application

import (
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainerrors "toolhub/contexts/identity-access/token-service/domain/errors"
	"toolhub/contexts/identity-access/token-service/ports"
)

type Service struct {
	Secret   []byte
	TokenTTL time.Duration
	Clock    ports.Clock
	Logger   *slog.Logger
}

type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verify validates the raw Authorization header value and extracts the
// authenticated claims. Only the token portion of "<scheme> <token>" is used;
// the scheme must be Bearer.
func (s Service) Verify(authorizationHeader string) (ports.Claims, error) {
	header := strings.TrimSpace(authorizationHeader)
	if header == "" {
		return ports.Claims{}, domainerrors.ErrMissingCredential
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return ports.Claims{}, domainerrors.ErrInvalidCredential
	}

	var claims accessClaims
	token, err := jwt.ParseWithClaims(
		strings.TrimSpace(parts[1]),
		&claims,
		func(*jwt.Token) (any, error) { return s.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid || claims.Email == "" {
		resolveLogger(s.Logger).Debug("credential rejected",
			"event", "token_verify_rejected",
			"module", "identity-access/token-service",
			"layer", "application",
		)
		return ports.Claims{}, domainerrors.ErrInvalidCredential
	}

	out := ports.Claims{Email: claims.Email}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpireAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// Authorize enforces the ownership check: the caller-declared email must match
// the verified claim exactly, case-sensitive.
func (s Service) Authorize(claims ports.Claims, declaredEmail string) error {
	if claims.Email == "" {
		return domainerrors.ErrInvalidCredential
	}
	if claims.Email != declaredEmail {
		return domainerrors.ErrOwnershipMismatch
	}
	return nil
}

// Issue signs a fresh access token for the given email.
func (s Service) Issue(email string) (ports.IssuedToken, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return ports.IssuedToken{}, domainerrors.ErrInvalidRequest
	}

	now := s.now()
	expiresAt := now.Add(s.tokenTTL())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return ports.IssuedToken{}, err
	}
	return ports.IssuedToken{AccessToken: signed, ExpiresAt: expiresAt}, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func (s Service) tokenTTL() time.Duration {
	if s.TokenTTL <= 0 {
		return 24 * time.Hour
	}
	return s.TokenTTL
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
