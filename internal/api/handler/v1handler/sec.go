package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"scanguard/internal/config"
	"scanguard/pkg/domain"
	"scanguard/pkg/serrors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

// IdentityKey is the context key under which the authenticated caller is stored.
const IdentityKey CtxKey = "Identity"

// Claims are the JWT claims the API accepts. The subject is the user ID.
type Claims struct {
	jwt.RegisteredClaims

	// Email is optional and recorded as the actor of halts when present.
	Email string `json:"email,omitempty"`
}

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the provided application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates requests carrying an RS256 bearer token.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		publicKey: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Authenticate verifies token and returns ctx carrying the caller's identity.
func (s *SecHandler) Authenticate(ctx context.Context, token string) (context.Context, error) {
	var claims Claims
	if _, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, IdentityKey, domain.Identity{
		UserID: domain.UserID(userID),
		Email:  claims.Email,
	}), nil
}

// Middleware rejects requests without a valid bearer token.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			WriteError(r.Context(), w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.Authenticate(r.Context(), strings.TrimSpace(token))
		if err != nil {
			WriteError(r.Context(), w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentityFromContext returns the caller stored by the security middleware.
func GetIdentityFromContext(ctx context.Context) domain.Identity {
	identity, _ := ctx.Value(IdentityKey).(domain.Identity)

	return identity
}
