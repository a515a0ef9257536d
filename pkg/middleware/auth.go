package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Sak2803shi/RentalHub/pkg/jwtutil"
	"github.com/Sak2803shi/RentalHub/pkg/response"
	"github.com/Sak2803shi/RentalHub/pkg/session"

	"go.uber.org/zap"
)

type ctxKey int

const (
	ctxIdentity ctxKey = iota
	ctxToken
)

// Identity is the authenticated caller, threaded explicitly through
// authorization checks instead of a global security context.
type Identity struct {
	UserID int64
	Email  string
	Role   string
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxIdentity).(Identity)
	return id, ok
}

// TokenFromContext returns the raw bearer token of the current request,
// used when forwarding calls to another service.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(ctxToken).(string)
	return token
}

type AuthMiddleware struct {
	jwt      *jwtutil.Manager
	sessions *session.Store
	logger   *zap.Logger
}

func NewAuthMiddleware(jwt *jwtutil.Manager, sessions *session.Store, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwt, sessions: sessions, logger: logger}
}

// Require verifies the bearer token and places the caller identity into
// the request context. When a session store is configured the token must
// also match the stored session (revocation check).
func (am *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, ok := am.authenticate(w, r)
		if !ok {
			return
		}

		ctx := context.WithValue(r.Context(), ctxIdentity, Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		ctx = context.WithValue(ctx, ctxToken, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole is Require plus a role gate.
func (am *AuthMiddleware) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return am.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, _ := IdentityFromContext(r.Context())
			for _, role := range roles {
				if id.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Error(w, r, http.StatusForbidden, "ACCESS_DENIED",
				"You are not allowed to perform this action")
		}))
	}
}

func (am *AuthMiddleware) authenticate(w http.ResponseWriter, r *http.Request) (string, *jwtutil.Claims, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		response.Error(w, r, http.StatusUnauthorized, "ACCESS_DENIED", "missing bearer token")
		return "", nil, false
	}
	token := strings.TrimPrefix(header, "Bearer ")

	claims, err := am.jwt.Verify(token)
	if err != nil {
		response.Error(w, r, http.StatusUnauthorized, "ACCESS_DENIED", "invalid or expired token")
		return "", nil, false
	}

	if am.sessions != nil {
		valid, err := am.sessions.Valid(r.Context(), claims.UserID, token)
		if err != nil {
			am.logger.Warn("session lookup failed, falling back to token claims",
				zap.Int64("user_id", claims.UserID),
				zap.Error(err))
		} else if !valid {
			response.Error(w, r, http.StatusUnauthorized, "ACCESS_DENIED", "session expired or revoked")
			return "", nil, false
		}
	}

	return token, claims, true
}
