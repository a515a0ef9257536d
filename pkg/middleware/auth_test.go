package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sak2803shi/RentalHub/pkg/jwtutil"
	"github.com/Sak2803shi/RentalHub/pkg/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthTest(t *testing.T) (*AuthMiddleware, *jwtutil.Manager, *session.Store) {
	t.Helper()

	mr := miniredis.RunT(t)
	sessions := session.NewStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	jwtMgr := jwtutil.NewManager("test-secret", time.Hour)
	return NewAuthMiddleware(jwtMgr, sessions, zap.NewNop()), jwtMgr, sessions
}

func echoIdentity(t *testing.T, captured *Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromContext(r.Context())
		require.True(t, ok)
		*captured = id
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequirePassesValidToken(t *testing.T) {
	am, jwtMgr, sessions := newAuthTest(t)

	token, err := jwtMgr.Generate(7, "cara@example.com", "CUSTOMER")
	require.NoError(t, err)
	require.NoError(t, sessions.Save(context.Background(), 7, token, time.Hour))

	var got Identity
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	am.Require(echoIdentity(t, &got)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "cara@example.com", got.Email)
	assert.Equal(t, "CUSTOMER", got.Role)
}

func TestRequireRejectsMissingHeader(t *testing.T) {
	am, _, _ := newAuthTest(t)

	rec := httptest.NewRecorder()
	am.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRejectsRevokedSession(t *testing.T) {
	am, jwtMgr, sessions := newAuthTest(t)
	ctx := context.Background()

	token, err := jwtMgr.Generate(7, "cara@example.com", "CUSTOMER")
	require.NoError(t, err)
	require.NoError(t, sessions.Save(ctx, 7, token, time.Hour))
	require.NoError(t, sessions.Revoke(ctx, 7))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	am.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleGates(t *testing.T) {
	am, jwtMgr, sessions := newAuthTest(t)
	ctx := context.Background()

	token, err := jwtMgr.Generate(7, "cara@example.com", "CUSTOMER")
	require.NoError(t, err)
	require.NoError(t, sessions.Save(ctx, 7, token, time.Hour))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	am.RequireRole("ADMIN")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTokenFromContextRoundTrip(t *testing.T) {
	am, jwtMgr, sessions := newAuthTest(t)

	token, err := jwtMgr.Generate(7, "cara@example.com", "CUSTOMER")
	require.NoError(t, err)
	require.NoError(t, sessions.Save(context.Background(), 7, token, time.Hour))

	var forwarded string
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	am.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forwarded = TokenFromContext(r.Context())
	})).ServeHTTP(rec, req)

	assert.Equal(t, token, forwarded)
}
