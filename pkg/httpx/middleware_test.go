package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/parkside-labs/roomgrid/pkg/cryptox"
	"github.com/parkside-labs/roomgrid/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestKeys(t *testing.T) (*jwtx.EdDSASigner, *jwtx.EdDSAVerifier) {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA("test-key", pemKey)
	require.NoError(t, err)

	return signer, jwtx.NewVerifierEdDSA("test-key", signer.Public(), "test-issuer")
}

func mintToken(t *testing.T, signer *jwtx.EdDSASigner, role string, verified bool) string {
	t.Helper()

	claims := jwtx.NewAccessClaims("user-1", "alice", "Alice", role, verified,
		"test-issuer", time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	return token
}

// echoHandler records that the request made it through the middleware chain.
func echoHandler(hit *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hit = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	var hit bool
	h := Chain(echoHandler(&hit), mw("first"), mw("second"), mw("third"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, hit)
	require.Equal(t, []string{"first", "second", "third"}, order)
}

func TestAuthnMiddleware(t *testing.T) {
	signer, verifier := newTestKeys(t)

	t.Run("valid token populates context", func(t *testing.T) {
		var gotUserID string
		h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserID = UserIDFromCtx(r.Context())
			w.WriteHeader(http.StatusOK)
		}), AuthnMiddleware(verifier))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, signer, "member", true))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-1", gotUserID)
	})

	t.Run("missing header", func(t *testing.T) {
		var hit bool
		h := Chain(echoHandler(&hit), AuthnMiddleware(verifier))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.False(t, hit)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("malformed scheme", func(t *testing.T) {
		var hit bool
		h := Chain(echoHandler(&hit), AuthnMiddleware(verifier))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.False(t, hit)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		var hit bool
		h := Chain(echoHandler(&hit), AuthnMiddleware(verifier))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.False(t, hit)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := jwtx.NewAccessClaims("user-1", "alice", "Alice", "member", true,
			"test-issuer", -time.Minute, time.Now().UTC().Add(-time.Hour))
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		var hit bool
		h := Chain(echoHandler(&hit), AuthnMiddleware(verifier))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.False(t, hit)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	signer, verifier := newTestKeys(t)

	run := func(t *testing.T, role string) *httptest.ResponseRecorder {
		var hit bool
		h := Chain(echoHandler(&hit), AuthnMiddleware(verifier), RequireRole("admin"))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, signer, role, true))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("admin allowed", func(t *testing.T) {
		require.Equal(t, http.StatusOK, run(t, "admin").Code)
	})

	t.Run("member forbidden", func(t *testing.T) {
		rec := run(t, "member")
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "insufficient_scope")
	})

	t.Run("no claims forbidden", func(t *testing.T) {
		var hit bool
		h := Chain(echoHandler(&hit), RequireRole("admin"))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.False(t, hit)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRequireVerified(t *testing.T) {
	signer, verifier := newTestKeys(t)

	run := func(t *testing.T, verified bool) *httptest.ResponseRecorder {
		var hit bool
		h := Chain(echoHandler(&hit), AuthnMiddleware(verifier), RequireVerified())

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, signer, "member", verified))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("verified allowed", func(t *testing.T) {
		require.Equal(t, http.StatusOK, run(t, true).Code)
	})

	t.Run("unverified forbidden", func(t *testing.T) {
		require.Equal(t, http.StatusForbidden, run(t, false).Code)
	})
}
