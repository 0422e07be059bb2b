package httpx

import (
	"net/http"

	"github.com/parkside-labs/roomgrid/pkg/jwtx"
)

// RequireRole rejects callers whose token does not carry the given role.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := claimsFromCtx(r)
			if claims == nil || claims.Role != role {
				writeBearerRoleError(w, role)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireVerified rejects callers whose token was issued for an account that
// never completed contact verification. The booking service re-checks this
// against the store; the middleware just fails fast.
func RequireVerified() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := claimsFromCtx(r)
			if claims == nil || !claims.Verified {
				w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope", error_description="account not verified"`)
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte("account not verified"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func claimsFromCtx(r *http.Request) *jwtx.Claims {
	if c, ok := r.Context().Value(CtxKeyClaims).(*jwtx.Claims); ok {
		return c
	}
	return nil
}

// RFC 6750-style error response for missing roles.
func writeBearerRoleError(w http.ResponseWriter, role string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope", scope="`+role+`"`)
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("insufficient_scope"))
}
