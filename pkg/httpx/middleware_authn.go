package httpx

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/assignbox/pkg/jwtx"
	"github.com/aussiebroadwan/assignbox/pkg/slogx"
)

// CookieAuthn verifies the session token carried in the named cookie and
// injects its claims into the request context. Requests without a valid
// token are answered with 401 and never reach next.
func CookieAuthn(v jwtx.Verifier, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				WriteMessage(w, http.StatusUnauthorized, "Unauthenticated")
				return
			}

			claims, err := v.Verify(cookie.Value)
			if err != nil {
				if errors.Is(err, jwtx.ErrExpired) {
					log.Debug("session token expired", "err", err)
				} else {
					log.Warn("session token verify failed", "err", err)
				}
				WriteMessage(w, http.StatusUnauthorized, "Unauthenticated")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(ctx, claims)))
		})
	}
}
