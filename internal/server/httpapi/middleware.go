package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/okunev/musicbox/internal/common"
	"github.com/okunev/musicbox/internal/server/sessions"
)

type ctxKey string

const emailKey ctxKey = "email"

// EmailFromContext returns the authenticated account email placed in the
// request context by the authenticate middleware.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok
}

func tokenFromRequest(r *http.Request) sessions.Token {
	return sessions.Token(r.Header.Get(common.SessionTokenHeaderName))
}

// requireToken gates a route on the presence of the session token header
// without checking the token against the session store.
func (h *Handlers) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tokenFromRequest(r) == "" {
			respondError(w, http.StatusBadRequest, "Session token missing.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authenticate gates a route on a full session validation and stores the
// owning email in the request context.
func (h *Handlers) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, err := h.sessions.Validate(r.Context(), tokenFromRequest(r))
		if err != nil {
			switch {
			case errors.Is(err, common.ErrMissingToken):
				respondError(w, http.StatusBadRequest, "Session token missing.")
			case errors.Is(err, common.ErrUnknownToken), errors.Is(err, common.ErrTokenExpired):
				respondError(w, http.StatusUnauthorized, "Invalid session token.")
			default:
				h.logger.Error(r.Context(), "session validation failed", "error", err.Error())
				respondError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), emailKey, email)))
	})
}
