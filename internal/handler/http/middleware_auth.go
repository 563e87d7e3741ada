package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/service"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/MKhiriev/go-course-api/models"
)

// basicAuth is an HTTP middleware that enforces HTTP Basic authentication.
//
// It parses the incoming "Authorization" header into an (email, password)
// pair, verifies the credentials via [service.UserService.Authenticate],
// and, on success, stores the authenticated user in the request context
// under [utils.IdentityCtxKey] before delegating to the next handler.
// There is no session or token: every request re-authenticates.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the
// following cases:
//   - The header is absent or cannot be parsed as Basic credentials.
//   - No account matches the supplied email.
//   - The password does not match the stored digest.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		email, password, ok := r.BasicAuth()
		if !ok {
			log.Error().Msg("basic credentials absent or malformed")
			writeUnauthorized(w, msgAuthHeaderNotFound)
			return
		}

		ctx := r.Context()
		identity, err := h.services.UserService.Authenticate(ctx, email, password)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrUserNotFound):
				log.Err(err).Str("email", email).Msg("unknown email")
				writeUnauthorized(w, msgNoUserFound)
				return
			case errors.Is(err, service.ErrWrongPassword):
				log.Err(err).Str("email", email).Msg("wrong password")
				writeUnauthorized(w, msgPasswordMismatch)
				return
			default:
				log.Err(err).Msg("error occurred during authentication")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		// Store the resolved identity in the context so that downstream
		// handlers can retrieve it without re-verifying credentials.
		ctx = context.WithValue(ctx, utils.IdentityCtxKey, identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, http.StatusUnauthorized)
}
