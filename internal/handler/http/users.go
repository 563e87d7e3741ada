package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/MKhiriev/go-course-api/models"
)

// createUser handles POST /api/users.
//
// On success it responds 201 with a Location header pointing at the site
// root and an empty body. Validation failures, including an already-taken
// email address, come back as 400 with the full list of violation messages.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var newUser models.NewUser
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		http.Error(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.UserService.Register(ctx, newUser)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.ID).Msg("user successfully registered")

	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
}

// getCurrentUser handles GET /api/users.
//
// It returns the authenticated user's own record. The password hash and
// creation timestamp are excluded from the payload by the model's JSON tags.
func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		log.Error().Msg("no identity in context on a protected route")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, identity, http.StatusOK)
}
