// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/MKhiriev/go-course-api/models"
	"github.com/go-chi/chi/v5"
)

// listCourses handles GET /api/courses. No authentication required.
func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.services.CourseService.ListCourses(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, courses, http.StatusOK)
}

// getCourse handles GET /api/courses/{courseID}. No authentication required.
// An unparseable or unknown ID is reported as 404.
func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := courseIDFromRequest(r)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("unparseable course id")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgCourseNotFound}, http.StatusNotFound)
		return
	}

	course, err := h.services.CourseService.GetCourse(r.Context(), courseID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, course, http.StatusOK)
}

// createCourse handles POST /api/courses.
//
// The owner of the new course is the authenticated identity; any owner
// value in the payload is ignored. On success it responds 201 with a
// Location header pointing at the new resource and an empty body.
func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context on a protected route")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var newCourse models.NewCourse
	if err := json.NewDecoder(r.Body).Decode(&newCourse); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		http.Error(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	createdCourse, err := h.services.CourseService.CreateCourse(ctx, newCourse, identity.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	log.Debug().Int64("id", createdCourse.ID).Int64("ownerID", identity.ID).Msg("course successfully created")

	w.Header().Set("Location", fmt.Sprintf("/api/courses/%d", createdCourse.ID))
	w.WriteHeader(http.StatusCreated)
}

// updateCourse handles PUT /api/courses/{courseID}.
//
// Responds 400 with the violation list when title or description is missing,
// 404 when the course does not exist, 403 when the authenticated user is not
// the owner, and 204 with no body on success.
func (h *Handler) updateCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context on a protected route")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("unparseable course id")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgCourseNotFound}, http.StatusNotFound)
		return
	}

	var update models.CourseUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg(msgInvalidJSON)
		http.Error(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.CourseService.UpdateCourse(ctx, courseID, update, identity.ID); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// deleteCourse handles DELETE /api/courses/{courseID}.
//
// Responds 404 when the course does not exist, 403 when the authenticated
// user is not the owner, and 204 with no body on success.
func (h *Handler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in context on a protected route")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	courseID, err := courseIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("unparseable course id")
		utils.WriteJSON(w, models.ErrorResponse{Error: msgCourseNotFound}, http.StatusNotFound)
		return
	}

	if err := h.services.CourseService.DeleteCourse(ctx, courseID, identity.ID); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// courseIDFromRequest extracts and parses the {courseID} URL parameter.
func courseIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "courseID"), 10, 64)
}
