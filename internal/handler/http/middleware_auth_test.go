package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-course-api/internal/service"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/MKhiriev/go-course-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nextSpy records whether the wrapped handler ran and what identity it saw.
type nextSpy struct {
	called   bool
	identity models.User
	hadID    bool
}

func (n *nextSpy) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.called = true
		n.identity, n.hadID = utils.GetIdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestBasicAuth_MissingHeader(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rr := httptest.NewRecorder()

	h.basicAuth(spy.handler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Auth header was not found."}`, rr.Body.String())
	assert.False(t, spy.called, "handler must not run without credentials")
}

func TestBasicAuth_MalformedHeader(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rr := httptest.NewRecorder()

	h.basicAuth(spy.handler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Auth header was not found."}`, rr.Body.String())
	assert.False(t, spy.called)
}

func TestBasicAuth_UnknownUser(t *testing.T) {
	users := &stubUserService{
		authenticateFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	h := newTestHandler(t, users, nil)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.SetBasicAuth("missing@x.com", "secret")
	rr := httptest.NewRecorder()

	h.basicAuth(spy.handler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"No user was found."}`, rr.Body.String())
	assert.False(t, spy.called)
}

func TestBasicAuth_WrongPassword(t *testing.T) {
	users := &stubUserService{
		authenticateFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}
	h := newTestHandler(t, users, nil)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.SetBasicAuth("jo@x.com", "wrong-guess")
	rr := httptest.NewRecorder()

	h.basicAuth(spy.handler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Password did not match."}`, rr.Body.String())
	assert.False(t, spy.called)
}

func TestBasicAuth_UnexpectedError(t *testing.T) {
	users := &stubUserService{
		authenticateFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, errors.New("connection reset")
		},
	}
	h := newTestHandler(t, users, nil)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.SetBasicAuth("jo@x.com", "secret")
	rr := httptest.NewRecorder()

	h.basicAuth(spy.handler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.False(t, spy.called)
}

func TestBasicAuth_Success(t *testing.T) {
	users := &stubUserService{
		authenticateFn: func(_ context.Context, email, password string) (models.User, error) {
			assert.Equal(t, "jo@x.com", email)
			assert.Equal(t, "secret", password)
			return models.User{ID: 7, EmailAddress: email}, nil
		},
	}
	h := newTestHandler(t, users, nil)
	spy := &nextSpy{}

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.SetBasicAuth("jo@x.com", "secret")
	rr := httptest.NewRecorder()

	h.basicAuth(spy.handler()).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, spy.called)
	assert.True(t, spy.hadID, "identity must be stored in the request context")
	assert.Equal(t, int64(7), spy.identity.ID)
}
