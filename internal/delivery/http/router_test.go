package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lenglogs/internal/delivery/http/handler"
	"lenglogs/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestRouter() *Router {
	return NewRouter(Handlers{
		Health:     &handler.HealthHandler{},
		Auth:       &handler.AuthHandler{},
		Dashboard:  &handler.DashboardHandler{},
		Form:       &handler.FormHandler{},
		Submission: &handler.SubmissionHandler{},
		Patient:    &handler.PatientHandler{},
		Facility:   &handler.FacilityHandler{},
		AuditLog:   &handler.AuditLogHandler{},
	}, Middlewares{
		Auth:    &middleware.AuthMiddleware{},
		Profile: &middleware.ProfileMiddleware{},
		CORS:    middleware.NewCORSMiddleware(""),
		Logging: middleware.NewLoggingMiddleware(quietLogger()),
	})
}

func setupRouter() *mux.Router {
	return newTestRouter().Setup()
}

func TestRouter_Routes(t *testing.T) {
	router := setupRouter()
	id := "7f1d8a3e-2b4c-4d5e-8f90-123456789abc"

	tests := []struct {
		method   string
		path     string
		template string
	}{
		{http.MethodGet, "/api/v1/health", "/api/v1/health"},
		{http.MethodPost, "/api/v1/auth/sign-in", "/api/v1/auth/sign-in"},
		{http.MethodGet, "/api/v1/auth/session", "/api/v1/auth/session"},
		{http.MethodGet, "/api/v1/patients/export", "/api/v1/patients/export"},
		{http.MethodGet, "/api/v1/patients/" + id, "/api/v1/patients/" + uuidVar},
		{http.MethodPut, "/api/v1/patients/" + id, "/api/v1/patients/" + uuidVar},
		{http.MethodPost, "/api/v1/patients/" + id + "/reactivate", "/api/v1/patients/" + uuidVar + "/reactivate"},
		{http.MethodPost, "/api/v1/forms", "/api/v1/forms"},
		{http.MethodPost, "/api/v1/forms/" + id + "/submissions", "/api/v1/forms/" + uuidVar + "/submissions"},
		{http.MethodGet, "/api/v1/forms/" + id + "/summary", "/api/v1/forms/" + uuidVar + "/summary"},
		{http.MethodGet, "/api/v1/submissions/" + id, "/api/v1/submissions/" + uuidVar},
		{http.MethodPost, "/api/v1/facility/staff", "/api/v1/facility/staff"},
		{http.MethodGet, "/api/v1/audit-logs", "/api/v1/audit-logs"},
		{http.MethodGet, "/api/v1/navigation", "/api/v1/navigation"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var match mux.RouteMatch
			require.True(t, router.Match(httptest.NewRequest(tt.method, tt.path, nil), &match))
			require.NotNil(t, match.Route)
			template, err := match.Route.GetPathTemplate()
			require.NoError(t, err)
			assert.Equal(t, tt.template, template)
		})
	}
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	router := setupRouter()

	for _, path := range []string{"/api/v1/dashboard", "/api/v1/patients/export", "/api/v1/audit-logs"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestRouter_PreflightGetsCORSHeaders(t *testing.T) {
	handler := newTestRouter().Handler()

	for _, path := range []string{"/api/v1/forms", "/api/v1/patients/7f1d8a3e-2b4c-4d5e-8f90-123456789abc", "/api/v1/auth/sign-in"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "https://app.example.test")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), path)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization", path)
	}
}

func TestRouter_CORSHeadersOnRegularResponses(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
