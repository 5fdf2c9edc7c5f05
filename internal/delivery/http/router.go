package http

import (
	"net/http"

	"lenglogs/internal/delivery/http/handler"
	"lenglogs/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

// uuidVar keeps literal segments such as /patients/export from matching an id route.
const uuidVar = "{id:[0-9a-fA-F-]{36}}"

type Router struct {
	router            *mux.Router
	healthHandler     *handler.HealthHandler
	authHandler       *handler.AuthHandler
	dashboardHandler  *handler.DashboardHandler
	formHandler       *handler.FormHandler
	submissionHandler *handler.SubmissionHandler
	patientHandler    *handler.PatientHandler
	facilityHandler   *handler.FacilityHandler
	auditLogHandler   *handler.AuditLogHandler
	authMiddleware    *middleware.AuthMiddleware
	profileMiddleware *middleware.ProfileMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

type Handlers struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	Dashboard  *handler.DashboardHandler
	Form       *handler.FormHandler
	Submission *handler.SubmissionHandler
	Patient    *handler.PatientHandler
	Facility   *handler.FacilityHandler
	AuditLog   *handler.AuditLogHandler
}

type Middlewares struct {
	Auth    *middleware.AuthMiddleware
	Profile *middleware.ProfileMiddleware
	CORS    *middleware.CORSMiddleware
	Logging *middleware.LoggingMiddleware
}

func NewRouter(h Handlers, m Middlewares) *Router {
	return &Router{
		router:            mux.NewRouter(),
		healthHandler:     h.Health,
		authHandler:       h.Auth,
		dashboardHandler:  h.Dashboard,
		formHandler:       h.Form,
		submissionHandler: h.Submission,
		patientHandler:    h.Patient,
		facilityHandler:   h.Facility,
		auditLogHandler:   h.AuditLog,
		authMiddleware:    m.Auth,
		profileMiddleware: m.Profile,
		corsMiddleware:    m.CORS,
		loggingMiddleware: m.Logging,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthHandler.Check).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/sign-up", r.authHandler.SignUp).Methods(http.MethodPost)
	auth.HandleFunc("/sign-in", r.authHandler.SignIn).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (token only, the profile may be missing or inactive)
	session := api.PathPrefix("/auth").Subrouter()
	session.Use(r.authMiddleware.Authenticate)
	session.HandleFunc("/sign-out", r.authHandler.SignOut).Methods(http.MethodPost)
	session.HandleFunc("/session", r.authHandler.GetSession).Methods(http.MethodGet)

	// Signed-in routes
	app := api.NewRoute().Subrouter()
	app.Use(r.authMiddleware.Authenticate)
	app.Use(r.profileMiddleware.LoadProfile)

	app.HandleFunc("/dashboard", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)
	app.HandleFunc("/navigation", r.dashboardHandler.GetNavigation).Methods(http.MethodGet)

	app.HandleFunc("/forms", r.formHandler.ListForms).Methods(http.MethodGet)
	app.HandleFunc("/forms/"+uuidVar, r.formHandler.GetForm).Methods(http.MethodGet)
	app.HandleFunc("/forms/"+uuidVar+"/submissions", r.submissionHandler.SubmitForm).Methods(http.MethodPost)
	app.HandleFunc("/forms/"+uuidVar+"/submissions", r.submissionHandler.ListSubmissions).Methods(http.MethodGet)
	app.HandleFunc("/forms/"+uuidVar+"/summary", r.submissionHandler.GetFormSummary).Methods(http.MethodGet)
	app.HandleFunc("/submissions/"+uuidVar, r.submissionHandler.GetSubmission).Methods(http.MethodGet)

	app.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	app.HandleFunc("/patients/"+uuidVar, r.patientHandler.GetPatient).Methods(http.MethodGet)

	app.HandleFunc("/facility", r.facilityHandler.GetFacility).Methods(http.MethodGet)
	app.HandleFunc("/facility/staff", r.facilityHandler.ListStaff).Methods(http.MethodGet)

	// Manager routes
	manager := api.NewRoute().Subrouter()
	manager.Use(r.authMiddleware.Authenticate)
	manager.Use(r.profileMiddleware.LoadProfile)
	manager.Use(middleware.RequireManager)

	manager.HandleFunc("/forms", r.formHandler.CreateForm).Methods(http.MethodPost)
	manager.HandleFunc("/forms/"+uuidVar, r.formHandler.UpdateForm).Methods(http.MethodPut)
	manager.HandleFunc("/forms/"+uuidVar, r.formHandler.DeleteForm).Methods(http.MethodDelete)

	manager.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	manager.HandleFunc("/patients/export", r.patientHandler.ExportPatients).Methods(http.MethodGet)
	manager.HandleFunc("/patients/"+uuidVar, r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	manager.HandleFunc("/patients/"+uuidVar, r.patientHandler.DeactivatePatient).Methods(http.MethodDelete)
	manager.HandleFunc("/patients/"+uuidVar+"/reactivate", r.patientHandler.ReactivatePatient).Methods(http.MethodPost)

	manager.HandleFunc("/facility/staff", r.facilityHandler.AssignStaff).Methods(http.MethodPost)
	manager.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)

	return r.router
}

// Handler returns the routes wrapped in CORS. mux only runs Use middleware on
// matched routes, so preflight OPTIONS requests must be answered outside it.
func (r *Router) Handler() http.Handler {
	return r.corsMiddleware.Handle(r.Setup())
}
