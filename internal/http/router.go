package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/TheraTrack/practice-service/internal/auth"
	"github.com/TheraTrack/practice-service/internal/checkin"
	"github.com/TheraTrack/practice-service/internal/client"
	"github.com/TheraTrack/practice-service/internal/files"
	"github.com/TheraTrack/practice-service/internal/goals"
	"github.com/TheraTrack/practice-service/internal/plan"
	"github.com/TheraTrack/practice-service/internal/report"
	"github.com/TheraTrack/practice-service/internal/resources"
	"github.com/TheraTrack/practice-service/internal/risk"
	"github.com/TheraTrack/practice-service/internal/session"
	"github.com/TheraTrack/practice-service/internal/site"
	"github.com/TheraTrack/practice-service/internal/soap"
	"github.com/TheraTrack/practice-service/internal/users"
)

// Handlers bundles every entity handler the router mounts.
type Handlers struct {
	Users     *users.Handler
	Sites     *site.Handler
	Clients   *client.Handler
	Goals     *goals.Handler
	Sessions  *session.Handler
	Soap      *soap.Handler
	Plans     *plan.Handler
	Files     *files.Handler
	CheckIns  *checkin.Handler
	Resources *resources.Handler
	Risk      *risk.Handler
	Reports   *report.Handler
}

// NewRouter assembles the HTTP surface: public health and auth routes,
// and the therapist API behind bearer-token middleware.
func NewRouter(h Handlers, verifier *auth.Verifier, authMetrics auth.MetricsRecorder, allowedOrigins string) *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("practice-service"))
	r.Use(CORSMiddleware(allowedOrigins))

	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	r.HandleFunc("/auth/register", h.Users.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.Users.Login).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.MiddlewareWithMetrics(verifier, authMetrics))

	// Sites
	api.HandleFunc("/sites", h.Sites.Create).Methods(http.MethodPost)
	api.HandleFunc("/sites", h.Sites.List).Methods(http.MethodGet)
	api.HandleFunc("/sites/{id}", h.Sites.Get).Methods(http.MethodGet)
	api.HandleFunc("/sites/{id}", h.Sites.Delete).Methods(http.MethodDelete)

	// Clients
	api.HandleFunc("/clients", h.Clients.Create).Methods(http.MethodPost)
	api.HandleFunc("/clients", h.Clients.List).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id}", h.Clients.Get).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id}", h.Clients.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/clients/{id}/status", h.Clients.UpdateStatus).Methods(http.MethodPut)
	api.HandleFunc("/clients/{id}/history", h.Clients.UpdateHistory).Methods(http.MethodPut)
	api.HandleFunc("/clients/{id}/diagnostics", h.Clients.AddDiagnostic).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id}/diagnostics", h.Clients.ListDiagnostics).Methods(http.MethodGet)

	// Goal templates and assignments
	api.HandleFunc("/goal-templates", h.Goals.CreateTemplate).Methods(http.MethodPost)
	api.HandleFunc("/goal-templates", h.Goals.ListTemplates).Methods(http.MethodGet)
	api.HandleFunc("/goal-templates/{id}", h.Goals.DeleteTemplate).Methods(http.MethodDelete)
	api.HandleFunc("/clients/{id}/goals", h.Goals.AssignGoal).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id}/goals", h.Goals.ListClientGoals).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id}/goals/{templateId}", h.Goals.RemoveGoal).Methods(http.MethodDelete)

	// Sessions and analytics
	api.HandleFunc("/sessions", h.Sessions.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions", h.Sessions.Filter).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id}/sessions", h.Sessions.ListForClient).Methods(http.MethodGet)

	// SOAP notes
	api.HandleFunc("/clients/{id}/soap-notes", h.Soap.Add).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id}/soap-notes", h.Soap.ListForClient).Methods(http.MethodGet)

	// Session plans
	api.HandleFunc("/clients/{id}/plans", h.Plans.Create).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id}/plans", h.Plans.ListForClient).Methods(http.MethodGet)
	api.HandleFunc("/plans/{planId}", h.Plans.Delete).Methods(http.MethodDelete)

	// Attachments
	api.HandleFunc("/clients/{id}/files", h.Files.Upload).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id}/files", h.Files.ListForClient).Methods(http.MethodGet)
	api.HandleFunc("/files/{fileId}", h.Files.Download).Methods(http.MethodGet)
	api.HandleFunc("/files/{fileId}", h.Files.Delete).Methods(http.MethodDelete)

	// Therapist check-ins
	api.HandleFunc("/clients/{id}/checkins", h.CheckIns.Create).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id}/checkins", h.CheckIns.ListForClient).Methods(http.MethodGet)

	// Session resources
	api.HandleFunc("/clients/{id}/resources", h.Resources.Create).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id}/resources", h.Resources.ListForClient).Methods(http.MethodGet)
	api.HandleFunc("/resources/{resourceId}", h.Resources.Delete).Methods(http.MethodDelete)

	// Risk scanner
	api.HandleFunc("/risk/alerts", h.Risk.Scan).Methods(http.MethodGet)
	api.HandleFunc("/risk/clients/{id}/status", h.Risk.UpdateStatus).Methods(http.MethodPut)

	// Reports and dashboard
	api.HandleFunc("/reports/sessions.csv", h.Reports.ExportCSV).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id}/report.pdf", h.Reports.ClientReportPDF).Methods(http.MethodGet)
	api.HandleFunc("/analytics/goal-frequency", h.Reports.GoalFrequency).Methods(http.MethodGet)
	api.HandleFunc("/dashboard", h.Reports.Overview).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
