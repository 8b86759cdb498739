package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nexproctor/proctor-server/internal/api/apierr"
	"github.com/nexproctor/proctor-server/internal/api/handler"
	"github.com/nexproctor/proctor-server/internal/middleware"
	"github.com/nexproctor/proctor-server/internal/services/auth"
	"github.com/nexproctor/proctor-server/internal/services/code"
	"github.com/nexproctor/proctor-server/internal/services/report"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	AuthService  *auth.Service
	CodeRegistry *code.Registry
	ReportStore  *report.Store
	// Metrics is optional; when nil no /metrics endpoint or
	// instrumentation is mounted
	Metrics *middleware.HTTPMetrics
	// MetricsGatherer serves /metrics (defaults to the global
	// prometheus gatherer)
	MetricsGatherer prometheus.Gatherer
}

// NewRouter creates a new API router with all routes configured.
//
// The proctor endpoints are deliberately not token-protected: the
// original service gates only the initial login check, and no
// subsequent call carries a verified credential. Tightening this is a
// known follow-up, not something to change silently.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(cfg.AuthService)
	codeHandler := handler.NewCodeHandler(cfg.CodeRegistry)
	reportHandler := handler.NewReportHandler(cfg.ReportStore)

	recoveryMiddleware := middleware.Recovery(cfg.Logger, apiPanicHandler)
	loggingMiddleware := middleware.Logging(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())

		gatherer := cfg.MetricsGatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	// Service status
	r.HandleFunc("/", statusHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/health", healthHandler).Methods(http.MethodGet)

	// Proctor operations
	proctor := r.PathPrefix("/api/proctor").Subrouter()
	proctor.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	proctor.HandleFunc("/generate_code", codeHandler.Generate).Methods(http.MethodPost)
	proctor.HandleFunc("/codes", codeHandler.List).Methods(http.MethodGet)
	proctor.HandleFunc("/reports", reportHandler.List).Methods(http.MethodGet)
	proctor.HandleFunc("/reports/{report_id}", reportHandler.GetDetail).Methods(http.MethodGet)

	// Student-facing exam operations
	exam := r.PathPrefix("/api/exam").Subrouter()
	exam.HandleFunc("/verify_code", codeHandler.Verify).Methods(http.MethodPost)
	exam.HandleFunc("/submit", reportHandler.Submit).Methods(http.MethodPost)

	return r
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}

func statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"proctor backend is running"}`))
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
