package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	landingpage "storefront/contexts/content-studio/landing-page-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "storefront/internal/platform/httpserver/docs"
)

type Server struct {
	mux     *http.ServeMux
	logger  *slog.Logger
	addr    string
	landing landingpage.Module
}

func New(
	landing landingpage.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:     http.NewServeMux(),
		logger:  logger,
		addr:    addr,
		landing: landing,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routed mux for embedding in another server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	s.mux.HandleFunc("GET /api/landing/v1/templates", s.handleLandingListTemplates)
	s.mux.HandleFunc("GET /api/landing/v1/templates/{template_id}", s.handleLandingGetTemplate)
	s.mux.HandleFunc("GET /api/landing/v1/packs", s.handleLandingListPacks)
	s.mux.HandleFunc("POST /api/landing/v1/packs/preview", s.handleLandingPreviewPacks)
	s.mux.HandleFunc("POST /api/landing/v1/packs/{pack_id}/generate", s.handleLandingGeneratePack)
	s.mux.HandleFunc("GET /api/landing/v1/kits", s.handleLandingListKits)
	s.mux.HandleFunc("PUT /api/landing/v1/kits/{kit_name}", s.handleLandingUpsertKit)
	s.mux.HandleFunc("POST /api/landing/v1/pages/assemble", s.handleLandingAssemblePage)
	s.mux.HandleFunc("GET /api/landing/v1/pages", s.handleLandingListPages)
	s.mux.HandleFunc("GET /api/landing/v1/pages/{page_id}", s.handleLandingGetPage)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorWriter func(w http.ResponseWriter, status int, code string, message string)

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, target any, writeError errorWriter) bool {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := decoder.Decode(target); err != nil {
		s.logger.Debug("request body rejected",
			"event", "http_request_body_rejected",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"path", r.URL.Path,
			"error", err.Error(),
		)
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
