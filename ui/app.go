package ui

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"spacexdash/domain/launch"
	"spacexdash/internal"
	"spacexdash/ui/middleware"
	"spacexdash/ui/services"
)

// App is a lightweight chi-based dashboard used by cmd/ui. It serves the
// same page and API as Server.
type App struct {
	router    *chi.Mux
	service   *services.DataService
	templates *template.Template
	config    Config
	log       *internal.Logger
}

// Config holds UI application configuration
type Config struct {
	Port string
}

// NewApp creates a new UI application
func NewApp(svc *services.DataService, config Config) (*App, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	if config.Port == "" {
		config.Port = "8050"
	}

	app := &App{
		router:    chi.NewRouter(),
		service:   svc,
		templates: templates,
		config:    config,
		log:       internal.DefaultLogger.Named("App"),
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestIDHandler)
	a.router.Use(chimw.Logger)
	a.router.Use(chimw.Recoverer)
	a.router.Use(chimw.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS()))))
	a.router.Get("/", a.handleIndex)
	a.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	a.router.Route("/api", func(r chi.Router) {
		r.Get("/controls", a.handleControls)
		r.Get("/dataset", a.handleDataset)
		r.Get("/charts/success-pie", a.handleSuccessPie)
		r.Get("/charts/payload-scatter", a.handlePayloadScatter)
		r.Get("/summary", a.handleSummary)
		r.Get("/export.xlsx", a.handleExport)
	})
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.config.Port
	a.log.Info("Starting launch dashboard UI on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		internal.DefaultLogger.Named("App").Error("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errorStatus(err), errorBody(err))
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := renderIndex(a.templates, a.service)
	if err != nil {
		a.log.Error("%v", err)
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (a *App) handleControls(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.service.Controls())
}

func (a *App) handleDataset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.service.Info())
}

func (a *App) handleSuccessPie(w http.ResponseWriter, r *http.Request) {
	site, err := a.service.ParseSite(r.URL.Query().Get(paramSite))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.service.SuccessPie(site))
}

func (a *App) handlePayloadScatter(w http.ResponseWriter, r *http.Request) {
	site, rng, err := parseSelection(a.service, r.URL.Query().Get)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.service.PayloadScatter(site, rng))
}

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	site, rng, err := parseSelection(a.service, r.URL.Query().Get)
	if err != nil {
		writeError(w, err)
		return
	}
	profile, err := a.service.Summary(launch.SiteAndPayload(site, rng.Lower, rng.Upper))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (a *App) handleExport(w http.ResponseWriter, r *http.Request) {
	site, rng, err := parseSelection(a.service, r.URL.Query().Get)
	if err != nil {
		writeError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := a.service.Export(&buf, launch.SiteAndPayload(site, rng.Lower, rng.Upper)); err != nil {
		a.log.Error("export failed: %v", err)
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", exportContentType)
	w.Header().Set("Content-Disposition", exportDisposition)
	_, _ = w.Write(buf.Bytes())
}
