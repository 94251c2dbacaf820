package ui

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"time"

	"spacexdash/domain/launch"
	"spacexdash/internal"
	"spacexdash/ui/services"

	"github.com/gin-gonic/gin"
)

// Server is the gin-based dashboard server used by the main binary.
type Server struct {
	router    *gin.Engine
	service   *services.DataService
	templates *template.Template
	http      *http.Server
	log       *internal.Logger
}

// NewServer creates a dashboard server over svc listening on addr. mode is a
// gin mode ("debug", "release" or "test").
func NewServer(svc *services.DataService, addr, mode string) (*Server, error) {
	if mode != "" {
		gin.SetMode(mode)
	}
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:    gin.New(),
		service:   svc,
		templates: templates,
		log:       internal.DefaultLogger.Named("Server"),
	}
	s.setupMiddleware()
	s.setupRoutes()
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := s.router.Group("/api")
	{
		api.GET("/controls", s.handleControls)
		api.GET("/dataset", s.handleDataset)
		api.GET("/charts/success-pie", s.handleSuccessPie)
		api.GET("/charts/payload-scatter", s.handlePayloadScatter)
		api.GET("/summary", s.handleSummary)
		api.GET("/export.xlsx", s.handleExport)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens until Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("Dashboard listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleIndex(c *gin.Context) {
	page, err := renderIndex(s.templates, s.service)
	if err != nil {
		s.log.Error("%v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody(err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (s *Server) handleControls(c *gin.Context) {
	c.JSON(http.StatusOK, s.service.Controls())
}

func (s *Server) handleDataset(c *gin.Context) {
	c.JSON(http.StatusOK, s.service.Info())
}

func (s *Server) handleSuccessPie(c *gin.Context) {
	site, err := s.service.ParseSite(c.Query(paramSite))
	if err != nil {
		c.AbortWithStatusJSON(errorStatus(err), errorBody(err))
		return
	}
	c.JSON(http.StatusOK, s.service.SuccessPie(site))
}

func (s *Server) handlePayloadScatter(c *gin.Context) {
	site, rng, err := parseSelection(s.service, c.Query)
	if err != nil {
		c.AbortWithStatusJSON(errorStatus(err), errorBody(err))
		return
	}
	c.JSON(http.StatusOK, s.service.PayloadScatter(site, rng))
}

func (s *Server) handleSummary(c *gin.Context) {
	site, rng, err := parseSelection(s.service, c.Query)
	if err != nil {
		c.AbortWithStatusJSON(errorStatus(err), errorBody(err))
		return
	}
	profile, err := s.service.Summary(launch.SiteAndPayload(site, rng.Lower, rng.Upper))
	if err != nil {
		c.AbortWithStatusJSON(errorStatus(err), errorBody(err))
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (s *Server) handleExport(c *gin.Context) {
	site, rng, err := parseSelection(s.service, c.Query)
	if err != nil {
		c.AbortWithStatusJSON(errorStatus(err), errorBody(err))
		return
	}
	var buf bytes.Buffer
	if err := s.service.Export(&buf, launch.SiteAndPayload(site, rng.Lower, rng.Upper)); err != nil {
		s.log.Error("export failed: %v", err)
		c.AbortWithStatusJSON(errorStatus(err), errorBody(err))
		return
	}
	c.Header("Content-Disposition", exportDisposition)
	c.Data(http.StatusOK, exportContentType, buf.Bytes())
}
