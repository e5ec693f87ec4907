// Package api exposes the HTTP surface: finding ingress, the dashboard
// read API, health probes, Prometheus metrics and the admin endpoints.
package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/database"
	"github.com/argus-soc/argus/pkg/metrics"
	"github.com/argus-soc/argus/pkg/models"
	"github.com/argus-soc/argus/pkg/services"
)

// HealthReporter exposes the pipeline's live readiness snapshot.
// *pipeline.Pipeline implements this.
type HealthReporter interface {
	Health() models.HealthResponse
}

// Server is the HTTP server.
type Server struct {
	dbClient      *database.Client
	ingestService *services.IngestService
	threatService *services.ThreatService
	dlqService    *services.DLQService
	pipeline      HealthReporter
	policy        *config.PolicyStore

	// Optional dependencies, injected via setters.
	warningService *services.SystemWarningsService

	httpServer *http.Server
}

// NewServer creates a new API server.
func NewServer(
	dbClient *database.Client,
	ingestService *services.IngestService,
	threatService *services.ThreatService,
	dlqService *services.DLQService,
	pipeline HealthReporter,
	policy *config.PolicyStore,
) *Server {
	if dbClient == nil {
		panic("NewServer: dbClient must not be nil")
	}
	if ingestService == nil {
		panic("NewServer: ingestService must not be nil")
	}
	if threatService == nil {
		panic("NewServer: threatService must not be nil")
	}
	if dlqService == nil {
		panic("NewServer: dlqService must not be nil")
	}
	if pipeline == nil {
		panic("NewServer: pipeline must not be nil")
	}
	if policy == nil {
		panic("NewServer: policy must not be nil")
	}
	return &Server{
		dbClient:      dbClient,
		ingestService: ingestService,
		threatService: threatService,
		dlqService:    dlqService,
		pipeline:      pipeline,
		policy:        policy,
	}
}

// SetWarningsService injects the system warnings service.
func (s *Server) SetWarningsService(ws *services.SystemWarningsService) {
	s.warningService = ws
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(securityHeaders())

	// Probes and metrics sit outside the API group: they are scraped by
	// orchestrators and Prometheus, not called by dashboard clients.
	router.GET("/healthz", s.livenessHandler)
	router.GET("/readyz", s.readinessHandler)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/events", s.submitFindingHandler)
		v1.GET("/threats", s.listThreatsHandler)
		v1.GET("/threats/:event_id", s.getThreatHandler)
		v1.GET("/stats", s.statsHandler)

		admin := v1.Group("/admin")
		{
			admin.GET("/policy", s.getPolicyHandler)
			admin.PUT("/policy", s.updatePolicyHandler)
			admin.GET("/dlq", s.listDLQHandler)
			admin.POST("/dlq/replay", s.replayDLQHandler)
			admin.GET("/warnings", s.warningsHandler)
		}
	}

	return router
}

// Start serves HTTP on addr. It blocks until Shutdown is called or the
// listener fails, mirroring http.Server.ListenAndServe semantics.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// StartWithListener serves HTTP on an already-bound listener. Tests bind
// port 0 and read the assigned address back before serving.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
