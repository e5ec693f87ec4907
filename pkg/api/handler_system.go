package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/argus-soc/argus/pkg/database"
	"github.com/argus-soc/argus/pkg/version"
)

// livenessHandler handles GET /healthz.
// It only reports that the process is up. External dependencies are
// deliberately excluded so an orchestrator never restarts the service
// because a dependency is down.
func (s *Server) livenessHandler(c *gin.Context) {
	c.JSON(http.StatusOK, LivenessResponse{
		Status:  "ok",
		Version: version.GitCommit,
	})
}

// readinessHandler handles GET /readyz.
// Readiness folds the pipeline's own snapshot (accepting, queue depths,
// stage latencies) with a bounded database ping; either failing means the
// service should not receive traffic.
func (s *Server) readinessHandler(c *gin.Context) {
	health := s.pipeline.Health()

	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := database.Health(reqCtx, s.dbClient.DB()); err != nil {
		health.Ready = false
	}

	status := http.StatusOK
	if !health.Ready {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, health)
}

// warningsHandler handles GET /api/v1/admin/warnings.
func (s *Server) warningsHandler(c *gin.Context) {
	response := SystemWarningsResponse{
		Warnings: []SystemWarningItem{},
	}

	if s.warningService != nil {
		for _, w := range s.warningService.GetWarnings() {
			response.Warnings = append(response.Warnings, SystemWarningItem{
				ID:        w.ID,
				Category:  w.Category,
				Message:   w.Message,
				Details:   w.Details,
				Scope:     w.Scope,
				CreatedAt: w.CreatedAt.Format(time.RFC3339),
			})
		}
	}

	c.JSON(http.StatusOK, response)
}
