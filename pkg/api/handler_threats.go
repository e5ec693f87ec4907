package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/argus-soc/argus/pkg/models"
)

// listThreatsHandler handles GET /api/v1/threats.
func (s *Server) listThreatsHandler(c *gin.Context) {
	filters := models.ThreatFilters{}

	// Enum filters are passed through as-is; the service validates them
	// against the generated enums and rejects unknown values.
	filters.Status = c.Query("status")
	filters.Severity = c.Query("severity")
	filters.Band = c.Query("band")
	filters.Source = c.Query("source")
	filters.AccountID = c.Query("account_id")

	if v := c.Query("min_priority"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_priority: must be a number"})
			return
		}
		filters.MinPriority = &p
	}

	if v := c.Query("observed_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid observed_after: must be RFC3339"})
			return
		}
		filters.ObservedAfter = &t
	}
	if v := c.Query("observed_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid observed_before: must be RFC3339"})
			return
		}
		filters.ObservedBefore = &t
	}

	// Out-of-range pagination values fall back to the service defaults.
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filters.Offset = n
		}
	}

	result, err := s.threatService.ListThreats(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// getThreatHandler handles GET /api/v1/threats/:event_id.
// The same event id can be stored more than once (the pipeline is
// at-least-once); all revisions are returned, newest first.
func (s *Server) getThreatHandler(c *gin.Context) {
	eventID := c.Param("event_id")

	records, err := s.threatService.GetThreat(c.Request.Context(), eventID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ThreatHistoryResponse{
		EventID: eventID,
		Records: records,
	})
}

// statsHandler handles GET /api/v1/stats.
func (s *Server) statsHandler(c *gin.Context) {
	stats, err := s.threatService.GetStats(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
