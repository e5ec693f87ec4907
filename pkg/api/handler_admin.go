package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/argus-soc/argus/pkg/models"
)

// getPolicyHandler handles GET /api/v1/admin/policy.
func (s *Server) getPolicyHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.PolicyResponse{ActionPolicy: s.policy.Get()})
}

// updatePolicyHandler handles PUT /api/v1/admin/policy.
// The new policy takes effect at the next gate decision, so operators can
// dial the pipeline down without draining in-flight events.
func (s *Server) updatePolicyHandler(c *gin.Context) {
	var req models.UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.policy.Set(req.ActionPolicy); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.PolicyResponse{ActionPolicy: s.policy.Get()})
}

// listDLQHandler handles GET /api/v1/admin/dlq.
func (s *Server) listDLQHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.dlqService.ListDeadLetters(c.Request.Context()))
}

// replayDLQHandler handles POST /api/v1/admin/dlq/replay.
// Journaled records that still cannot be written stay parked; the response
// reports both counts so operators can tell a partial recovery.
func (s *Server) replayDLQHandler(c *gin.Context) {
	result, err := s.dlqService.ReplayJournal(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
