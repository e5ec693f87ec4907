package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/argus-soc/argus/pkg/models"
)

// submitFindingHandler handles POST /api/v1/events.
//
// The pipeline decides synchronously whether it can take the finding;
// processing itself is asynchronous. Rejections come back as a structured
// response so callers can tell retryable conditions from permanent ones.
func (s *Server) submitFindingHandler(c *gin.Context) {
	var req models.SubmitFindingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := s.ingestService.SubmitFinding(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(ingestStatus(resp), resp)
}

// ingestStatus maps the accept/reject decision to an HTTP status. Backpressure
// and draining are retryable; anything else rejected is permanent.
func ingestStatus(resp models.SubmitFindingResponse) int {
	if resp.Accepted {
		return http.StatusAccepted
	}
	switch resp.Reason {
	case string(models.FailureBackpressure):
		return http.StatusTooManyRequests
	case string(models.FailureDraining):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}
