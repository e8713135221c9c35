package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luxeestates/luxegate-go/internal/application/services"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/performance"
)

// CaptureHandlers contains the lead capture HTTP handlers.
type CaptureHandlers struct {
	captureService *services.CaptureService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewCaptureHandlers creates capture handlers with injected dependencies
func NewCaptureHandlers(captureService *services.CaptureService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *CaptureHandlers {
	return &CaptureHandlers{
		captureService: captureService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// PostCapture handles POST /api/v1/capture - records an enquiry and unlocks
// the session. The unlock token rides back in the JSON body so every open
// tab can adopt it.
func (h *CaptureHandlers) PostCapture(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("post_capture_request")
	defer h.perfTracker.FinishOperation(marker)
	h.logger.Leads().Debug("Received capture request", "method", c.Request.Method, "path", c.Request.URL.Path)

	var req services.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Leads().Error("Capture request JSON binding failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	lead, token, err := h.captureService.Submit(req)
	if err != nil {
		marker.SetError(err)
		if errors.Is(err, services.ErrInvalidLead) || errors.Is(err, services.ErrUnknownProject) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "capture failed"})
		return
	}

	marker.SetSuccess(true)
	h.logger.Perf().Info("Performance for PostCapture request", "duration", time.Since(start), "success", true)
	h.logger.Leads().Info("Capture request completed", "leadId", lead.ID, "duration", time.Since(start))

	c.JSON(http.StatusCreated, gin.H{
		"lead":        lead,
		"unlockToken": token,
		"unlocked":    true,
	})
}
