package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luxeestates/luxegate-go/internal/application/services"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/messaging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/performance"
)

// SessionHandlers contains the visitor session HTTP handlers.
type SessionHandlers struct {
	stateService *services.StateService
	broadcaster  *messaging.SessionBroadcaster
	logger       *logging.ChanneledLogger
	perfTracker  *performance.Tracker
}

// NewSessionHandlers creates session handlers with injected dependencies
func NewSessionHandlers(
	stateService *services.StateService,
	broadcaster *messaging.SessionBroadcaster,
	logger *logging.ChanneledLogger,
	perfTracker *performance.Tracker,
) *SessionHandlers {
	return &SessionHandlers{
		stateService: stateService,
		broadcaster:  broadcaster,
		logger:       logger,
		perfTracker:  perfTracker,
	}
}

// GetSession handles GET /api/v1/session - the current session record. The
// unlock token itself stays server-side; clients only learn the flags.
func (h *SessionHandlers) GetSession(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_session_request")
	defer h.perfTracker.FinishOperation(marker)

	sess := h.stateService.GetSessionState()

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{
		"unlocked":      sess.Unlocked,
		"adminLoggedIn": sess.AdminLoggedIn,
	})
}

// GetSessionStream handles GET /api/v1/session/sse - a server-sent event
// stream of session changes, one subscription per open tab.
func (h *SessionHandlers) GetSessionStream(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ch := h.broadcaster.AddClient()
	defer h.broadcaster.RemoveClient(ch)

	fmt.Fprintf(c.Writer, ": connection established\n\n")
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case message, ok := <-ch:
			if !ok {
				return false
			}
			fmt.Fprint(w, message)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
