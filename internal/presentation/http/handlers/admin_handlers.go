package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/luxeestates/luxegate-go/internal/application/services"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/messaging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/performance"
	"github.com/luxeestates/luxegate-go/pkg/config"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// AdminHandlers contains the back-office HTTP handlers. All routes using
// them sit behind AdminOnlyMiddleware.
type AdminHandlers struct {
	stateService   *services.StateService
	catalogService *services.CatalogService
	exportService  *services.ExportService
	broadcaster    *messaging.SessionBroadcaster
	leadStream     *messaging.LeadStreamBroadcaster
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewAdminHandlers creates admin handlers with injected dependencies
func NewAdminHandlers(
	stateService *services.StateService,
	catalogService *services.CatalogService,
	exportService *services.ExportService,
	broadcaster *messaging.SessionBroadcaster,
	leadStream *messaging.LeadStreamBroadcaster,
	logger *logging.ChanneledLogger,
	perfTracker *performance.Tracker,
) *AdminHandlers {
	return &AdminHandlers{
		stateService:   stateService,
		catalogService: catalogService,
		exportService:  exportService,
		broadcaster:    broadcaster,
		leadStream:     leadStream,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// GetLeads handles GET /api/v1/admin/leads - the full lead log, newest first.
func (h *AdminHandlers) GetLeads(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_leads_request")
	defer h.perfTracker.FinishOperation(marker)

	leadLog := h.stateService.GetLeads()

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, gin.H{"leads": leadLog, "total": len(leadLog)})
}

// GetLeadsExport handles GET /api/v1/admin/leads/export - CSV download.
func (h *AdminHandlers) GetLeadsExport(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_leads_export_request")
	defer h.perfTracker.FinishOperation(marker)

	filename := "leads-" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.exportService.WriteLeadsCSV(c.Writer); err != nil {
		marker.SetError(err)
		h.logger.Leads().Error("Lead export failed", "error", err.Error())
		return
	}

	marker.SetSuccess(true)
}

// GetStats handles GET /api/v1/admin/stats - dashboard counters.
func (h *AdminHandlers) GetStats(c *gin.Context) {
	marker := h.perfTracker.StartOperation("get_stats_request")
	defer h.perfTracker.FinishOperation(marker)

	stats := h.exportService.Stats()

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, stats)
}

// PostProject handles POST /api/v1/admin/projects - publishes a new project.
func (h *AdminHandlers) PostProject(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("post_project_request")
	defer h.perfTracker.FinishOperation(marker)

	var req services.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Catalog().Error("Publish request JSON binding failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	project, err := h.catalogService.Publish(req)
	if err != nil {
		marker.SetError(err)
		if errors.Is(err, services.ErrInvalidProject) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "publish failed"})
		return
	}

	marker.SetSuccess(true)
	h.logger.Catalog().Info("Publish request completed", "projectId", project.ID, "duration", time.Since(start))

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// PostReset handles POST /api/v1/admin/reset - restores factory demo state.
func (h *AdminHandlers) PostReset(c *gin.Context) {
	marker := h.perfTracker.StartOperation("post_reset_request")
	defer h.perfTracker.FinishOperation(marker)

	if err := h.stateService.Reset(); err != nil {
		marker.SetError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reset failed"})
		return
	}

	// The operator session is gone too, expire the cookie
	c.SetCookie("admin_auth", "", -1, "/", "", false, true)

	marker.SetSuccess(true)
	h.broadcaster.BroadcastReset()

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetLeadStream handles GET /api/v1/admin/leads/stream - a websocket feed
// pushing each captured lead to the dashboard as it lands.
func (h *AdminHandlers) GetLeadStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Leads().Error("Lead stream upgrade failed", "error", err.Error())
		return
	}

	client := &messaging.LeadStreamClient{
		Conn: conn,
		Send: make(chan []byte, config.LeadStreamSendBuffer),
	}
	h.leadStream.Register(client)

	go h.writePump(client)
	go h.readPump(client)
}

// writePump forwards broadcast messages to a single websocket client.
func (h *AdminHandlers) writePump(client *messaging.LeadStreamClient) {
	defer client.Conn.Close()

	for message := range client.Send {
		if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump drains the client until disconnect, then unregisters it.
func (h *AdminHandlers) readPump(client *messaging.LeadStreamClient) {
	defer func() {
		h.leadStream.Unregister(client)
		client.Conn.Close()
	}()

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
