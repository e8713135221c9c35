// Package handlers provides HTTP request handlers for the presentation layer.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luxeestates/luxegate-go/internal/application/services"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/performance"
)

// CatalogHandlers contains the public catalog HTTP handlers.
type CatalogHandlers struct {
	catalogService *services.CatalogService
	gatingService  *services.GatingService
	stateService   *services.StateService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewCatalogHandlers creates catalog handlers with injected dependencies
func NewCatalogHandlers(
	catalogService *services.CatalogService,
	gatingService *services.GatingService,
	stateService *services.StateService,
	logger *logging.ChanneledLogger,
	perfTracker *performance.Tracker,
) *CatalogHandlers {
	return &CatalogHandlers{
		catalogService: catalogService,
		gatingService:  gatingService,
		stateService:   stateService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// GetCatalog handles GET /api/v1/catalog - ungated project listings,
// optionally filtered with ?featured=true.
func (h *CatalogHandlers) GetCatalog(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("get_catalog_request")
	defer h.perfTracker.FinishOperation(marker)

	featuredOnly := c.Query("featured") == "true"
	summaries := h.catalogService.List(featuredOnly)

	marker.SetSuccess(true)
	h.logger.Catalog().Debug("Catalog listing served", "projects", len(summaries), "featuredOnly", featuredOnly, "duration", time.Since(start))

	c.JSON(http.StatusOK, gin.H{"projects": summaries})
}

// GetProjectDetail handles GET /api/v1/catalog/:id - full project detail,
// gated behind an unlocked session. Locked sessions get 403 with the
// capture requirement, never a partial record.
func (h *CatalogHandlers) GetProjectDetail(c *gin.Context) {
	start := time.Now()
	marker := h.perfTracker.StartOperation("get_project_detail_request")
	defer h.perfTracker.FinishOperation(marker)

	id := c.Param("id")
	project, found := h.catalogService.GetDetail(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	sess := h.stateService.GetSessionState()
	decision := h.gatingService.Decide(sess.Unlocked, services.ResourceDetail, id)
	if decision.RequiresCapture {
		h.logger.Session().Debug("Detail request gated", "projectId", id, "duration", time.Since(start))
		c.JSON(http.StatusForbidden, gin.H{
			"requiresCapture": true,
			"targetProjectId": decision.TargetProjectID,
		})
		return
	}

	marker.SetSuccess(true)
	h.logger.Catalog().Debug("Project detail served", "projectId", id, "duration", time.Since(start))

	c.JSON(http.StatusOK, gin.H{"project": project})
}
