// Package container provides dependency injection for application services.
package container

import (
	"github.com/luxeestates/luxegate-go/internal/application/services"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/email"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/media"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/messaging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/performance"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/persistence/store"
	"github.com/luxeestates/luxegate-go/pkg/config"
)

// Container wires every service with its dependencies. It is built once at
// startup and handed to the HTTP layer.
type Container struct {
	Logger      *logging.ChanneledLogger
	PerfTracker *performance.Tracker

	Store          *store.Store
	Broadcaster    *messaging.SessionBroadcaster
	LeadStream     *messaging.LeadStreamBroadcaster
	EmailService   email.Service
	ImageProcessor *media.ImageProcessor

	StateService   *services.StateService
	GatingService  *services.GatingService
	CaptureService *services.CaptureService
	AuthService    *services.AuthService
	CatalogService *services.CatalogService
	ExportService  *services.ExportService
}

// NewContainer assembles the full service graph. emailSvc may be nil when
// notifications are not configured.
func NewContainer(
	logger *logging.ChanneledLogger,
	perfTracker *performance.Tracker,
	st *store.Store,
	emailSvc email.Service,
) *Container {
	broadcaster := messaging.NewSessionBroadcaster(logger)
	leadStream := messaging.NewLeadStreamBroadcaster(logger)
	imageProcessor := media.NewImageProcessor(config.MediaPath)

	stateService := services.NewStateService(st, logger)
	gatingService := services.NewGatingService()
	captureService := services.NewCaptureService(stateService, broadcaster, leadStream, emailSvc, logger)
	authService := services.NewAuthService(stateService, broadcaster, logger)
	catalogService := services.NewCatalogService(stateService, imageProcessor, broadcaster, logger)
	exportService := services.NewExportService(stateService, logger)

	return &Container{
		Logger:         logger,
		PerfTracker:    perfTracker,
		Store:          st,
		Broadcaster:    broadcaster,
		LeadStream:     leadStream,
		EmailService:   emailSvc,
		ImageProcessor: imageProcessor,
		StateService:   stateService,
		GatingService:  gatingService,
		CaptureService: captureService,
		AuthService:    authService,
		CatalogService: catalogService,
		ExportService:  exportService,
	}
}
