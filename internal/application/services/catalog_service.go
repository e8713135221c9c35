package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luxeestates/luxegate-go/internal/domain/entities/catalog"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/media"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/messaging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/security"
)

// ErrInvalidProject is returned when a publish request fails validation.
var ErrInvalidProject = errors.New("invalid project")

// PublishRequest is a back-office submission of a new catalog project.
// Amenities arrives as a single comma-separated string and ImageData, when
// present, is a base64 data URL to process into hosted media.
type PublishRequest struct {
	Name           string                  `json:"name"`
	Location       string                  `json:"location"`
	StartingPrice  string                  `json:"startingPrice"`
	Description    string                  `json:"description"`
	Amenities      string                  `json:"amenities"`
	Configurations []catalog.Configuration `json:"configurations"`
	IsFeatured     bool                    `json:"isFeatured"`
	ImageData      string                  `json:"imageData"`
}

// CatalogService serves catalog reads and handles back-office publishing.
type CatalogService struct {
	state       *StateService
	images      *media.ImageProcessor
	broadcaster *messaging.SessionBroadcaster
	logger      *logging.ChanneledLogger
}

// NewCatalogService creates a catalog service.
func NewCatalogService(state *StateService, images *media.ImageProcessor, broadcaster *messaging.SessionBroadcaster, logger *logging.ChanneledLogger) *CatalogService {
	return &CatalogService{
		state:       state,
		images:      images,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// List returns ungated project summaries, optionally filtered to featured
// projects only. Order matches the catalog, newest first.
func (c *CatalogService) List(featuredOnly bool) []catalog.Summary {
	projects := c.state.GetCatalog()
	summaries := make([]catalog.Summary, 0, len(projects))
	for i := range projects {
		if featuredOnly && !projects[i].IsFeatured {
			continue
		}
		summaries = append(summaries, projects[i].Summarize())
	}
	return summaries
}

// GetDetail returns the full project record for an unlocked session.
func (c *CatalogService) GetDetail(id string) (catalog.Project, bool) {
	return c.state.GetProject(id)
}

// Publish validates and stores a new project at the head of the catalog.
// Omitted fields get defaults: a placeholder image, empty configurations,
// not featured. The project id is minted server-side.
func (c *CatalogService) Publish(req PublishRequest) (catalog.Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return catalog.Project{}, fmt.Errorf("%w: name is required", ErrInvalidProject)
	}
	if strings.TrimSpace(req.Location) == "" {
		return catalog.Project{}, fmt.Errorf("%w: location is required", ErrInvalidProject)
	}

	projects := c.state.GetCatalog()
	id := c.mintProjectID(projects)

	project := catalog.Project{
		ID:             id,
		Name:           strings.TrimSpace(req.Name),
		Location:       strings.TrimSpace(req.Location),
		StartingPrice:  strings.TrimSpace(req.StartingPrice),
		Image:          "https://picsum.photos/800/600",
		Description:    strings.TrimSpace(req.Description),
		Amenities:      catalog.NormalizeAmenities(req.Amenities),
		Configurations: req.Configurations,
		IsFeatured:     req.IsFeatured,
	}
	if project.StartingPrice == "" {
		project.StartingPrice = "Price on Request"
	}
	if project.Configurations == nil {
		project.Configurations = []catalog.Configuration{}
	}

	if req.ImageData != "" {
		imagePath, _, err := c.images.ProcessProjectImage(req.ImageData, id)
		if err != nil {
			return catalog.Project{}, fmt.Errorf("%w: %v", ErrInvalidProject, err)
		}
		project.Image = imagePath
	}

	updated := append([]catalog.Project{project}, projects...)
	if err := c.state.CommitCatalog(updated); err != nil {
		if req.ImageData != "" {
			if cleanupErr := c.images.DeleteProjectImage(project.Image); cleanupErr != nil {
				c.logger.Catalog().Warn("Orphaned project image cleanup failed", "error", cleanupErr.Error())
			}
		}
		return catalog.Project{}, err
	}

	c.logger.Catalog().Info("Project published", "projectId", id, "name", project.Name, "total", len(updated))
	c.broadcaster.BroadcastCatalogUpdate()
	return project, nil
}

// mintProjectID generates a fresh id guaranteed distinct from every project
// already in the catalog.
func (c *CatalogService) mintProjectID(existing []catalog.Project) string {
	for {
		id := security.GenerateULID()
		collision := false
		for i := range existing {
			if existing[i].ID == id {
				collision = true
				break
			}
		}
		if !collision {
			return id
		}
	}
}
