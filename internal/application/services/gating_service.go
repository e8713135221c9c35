package services

// Resource kinds subject to gating. Listings are always visible; full
// project detail requires an unlocked session.
const (
	ResourceListing = "listing"
	ResourceDetail  = "detail"
)

// GateDecision is the outcome of a gating check. Exactly one of Show and
// RequiresCapture is true. TargetProjectID is set only on RequiresCapture,
// naming the project the capture form should attribute the enquiry to.
type GateDecision struct {
	Show            bool   `json:"show"`
	RequiresCapture bool   `json:"requiresCapture"`
	TargetProjectID string `json:"targetProjectId,omitempty"`
}

// GatingService is the pure gating policy. It holds no state and performs no
// IO: callers pass the current unlock status in.
type GatingService struct{}

// NewGatingService creates the gating policy service.
func NewGatingService() *GatingService {
	return &GatingService{}
}

// Decide evaluates access to a resource. Listings are shown regardless of
// lock state. Detail is shown when unlocked, otherwise the decision demands
// capture and carries the target project id for attribution.
func (g *GatingService) Decide(unlocked bool, resourceType, projectID string) GateDecision {
	if resourceType == ResourceListing {
		return GateDecision{Show: true}
	}
	if unlocked {
		return GateDecision{Show: true}
	}
	return GateDecision{RequiresCapture: true, TargetProjectID: projectID}
}
