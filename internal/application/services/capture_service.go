package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/luxeestates/luxegate-go/internal/domain/entities/leads"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/email"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/messaging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/security"
	"github.com/luxeestates/luxegate-go/pkg/config"
)

// Validation failures surfaced to the transport layer as client errors.
var (
	ErrInvalidLead    = errors.New("invalid lead submission")
	ErrUnknownProject = errors.New("unknown project")
)

// CaptureRequest is a visitor's enquiry form submission.
type CaptureRequest struct {
	Name             string             `json:"name"`
	Phone            string             `json:"phone"`
	Email            string             `json:"email"`
	BuyingFor        leads.BuyingIntent `json:"buyingFor"`
	Budget           string             `json:"budget"`
	InterestedConfig string             `json:"interestedConfig"`
	ProjectID        string             `json:"projectId"`
}

// CaptureService runs the lead capture flow: validate, mint identity and
// unlock token, persist, then fan out notifications. A successful capture is
// the one and only way a visitor session becomes unlocked.
type CaptureService struct {
	state       *StateService
	broadcaster *messaging.SessionBroadcaster
	leadStream  *messaging.LeadStreamBroadcaster
	emailSvc    email.Service
	logger      *logging.ChanneledLogger
}

// NewCaptureService creates a capture service. emailSvc may be nil when no
// notification recipient is configured.
func NewCaptureService(
	state *StateService,
	broadcaster *messaging.SessionBroadcaster,
	leadStream *messaging.LeadStreamBroadcaster,
	emailSvc email.Service,
	logger *logging.ChanneledLogger,
) *CaptureService {
	return &CaptureService{
		state:       state,
		broadcaster: broadcaster,
		leadStream:  leadStream,
		emailSvc:    emailSvc,
		logger:      logger,
	}
}

// Submit validates and records an enquiry. Name, phone, email and budget
// are required; configuration interest and project attribution are optional.
// On success it returns the stored lead and the freshly minted unlock token.
// Validation failure leaves every piece of state untouched.
func (c *CaptureService) Submit(req CaptureRequest) (leads.Lead, string, error) {
	if err := c.validate(req); err != nil {
		c.logger.Leads().Debug("Lead submission rejected", "error", err.Error())
		return leads.Lead{}, "", err
	}

	projectName := ""
	if req.ProjectID != "" {
		project, found := c.state.GetProject(req.ProjectID)
		if !found {
			return leads.Lead{}, "", fmt.Errorf("%w: %s", ErrUnknownProject, req.ProjectID)
		}
		projectName = project.Name
	}

	lead := leads.Lead{
		ID:               security.GenerateULID(),
		Name:             strings.TrimSpace(req.Name),
		Phone:            strings.TrimSpace(req.Phone),
		Email:            strings.TrimSpace(req.Email),
		BuyingFor:        req.BuyingFor,
		Budget:           req.Budget,
		InterestedConfig: req.InterestedConfig,
		SubmittedAt:      time.Now().UTC(),
		ProjectID:        req.ProjectID,
	}

	token, err := security.GenerateUnlockToken(lead.ID, config.JWTSecret, config.UnlockTokenTTL)
	if err != nil {
		c.logger.Session().Error("Unlock token generation failed", "error", err.Error())
		return leads.Lead{}, "", err
	}

	// Newest first
	leadLog := append([]leads.Lead{lead}, c.state.GetLeads()...)

	if err := c.state.CommitCapture(leadLog, token); err != nil {
		return leads.Lead{}, "", err
	}

	c.logger.Leads().Info("Lead captured", "leadId", lead.ID, "projectId", lead.ProjectID, "total", len(leadLog))

	sess := c.state.GetSessionState()
	c.broadcaster.BroadcastSessionUpdate(sess.Unlocked, sess.AdminLoggedIn)
	c.leadStream.BroadcastLead(lead, len(leadLog))
	c.notify(lead, projectName)

	return lead, token, nil
}

func (c *CaptureService) validate(req CaptureRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidLead)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidLead)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidLead)
	}
	if !leads.ValidIntent(req.BuyingFor) {
		return fmt.Errorf("%w: buyingFor must be Self or Investment", ErrInvalidLead)
	}
	if !leads.ValidBudget(req.Budget) {
		return fmt.Errorf("%w: unrecognized budget range", ErrInvalidLead)
	}
	if !leads.ValidConfigType(req.InterestedConfig) {
		return fmt.Errorf("%w: unrecognized configuration type", ErrInvalidLead)
	}
	return nil
}

// notify sends the back-office email off the request path. Email failure
// never affects the capture outcome.
func (c *CaptureService) notify(lead leads.Lead, projectName string) {
	if c.emailSvc == nil || config.NotifyEmailTo == "" {
		return
	}

	go func() {
		if err := c.emailSvc.SendLeadNotification(config.NotifyEmailTo, lead, projectName); err != nil {
			c.logger.Email().Error("Lead notification email failed", "error", err.Error(), "leadId", lead.ID)
			return
		}
		c.logger.Email().Info("Lead notification email sent", "leadId", lead.ID)
	}()
}
