package services

import (
	"encoding/csv"
	"io"

	"github.com/luxeestates/luxegate-go/internal/domain/entities/leads"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
)

// recentLeadWindow is how many of the newest leads the stats payload carries.
const recentLeadWindow = 5

// AdminStats is the back-office dashboard summary.
type AdminStats struct {
	TotalLeads    int          `json:"totalLeads"`
	TotalProjects int          `json:"totalProjects"`
	RecentLeads   []leads.Lead `json:"recentLeads"`
}

// ExportService produces back-office reporting artifacts from current state.
type ExportService struct {
	state  *StateService
	logger *logging.ChanneledLogger
}

// NewExportService creates an export service.
func NewExportService(state *StateService, logger *logging.ChanneledLogger) *ExportService {
	return &ExportService{
		state:  state,
		logger: logger,
	}
}

// WriteLeadsCSV streams the full lead log as CSV, newest first. The date
// column uses a spreadsheet-friendly local format.
func (e *ExportService) WriteLeadsCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Name", "Phone", "Email", "Budget", "Config", "Date"}); err != nil {
		return err
	}

	leadLog := e.state.GetLeads()
	for _, lead := range leadLog {
		record := []string{
			lead.Name,
			lead.Phone,
			lead.Email,
			lead.Budget,
			lead.InterestedConfig,
			lead.SubmittedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	e.logger.Leads().Info("Lead export generated", "leads", len(leadLog))
	return nil
}

// Stats returns dashboard counters and the newest leads.
func (e *ExportService) Stats() AdminStats {
	leadLog := e.state.GetLeads()

	recent := leadLog
	if len(recent) > recentLeadWindow {
		recent = recent[:recentLeadWindow]
	}

	return AdminStats{
		TotalLeads:    len(leadLog),
		TotalProjects: len(e.state.GetCatalog()),
		RecentLeads:   recent,
	}
}
