package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/luxeestates/luxegate-go/internal/domain/entities/leads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLeads(t *testing.T, env *testEnv, count int) []leads.Lead {
	t.Helper()

	leadLog := make([]leads.Lead, count)
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := range leadLog {
		// Index 0 is the newest capture
		leadLog[i] = leads.Lead{
			ID:               string(rune('A' + i)),
			Name:             "Lead " + string(rune('A'+i)),
			Phone:            "98000",
			Email:            "lead@example.com",
			Budget:           "₹ 80L - ₹ 1.5 Cr",
			InterestedConfig: "2 BHK",
			SubmittedAt:      base.Add(-time.Duration(i) * time.Hour),
		}
	}
	require.NoError(t, env.state.CommitCapture(leadLog, "tok"))
	return leadLog
}

func TestWriteLeadsCSV(t *testing.T) {
	env := newTestEnv(t)
	seedLeads(t, env, 2)

	var buf bytes.Buffer
	require.NoError(t, env.export.WriteLeadsCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Name", "Phone", "Email", "Budget", "Config", "Date"}, records[0])
	assert.Equal(t, "Lead A", records[1][0])
	assert.Equal(t, "₹ 80L - ₹ 1.5 Cr", records[1][3])
	assert.Equal(t, "2026-08-01 10:00:00", records[1][5])
	assert.Equal(t, "Lead B", records[2][0])
}

func TestWriteLeadsCSVEmpty(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	require.NoError(t, env.export.WriteLeadsCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}

func TestStats(t *testing.T) {
	env := newTestEnv(t)
	leadLog := seedLeads(t, env, 7)

	stats := env.export.Stats()
	assert.Equal(t, 7, stats.TotalLeads)
	assert.Equal(t, 3, stats.TotalProjects)
	require.Len(t, stats.RecentLeads, 5)
	assert.Equal(t, leadLog[0].ID, stats.RecentLeads[0].ID)
}

func TestStatsEmpty(t *testing.T) {
	env := newTestEnv(t)

	stats := env.export.Stats()
	assert.Zero(t, stats.TotalLeads)
	assert.Equal(t, 3, stats.TotalProjects)
	assert.Empty(t, stats.RecentLeads)
}
