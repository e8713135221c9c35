package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitUnlocksSession(t *testing.T) {
	env := newTestEnv(t)

	lead, token, err := env.capture.Submit(validCapture())
	require.NoError(t, err)

	assert.NotEmpty(t, lead.ID)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Asha", lead.Name)
	assert.Equal(t, "p1", lead.ProjectID)
	assert.False(t, lead.SubmittedAt.IsZero())

	leadLog := env.state.GetLeads()
	require.Len(t, leadLog, 1)
	assert.Equal(t, lead.ID, leadLog[0].ID)

	sess := env.state.GetSessionState()
	assert.True(t, sess.Unlocked)
	assert.Equal(t, token, sess.UnlockToken)

	// Detail is visible from here on
	decision := env.gating.Decide(sess.Unlocked, ResourceDetail, "p1")
	assert.True(t, decision.Show)
}

func TestSubmitPrependsNewestFirst(t *testing.T) {
	env := newTestEnv(t)

	first, _, err := env.capture.Submit(validCapture())
	require.NoError(t, err)

	second := validCapture()
	second.Name = "Ravi"
	second.ProjectID = ""
	secondLead, _, err := env.capture.Submit(second)
	require.NoError(t, err)

	leadLog := env.state.GetLeads()
	require.Len(t, leadLog, 2)
	assert.Equal(t, secondLead.ID, leadLog[0].ID)
	assert.Equal(t, first.ID, leadLog[1].ID)
	assert.NotEqual(t, first.ID, secondLead.ID)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CaptureRequest)
	}{
		{"empty name", func(r *CaptureRequest) { r.Name = "" }},
		{"whitespace name", func(r *CaptureRequest) { r.Name = "   " }},
		{"empty phone", func(r *CaptureRequest) { r.Phone = "" }},
		{"empty email", func(r *CaptureRequest) { r.Email = "" }},
		{"whitespace email", func(r *CaptureRequest) { r.Email = "   " }},
		{"bad intent", func(r *CaptureRequest) { r.BuyingFor = "Rental" }},
		{"empty budget", func(r *CaptureRequest) { r.Budget = "" }},
		{"bad budget", func(r *CaptureRequest) { r.Budget = "₹ 1L" }},
		{"bad config", func(r *CaptureRequest) { r.InterestedConfig = "6 BHK" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			req := validCapture()
			tt.mutate(&req)

			_, _, err := env.capture.Submit(req)
			require.ErrorIs(t, err, ErrInvalidLead)

			// A rejected submission is a no-op
			assert.Empty(t, env.state.GetLeads())
			assert.False(t, env.state.GetSessionState().Unlocked)
		})
	}
}

func TestSubmitOptionalFields(t *testing.T) {
	env := newTestEnv(t)

	// Only configuration interest and project attribution are optional
	req := validCapture()
	req.InterestedConfig = ""
	req.ProjectID = ""

	lead, _, err := env.capture.Submit(req)
	require.NoError(t, err)
	assert.Empty(t, lead.InterestedConfig)
	assert.Empty(t, lead.ProjectID)
	assert.Equal(t, "asha@example.com", lead.Email)
}

func TestSubmitUnknownProject(t *testing.T) {
	env := newTestEnv(t)

	req := validCapture()
	req.ProjectID = "p404"

	_, _, err := env.capture.Submit(req)
	require.ErrorIs(t, err, ErrUnknownProject)
	assert.Empty(t, env.state.GetLeads())
}

func TestSubmitStoreFailureLeavesSessionLocked(t *testing.T) {
	env := newTestEnv(t)
	env.db.Close()

	_, _, err := env.capture.Submit(validCapture())
	require.Error(t, err)

	assert.Empty(t, env.state.GetLeads())
	assert.False(t, env.state.GetSessionState().Unlocked)
}
