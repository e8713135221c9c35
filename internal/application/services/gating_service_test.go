package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	g := NewGatingService()

	tests := []struct {
		name         string
		unlocked     bool
		resourceType string
		projectID    string
		want         GateDecision
	}{
		{"listing while locked", false, ResourceListing, "", GateDecision{Show: true}},
		{"listing while unlocked", true, ResourceListing, "", GateDecision{Show: true}},
		{"detail while locked", false, ResourceDetail, "p1", GateDecision{RequiresCapture: true, TargetProjectID: "p1"}},
		{"detail while unlocked", true, ResourceDetail, "p1", GateDecision{Show: true}},
		{"detail while locked without target", false, ResourceDetail, "", GateDecision{RequiresCapture: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Decide(tt.unlocked, tt.resourceType, tt.projectID)
			assert.Equal(t, tt.want, got)
			assert.False(t, got.Show && got.RequiresCapture, "decision must be exclusive")
		})
	}
}
