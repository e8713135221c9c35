package performance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinishOperationReleasesMarker(t *testing.T) {
	tracker := NewTracker()

	marker := tracker.StartOperation("test_operation")
	assert.Equal(t, 1, tracker.ActiveCount())

	marker.SetSuccess(true)
	tracker.FinishOperation(marker)

	assert.Equal(t, 0, tracker.ActiveCount())
	assert.Equal(t, 1, tracker.CompletedCount())
	assert.True(t, marker.Completed)
	assert.True(t, marker.Success)
	assert.False(t, marker.Duration < 0)
}

func TestFinishOperationAfterExplicitComplete(t *testing.T) {
	tracker := NewTracker()

	marker := tracker.StartOperation("test_operation")
	marker.Complete()
	firstDuration := marker.Duration

	tracker.FinishOperation(marker)

	assert.Equal(t, 0, tracker.ActiveCount())
	assert.Equal(t, firstDuration, marker.Duration, "double completion must not re-stamp the marker")
}

func TestCompletedWindowBounded(t *testing.T) {
	tracker := NewTracker()

	for i := 0; i < 300; i++ {
		tracker.FinishOperation(tracker.StartOperation("test_operation"))
	}

	assert.Equal(t, 0, tracker.ActiveCount())
	assert.Equal(t, 256, tracker.CompletedCount())
}

func TestMarkerSetError(t *testing.T) {
	tracker := NewTracker()

	marker := tracker.StartOperation("test_operation")
	marker.SetError(errors.New("boom"))
	tracker.FinishOperation(marker)

	assert.False(t, marker.Success)
	assert.Equal(t, "boom", marker.Error)
}
