package reindex

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressTrackerReporting(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 100, 10)

	tracker.Start()
	tracker.Update(5)
	assert.Empty(t, buf.String(), "should not report below the interval")

	tracker.Update(10)
	assert.Contains(t, buf.String(), "10/100")
	assert.Contains(t, buf.String(), "10.0%")

	tracker.Finish()
	assert.Contains(t, buf.String(), "100/100")
	assert.Contains(t, buf.String(), "100.0%")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"), "finish should end the line")
}

func TestProgressTrackerIncrement(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 50, 25)

	tracker.Start()
	tracker.Increment(10)
	tracker.Increment(10)
	assert.Empty(t, buf.String())

	tracker.Increment(10)
	assert.Contains(t, buf.String(), "30/50")

	// Increments past the total are capped
	tracker.Increment(1000)
	assert.Contains(t, buf.String(), "50/50")
}

func TestProgressTrackerNotStarted(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10, 1)

	tracker.Update(5)
	tracker.Increment(5)
	tracker.Finish()

	assert.Empty(t, buf.String(), "should be inert before Start")
	assert.Zero(t, tracker.Elapsed())
}
