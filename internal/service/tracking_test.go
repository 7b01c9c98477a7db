package service

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var trackingIDPattern = regexp.MustCompile(`^WEDORA-\d{8}-[0-9A-F]{6}$`)

func TestNewTrackingIDFormat(t *testing.T) {
	id := NewTrackingID(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC))

	assert.Regexp(t, trackingIDPattern, id)
	assert.True(t, strings.HasPrefix(id, "WEDORA-20260314-"))
}

func TestNewTrackingIDUsesUTCDate(t *testing.T) {
	// 02:30 in UTC+6 is still the previous day in UTC.
	dhaka := time.FixedZone("UTC+6", 6*60*60)
	id := NewTrackingID(time.Date(2026, 1, 1, 2, 30, 0, 0, dhaka))

	assert.True(t, strings.HasPrefix(id, "WEDORA-20251231-"), "got %s", id)
}

func TestNewTrackingIDUniqueness(t *testing.T) {
	now := time.Now()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := NewTrackingID(now)
		assert.False(t, seen[id], "duplicate tracking id %s", id)
		seen[id] = true
	}
}
