package service

import (
	"crypto/rand"
	"fmt"
	"time"
)

// NewTrackingID returns a customer-facing payment reference of the form
// WEDORA-YYYYMMDD-XXXXXX, where the date is the settlement day in UTC and
// the suffix is 6 random uppercase hex characters.
func NewTrackingID(now time.Time) string {
	var suffix [3]byte
	_, _ = rand.Read(suffix[:])

	return fmt.Sprintf("WEDORA-%s-%02X%02X%02X",
		now.UTC().Format("20060102"),
		suffix[0], suffix[1], suffix[2],
	)
}
