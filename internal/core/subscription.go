package core

import (
	"fmt"
	"time"
)

// SubscriptionValid reports whether an account expiring at expiry may still
// log in at now. The boundary is inclusive: an account expiring exactly now
// is valid.
func SubscriptionValid(expiry, now time.Time) bool {
	return !now.After(expiry)
}

// ExpiryFrom adds days whole calendar days to from, crossing month and year
// boundaries correctly. days must be at least 1.
func ExpiryFrom(from time.Time, days int) (time.Time, error) {
	if days < 1 {
		return time.Time{}, fmt.Errorf("days must be at least 1, got %d", days)
	}
	return from.AddDate(0, 0, days), nil
}
