//go:build unit || e2e

package builder

import "time"

// FixedNow is the reference instant every builder defaults to.
var FixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// FixedNowPtr returns &FixedNow when set is true and nil otherwise.
func FixedNowPtr(set bool) *time.Time {
	if !set {
		return nil
	}
	t := FixedNow
	return &t
}
