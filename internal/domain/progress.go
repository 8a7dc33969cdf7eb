package domain

import (
	"math"
	"sort"
	"time"
)

// RenewalProgress returns how much of the annual subscription ending at
// renewsAt has elapsed at now, as a percentage in [0, 100].
//
// A renewal date at or before now is fully elapsed (100). Otherwise the
// window is the year ending at renewsAt; a degenerate window yields 0.
func RenewalProgress(renewsAt, now time.Time) float64 {
	if !renewsAt.After(now) {
		return 100
	}

	start := renewsAt.AddDate(-1, 0, 0)
	windowDays := renewsAt.Sub(start).Hours() / 24
	if windowDays <= 0 {
		return 0
	}

	elapsedDays := now.Sub(start).Hours() / 24
	fraction := elapsedDays / windowDays
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	return fraction * 100
}

// DaysUntilRenewal returns whole days from now to renewsAt, rounded down, so
// any overdue renewal is negative.
func DaysUntilRenewal(renewsAt, now time.Time) int {
	return int(math.Floor(renewsAt.Sub(now).Hours() / 24))
}

// SortByUrgency orders domains in place: active before inactive, then by
// renewal date ascending (overdue first), then by name.
func SortByUrgency(domains []Domain) {
	sort.SliceStable(domains, func(i, j int) bool {
		a, b := domains[i], domains[j]
		if a.State != b.State {
			return a.State == DomainStateActive
		}
		if !a.RenewsAt.Equal(b.RenewsAt) {
			return a.RenewsAt.Before(b.RenewsAt)
		}
		return a.Name < b.Name
	})
}
