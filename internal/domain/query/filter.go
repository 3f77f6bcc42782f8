// Package query implements the read-side filter projection over the
// task collection. Filters are pure predicates: composition is a
// logical AND across dimensions and never mutates the input.
package query

import (
	"github.com/creativepulse/core/internal/domain/entities"
)

// All is the sentinel meaning "no constraint" for a string dimension.
// An empty string is treated the same way.
const All = "All"

// FilterState holds the ephemeral query parameters for one projection.
// It is reconstructed per request and never persisted.
type FilterState struct {
	Brand    string
	Pic      string
	Campaign string

	// Date bounds over the scheduling fields. StartDate excludes tasks
	// scheduled to begin earlier; EndDate excludes tasks due later.
	StartDate *entities.Date
	EndDate   *entities.Date
}

func active(dim string) bool {
	return dim != "" && dim != All
}

// Matches reports whether the task passes every active dimension.
func Matches(t *entities.Task, f FilterState) bool {
	if active(f.Brand) && t.Brand != f.Brand {
		return false
	}
	if active(f.Pic) && t.Pic != f.Pic {
		return false
	}
	if active(f.Campaign) && t.Campaign != f.Campaign {
		return false
	}
	if f.StartDate != nil && !f.StartDate.IsZero() && t.StartDate.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && !f.EndDate.IsZero() && t.EndDate.After(*f.EndDate) {
		return false
	}
	return true
}

// Apply projects the matching subset into a fresh slice. The input
// slice and its tasks are left untouched.
func Apply(tasks []*entities.Task, f FilterState) []*entities.Task {
	out := make([]*entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if Matches(t, f) {
			out = append(out, t)
		}
	}
	return out
}
