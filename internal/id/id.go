// Package id allocates integer record ids.
package id

import "github.com/rogersnm/teamboard/internal/model"

// Identified is any record carrying an integer id.
type Identified interface {
	GetID() model.ID
}

// Next returns max(existing ids)+1, or 1 for an empty collection. It scans
// the whole collection on every call, so deleting the highest id frees it.
func Next[T Identified](items []T) model.ID {
	var maxID model.ID
	for _, it := range items {
		if v := it.GetID(); v > maxID {
			maxID = v
		}
	}
	return maxID + 1
}
