// Package catalog holds the read-only exercise catalog, the muscle alias
// table, and the filtering engine that computes the library view.
package catalog

import "liftboard/workout-planner/internal/domain"

// Catalog is an immutable collection of exercise records with id lookup.
// It is built once at startup and shared read-only afterwards.
type Catalog struct {
	exercises []domain.Exercise
	byID      map[string]domain.Exercise
}

// New builds a catalog from the given records. Records with a duplicate id
// are dropped, first occurrence wins.
func New(exercises []domain.Exercise) *Catalog {
	c := &Catalog{
		exercises: make([]domain.Exercise, 0, len(exercises)),
		byID:      make(map[string]domain.Exercise, len(exercises)),
	}
	for _, ex := range exercises {
		if _, seen := c.byID[ex.ID]; seen {
			continue
		}
		c.byID[ex.ID] = ex
		c.exercises = append(c.exercises, ex)
	}
	return c
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.exercises)
}

// All returns the records in catalog order. The slice is a copy; callers
// may reorder it freely.
func (c *Catalog) All() []domain.Exercise {
	out := make([]domain.Exercise, len(c.exercises))
	copy(out, c.exercises)
	return out
}

// Lookup resolves an exercise id. The second return is false for dangling
// references, which callers are expected to skip rather than treat as an
// error.
func (c *Catalog) Lookup(id string) (domain.Exercise, bool) {
	ex, ok := c.byID[id]
	return ex, ok
}
