package catalog

import (
	"sort"
	"strings"

	"liftboard/workout-planner/internal/domain"
)

// FilterAll is the wildcard value for the equipment and body-part filters.
const FilterAll = "all"

// Query is the filter state for one library view: a free-text search term
// plus equipment and body-part selections ("all" disables a criterion).
type Query struct {
	Search    string
	Equipment string
	BodyPart  string
}

// Filter computes the filtered, sorted library view. It is a pure function
// of the catalog, the alias table and the query; it never fails, an empty
// result is an empty slice.
//
// Matching exercises satisfy the equipment and body-part selections, and,
// when a search term is present, match it by name, by muscle identifier, or
// through alias expansion. When a body-part filter is active, exercises
// whose primary muscle equals the selection sort before all others; name
// order breaks ties.
func (c *Catalog) Filter(q Query, aliases AliasTable) []domain.Exercise {
	filtered := make([]domain.Exercise, 0, len(c.exercises))

	equipment := q.Equipment
	if equipment == "" {
		equipment = FilterAll
	}
	bodyPart := q.BodyPart
	if bodyPart == "" {
		bodyPart = FilterAll
	}

	term := strings.ToLower(strings.TrimSpace(q.Search))
	aliasMuscles := aliases.Expand(term)

	for _, ex := range c.exercises {
		if equipment != FilterAll && string(ex.Equipment) != equipment {
			continue
		}
		if bodyPart != FilterAll && !ex.Targets(domain.Muscle(bodyPart)) {
			continue
		}
		if term != "" && !matchesTerm(ex, term, aliasMuscles) {
			continue
		}
		filtered = append(filtered, ex)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if bodyPart != FilterAll {
			aPrimary := string(a.PrimaryMuscle) == bodyPart
			bPrimary := string(b.PrimaryMuscle) == bodyPart
			if aPrimary != bPrimary {
				return aPrimary
			}
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})

	return filtered
}

func matchesTerm(ex domain.Exercise, term string, aliasMuscles []domain.Muscle) bool {
	if strings.Contains(strings.ToLower(ex.Name), term) {
		return true
	}
	if strings.Contains(string(ex.PrimaryMuscle), term) {
		return true
	}
	for _, m := range ex.SupportingMuscles {
		if strings.Contains(string(m), term) {
			return true
		}
	}
	for _, m := range aliasMuscles {
		if ex.Targets(m) {
			return true
		}
	}
	return false
}
