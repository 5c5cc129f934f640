package catalog

import (
	"strings"

	"liftboard/workout-planner/internal/domain"
)

// AliasTable maps colloquial search terms to canonical muscle identifiers.
// It grows with the catalog but is fixed at build time.
type AliasTable map[string][]domain.Muscle

// DefaultAliases returns the bundled alias table.
func DefaultAliases() AliasTable {
	return AliasTable{
		"chest":     {domain.MusclePectorals},
		"pecs":      {domain.MusclePectorals},
		"back":      {domain.MuscleLats, domain.MuscleTraps, domain.MuscleLowerBack},
		"legs":      {domain.MuscleQuadriceps, domain.MuscleHamstrings, domain.MuscleCalves, domain.MuscleGlutes},
		"quads":     {domain.MuscleQuadriceps},
		"arms":      {domain.MuscleBiceps, domain.MuscleTriceps, domain.MuscleForearms},
		"abs":       {domain.MuscleAbdominals, domain.MuscleObliques},
		"core":      {domain.MuscleAbdominals, domain.MuscleObliques, domain.MuscleLowerBack},
		"shoulders": {domain.MuscleShoulders, domain.MuscleTraps},
	}
}

// Expand collects every muscle mapped from an alias that matches the term.
// The match is a bidirectional substring check: the alias may contain the
// term or the term may contain the alias. That is deliberately permissive;
// short terms match many aliases, and that behavior is part of the search
// contract. The term must already be lowercased and trimmed.
func (t AliasTable) Expand(term string) []domain.Muscle {
	if term == "" {
		return nil
	}
	var muscles []domain.Muscle
	for alias, mapped := range t {
		if strings.Contains(alias, term) || strings.Contains(term, alias) {
			muscles = append(muscles, mapped...)
		}
	}
	return muscles
}
