package planner

import "liftboard/workout-planner/internal/domain"

// ExerciseResolver resolves a plan entry's exercise id against the catalog.
// The boolean is false for dangling references.
type ExerciseResolver interface {
	Lookup(id string) (domain.Exercise, bool)
}

// CountingStrategy selects how sets are credited to muscles.
type CountingStrategy string

const (
	// CountWeighted credits each set fully to the primary muscle and at
	// half weight to every supporting muscle. This is the default.
	CountWeighted CountingStrategy = "weighted"
	// CountPrimaryOnly credits each set to the primary muscle alone.
	CountPrimaryOnly CountingStrategy = "primary"
)

const supportingSetWeight = 0.5

// Volume maps muscles to their aggregate training volume for one day.
// Muscles absent from the map are untrained; For resolves them to zero.
type Volume map[domain.Muscle]float64

// For returns the volume for a muscle, zero if untrained.
func (v Volume) For(m domain.Muscle) float64 { return v[m] }

// AggregateVolume computes per-muscle volume for one day's ordered entry
// list. Entries whose exercise id does not resolve are skipped silently;
// a dangling reference is never an error.
func AggregateVolume(entries []domain.WorkoutExercise, resolver ExerciseResolver, strategy CountingStrategy) Volume {
	volume := Volume{}
	for _, entry := range entries {
		ex, ok := resolver.Lookup(entry.ExerciseID)
		if !ok {
			continue
		}
		sets := float64(len(entry.Sets))
		volume[ex.PrimaryMuscle] += sets
		if strategy == CountPrimaryOnly {
			continue
		}
		for _, m := range ex.SupportingMuscles {
			volume[m] += supportingSetWeight * sets
		}
	}
	return volume
}

// VolumeTier is a qualitative bucket for presenting a volume score.
type VolumeTier string

const (
	TierUntrained VolumeTier = "untrained"
	TierLight     VolumeTier = "light"
	TierModerate  VolumeTier = "moderate"
	TierHigh      VolumeTier = "high"
	TierVeryHigh  VolumeTier = "very_high"
)

// TierThresholds holds the lower bounds (inclusive) of the moderate, high
// and very-high tiers. Anything above zero but below Moderate is light.
type TierThresholds struct {
	Moderate float64
	High     float64
	VeryHigh float64
}

// DefaultTierThresholds matches the heat-map coloring: (0,3) light,
// [3,6) moderate, [6,10) high, [10,inf) very high.
var DefaultTierThresholds = TierThresholds{Moderate: 3, High: 6, VeryHigh: 10}

// Classify buckets a volume score into its presentation tier.
func (t TierThresholds) Classify(v float64) VolumeTier {
	switch {
	case v <= 0:
		return TierUntrained
	case v >= t.VeryHigh:
		return TierVeryHigh
	case v >= t.High:
		return TierHigh
	case v >= t.Moderate:
		return TierModerate
	default:
		return TierLight
	}
}
