package ingest

import "strings"

// Popularity estimates how well-known an exercise is from its name alone,
// so the big compound lifts can be surfaced first in an otherwise unranked
// export. Base 50, fixed boosts for staple lift names, fixed penalties for
// niche variants and apparatus, clamped to [0, 100].
const popularityBase = 50

var popularityBoosts = map[string]int{
	"bench press":    20,
	"squat":          20,
	"deadlift":       20,
	"pull up":        15,
	"pull-up":        15,
	"chin up":        12,
	"overhead press": 12,
	"shoulder press": 10,
	"row":            10,
	"dip":            10,
	"lunge":          10,
	"curl":           8,
	"plank":          8,
	"crunch":         6,
	"raise":          5,
	"pulldown":       5,
}

var popularityPenalties = map[string]int{
	"smith":       12,
	"lever":       10,
	"sled":        8,
	"suspension":  15,
	"band":        10,
	"alternating": 5,
	"single leg":  5,
	"single arm":  5,
	"isometric":   8,
	"partial":     10,
}

// Popularity scores an exercise name. Every matching boost and penalty is
// applied, then the result is clamped to [0, 100].
func Popularity(name string) int {
	n := strings.ToLower(name)
	score := popularityBase
	for kw, boost := range popularityBoosts {
		if strings.Contains(n, kw) {
			score += boost
		}
	}
	for kw, penalty := range popularityPenalties {
		if strings.Contains(n, kw) {
			score -= penalty
		}
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
