// Package ingest transforms a third-party exercise-database export into
// catalog records: free-text muscle and equipment labels are mapped onto
// the closed enumerations by keyword heuristics, records are deduplicated
// by source id, and a heuristic popularity score is attached.
package ingest

import (
	"strings"

	"liftboard/workout-planner/internal/domain"
)

// keyword tables are ordered: the first keyword contained in the lowercased
// label wins, so more specific keywords must come before generic ones
// ("lower back" before "back").

type muscleKeyword struct {
	keyword string
	muscle  domain.Muscle
}

var muscleKeywords = []muscleKeyword{
	{"pectoral", domain.MusclePectorals},
	{"chest", domain.MusclePectorals},
	{"lower back", domain.MuscleLowerBack},
	{"erector", domain.MuscleLowerBack},
	{"spine", domain.MuscleLowerBack},
	{"upper back", domain.MuscleUpperBack},
	{"rhomboid", domain.MuscleUpperBack},
	{"lat", domain.MuscleLats},
	{"trap", domain.MuscleTraps},
	{"rear delt", domain.MuscleRearDeltoids},
	{"posterior delt", domain.MuscleRearDeltoids},
	{"delt", domain.MuscleShoulders},
	{"shoulder", domain.MuscleShoulders},
	{"bicep", domain.MuscleBiceps},
	{"tricep", domain.MuscleTriceps},
	{"forearm", domain.MuscleForearms},
	{"wrist", domain.MuscleForearms},
	{"oblique", domain.MuscleObliques},
	{"abdom", domain.MuscleAbdominals},
	{"abs", domain.MuscleAbdominals},
	{"core", domain.MuscleAbdominals},
	{"quad", domain.MuscleQuadriceps},
	{"hamstring", domain.MuscleHamstrings},
	{"glute", domain.MuscleGlutes},
	{"adductor", domain.MuscleAdductors},
	{"inner thigh", domain.MuscleAdductors},
	{"abductor", domain.MuscleAbductors},
	{"calves", domain.MuscleCalves},
	{"calf", domain.MuscleCalves},
	{"gastrocnemius", domain.MuscleCalves},
	{"soleus", domain.MuscleCalves},
	{"shin", domain.MuscleShins},
	{"tibialis", domain.MuscleShins},
}

type equipmentKeyword struct {
	keyword   string
	equipment domain.Equipment
}

var equipmentKeywords = []equipmentKeyword{
	{"barbell", domain.EquipmentBarbell},
	{"ez bar", domain.EquipmentBarbell},
	{"olympic", domain.EquipmentBarbell},
	{"trap bar", domain.EquipmentBarbell},
	{"dumbbell", domain.EquipmentDumbbell},
	{"kettlebell", domain.EquipmentKettlebell},
	{"cable", domain.EquipmentCables},
	{"band", domain.EquipmentBands},
	{"machine", domain.EquipmentMachine},
	{"lever", domain.EquipmentMachine},
	{"smith", domain.EquipmentMachine},
	{"sled", domain.EquipmentMachine},
	{"body weight", domain.EquipmentBodyweight},
	{"bodyweight", domain.EquipmentBodyweight},
	{"assisted", domain.EquipmentBodyweight},
}

// MapMuscle resolves a free-text muscle label to a canonical muscle.
// Returns false when no keyword matches.
func MapMuscle(label string) (domain.Muscle, bool) {
	l := strings.ToLower(label)
	for _, kw := range muscleKeywords {
		if strings.Contains(l, kw.keyword) {
			return kw.muscle, true
		}
	}
	return "", false
}

// MapEquipment resolves a free-text equipment label. Returns false when no
// keyword matches; callers fall back to bodyweight.
func MapEquipment(label string) (domain.Equipment, bool) {
	l := strings.ToLower(label)
	for _, kw := range equipmentKeywords {
		if strings.Contains(l, kw.keyword) {
			return kw.equipment, true
		}
	}
	return "", false
}
