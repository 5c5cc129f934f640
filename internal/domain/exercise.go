package domain

// Muscle is a canonical anatomical tag used to classify exercise targets.
// The set is fixed at build time; catalog ingestion maps free-text labels
// onto it and drops anything that cannot be mapped.
type Muscle string

const (
	MuscleTraps        Muscle = "traps"
	MuscleShoulders    Muscle = "shoulders"
	MusclePectorals    Muscle = "pectorals"
	MuscleBiceps       Muscle = "biceps"
	MuscleForearms     Muscle = "forearms"
	MuscleAbdominals   Muscle = "abdominals"
	MuscleObliques     Muscle = "obliques"
	MuscleQuadriceps   Muscle = "quadriceps"
	MuscleCalves       Muscle = "calves"
	MuscleTriceps      Muscle = "triceps"
	MuscleLats         Muscle = "lats"
	MuscleLowerBack    Muscle = "lower_back"
	MuscleGlutes       Muscle = "glutes"
	MuscleHamstrings   Muscle = "hamstrings"
	MuscleUpperBack    Muscle = "upper_back"
	MuscleRearDeltoids Muscle = "rear_deltoids"
	MuscleAdductors    Muscle = "adductors"
	MuscleAbductors    Muscle = "abductors"
	MuscleShins        Muscle = "shins"
)

// AllMuscles lists every muscle in diagram order.
func AllMuscles() []Muscle {
	return []Muscle{
		MuscleTraps, MuscleShoulders, MusclePectorals, MuscleBiceps,
		MuscleForearms, MuscleAbdominals, MuscleObliques, MuscleQuadriceps,
		MuscleCalves, MuscleTriceps, MuscleLats, MuscleLowerBack,
		MuscleGlutes, MuscleHamstrings, MuscleUpperBack, MuscleRearDeltoids,
		MuscleAdductors, MuscleAbductors, MuscleShins,
	}
}

// Equipment categorizes what an exercise is performed with.
type Equipment string

const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentMachine    Equipment = "machine"
	EquipmentCables     Equipment = "cables"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentBands      Equipment = "bands"
)

// Difficulty is a rough skill rating for an exercise. Optional on a record.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Exercise is a single catalog record. Catalog records are immutable at
// runtime; the catalog is loaded once at startup and never mutated.
type Exercise struct {
	ID                string     `bson:"_id" json:"id"`
	Name              string     `bson:"name" json:"name"`
	PrimaryMuscle     Muscle     `bson:"primaryMuscle" json:"primaryMuscle"`
	SupportingMuscles []Muscle   `bson:"supportingMuscles" json:"supportingMuscles"`
	Equipment         Equipment  `bson:"equipment" json:"equipment"`
	Difficulty        Difficulty `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	Instructions      []string   `bson:"instructions,omitempty" json:"instructions,omitempty"`
	Tips              []string   `bson:"tips,omitempty" json:"tips,omitempty"`
	GifURL            string     `bson:"gifUrl,omitempty" json:"gifUrl,omitempty"`
	Popularity        int        `bson:"popularity,omitempty" json:"popularity,omitempty"`
}

// Targets reports whether the exercise works the given muscle either as its
// primary target or as a supporting muscle.
func (e Exercise) Targets(m Muscle) bool {
	if e.PrimaryMuscle == m {
		return true
	}
	for _, s := range e.SupportingMuscles {
		if s == m {
			return true
		}
	}
	return false
}
