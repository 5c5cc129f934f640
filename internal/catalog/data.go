package catalog

import "liftboard/workout-planner/internal/domain"

// BuiltIn returns the bundled starter catalog. It seeds the exercises
// collection on first run and serves as a fallback when the collection is
// empty, so the app is usable before any ingestion has happened.
func BuiltIn() []domain.Exercise {
	return []domain.Exercise{
		{
			ID:                "1",
			Name:              "Bench Press",
			PrimaryMuscle:     domain.MusclePectorals,
			SupportingMuscles: []domain.Muscle{domain.MuscleShoulders, domain.MuscleTriceps},
			Equipment:         domain.EquipmentBarbell,
			Difficulty:        domain.DifficultyIntermediate,
			Instructions: []string{
				"Lie on a flat bench with your eyes under the bar.",
				"Grip the bar slightly wider than shoulder-width.",
				"Unrack the bar and lower it to your mid-chest.",
				"Press the bar back up until your arms are fully extended.",
			},
			Tips: []string{
				"Keep your feet flat on the floor for stability.",
				"Don't bounce the bar off your chest.",
				"Keep your elbows at a 45-degree angle.",
			},
		},
		{
			ID:                "2",
			Name:              "Squat",
			PrimaryMuscle:     domain.MuscleQuadriceps,
			SupportingMuscles: []domain.Muscle{domain.MuscleGlutes, domain.MuscleHamstrings, domain.MuscleLowerBack},
			Equipment:         domain.EquipmentBarbell,
			Difficulty:        domain.DifficultyAdvanced,
			Instructions: []string{
				"Stand with feet shoulder-width apart, bar resting on your upper back.",
				"Break at the hips and knees to lower yourself.",
				"Keep your chest up and back straight.",
				"Lower until your thighs are parallel to the floor.",
				"Drive back up through your heels.",
			},
			Tips: []string{
				"Keep your knees in line with your toes.",
				"Brace your core before descending.",
				"Look straight ahead, not down.",
			},
		},
		{
			ID:                "3",
			Name:              "Deadlift",
			PrimaryMuscle:     domain.MuscleLowerBack,
			SupportingMuscles: []domain.Muscle{domain.MuscleHamstrings, domain.MuscleGlutes, domain.MuscleTraps, domain.MuscleForearms},
			Equipment:         domain.EquipmentBarbell,
			Difficulty:        domain.DifficultyAdvanced,
			Instructions: []string{
				"Stand with feet hip-width apart, mid-foot under the bar.",
				"Bend over and grab the bar shoulder-width apart.",
				"Bend your knees until your shins touch the bar.",
				"Lift your chest up and straighten your lower back.",
				"Pull the bar up by extending your hips and knees.",
			},
			Tips: []string{
				"Keep the bar close to your body throughout the lift.",
				"Don't round your back.",
				"Squeeze your glutes at the top.",
			},
		},
		{
			ID:                "4",
			Name:              "Pull Up",
			PrimaryMuscle:     domain.MuscleLats,
			SupportingMuscles: []domain.Muscle{domain.MuscleBiceps, domain.MuscleForearms},
			Equipment:         domain.EquipmentBodyweight,
			Difficulty:        domain.DifficultyIntermediate,
		},
		{
			ID:                "5",
			Name:              "Overhead Press",
			PrimaryMuscle:     domain.MuscleShoulders,
			SupportingMuscles: []domain.Muscle{domain.MuscleTriceps},
			Equipment:         domain.EquipmentBarbell,
			Difficulty:        domain.DifficultyIntermediate,
		},
		{
			ID:                "6",
			Name:              "Barbell Row",
			PrimaryMuscle:     domain.MuscleLats,
			SupportingMuscles: []domain.Muscle{domain.MuscleTraps, domain.MuscleBiceps, domain.MuscleLowerBack},
			Equipment:         domain.EquipmentBarbell,
			Difficulty:        domain.DifficultyIntermediate,
		},
		{
			ID:                "7",
			Name:              "Dips",
			PrimaryMuscle:     domain.MuscleTriceps,
			SupportingMuscles: []domain.Muscle{domain.MusclePectorals, domain.MuscleShoulders},
			Equipment:         domain.EquipmentBodyweight,
			Difficulty:        domain.DifficultyIntermediate,
		},
		{
			ID:                "8",
			Name:              "Lunges",
			PrimaryMuscle:     domain.MuscleQuadriceps,
			SupportingMuscles: []domain.Muscle{domain.MuscleGlutes, domain.MuscleHamstrings},
			Equipment:         domain.EquipmentDumbbell,
			Difficulty:        domain.DifficultyBeginner,
		},
		{
			ID:                "9",
			Name:              "Crunches",
			PrimaryMuscle:     domain.MuscleAbdominals,
			SupportingMuscles: []domain.Muscle{},
			Equipment:         domain.EquipmentBodyweight,
			Difficulty:        domain.DifficultyBeginner,
		},
		{
			ID:                "10",
			Name:              "Calf Raises",
			PrimaryMuscle:     domain.MuscleCalves,
			SupportingMuscles: []domain.Muscle{},
			Equipment:         domain.EquipmentMachine,
			Difficulty:        domain.DifficultyBeginner,
		},
		{
			ID:                "11",
			Name:              "Lat Pulldown",
			PrimaryMuscle:     domain.MuscleLats,
			SupportingMuscles: []domain.Muscle{domain.MuscleBiceps, domain.MuscleForearms},
			Equipment:         domain.EquipmentCables,
			Difficulty:        domain.DifficultyBeginner,
		},
		{
			ID:                "12",
			Name:              "Leg Press",
			PrimaryMuscle:     domain.MuscleQuadriceps,
			SupportingMuscles: []domain.Muscle{domain.MuscleGlutes, domain.MuscleHamstrings},
			Equipment:         domain.EquipmentMachine,
			Difficulty:        domain.DifficultyBeginner,
		},
		{
			ID:                "13",
			Name:              "Leg Curl",
			PrimaryMuscle:     domain.MuscleHamstrings,
			SupportingMuscles: []domain.Muscle{domain.MuscleGlutes},
			Equipment:         domain.EquipmentMachine,
			Difficulty:        domain.DifficultyBeginner,
		},
		{
			ID:                "14",
			Name:              "Leg Extension",
			PrimaryMuscle:     domain.MuscleQuadriceps,
			SupportingMuscles: []domain.Muscle{},
			Equipment:         domain.EquipmentMachine,
			Difficulty:        domain.DifficultyBeginner,
		},
		{
			ID:                "15",
			Name:              "Face Pull",
			PrimaryMuscle:     domain.MuscleShoulders,
			SupportingMuscles: []domain.Muscle{domain.MuscleTraps},
			Equipment:         domain.EquipmentCables,
			Difficulty:        domain.DifficultyBeginner,
		},
		{
			ID:                "16",
			Name:              "Lateral Raise",
			PrimaryMuscle:     domain.MuscleShoulders,
			SupportingMuscles: []domain.Muscle{domain.MuscleTraps},
			Equipment:         domain.EquipmentDumbbell,
			Difficulty:        domain.DifficultyBeginner,
		},
		{
			ID:                "17",
			Name:              "Bicep Curl",
			PrimaryMuscle:     domain.MuscleBiceps,
			SupportingMuscles: []domain.Muscle{domain.MuscleForearms},
			Equipment:         domain.EquipmentDumbbell,
			Difficulty:        domain.DifficultyBeginner,
		},
		{
			ID:                "18",
			Name:              "Tricep Extension",
			PrimaryMuscle:     domain.MuscleTriceps,
			SupportingMuscles: []domain.Muscle{},
			Equipment:         domain.EquipmentCables,
			Difficulty:        domain.DifficultyBeginner,
		},
		{
			ID:                "19",
			Name:              "Russian Twist",
			PrimaryMuscle:     domain.MuscleObliques,
			SupportingMuscles: []domain.Muscle{domain.MuscleAbdominals},
			Equipment:         domain.EquipmentBodyweight,
			Difficulty:        domain.DifficultyBeginner,
		},
		{
			ID:                "20",
			Name:              "Plank",
			PrimaryMuscle:     domain.MuscleAbdominals,
			SupportingMuscles: []domain.Muscle{domain.MuscleShoulders, domain.MuscleLowerBack},
			Equipment:         domain.EquipmentBodyweight,
			Difficulty:        domain.DifficultyBeginner,
		},
		{
			ID:                "21",
			Name:              "Romanian Deadlift",
			PrimaryMuscle:     domain.MuscleHamstrings,
			SupportingMuscles: []domain.Muscle{domain.MuscleGlutes, domain.MuscleLowerBack, domain.MuscleForearms},
			Equipment:         domain.EquipmentBarbell,
			Difficulty:        domain.DifficultyIntermediate,
		},
		{
			ID:                "22",
			Name:              "Incline Bench Press",
			PrimaryMuscle:     domain.MusclePectorals,
			SupportingMuscles: []domain.Muscle{domain.MuscleShoulders, domain.MuscleTriceps},
			Equipment:         domain.EquipmentBarbell,
			Difficulty:        domain.DifficultyIntermediate,
		},
		{
			ID:                "23",
			Name:              "Hammer Curl",
			PrimaryMuscle:     domain.MuscleBiceps,
			SupportingMuscles: []domain.Muscle{domain.MuscleForearms},
			Equipment:         domain.EquipmentDumbbell,
			Difficulty:        domain.DifficultyBeginner,
		},
		{
			ID:                "24",
			Name:              "Shrugs",
			PrimaryMuscle:     domain.MuscleTraps,
			SupportingMuscles: []domain.Muscle{domain.MuscleForearms},
			Equipment:         domain.EquipmentDumbbell,
			Difficulty:        domain.DifficultyBeginner,
		},
	}
}
