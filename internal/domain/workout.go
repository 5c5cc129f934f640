package domain

// SetType distinguishes how a set is performed.
type SetType string

const (
	SetNormal  SetType = "normal"
	SetWarmup  SetType = "warmup"
	SetDrop    SetType = "drop"
	SetFailure SetType = "failure"
)

// WorkoutSet is a single performance unit within a plan entry. Reps is
// whatever the user entered; a zero value means no rep target was recorded.
// The store deliberately does not validate the value.
type WorkoutSet struct {
	Type SetType `bson:"type" json:"type"`
	Reps int     `bson:"reps" json:"reps"`
}

// WorkoutExercise places one exercise within a training day. The set order
// is significant: it is the user-visible set numbering. ExerciseID is not
// validated against the catalog; dangling references are tolerated and
// skipped wherever entries are resolved.
type WorkoutExercise struct {
	ExerciseID string       `bson:"exerciseId" json:"exerciseId"`
	Sets       []WorkoutSet `bson:"sets" json:"sets"`
	Notes      string       `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Clone returns a deep copy of the plan entry.
func (w WorkoutExercise) Clone() WorkoutExercise {
	out := w
	out.Sets = make([]WorkoutSet, len(w.Sets))
	copy(out.Sets, w.Sets)
	return out
}

// CloneEntries deep-copies an ordered day entry list. nil stays nil.
func CloneEntries(entries []WorkoutExercise) []WorkoutExercise {
	if entries == nil {
		return nil
	}
	out := make([]WorkoutExercise, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}

// WorkoutPlan maps a day number (1..trainingDays) to that day's ordered
// entry list. Keys outside the current day range may exist after the day
// count is reduced; they are kept rather than pruned, and simply not shown.
type WorkoutPlan map[int][]WorkoutExercise

// Clone returns a deep copy of the plan.
func (p WorkoutPlan) Clone() WorkoutPlan {
	if p == nil {
		return nil
	}
	out := make(WorkoutPlan, len(p))
	for day, entries := range p {
		out[day] = CloneEntries(entries)
	}
	return out
}
