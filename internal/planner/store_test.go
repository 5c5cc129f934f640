package planner

import (
	"testing"

	"liftboard/workout-planner/internal/domain"
)

func entryIDs(entries []domain.WorkoutExercise) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ExerciseID
	}
	return ids
}

func sameEntryIDs(t *testing.T, got []domain.WorkoutExercise, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("day has entries %v, want %v", entryIDs(got), want)
	}
	for i := range want {
		if got[i].ExerciseID != want[i] {
			t.Fatalf("day has entries %v, want %v", entryIDs(got), want)
		}
	}
}

// TestNewStoreDefaults verifies the fresh-store defaults.
func TestNewStoreDefaults(t *testing.T) {
	s := NewStore()
	if s.TrainingDays() != DefaultTrainingDays {
		t.Errorf("TrainingDays = %d, want %d", s.TrainingDays(), DefaultTrainingDays)
	}
	if s.CurrentDay() != 1 {
		t.Errorf("CurrentDay = %d, want 1", s.CurrentDay())
	}
	if len(s.Plan()) != 0 {
		t.Errorf("fresh plan is not empty: %v", s.Plan())
	}
}

// TestToggleExercise verifies the add/remove involution: the first toggle
// appends an entry with one default set, the second removes it entirely
// regardless of accumulated sets.
func TestToggleExercise(t *testing.T) {
	s := NewStore()

	s.ToggleExercise("1")
	day := s.Day(1)
	sameEntryIDs(t, day, []string{"1"})
	if len(day[0].Sets) != 1 {
		t.Fatalf("new entry has %d sets, want 1", len(day[0].Sets))
	}
	if got := day[0].Sets[0]; got.Type != domain.SetNormal || got.Reps != 10 {
		t.Errorf("default set = %+v, want normal/10", got)
	}

	// Removal discards the entry and everything on it.
	s.AddSet("1")
	s.AddSet("1")
	s.ToggleExercise("1")
	sameEntryIDs(t, s.Day(1), nil)

	// Re-adding starts over with a single default set.
	s.ToggleExercise("1")
	if got := len(s.Day(1)[0].Sets); got != 1 {
		t.Errorf("re-added entry has %d sets, want 1", got)
	}
}

// TestToggleExerciseScopedToCurrentDay verifies that toggling only looks at
// the active day, so the same exercise can sit on several days.
func TestToggleExerciseScopedToCurrentDay(t *testing.T) {
	s := NewStore()
	s.ToggleExercise("1")
	s.SetCurrentDay(2)
	s.ToggleExercise("1")

	sameEntryIDs(t, s.Day(1), []string{"1"})
	sameEntryIDs(t, s.Day(2), []string{"1"})
}

// TestSetOperations exercises AddSet, RemoveSet and UpdateSet including
// their silent no-op edge cases.
func TestSetOperations(t *testing.T) {
	s := NewStore()
	s.ToggleExercise("1")
	s.AddSet("1")
	s.AddSet("1")

	if got := len(s.Day(1)[0].Sets); got != 3 {
		t.Fatalf("entry has %d sets, want 3", got)
	}

	s.UpdateSet("1", 0, SetTypeUpdate{Type: domain.SetWarmup})
	s.UpdateSet("1", 2, SetRepsUpdate{Reps: 5})
	sets := s.Day(1)[0].Sets
	if sets[0].Type != domain.SetWarmup || sets[0].Reps != 10 {
		t.Errorf("set 0 = %+v, want warmup/10", sets[0])
	}
	if sets[2].Type != domain.SetNormal || sets[2].Reps != 5 {
		t.Errorf("set 2 = %+v, want normal/5", sets[2])
	}

	// Rep values are stored as supplied, negatives included.
	s.UpdateSet("1", 1, SetRepsUpdate{Reps: -3})
	if got := s.Day(1)[0].Sets[1].Reps; got != -3 {
		t.Errorf("set 1 reps = %d, want -3", got)
	}

	s.RemoveSet("1", 0)
	if got := len(s.Day(1)[0].Sets); got != 2 {
		t.Fatalf("entry has %d sets after removal, want 2", got)
	}

	// Missing entries and out-of-range indexes are ignored.
	s.AddSet("missing")
	s.RemoveSet("1", 99)
	s.RemoveSet("1", -1)
	s.UpdateSet("missing", 0, SetRepsUpdate{Reps: 1})
	s.UpdateSet("1", 99, SetRepsUpdate{Reps: 1})
	if got := len(s.Day(1)[0].Sets); got != 2 {
		t.Errorf("no-op operations changed the set count to %d", got)
	}
}

// TestMoveExercise verifies neighbor swaps and the boundary no-ops.
func TestMoveExercise(t *testing.T) {
	s := NewStore()
	s.ToggleExercise("a")
	s.ToggleExercise("b")
	s.ToggleExercise("c")

	s.MoveExercise(0, MoveUp) // already first
	sameEntryIDs(t, s.Day(1), []string{"a", "b", "c"})

	s.MoveExercise(2, MoveDown) // already last
	sameEntryIDs(t, s.Day(1), []string{"a", "b", "c"})

	s.MoveExercise(1, MoveUp)
	sameEntryIDs(t, s.Day(1), []string{"b", "a", "c"})

	s.MoveExercise(1, MoveDown)
	sameEntryIDs(t, s.Day(1), []string{"b", "c", "a"})

	s.MoveExercise(99, MoveUp) // out of range
	s.MoveExercise(-1, MoveDown)
	sameEntryIDs(t, s.Day(1), []string{"b", "c", "a"})
}

// TestCopyPasteDay verifies clipboard semantics: deep copies both ways, an
// empty-day copy keeps the previous clipboard, an empty clipboard makes
// paste a no-op.
func TestCopyPasteDay(t *testing.T) {
	s := NewStore()
	s.ToggleExercise("1")
	s.AddSet("1")

	// Paste before any copy does nothing.
	s.SetCurrentDay(2)
	s.PasteDay()
	sameEntryIDs(t, s.Day(2), nil)

	s.SetCurrentDay(1)
	s.CopyDay()
	s.SetCurrentDay(2)
	s.PasteDay()
	sameEntryIDs(t, s.Day(2), []string{"1"})

	// The pasted entries are independent of the source day.
	s.AddSet("1")
	if got, want := len(s.Day(2)[0].Sets), 3; got != want {
		t.Fatalf("day 2 entry has %d sets, want %d", got, want)
	}
	if got := len(s.Day(1)[0].Sets); got != 2 {
		t.Errorf("mutating day 2 leaked into day 1: %d sets", got)
	}

	// Copying an empty day keeps the clipboard.
	s.SetCurrentDay(3)
	s.CopyDay()
	if s.ClipboardLen() == 0 {
		t.Fatal("empty-day copy cleared the clipboard")
	}
	s.PasteDay()
	sameEntryIDs(t, s.Day(3), []string{"1"})

	// Pasting twice onto the same day replaces, never appends.
	s.PasteDay()
	sameEntryIDs(t, s.Day(3), []string{"1"})
}

// TestClearDay verifies that clearing empties only the active day.
func TestClearDay(t *testing.T) {
	s := NewStore()
	s.ToggleExercise("1")
	s.SetCurrentDay(2)
	s.ToggleExercise("2")
	s.SetCurrentDay(1)

	s.ClearDay()
	sameEntryIDs(t, s.Day(1), nil)
	sameEntryIDs(t, s.Day(2), []string{"2"})
}

// TestSetTrainingDaysIsLax verifies that shrinking the day count does not
// prune plan data or clamp the active day; hidden days survive a
// round trip back to a larger count.
func TestSetTrainingDaysIsLax(t *testing.T) {
	s := NewStore()
	s.SetCurrentDay(5)
	s.ToggleExercise("1")

	s.SetTrainingDays(2)
	if s.CurrentDay() != 5 {
		t.Errorf("CurrentDay = %d after shrink, want 5", s.CurrentDay())
	}
	sameEntryIDs(t, s.Day(5), []string{"1"})

	s.SetTrainingDays(6)
	sameEntryIDs(t, s.Day(5), []string{"1"})
}

// TestApplyTemplate verifies wholesale replacement: day count, plan and the
// active-day reset, with the template itself staying untouched.
func TestApplyTemplate(t *testing.T) {
	s := NewStore()
	s.SetCurrentDay(3)
	s.ToggleExercise("99")

	tmpl := domain.WorkoutTemplate{
		Name: "Test Split",
		Days: 4,
		Plan: domain.WorkoutPlan{
			1: {{ExerciseID: "1", Sets: []domain.WorkoutSet{{Type: domain.SetNormal, Reps: 8}}}},
		},
	}
	s.ApplyTemplate(tmpl)

	if s.TrainingDays() != 4 {
		t.Errorf("TrainingDays = %d, want 4", s.TrainingDays())
	}
	if s.CurrentDay() != 1 {
		t.Errorf("CurrentDay = %d, want 1", s.CurrentDay())
	}
	sameEntryIDs(t, s.Day(1), []string{"1"})
	sameEntryIDs(t, s.Day(3), nil)

	// Mutations after applying must not reach the template value.
	s.AddSet("1")
	if got := len(tmpl.Plan[1][0].Sets); got != 1 {
		t.Errorf("template mutated through the store: %d sets", got)
	}
}

// TestExportSnapshot verifies the snapshot shape and that it is a deep copy.
func TestExportSnapshot(t *testing.T) {
	s := NewStore()
	s.SetTrainingDays(4)
	s.ToggleExercise("1")

	snap := s.ExportSnapshot()
	if snap.Version != domain.SnapshotVersion {
		t.Errorf("Version = %d, want %d", snap.Version, domain.SnapshotVersion)
	}
	if snap.TrainingDays != 4 {
		t.Errorf("TrainingDays = %d, want 4", snap.TrainingDays)
	}
	if snap.Timestamp.IsZero() {
		t.Error("Timestamp is zero")
	}

	snap.WorkoutPlan[1][0].Sets[0].Reps = 99
	if got := s.Day(1)[0].Sets[0].Reps; got != 10 {
		t.Errorf("mutating the snapshot changed the store: reps = %d", got)
	}
}

// TestImportSnapshot covers the lenient import contract: fields apply
// independently, unknown shapes are ignored, and only unparseable JSON is
// an error.
func TestImportSnapshot(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		s := NewStore()
		payload := []byte(`{
			"trainingDays": 5,
			"workoutPlan": {
				"1": [{"exerciseId": "7", "sets": [{"type": "drop", "reps": 12}]}]
			},
			"version": 1
		}`)
		if err := s.ImportSnapshot(payload); err != nil {
			t.Fatalf("ImportSnapshot: %v", err)
		}
		if s.TrainingDays() != 5 {
			t.Errorf("TrainingDays = %d, want 5", s.TrainingDays())
		}
		day := s.Day(1)
		sameEntryIDs(t, day, []string{"7"})
		if got := day[0].Sets[0]; got.Type != domain.SetDrop || got.Reps != 12 {
			t.Errorf("imported set = %+v, want drop/12", got)
		}
	})

	t.Run("partial document leaves other fields alone", func(t *testing.T) {
		s := NewStore()
		s.ToggleExercise("1")
		if err := s.ImportSnapshot([]byte(`{"trainingDays": 5}`)); err != nil {
			t.Fatalf("ImportSnapshot: %v", err)
		}
		if s.TrainingDays() != 5 {
			t.Errorf("TrainingDays = %d, want 5", s.TrainingDays())
		}
		sameEntryIDs(t, s.Day(1), []string{"1"})
	})

	t.Run("malformed JSON fails and preserves state", func(t *testing.T) {
		s := NewStore()
		s.ToggleExercise("1")
		s.SetTrainingDays(4)
		if err := s.ImportSnapshot([]byte(`{"trainingDays": `)); err != ErrInvalidImport {
			t.Fatalf("ImportSnapshot error = %v, want ErrInvalidImport", err)
		}
		if s.TrainingDays() != 4 {
			t.Errorf("failed import changed TrainingDays to %d", s.TrainingDays())
		}
		sameEntryIDs(t, s.Day(1), []string{"1"})
	})

	t.Run("non-object JSON is accepted as a no-op", func(t *testing.T) {
		s := NewStore()
		s.ToggleExercise("1")
		if err := s.ImportSnapshot([]byte(`[1, 2, 3]`)); err != nil {
			t.Fatalf("ImportSnapshot: %v", err)
		}
		sameEntryIDs(t, s.Day(1), []string{"1"})
	})

	t.Run("undecodable plan parts are skipped", func(t *testing.T) {
		s := NewStore()
		payload := []byte(`{
			"workoutPlan": {
				"monday": [{"exerciseId": "1", "sets": []}],
				"2": "not a list",
				"3": [{"exerciseId": "3", "sets": []}]
			}
		}`)
		if err := s.ImportSnapshot(payload); err != nil {
			t.Fatalf("ImportSnapshot: %v", err)
		}
		plan := s.Plan()
		if len(plan) != 1 {
			t.Fatalf("plan has %d days, want only the decodable one: %v", len(plan), plan)
		}
		sameEntryIDs(t, plan[3], []string{"3"})
	})

	t.Run("wrong field types are ignored", func(t *testing.T) {
		s := NewStore()
		if err := s.ImportSnapshot([]byte(`{"trainingDays": "five", "workoutPlan": 7}`)); err != nil {
			t.Fatalf("ImportSnapshot: %v", err)
		}
		if s.TrainingDays() != DefaultTrainingDays {
			t.Errorf("TrainingDays = %d, want default", s.TrainingDays())
		}
	})
}

// TestHydrate verifies that hydration replaces days and plan without
// touching the active day, and ignores empty inputs.
func TestHydrate(t *testing.T) {
	s := NewStore()
	s.SetCurrentDay(2)

	plan := domain.WorkoutPlan{
		1: {{ExerciseID: "4", Sets: []domain.WorkoutSet{{Type: domain.SetNormal, Reps: 8}}}},
	}
	s.Hydrate(5, plan)

	if s.TrainingDays() != 5 {
		t.Errorf("TrainingDays = %d, want 5", s.TrainingDays())
	}
	if s.CurrentDay() != 2 {
		t.Errorf("CurrentDay = %d, want 2", s.CurrentDay())
	}
	sameEntryIDs(t, s.Day(1), []string{"4"})

	// Hydrate deep-copies, the source document stays independent.
	s.AddSet("4")
	s.SetCurrentDay(1)
	s.AddSet("4")
	if got := len(plan[1][0].Sets); got != 1 {
		t.Errorf("hydration source mutated: %d sets", got)
	}

	s.Hydrate(0, nil)
	if s.TrainingDays() != 5 {
		t.Errorf("zero-value hydrate changed TrainingDays to %d", s.TrainingDays())
	}
	sameEntryIDs(t, s.Day(1), []string{"4"})
}

// TestPlanAccessorIsCopy verifies that the Plan and Day accessors return
// deep copies.
func TestPlanAccessorIsCopy(t *testing.T) {
	s := NewStore()
	s.ToggleExercise("1")

	p := s.Plan()
	p[1][0].Sets[0].Reps = 99
	p[2] = []domain.WorkoutExercise{{ExerciseID: "x"}}

	if got := s.Day(1)[0].Sets[0].Reps; got != 10 {
		t.Errorf("mutating the Plan copy changed the store: reps = %d", got)
	}
	sameEntryIDs(t, s.Day(2), nil)

	d := s.Day(1)
	d[0].ExerciseID = "hijacked"
	sameEntryIDs(t, s.Day(1), []string{"1"})
}
