package catalog

import (
	"testing"

	"liftboard/workout-planner/internal/domain"
)

func testCatalog(t *testing.T, exercises ...domain.Exercise) *Catalog {
	t.Helper()
	return New(exercises)
}

func exerciseIDs(exercises []domain.Exercise) []string {
	ids := make([]string, len(exercises))
	for i, ex := range exercises {
		ids[i] = ex.ID
	}
	return ids
}

func sameIDs(a []domain.Exercise, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i] {
			return false
		}
	}
	return true
}

// TestFilterEquipment verifies that an active equipment filter keeps only
// matching exercises and that every result satisfies the predicate.
func TestFilterEquipment(t *testing.T) {
	c := New(BuiltIn())

	got := c.Filter(Query{Equipment: "barbell"}, DefaultAliases())
	if len(got) == 0 {
		t.Fatal("expected barbell exercises, got none")
	}
	for _, ex := range got {
		if ex.Equipment != domain.EquipmentBarbell {
			t.Errorf("exercise %q has equipment %q, want barbell", ex.Name, ex.Equipment)
		}
	}
}

// TestFilterBodyPart verifies the body-part predicate matches both primary
// and supporting muscles.
func TestFilterBodyPart(t *testing.T) {
	c := New(BuiltIn())

	got := c.Filter(Query{BodyPart: "glutes"}, DefaultAliases())
	if len(got) == 0 {
		t.Fatal("expected glute exercises, got none")
	}
	for _, ex := range got {
		if !ex.Targets(domain.MuscleGlutes) {
			t.Errorf("exercise %q does not target glutes", ex.Name)
		}
	}

	// Squat lists glutes only as a supporting muscle and must still match.
	found := false
	for _, ex := range got {
		if ex.Name == "Squat" {
			found = true
		}
	}
	if !found {
		t.Error("Squat (supporting glutes) missing from body-part filter result")
	}
}

// TestFilterAliasExpansion verifies that a colloquial term reaches
// exercises through the alias table even when the term appears nowhere in
// the exercise's own fields.
func TestFilterAliasExpansion(t *testing.T) {
	c := testCatalog(t,
		domain.Exercise{ID: "1", Name: "Bench Press", PrimaryMuscle: domain.MusclePectorals, Equipment: domain.EquipmentBarbell},
		domain.Exercise{ID: "2", Name: "Squat", PrimaryMuscle: domain.MuscleQuadriceps, Equipment: domain.EquipmentBarbell},
	)

	got := c.Filter(Query{Search: "chest"}, DefaultAliases())
	if !sameIDs(got, []string{"1"}) {
		t.Fatalf("search %q = %v, want [1]", "chest", exerciseIDs(got))
	}
}

// TestFilterShortTermAliases verifies the deliberately permissive
// bidirectional substring match: "ab" is contained in the "abs" alias and
// therefore pulls in abdominal and oblique work.
func TestFilterShortTermAliases(t *testing.T) {
	c := New(BuiltIn())

	got := c.Filter(Query{Search: "ab"}, DefaultAliases())
	names := map[string]bool{}
	for _, ex := range got {
		names[ex.Name] = true
	}
	if !names["Crunches"] || !names["Russian Twist"] {
		t.Errorf("search %q should reach ab work through the alias table, got %v", "ab", exerciseIDs(got))
	}
}

// TestFilterNameSearch verifies plain case-insensitive substring matching
// on the exercise name.
func TestFilterNameSearch(t *testing.T) {
	c := New(BuiltIn())

	got := c.Filter(Query{Search: "  BENCH  "}, DefaultAliases())
	if len(got) != 2 {
		t.Fatalf("search %q returned %v, want Bench Press and Incline Bench Press", "BENCH", exerciseIDs(got))
	}
	for _, ex := range got {
		if ex.PrimaryMuscle != domain.MusclePectorals {
			t.Errorf("unexpected match %q", ex.Name)
		}
	}
}

// TestFilterSortPrimaryPartition verifies the two-level sort: with an
// active body-part filter, primary-muscle matches come first in name order,
// then supporting-muscle matches in name order.
func TestFilterSortPrimaryPartition(t *testing.T) {
	c := testCatalog(t,
		domain.Exercise{ID: "squat", Name: "Squat", PrimaryMuscle: domain.MuscleQuadriceps, Equipment: domain.EquipmentBarbell},
		domain.Exercise{ID: "wallsit", Name: "Aardvark Wall Sit", PrimaryMuscle: domain.MuscleGlutes, SupportingMuscles: []domain.Muscle{domain.MuscleQuadriceps}, Equipment: domain.EquipmentBodyweight},
		domain.Exercise{ID: "legpress", Name: "Leg Press", PrimaryMuscle: domain.MuscleQuadriceps, Equipment: domain.EquipmentMachine},
		domain.Exercise{ID: "lunges", Name: "Lunges", PrimaryMuscle: domain.MuscleQuadriceps, Equipment: domain.EquipmentDumbbell},
	)

	got := c.Filter(Query{BodyPart: "quadriceps"}, DefaultAliases())
	// The wall sit sorts first alphabetically but targets quadriceps only
	// as a supporting muscle, so it must trail the primary matches.
	want := []string{"legpress", "lunges", "squat", "wallsit"}
	if !sameIDs(got, want) {
		t.Fatalf("sorted result = %v, want %v", exerciseIDs(got), want)
	}
}

// TestFilterSortByNameWithoutBodyPart verifies pure name ordering when no
// body-part filter is active.
func TestFilterSortByNameWithoutBodyPart(t *testing.T) {
	c := New(BuiltIn())

	got := c.Filter(Query{}, DefaultAliases())
	if len(got) != c.Len() {
		t.Fatalf("unfiltered query returned %d of %d exercises", len(got), c.Len())
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Name > got[i].Name {
			t.Fatalf("result not name-ordered: %q before %q", got[i-1].Name, got[i].Name)
		}
	}
}

// TestFilterIdempotent verifies that filtering an already-filtered result
// with the same criteria yields the same sequence.
func TestFilterIdempotent(t *testing.T) {
	c := New(BuiltIn())
	q := Query{Search: "press", Equipment: "barbell"}

	first := c.Filter(q, DefaultAliases())
	second := New(first).Filter(q, DefaultAliases())

	if !sameIDs(second, exerciseIDs(first)) {
		t.Fatalf("refiltering changed the result: %v -> %v", exerciseIDs(first), exerciseIDs(second))
	}
}

// TestFilterEmptyResults verifies that no match and an empty catalog both
// yield empty sequences, never an error state.
func TestFilterEmptyResults(t *testing.T) {
	if got := New(nil).Filter(Query{Search: "anything"}, DefaultAliases()); len(got) != 0 {
		t.Errorf("empty catalog returned %v", exerciseIDs(got))
	}
	if got := New(BuiltIn()).Filter(Query{Search: "zzzzz"}, DefaultAliases()); len(got) != 0 {
		t.Errorf("impossible term returned %v", exerciseIDs(got))
	}
}
