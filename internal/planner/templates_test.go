package planner

import (
	"testing"

	"liftboard/workout-planner/internal/domain"
)

// TestBuiltInTemplates verifies the embedded template document parses and
// expands into complete plans.
func TestBuiltInTemplates(t *testing.T) {
	templates, err := BuiltInTemplates()
	if err != nil {
		t.Fatalf("BuiltInTemplates: %v", err)
	}
	if len(templates) != 3 {
		t.Fatalf("got %d templates, want 3", len(templates))
	}

	wantDays := map[string]int{
		"Full Body":          3,
		"Upper / Lower":      4,
		"Push / Pull / Legs": 3,
	}
	for _, tmpl := range templates {
		days, ok := wantDays[tmpl.Name]
		if !ok {
			t.Errorf("unexpected template %q", tmpl.Name)
			continue
		}
		if tmpl.Days != days {
			t.Errorf("template %q has %d days, want %d", tmpl.Name, tmpl.Days, days)
		}
		if len(tmpl.Plan) != days {
			t.Errorf("template %q plan covers %d days, want %d", tmpl.Name, len(tmpl.Plan), days)
		}
		if tmpl.Description == "" {
			t.Errorf("template %q has no description", tmpl.Name)
		}
		for day, entries := range tmpl.Plan {
			if len(entries) == 0 {
				t.Errorf("template %q day %d is empty", tmpl.Name, day)
			}
			for _, e := range entries {
				if len(e.Sets) == 0 {
					t.Errorf("template %q entry %s has no sets", tmpl.Name, e.ExerciseID)
				}
				for _, set := range e.Sets {
					if set.Type != domain.SetNormal {
						t.Errorf("template %q entry %s has set type %q, want normal", tmpl.Name, e.ExerciseID, set.Type)
					}
				}
			}
		}
	}
}

// TestBuiltInTemplatesExpansion verifies one known entry: Full Body day 1
// opens with squats, three sets of eight.
func TestBuiltInTemplatesExpansion(t *testing.T) {
	templates, err := BuiltInTemplates()
	if err != nil {
		t.Fatalf("BuiltInTemplates: %v", err)
	}

	var fullBody domain.WorkoutTemplate
	for _, tmpl := range templates {
		if tmpl.Name == "Full Body" {
			fullBody = tmpl
		}
	}
	if fullBody.Name == "" {
		t.Fatal("Full Body template missing")
	}

	day1 := fullBody.Plan[1]
	if len(day1) != 6 {
		t.Fatalf("Full Body day 1 has %d entries, want 6", len(day1))
	}
	first := day1[0]
	if first.ExerciseID != "2" {
		t.Errorf("first entry is exercise %q, want 2", first.ExerciseID)
	}
	if len(first.Sets) != 3 {
		t.Fatalf("first entry has %d sets, want 3", len(first.Sets))
	}
	for i, set := range first.Sets {
		if set.Reps != 8 {
			t.Errorf("set %d reps = %d, want 8", i, set.Reps)
		}
	}
}

// TestBuiltInTemplatesAreIndependent verifies each call allocates fresh
// plans, so a caller mutating one cannot corrupt later reads.
func TestBuiltInTemplatesAreIndependent(t *testing.T) {
	first, err := BuiltInTemplates()
	if err != nil {
		t.Fatalf("BuiltInTemplates: %v", err)
	}
	first[0].Plan[1][0].Sets[0].Reps = 999

	second, err := BuiltInTemplates()
	if err != nil {
		t.Fatalf("BuiltInTemplates: %v", err)
	}
	if got := second[0].Plan[1][0].Sets[0].Reps; got == 999 {
		t.Error("mutation of one result leaked into a later call")
	}
}
