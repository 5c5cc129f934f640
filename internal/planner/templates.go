package planner

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"liftboard/workout-planner/internal/domain"
)

//go:embed templates.yaml
var templatesYAML []byte

// templateEntry is the compact on-disk form of a plan entry: a number of
// identical sets at one rep target. It expands to an ordered set list.
type templateEntry struct {
	Exercise string `yaml:"exercise"`
	Sets     int    `yaml:"sets"`
	Reps     int    `yaml:"reps"`
}

type templateSpec struct {
	Name        string                  `yaml:"name"`
	Description string                  `yaml:"description"`
	Days        int                     `yaml:"days"`
	Plan        map[int][]templateEntry `yaml:"plan"`
}

type templateFile struct {
	Templates []templateSpec `yaml:"templates"`
}

// BuiltInTemplates parses the embedded template document. The result is
// freshly allocated on every call, so applying a template can never leak
// mutations back into the shared definitions.
func BuiltInTemplates() ([]domain.WorkoutTemplate, error) {
	var file templateFile
	if err := yaml.Unmarshal(templatesYAML, &file); err != nil {
		return nil, fmt.Errorf("parsing built-in templates: %w", err)
	}

	templates := make([]domain.WorkoutTemplate, 0, len(file.Templates))
	for _, spec := range file.Templates {
		plan := domain.WorkoutPlan{}
		for day, entries := range spec.Plan {
			dayEntries := make([]domain.WorkoutExercise, 0, len(entries))
			for _, entry := range entries {
				sets := make([]domain.WorkoutSet, entry.Sets)
				for i := range sets {
					sets[i] = domain.WorkoutSet{Type: domain.SetNormal, Reps: entry.Reps}
				}
				dayEntries = append(dayEntries, domain.WorkoutExercise{
					ExerciseID: entry.Exercise,
					Sets:       sets,
				})
			}
			plan[day] = dayEntries
		}
		templates = append(templates, domain.WorkoutTemplate{
			Name:        spec.Name,
			Description: spec.Description,
			Days:        spec.Days,
			Plan:        plan,
		})
	}
	return templates, nil
}
