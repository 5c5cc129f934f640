package ingest

import (
	"encoding/json"
	"fmt"
	"io"

	"liftboard/workout-planner/internal/domain"
)

// SourceExercise mirrors one record of an exercisedb-style export.
type SourceExercise struct {
	ExerciseID       string   `json:"exerciseId"`
	Name             string   `json:"name"`
	GifURL           string   `json:"gifUrl"`
	TargetMuscles    []string `json:"targetMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	BodyParts        []string `json:"bodyParts"`
	Equipments       []string `json:"equipments"`
	Instructions     []string `json:"instructions"`
}

// ExportFile is the top-level export document.
type ExportFile struct {
	Data []SourceExercise `json:"data"`
}

// Parse reads an export document.
func Parse(r io.Reader) (*ExportFile, error) {
	var file ExportFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding export: %w", err)
	}
	return &file, nil
}

// Transform maps source records to catalog records. Records are
// deduplicated by source id (first occurrence wins). A record whose target
// muscles all fail to map is dropped: without a primary muscle it can
// neither be filtered nor aggregated. Unmappable equipment falls back to
// bodyweight.
func Transform(records []SourceExercise) []domain.Exercise {
	out := make([]domain.Exercise, 0, len(records))
	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		if rec.ExerciseID == "" || seen[rec.ExerciseID] {
			continue
		}
		seen[rec.ExerciseID] = true

		primary, ok := primaryMuscle(rec.TargetMuscles)
		if !ok {
			continue
		}

		ex := domain.Exercise{
			ID:                rec.ExerciseID,
			Name:              rec.Name,
			PrimaryMuscle:     primary,
			SupportingMuscles: supportingMuscles(rec.SecondaryMuscles, primary),
			Equipment:         equipment(rec.Equipments),
			Instructions:      rec.Instructions,
			GifURL:            rec.GifURL,
			Popularity:        Popularity(rec.Name),
		}
		out = append(out, ex)
	}
	return out
}

// primaryMuscle maps the first target label that resolves.
func primaryMuscle(labels []string) (domain.Muscle, bool) {
	for _, label := range labels {
		if m, ok := MapMuscle(label); ok {
			return m, true
		}
	}
	return "", false
}

// supportingMuscles maps and deduplicates the secondary labels. The primary
// muscle is excluded by convention.
func supportingMuscles(labels []string, primary domain.Muscle) []domain.Muscle {
	out := make([]domain.Muscle, 0, len(labels))
	seen := map[domain.Muscle]bool{primary: true}
	for _, label := range labels {
		m, ok := MapMuscle(label)
		if !ok || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

func equipment(labels []string) domain.Equipment {
	for _, label := range labels {
		if eq, ok := MapEquipment(label); ok {
			return eq
		}
	}
	return domain.EquipmentBodyweight
}
