// Package planner holds the mutable workout-plan state model and the
// muscle-volume aggregation used for the anatomical heat map.
package planner

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"liftboard/workout-planner/internal/domain"
)

// ErrInvalidImport is returned when an import payload is not parseable as
// JSON at all. Parseable-but-unexpected payloads are accepted without
// schema validation; each recognized field is applied independently.
var ErrInvalidImport = errors.New("import payload is not valid JSON")

// Defaults for a fresh store and for newly added sets.
const (
	DefaultTrainingDays = 3
	defaultSetReps      = 10
)

// Direction selects the neighbor for MoveExercise.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// SetUpdate is a tagged single-field update for UpdateSet. Exactly one
// concrete variant exists per updatable field, which keeps the single
// mutation entry point while avoiding untyped field/value pairs.
type SetUpdate interface {
	apply(s *domain.WorkoutSet)
}

// SetTypeUpdate changes a set's type.
type SetTypeUpdate struct {
	Type domain.SetType
}

func (u SetTypeUpdate) apply(s *domain.WorkoutSet) { s.Type = u.Type }

// SetRepsUpdate changes a set's rep count. The value is stored as supplied;
// the store does not validate it.
type SetRepsUpdate struct {
	Reps int
}

func (u SetRepsUpdate) apply(s *domain.WorkoutSet) { s.Reps = u.Reps }

// Store is the workout-plan state container. All mutations go through its
// methods and run to completion before any other operation observes state.
// The store itself is single-threaded; callers that serve multiple
// goroutines must serialize access (see service.PlanService).
type Store struct {
	trainingDays int
	currentDay   int
	plan         domain.WorkoutPlan
	clipboard    []domain.WorkoutExercise
}

// NewStore creates an empty store: three training days, day 1 active.
func NewStore() *Store {
	return &Store{
		trainingDays: DefaultTrainingDays,
		currentDay:   1,
		plan:         domain.WorkoutPlan{},
	}
}

// Hydrate replaces training days and plan from a persisted document.
// The active day and clipboard are untouched.
func (s *Store) Hydrate(trainingDays int, plan domain.WorkoutPlan) {
	if trainingDays > 0 {
		s.trainingDays = trainingDays
	}
	if plan != nil {
		s.plan = plan.Clone()
	}
}

// TrainingDays returns the configured day count.
func (s *Store) TrainingDays() int { return s.trainingDays }

// CurrentDay returns the active day pointer.
func (s *Store) CurrentDay() int { return s.currentDay }

// Plan returns a deep copy of the whole plan.
func (s *Store) Plan() domain.WorkoutPlan {
	return s.plan.Clone()
}

// Day returns a deep copy of one day's ordered entry list.
func (s *Store) Day(day int) []domain.WorkoutExercise {
	return domain.CloneEntries(s.plan[day])
}

// ClipboardLen reports how many entries the clipboard holds.
func (s *Store) ClipboardLen() int { return len(s.clipboard) }

// SetTrainingDays sets the day count. Existing plan keys beyond the new
// count and an out-of-range current day are left as they are; days outside
// the range are simply not shown.
func (s *Store) SetTrainingDays(n int) { s.trainingDays = n }

// SetCurrentDay moves the active day pointer. Bounds are the caller's
// responsibility.
func (s *Store) SetCurrentDay(d int) { s.currentDay = d }

// ToggleExercise removes the exercise from the current day if present
// (including all its sets), otherwise appends it with one default set.
// This is the only way to add or remove a plan entry.
func (s *Store) ToggleExercise(exerciseID string) {
	entries := s.plan[s.currentDay]
	for i, e := range entries {
		if e.ExerciseID == exerciseID {
			s.plan[s.currentDay] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
	s.plan[s.currentDay] = append(entries, domain.WorkoutExercise{
		ExerciseID: exerciseID,
		Sets:       []domain.WorkoutSet{defaultSet()},
	})
}

// AddSet appends one default set to the named entry. No-op if the entry is
// not on the current day.
func (s *Store) AddSet(exerciseID string) {
	if e := s.entry(exerciseID); e != nil {
		e.Sets = append(e.Sets, defaultSet())
	}
}

// RemoveSet deletes the set at index from the named entry. No-op if the
// entry or index is missing.
func (s *Store) RemoveSet(exerciseID string, index int) {
	e := s.entry(exerciseID)
	if e == nil || index < 0 || index >= len(e.Sets) {
		return
	}
	e.Sets = append(e.Sets[:index:index], e.Sets[index+1:]...)
}

// UpdateSet applies a tagged single-field update to the set at index.
// No-op if the entry or index is missing.
func (s *Store) UpdateSet(exerciseID string, index int, update SetUpdate) {
	e := s.entry(exerciseID)
	if e == nil || index < 0 || index >= len(e.Sets) {
		return
	}
	update.apply(&e.Sets[index])
}

// MoveExercise swaps the entry at index with its neighbor. No-op at the
// boundaries or for an out-of-range index.
func (s *Store) MoveExercise(index int, dir Direction) {
	entries := s.plan[s.currentDay]
	switch dir {
	case MoveUp:
		if index > 0 && index < len(entries) {
			entries[index], entries[index-1] = entries[index-1], entries[index]
		}
	case MoveDown:
		if index >= 0 && index < len(entries)-1 {
			entries[index], entries[index+1] = entries[index+1], entries[index]
		}
	}
}

// CopyDay deep-copies the current day's entries into the clipboard. No-op
// when the day is empty, so an accidental copy cannot clear the clipboard.
func (s *Store) CopyDay() {
	if entries := s.plan[s.currentDay]; len(entries) > 0 {
		s.clipboard = domain.CloneEntries(entries)
	}
}

// PasteDay overwrites the current day with a deep copy of the clipboard.
// No-op when the clipboard is empty. Overwrite confirmation is a caller
// concern.
func (s *Store) PasteDay() {
	if len(s.clipboard) > 0 {
		s.plan[s.currentDay] = domain.CloneEntries(s.clipboard)
	}
}

// ClearDay empties the current day's entry list.
func (s *Store) ClearDay() {
	s.plan[s.currentDay] = []domain.WorkoutExercise{}
}

// ApplyTemplate replaces the day count and the entire plan with a deep copy
// of the template and resets the active day to 1. Unconditional at this
// layer; any confirmation happens at the UI boundary.
func (s *Store) ApplyTemplate(t domain.WorkoutTemplate) {
	s.trainingDays = t.Days
	s.plan = t.Plan.Clone()
	if s.plan == nil {
		s.plan = domain.WorkoutPlan{}
	}
	s.currentDay = 1
}

// ExportSnapshot returns the serializable whole-plan document.
func (s *Store) ExportSnapshot() domain.PlanSnapshot {
	return domain.PlanSnapshot{
		TrainingDays: s.trainingDays,
		WorkoutPlan:  s.plan.Clone(),
		Version:      domain.SnapshotVersion,
		Timestamp:    time.Now().UTC(),
	}
}

// ImportSnapshot applies a whole-document payload. Each recognized field is
// optional and applied independently: a numeric trainingDays replaces the
// day count, an object workoutPlan replaces the plan. Anything else in the
// payload is ignored without schema validation. The only failure is a
// payload that does not parse as JSON at all, in which case state is
// unchanged.
func (s *Store) ImportSnapshot(data []byte) error {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return ErrInvalidImport
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	if days, ok := obj["trainingDays"].(float64); ok {
		s.trainingDays = int(days)
	}
	if rawPlan, ok := obj["workoutPlan"].(map[string]any); ok {
		s.plan = decodePlan(rawPlan)
	}
	return nil
}

// decodePlan converts a raw workoutPlan object into a typed plan, keeping
// whatever decodes and dropping the rest. Day keys that are not integers
// and day values that are not entry lists are skipped.
func decodePlan(raw map[string]any) domain.WorkoutPlan {
	plan := domain.WorkoutPlan{}
	for key, value := range raw {
		day, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			continue
		}
		var entries []domain.WorkoutExercise
		if err := json.Unmarshal(encoded, &entries); err != nil {
			continue
		}
		plan[day] = entries
	}
	return plan
}

func (s *Store) entry(exerciseID string) *domain.WorkoutExercise {
	entries := s.plan[s.currentDay]
	for i := range entries {
		if entries[i].ExerciseID == exerciseID {
			return &entries[i]
		}
	}
	return nil
}

func defaultSet() domain.WorkoutSet {
	return domain.WorkoutSet{Type: domain.SetNormal, Reps: defaultSetReps}
}
