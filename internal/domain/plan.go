package domain

import "time"

// SnapshotVersion is the current export/import document version.
const SnapshotVersion = 1

// PlanSnapshot is the serializable whole-plan document used for export
// files and cloud persistence. Shape:
//
//	{ trainingDays, workoutPlan, version, timestamp }
type PlanSnapshot struct {
	TrainingDays int         `json:"trainingDays"`
	WorkoutPlan  WorkoutPlan `json:"workoutPlan"`
	Version      int         `json:"version"`
	Timestamp    time.Time   `json:"timestamp"`
}

// PlanDocument is the persisted per-user plan record.
type PlanDocument struct {
	UserID       string      `json:"userId"`
	TrainingDays int         `json:"trainingDays"`
	WorkoutPlan  WorkoutPlan `json:"workoutPlan"`
	Version      int         `json:"version"`
	LastUpdated  time.Time   `json:"lastUpdated"`
}

// WorkoutTemplate is a predefined whole-plan layout. Applying one replaces
// the user's training-day count and entire plan.
type WorkoutTemplate struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Days        int         `json:"days"`
	Plan        WorkoutPlan `json:"plan"`
}
