package repository

import (
	"context"

	"liftboard/workout-planner/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound   = RepositoryError("not found")
	ErrSaveFailed = RepositoryError("save failed")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// PlanRepository persists one plan document per user. This is the narrow
// interface of the cloud collaborator: the service loads once per session
// and saves fire-and-forget on a debounce timer.
type PlanRepository interface {
	Load(ctx context.Context, userID string) (*domain.PlanDocument, error)
	Save(ctx context.Context, doc *domain.PlanDocument) error
}

// ExerciseRepository stores the ingested exercise catalog. The catalog is
// written by the ingestion CLI and read once at server startup.
type ExerciseRepository interface {
	GetAll(ctx context.Context) ([]domain.Exercise, error)
	ReplaceAll(ctx context.Context, exercises []domain.Exercise) error
}
