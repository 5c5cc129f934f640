package service

import (
	"errors"

	"liftboard/workout-planner/internal/catalog"
	"liftboard/workout-planner/internal/domain"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrTemplateNotFound = errors.New("template not found")
)

// CatalogService answers library queries: filtered exercise views, single
// record lookup, and the built-in template list. It is read-only; the
// catalog and alias table are loaded once and never mutated.
type CatalogService interface {
	ListExercises(q catalog.Query) []domain.Exercise
	GetExercise(id string) (domain.Exercise, error)
	Templates() []domain.WorkoutTemplate
	TemplateByName(name string) (domain.WorkoutTemplate, error)
}

type catalogService struct {
	catalog   *catalog.Catalog
	aliases   catalog.AliasTable
	templates []domain.WorkoutTemplate
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(c *catalog.Catalog, aliases catalog.AliasTable, templates []domain.WorkoutTemplate) CatalogService {
	return &catalogService{
		catalog:   c,
		aliases:   aliases,
		templates: templates,
	}
}

// ListExercises computes the filtered, sorted library view.
func (s *catalogService) ListExercises(q catalog.Query) []domain.Exercise {
	return s.catalog.Filter(q, s.aliases)
}

// GetExercise retrieves a single catalog record.
func (s *catalogService) GetExercise(id string) (domain.Exercise, error) {
	ex, ok := s.catalog.Lookup(id)
	if !ok {
		return domain.Exercise{}, ErrExerciseNotFound
	}
	return ex, nil
}

// Templates lists the built-in whole-plan templates.
func (s *catalogService) Templates() []domain.WorkoutTemplate {
	out := make([]domain.WorkoutTemplate, len(s.templates))
	copy(out, s.templates)
	return out
}

// TemplateByName resolves a template by its display name.
func (s *catalogService) TemplateByName(name string) (domain.WorkoutTemplate, error) {
	for _, t := range s.templates {
		if t.Name == name {
			return t, nil
		}
	}
	return domain.WorkoutTemplate{}, ErrTemplateNotFound
}
