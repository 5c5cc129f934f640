package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"liftboard/workout-planner/internal/domain"
	"liftboard/workout-planner/internal/planner"
	"liftboard/workout-planner/internal/repository"
	"liftboard/workout-planner/internal/storage"
)

// --- Error Definitions ---
var (
	ErrArchiveUnavailable = errors.New("export archiving is not configured")
	ErrArchiveDenied      = errors.New("archive key does not belong to this user")
)

const persistTimeout = 10 * time.Second

// PlanView is the read model of one user's plan state.
type PlanView struct {
	TrainingDays int
	CurrentDay   int
	Plan         domain.WorkoutPlan
	ClipboardLen int
}

// ExportArchive describes an archived export object.
type ExportArchive struct {
	Key string
	URL string
}

// PlanService owns the per-user workout-plan sessions. Each session wraps a
// planner.Store behind a mutex so no two mutations of the same plan ever
// interleave, and schedules a debounced fire-and-forget save to the plan
// repository after every mutation. A failed save is logged and never rolls
// back in-memory state; the session remains the source of truth.
type PlanService interface {
	Plan(ctx context.Context, userID string) PlanView
	SetTrainingDays(ctx context.Context, userID string, days int)
	SetCurrentDay(ctx context.Context, userID string, day int)
	ToggleExercise(ctx context.Context, userID, exerciseID string)
	AddSet(ctx context.Context, userID, exerciseID string)
	RemoveSet(ctx context.Context, userID, exerciseID string, index int)
	UpdateSet(ctx context.Context, userID, exerciseID string, index int, update planner.SetUpdate)
	MoveExercise(ctx context.Context, userID string, index int, dir planner.Direction)
	CopyDay(ctx context.Context, userID string)
	PasteDay(ctx context.Context, userID string)
	ClearDay(ctx context.Context, userID string)
	ApplyTemplate(ctx context.Context, userID string, template domain.WorkoutTemplate)
	Export(ctx context.Context, userID string) domain.PlanSnapshot
	ArchiveExport(ctx context.Context, userID string) (ExportArchive, error)
	DeleteArchive(ctx context.Context, userID, key string) error
	Import(ctx context.Context, userID string, payload []byte) error
	VolumeForDay(ctx context.Context, userID string, day int, strategy planner.CountingStrategy) planner.Volume
	Flush(ctx context.Context)
}

type planSession struct {
	mu        sync.Mutex
	store     *planner.Store
	saveTimer *time.Timer
}

type planService struct {
	planRepo repository.PlanRepository
	archive  storage.ArchiveStorage // nil when archiving is not configured
	resolver planner.ExerciseResolver
	debounce time.Duration

	mu       sync.Mutex
	sessions map[string]*planSession
}

// NewPlanService creates a plan service. archive may be nil, which disables
// export archiving but nothing else.
func NewPlanService(planRepo repository.PlanRepository, archive storage.ArchiveStorage, resolver planner.ExerciseResolver, debounce time.Duration) PlanService {
	if debounce <= 0 {
		debounce = 2 * time.Second
	}
	return &planService{
		planRepo: planRepo,
		archive:  archive,
		resolver: resolver,
		debounce: debounce,
		sessions: make(map[string]*planSession),
	}
}

// session returns the user's session, hydrating it from the plan repository
// on first access. A load failure is logged and the session starts empty;
// the repository is a collaborator, not an authority.
func (s *planService) session(ctx context.Context, userID string) *planSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess
	}

	sess := &planSession{store: planner.NewStore()}
	doc, err := s.planRepo.Load(ctx, userID)
	switch {
	case err == nil:
		sess.store.Hydrate(doc.TrainingDays, doc.WorkoutPlan)
	case errors.Is(err, repository.ErrNotFound):
		// First visit, nothing persisted yet.
	default:
		log.Printf("ERROR: Failed to load plan for user %s: %v", userID, err)
	}

	s.sessions[userID] = sess
	return sess
}

// mutate runs fn on the user's store under the session lock, then schedules
// a debounced save.
func (s *planService) mutate(ctx context.Context, userID string, fn func(*planner.Store)) {
	sess := s.session(ctx, userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	fn(sess.store)
	s.scheduleSave(userID, sess)
}

// read runs fn on the user's store under the session lock without marking
// the session dirty.
func (s *planService) read(ctx context.Context, userID string, fn func(*planner.Store)) {
	sess := s.session(ctx, userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	fn(sess.store)
}

// scheduleSave (re)arms the debounce timer. Must be called with the session
// lock held.
func (s *planService) scheduleSave(userID string, sess *planSession) {
	if sess.saveTimer != nil {
		sess.saveTimer.Stop()
	}
	sess.saveTimer = time.AfterFunc(s.debounce, func() {
		s.persist(userID, sess)
	})
}

// persist writes the session's current state to the repository. Errors are
// logged only; the in-memory plan is authoritative for the session.
func (s *planService) persist(userID string, sess *planSession) {
	sess.mu.Lock()
	doc := &domain.PlanDocument{
		UserID:       userID,
		TrainingDays: sess.store.TrainingDays(),
		WorkoutPlan:  sess.store.Plan(),
		Version:      domain.SnapshotVersion,
		LastUpdated:  time.Now().UTC(),
	}
	sess.saveTimer = nil
	sess.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.planRepo.Save(ctx, doc); err != nil {
		log.Printf("ERROR: Failed to save plan for user %s: %v", userID, err)
	}
}

func (s *planService) Plan(ctx context.Context, userID string) PlanView {
	var view PlanView
	s.read(ctx, userID, func(store *planner.Store) {
		view = PlanView{
			TrainingDays: store.TrainingDays(),
			CurrentDay:   store.CurrentDay(),
			Plan:         store.Plan(),
			ClipboardLen: store.ClipboardLen(),
		}
	})
	return view
}

func (s *planService) SetTrainingDays(ctx context.Context, userID string, days int) {
	s.mutate(ctx, userID, func(store *planner.Store) { store.SetTrainingDays(days) })
}

func (s *planService) SetCurrentDay(ctx context.Context, userID string, day int) {
	s.mutate(ctx, userID, func(store *planner.Store) { store.SetCurrentDay(day) })
}

func (s *planService) ToggleExercise(ctx context.Context, userID, exerciseID string) {
	s.mutate(ctx, userID, func(store *planner.Store) { store.ToggleExercise(exerciseID) })
}

func (s *planService) AddSet(ctx context.Context, userID, exerciseID string) {
	s.mutate(ctx, userID, func(store *planner.Store) { store.AddSet(exerciseID) })
}

func (s *planService) RemoveSet(ctx context.Context, userID, exerciseID string, index int) {
	s.mutate(ctx, userID, func(store *planner.Store) { store.RemoveSet(exerciseID, index) })
}

func (s *planService) UpdateSet(ctx context.Context, userID, exerciseID string, index int, update planner.SetUpdate) {
	s.mutate(ctx, userID, func(store *planner.Store) { store.UpdateSet(exerciseID, index, update) })
}

func (s *planService) MoveExercise(ctx context.Context, userID string, index int, dir planner.Direction) {
	s.mutate(ctx, userID, func(store *planner.Store) { store.MoveExercise(index, dir) })
}

func (s *planService) CopyDay(ctx context.Context, userID string) {
	// Copy only touches the clipboard, but it shares the debounced save
	// path to keep the mutation surface uniform.
	s.mutate(ctx, userID, func(store *planner.Store) { store.CopyDay() })
}

func (s *planService) PasteDay(ctx context.Context, userID string) {
	s.mutate(ctx, userID, func(store *planner.Store) { store.PasteDay() })
}

func (s *planService) ClearDay(ctx context.Context, userID string) {
	s.mutate(ctx, userID, func(store *planner.Store) { store.ClearDay() })
}

func (s *planService) ApplyTemplate(ctx context.Context, userID string, template domain.WorkoutTemplate) {
	s.mutate(ctx, userID, func(store *planner.Store) { store.ApplyTemplate(template) })
}

func (s *planService) Export(ctx context.Context, userID string) domain.PlanSnapshot {
	var snapshot domain.PlanSnapshot
	s.read(ctx, userID, func(store *planner.Store) {
		snapshot = store.ExportSnapshot()
	})
	return snapshot
}

// ArchiveExport writes the current export snapshot to object storage under
// a dated key and returns a presigned download URL for it.
func (s *planService) ArchiveExport(ctx context.Context, userID string) (ExportArchive, error) {
	if s.archive == nil {
		return ExportArchive{}, ErrArchiveUnavailable
	}

	snapshot := s.Export(ctx, userID)
	body, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return ExportArchive{}, fmt.Errorf("encoding export snapshot: %w", err)
	}

	key := fmt.Sprintf("plans/%s/workout-plan-%s-%s.json",
		userID, snapshot.Timestamp.Format("2006-01-02"), uuid.NewString())

	if err := s.archive.PutObject(ctx, key, "application/json", body); err != nil {
		return ExportArchive{}, fmt.Errorf("archiving export: %w", err)
	}

	url, err := s.archive.GeneratePresignedDownloadURL(ctx, key, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return ExportArchive{}, fmt.Errorf("presigning archive download: %w", err)
	}

	return ExportArchive{Key: key, URL: url}, nil
}

// DeleteArchive removes an archived export. The key must lie under the
// user's own prefix.
func (s *planService) DeleteArchive(ctx context.Context, userID, key string) error {
	if s.archive == nil {
		return ErrArchiveUnavailable
	}
	if !strings.HasPrefix(key, "plans/"+userID+"/") {
		return ErrArchiveDenied
	}
	return s.archive.DeleteObject(ctx, key)
}

func (s *planService) Import(ctx context.Context, userID string, payload []byte) error {
	var importErr error
	sess := s.session(ctx, userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if importErr = sess.store.ImportSnapshot(payload); importErr != nil {
		return importErr
	}
	s.scheduleSave(userID, sess)
	return nil
}

func (s *planService) VolumeForDay(ctx context.Context, userID string, day int, strategy planner.CountingStrategy) planner.Volume {
	var volume planner.Volume
	s.read(ctx, userID, func(store *planner.Store) {
		volume = planner.AggregateVolume(store.Day(day), s.resolver, strategy)
	})
	return volume
}

// Flush synchronously persists every session with a pending save. Called on
// shutdown so the debounce window cannot swallow the last edits.
func (s *planService) Flush(ctx context.Context) {
	s.mu.Lock()
	pending := make(map[string]*planSession)
	for userID, sess := range s.sessions {
		sess.mu.Lock()
		if sess.saveTimer != nil {
			sess.saveTimer.Stop()
			pending[userID] = sess
		}
		sess.mu.Unlock()
	}
	s.mu.Unlock()

	for userID, sess := range pending {
		s.persist(userID, sess)
	}
}
