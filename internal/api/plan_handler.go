package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"liftboard/workout-planner/internal/domain"
	"liftboard/workout-planner/internal/planner"
	"liftboard/workout-planner/internal/service"
)

// PlanHandler exposes the workout-plan state operations.
type PlanHandler struct {
	planService    service.PlanService
	catalogService service.CatalogService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService service.PlanService, catalogService service.CatalogService) *PlanHandler {
	return &PlanHandler{planService: planService, catalogService: catalogService}
}

// --- DTOs for API (Data Transfer Objects) ---

// PlanResponse is the read model of the user's plan.
type PlanResponse struct {
	TrainingDays int                `json:"trainingDays"`
	CurrentDay   int                `json:"currentDay"`
	WorkoutPlan  domain.WorkoutPlan `json:"workoutPlan"`
	ClipboardLen int                `json:"clipboardLen"`
}

// SetTrainingDaysRequest sets the training-day count.
type SetTrainingDaysRequest struct {
	Days int `json:"days" binding:"required,min=1"`
}

// SetCurrentDayRequest moves the active day pointer.
type SetCurrentDayRequest struct {
	Day int `json:"day" binding:"required,min=1"`
}

// UpdateSetRequest is a tagged single-field set update: exactly one of the
// fields must be present. Reps is stored as supplied, negative included.
type UpdateSetRequest struct {
	Type *string `json:"type"`
	Reps *int    `json:"reps"`
}

// MoveExerciseRequest swaps a plan entry with its neighbor.
type MoveExerciseRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// ApplyTemplateRequest applies a built-in template by name.
type ApplyTemplateRequest struct {
	Name string `json:"name" binding:"required"`
}

// VolumeResponse carries per-muscle volume and presentation tiers for one
// day. Muscles absent from the maps are untrained.
type VolumeResponse struct {
	Day      int                                  `json:"day"`
	Strategy string                               `json:"strategy"`
	Volume   map[domain.Muscle]float64            `json:"volume"`
	Tiers    map[domain.Muscle]planner.VolumeTier `json:"tiers"`
}

// ArchiveResponse describes an archived export object.
type ArchiveResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// --- Handler Methods ---

// GetPlan returns the authenticated user's plan state.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	view := h.planService.Plan(c.Request.Context(), userID)
	c.JSON(http.StatusOK, PlanResponse{
		TrainingDays: view.TrainingDays,
		CurrentDay:   view.CurrentDay,
		WorkoutPlan:  view.Plan,
		ClipboardLen: view.ClipboardLen,
	})
}

// SetTrainingDays sets the training-day count. Existing plan days beyond
// the new count are kept but not shown.
func (h *PlanHandler) SetTrainingDays(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var req SetTrainingDaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	h.planService.SetTrainingDays(c.Request.Context(), userID, req.Days)
	c.Status(http.StatusNoContent)
}

// SetCurrentDay moves the active day pointer.
func (h *PlanHandler) SetCurrentDay(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var req SetCurrentDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	h.planService.SetCurrentDay(c.Request.Context(), userID, req.Day)
	c.Status(http.StatusNoContent)
}

// ToggleExercise adds the exercise to the current day with one default set,
// or removes it entirely if it is already there.
func (h *PlanHandler) ToggleExercise(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	h.planService.ToggleExercise(c.Request.Context(), userID, c.Param("exerciseId"))
	c.Status(http.StatusNoContent)
}

// AddSet appends one default set to the named entry.
func (h *PlanHandler) AddSet(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	h.planService.AddSet(c.Request.Context(), userID, c.Param("exerciseId"))
	c.Status(http.StatusNoContent)
}

// RemoveSet deletes the set at the given index from the named entry.
func (h *PlanHandler) RemoveSet(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Set index must be an integer.")
		return
	}
	h.planService.RemoveSet(c.Request.Context(), userID, c.Param("exerciseId"), index)
	c.Status(http.StatusNoContent)
}

// UpdateSet applies a tagged single-field update to one set.
func (h *PlanHandler) UpdateSet(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Set index must be an integer.")
		return
	}
	var req UpdateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	var update planner.SetUpdate
	switch {
	case req.Type != nil && req.Reps == nil:
		update = planner.SetTypeUpdate{Type: domain.SetType(*req.Type)}
	case req.Reps != nil && req.Type == nil:
		update = planner.SetRepsUpdate{Reps: *req.Reps}
	default:
		abortWithError(c, http.StatusBadRequest, "Exactly one of 'type' or 'reps' must be provided.")
		return
	}

	h.planService.UpdateSet(c.Request.Context(), userID, c.Param("exerciseId"), index, update)
	c.Status(http.StatusNoContent)
}

// MoveExercise swaps the entry at the given position with its neighbor.
// Boundary moves are accepted and leave the order unchanged.
func (h *PlanHandler) MoveExercise(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Entry index must be an integer.")
		return
	}
	var req MoveExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	h.planService.MoveExercise(c.Request.Context(), userID, index, planner.Direction(req.Direction))
	c.Status(http.StatusNoContent)
}

// CopyDay copies the current day's entries to the clipboard.
func (h *PlanHandler) CopyDay(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	h.planService.CopyDay(c.Request.Context(), userID)
	c.Status(http.StatusNoContent)
}

// PasteDay overwrites the current day with the clipboard contents. The UI
// is responsible for asking before overwriting.
func (h *PlanHandler) PasteDay(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	h.planService.PasteDay(c.Request.Context(), userID)
	c.Status(http.StatusNoContent)
}

// ClearDay empties the current day.
func (h *PlanHandler) ClearDay(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	h.planService.ClearDay(c.Request.Context(), userID)
	c.Status(http.StatusNoContent)
}

// ApplyTemplate replaces the whole plan with a built-in template. The
// operation is unconditional here; confirmation is the UI's concern.
func (h *PlanHandler) ApplyTemplate(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	var req ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	template, err := h.catalogService.TemplateByName(req.Name)
	if err != nil {
		abortWithError(c, http.StatusNotFound, "Template not found.")
		return
	}
	h.planService.ApplyTemplate(c.Request.Context(), userID, template)
	c.Status(http.StatusNoContent)
}

// Export returns the whole-plan export document as a downloadable file.
func (h *PlanHandler) Export(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	snapshot := h.planService.Export(c.Request.Context(), userID)
	filename := fmt.Sprintf("workout-plan-%s.json", snapshot.Timestamp.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, snapshot)
}

// ArchiveExport writes the export document to object storage and returns a
// presigned download link.
func (h *PlanHandler) ArchiveExport(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	archive, err := h.planService.ArchiveExport(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrArchiveUnavailable) {
			abortWithError(c, http.StatusServiceUnavailable, "Export archiving is not configured.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to archive export.")
		}
		return
	}
	c.JSON(http.StatusCreated, ArchiveResponse{Key: archive.Key, URL: archive.URL})
}

// DeleteArchive removes a previously archived export.
func (h *PlanHandler) DeleteArchive(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	key := c.Query("key")
	if key == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'key' is required.")
		return
	}
	err := h.planService.DeleteArchive(c.Request.Context(), userID, key)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArchiveUnavailable):
			abortWithError(c, http.StatusServiceUnavailable, "Export archiving is not configured.")
		case errors.Is(err, service.ErrArchiveDenied):
			abortWithError(c, http.StatusForbidden, "Archive key does not belong to this user.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to delete archive.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// Import applies a whole-document payload. Recognized fields are applied
// independently; only a body that is not JSON at all is rejected, and in
// that case state is unchanged.
func (h *PlanHandler) Import(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	payload, err := c.GetRawData()
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Failed to read request body.")
		return
	}
	if err := h.planService.Import(c.Request.Context(), userID, payload); err != nil {
		if errors.Is(err, planner.ErrInvalidImport) {
			abortWithError(c, http.StatusBadRequest, "Invalid file format. Please upload a valid workout plan JSON.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to import plan.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout plan imported successfully."})
}

// DayVolume returns per-muscle volume for one day, for heat-map rendering.
// strategy=primary switches to primary-only counting; the default is the
// weighted scheme (primary 1.0, supporting 0.5).
func (h *PlanHandler) DayVolume(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Day must be an integer.")
		return
	}

	strategy := planner.CountWeighted
	if c.Query("strategy") == string(planner.CountPrimaryOnly) {
		strategy = planner.CountPrimaryOnly
	}

	volume := h.planService.VolumeForDay(c.Request.Context(), userID, day, strategy)
	tiers := make(map[domain.Muscle]planner.VolumeTier, len(volume))
	for muscle, score := range volume {
		tiers[muscle] = planner.DefaultTierThresholds.Classify(score)
	}

	c.JSON(http.StatusOK, VolumeResponse{
		Day:      day,
		Strategy: string(strategy),
		Volume:   volume,
		Tiers:    tiers,
	})
}

func (h *PlanHandler) userID(c *gin.Context) (string, bool) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return "", false
	}
	return userID, true
}
