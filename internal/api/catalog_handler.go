package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"liftboard/workout-planner/internal/catalog"
	"liftboard/workout-planner/internal/domain"
	"liftboard/workout-planner/internal/service"
)

// CatalogHandler serves the exercise library and the template list.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// --- DTOs ---

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	PrimaryMuscle     string   `json:"primaryMuscle"`
	SupportingMuscles []string `json:"supportingMuscles"`
	Equipment         string   `json:"equipment"`
	Difficulty        string   `json:"difficulty,omitempty"`
	Instructions      []string `json:"instructions,omitempty"`
	Tips              []string `json:"tips,omitempty"`
	GifURL            string   `json:"gifUrl,omitempty"`
	Popularity        int      `json:"popularity,omitempty"`
}

// TemplateResponse is the DTO for a workout template.
type TemplateResponse struct {
	Name        string                           `json:"name"`
	Description string                           `json:"description"`
	Days        int                              `json:"days"`
	Plan        map[int][]domain.WorkoutExercise `json:"plan"`
}

// MapExerciseToResponse converts a domain.Exercise to its DTO.
func MapExerciseToResponse(ex domain.Exercise) ExerciseResponse {
	supporting := make([]string, len(ex.SupportingMuscles))
	for i, m := range ex.SupportingMuscles {
		supporting[i] = string(m)
	}
	return ExerciseResponse{
		ID:                ex.ID,
		Name:              ex.Name,
		PrimaryMuscle:     string(ex.PrimaryMuscle),
		SupportingMuscles: supporting,
		Equipment:         string(ex.Equipment),
		Difficulty:        string(ex.Difficulty),
		Instructions:      ex.Instructions,
		Tips:              ex.Tips,
		GifURL:            ex.GifURL,
		Popularity:        ex.Popularity,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to DTOs.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i, ex := range exercises {
		responses[i] = MapExerciseToResponse(ex)
	}
	return responses
}

// --- Handler Methods ---

// ListExercises returns the filtered, sorted library view.
// Query params: search (free text), equipment, bodyPart ("all" or empty
// disables a criterion).
func (h *CatalogHandler) ListExercises(c *gin.Context) {
	q := catalog.Query{
		Search:    c.Query("search"),
		Equipment: c.DefaultQuery("equipment", catalog.FilterAll),
		BodyPart:  c.DefaultQuery("bodyPart", catalog.FilterAll),
	}
	exercises := h.catalogService.ListExercises(q)
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// GetExercise returns a single catalog record.
func (h *CatalogHandler) GetExercise(c *gin.Context) {
	ex, err := h.catalogService.GetExercise(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch exercise.")
		}
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(ex))
}

// ListTemplates returns the built-in workout templates.
func (h *CatalogHandler) ListTemplates(c *gin.Context) {
	templates := h.catalogService.Templates()
	responses := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		responses[i] = TemplateResponse{
			Name:        t.Name,
			Description: t.Description,
			Days:        t.Days,
			Plan:        t.Plan,
		}
	}
	c.JSON(http.StatusOK, responses)
}
