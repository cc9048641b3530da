package workout

import (
	"errors"
	"net/http"
	"time"

	"github.com/octofit-app/octofit-api/config"
	"github.com/octofit-app/octofit-api/pkg/responses"
	"github.com/octofit-app/octofit-api/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkoutController handles workout-related HTTP requests.
type WorkoutController struct {
	repo      WorkoutRepository
	appConfig *config.Config
}

// NewWorkoutController creates a new workout controller.
func NewWorkoutController(repo WorkoutRepository, appConfig *config.Config) *WorkoutController {
	return &WorkoutController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// --- DTOs for requests ---

type ExerciseRequest struct {
	Name            string `json:"name" binding:"required"`
	Sets            int    `json:"sets" binding:"required,gt=0"`
	Reps            *int   `json:"reps" binding:"omitempty,gt=0"`
	DurationSeconds *int   `json:"duration_seconds" binding:"omitempty,gt=0"`
}

type CreateWorkoutRequest struct {
	ID              string            `json:"_id"`
	Name            string            `json:"name" binding:"required,min=3,max=200"`
	Description     string            `json:"description" binding:"max=5000"`
	Difficulty      string            `json:"difficulty" binding:"required"`
	DurationMinutes int               `json:"duration_minutes" binding:"required,gt=0"`
	Exercises       []ExerciseRequest `json:"exercises" binding:"required,min=1,dive"`
	TargetMuscles   []string          `json:"target_muscles"`
	EquipmentNeeded []string          `json:"equipment_needed"`
}

type UpdateWorkoutRequest struct {
	Name            *string            `json:"name" binding:"omitempty,min=3,max=200"`
	Description     *string            `json:"description" binding:"omitempty,max=5000"`
	Difficulty      *string            `json:"difficulty"`
	DurationMinutes *int               `json:"duration_minutes" binding:"omitempty,gt=0"`
	Exercises       *[]ExerciseRequest `json:"exercises" binding:"omitempty,min=1,dive"`
	TargetMuscles   *[]string          `json:"target_muscles"`
	EquipmentNeeded *[]string          `json:"equipment_needed"`
}

func toExercises(reqs []ExerciseRequest) []Exercise {
	exercises := make([]Exercise, len(reqs))
	for i, e := range reqs {
		exercises[i] = Exercise{
			Name:            e.Name,
			Sets:            e.Sets,
			Reps:            e.Reps,
			DurationSeconds: e.DurationSeconds,
		}
	}
	return exercises
}

// --- Workout Handlers ---

// GetAllWorkouts godoc
// @Summary Get all workouts
// @Tags Workouts
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Workout}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /workouts [get]
func (wc *WorkoutController) GetAllWorkouts(c *gin.Context) {
	workouts, err := wc.repo.GetAll(c.Request.Context())
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve workouts: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Workouts retrieved successfully", workouts)
}

// CreateWorkout godoc
// @Summary Create a new workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workout body CreateWorkoutRequest true "Workout data"
// @Success 201 {object} responses.SuccessResponse{data=Workout}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /workouts [post]
func (wc *WorkoutController) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	workout := Workout{
		ID:              req.ID,
		Name:            req.Name,
		Description:     req.Description,
		Difficulty:      req.Difficulty,
		DurationMinutes: req.DurationMinutes,
		Exercises:       toExercises(req.Exercises),
		TargetMuscles:   req.TargetMuscles,
		EquipmentNeeded: req.EquipmentNeeded,
		CreatedAt:       time.Now(),
	}
	if workout.ID == "" {
		workout.ID = "workout_" + uuid.NewString()
	}

	if err := wc.repo.Create(c.Request.Context(), &workout); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create workout: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Workout created successfully", workout)
}

// GetWorkoutByID godoc
// @Summary Get a workout by ID
// @Tags Workouts
// @Produce json
// @Param workout_id path string true "Workout ID"
// @Success 200 {object} responses.SuccessResponse{data=Workout}
// @Failure 404 {object} responses.ErrorResponse "Workout not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /workouts/{workout_id} [get]
func (wc *WorkoutController) GetWorkoutByID(c *gin.Context) {
	workout, err := wc.repo.GetByID(c.Request.Context(), c.Param("workout_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Workout")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve workout: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Workout retrieved successfully", workout)
}

// UpdateWorkout godoc
// @Summary Update a workout
// @Description Partially updates a workout; omitted fields are left unchanged. created_at is immutable.
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workout_id path string true "Workout ID"
// @Param workout body UpdateWorkoutRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Workout}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Workout not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /workouts/{workout_id} [put]
func (wc *WorkoutController) UpdateWorkout(c *gin.Context) {
	workout, err := wc.repo.GetByID(c.Request.Context(), c.Param("workout_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Workout")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve workout: "+err.Error())
		return
	}

	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	if req.Name != nil {
		workout.Name = *req.Name
	}
	if req.Description != nil {
		workout.Description = *req.Description
	}
	if req.Difficulty != nil {
		workout.Difficulty = *req.Difficulty
	}
	if req.DurationMinutes != nil {
		workout.DurationMinutes = *req.DurationMinutes
	}
	if req.Exercises != nil {
		workout.Exercises = toExercises(*req.Exercises)
	}
	if req.TargetMuscles != nil {
		workout.TargetMuscles = *req.TargetMuscles
	}
	if req.EquipmentNeeded != nil {
		workout.EquipmentNeeded = *req.EquipmentNeeded
	}

	if err := wc.repo.Update(c.Request.Context(), workout); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update workout: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Workout updated successfully", workout)
}

// DeleteWorkout godoc
// @Summary Delete a workout
// @Tags Workouts
// @Produce json
// @Param workout_id path string true "Workout ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Workout not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /workouts/{workout_id} [delete]
func (wc *WorkoutController) DeleteWorkout(c *gin.Context) {
	if err := wc.repo.Delete(c.Request.Context(), c.Param("workout_id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Workout")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete workout: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Workout deleted successfully", nil)
}

// GetByDifficulty godoc
// @Summary Get workouts by difficulty
// @Tags Workouts
// @Produce json
// @Param difficulty query string true "Difficulty level"
// @Success 200 {object} responses.SuccessResponse{data=[]Workout}
// @Failure 400 {object} responses.ErrorResponse "Missing difficulty parameter"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /workouts/by-difficulty [get]
func (wc *WorkoutController) GetByDifficulty(c *gin.Context) {
	difficulty := c.Query("difficulty")
	if difficulty == "" {
		responses.BadRequest(c, "difficulty parameter required")
		return
	}

	workouts, err := wc.repo.GetByDifficulty(c.Request.Context(), difficulty)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve workouts: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Workouts retrieved successfully", workouts)
}
