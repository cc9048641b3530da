package activity

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

// ActivityController handles activity-related HTTP requests.
type ActivityController struct {
	repo      ActivityRepository
	appConfig *config.Config
}

// NewActivityController creates a new activity controller.
func NewActivityController(repo ActivityRepository, appConfig *config.Config) *ActivityController {
	return &ActivityController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// --- DTOs for requests ---

type CreateActivityRequest struct {
	ID              string     `json:"_id"`
	UserID          string     `json:"user_id" binding:"required"`
	Type            string     `json:"type" binding:"required"`
	DurationMinutes int        `json:"duration_minutes" binding:"required,gt=0"`
	CaloriesBurned  int        `json:"calories_burned" binding:"gte=0"`
	DistanceKm      *float64   `json:"distance_km"`
	Date            *time.Time `json:"date"`
	Notes           string     `json:"notes" binding:"max=1000"`
}

type UpdateActivityRequest struct {
	Type            *string  `json:"type"`
	DurationMinutes *int     `json:"duration_minutes" binding:"omitempty,gt=0"`
	CaloriesBurned  *int     `json:"calories_burned" binding:"omitempty,gte=0"`
	DistanceKm      *float64 `json:"distance_km"`
	Notes           *string  `json:"notes" binding:"omitempty,max=1000"`
}

// --- Activity Handlers ---

// GetAllActivities godoc
// @Summary Get all activities
// @Tags Activities
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Activity}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /activities [get]
func (ac *ActivityController) GetAllActivities(c *gin.Context) {
	activities, err := ac.repo.GetAll(c.Request.Context())
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve activities: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Activities retrieved successfully", activities)
}

// CreateActivity godoc
// @Summary Log a new activity
// @Description Creates an activity. Calories and durations are stored as given; leaderboard totals only change on the next rebuild.
// @Tags Activities
// @Accept json
// @Produce json
// @Param activity body CreateActivityRequest true "Activity data"
// @Success 201 {object} responses.SuccessResponse{data=Activity}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /activities [post]
func (ac *ActivityController) CreateActivity(c *gin.Context) {
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	activity := Activity{
		ID:              req.ID,
		UserID:          req.UserID,
		Type:            req.Type,
		DurationMinutes: req.DurationMinutes,
		CaloriesBurned:  req.CaloriesBurned,
		DistanceKm:      req.DistanceKm,
		Notes:           req.Notes,
		Date:            time.Now(),
	}
	if req.Date != nil {
		activity.Date = *req.Date
	}
	if activity.ID == "" {
		activity.ID = "activity_" + uuid.NewString()
	}

	if err := ac.repo.Create(c.Request.Context(), &activity); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create activity: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Activity created successfully", activity)
}

// GetActivityByID godoc
// @Summary Get an activity by ID
// @Tags Activities
// @Produce json
// @Param activity_id path string true "Activity ID"
// @Success 200 {object} responses.SuccessResponse{data=Activity}
// @Failure 404 {object} responses.ErrorResponse "Activity not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /activities/{activity_id} [get]
func (ac *ActivityController) GetActivityByID(c *gin.Context) {
	activity, err := ac.repo.GetByID(c.Request.Context(), c.Param("activity_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Activity")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve activity: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Activity retrieved successfully", activity)
}

// UpdateActivity godoc
// @Summary Update an activity
// @Description Partially updates an activity; omitted fields are left unchanged. The date and owning user are immutable.
// @Tags Activities
// @Accept json
// @Produce json
// @Param activity_id path string true "Activity ID"
// @Param activity body UpdateActivityRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Activity}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Activity not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /activities/{activity_id} [put]
func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	activity, err := ac.repo.GetByID(c.Request.Context(), c.Param("activity_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Activity")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve activity: "+err.Error())
		return
	}

	var req UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	if req.Type != nil {
		activity.Type = *req.Type
	}
	if req.DurationMinutes != nil {
		activity.DurationMinutes = *req.DurationMinutes
	}
	if req.CaloriesBurned != nil {
		activity.CaloriesBurned = *req.CaloriesBurned
	}
	if req.DistanceKm != nil {
		activity.DistanceKm = req.DistanceKm
	}
	if req.Notes != nil {
		activity.Notes = *req.Notes
	}

	if err := ac.repo.Update(c.Request.Context(), activity); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update activity: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Activity updated successfully", activity)
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Description Removes an activity. Leaderboard totals keep the old numbers until the next rebuild.
// @Tags Activities
// @Produce json
// @Param activity_id path string true "Activity ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Activity not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /activities/{activity_id} [delete]
func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	if err := ac.repo.Delete(c.Request.Context(), c.Param("activity_id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Activity")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete activity: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Activity deleted successfully", nil)
}

// GetByUser godoc
// @Summary Get activities by user
// @Tags Activities
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Activity}
// @Failure 400 {object} responses.ErrorResponse "Missing user_id parameter"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /activities/by-user [get]
func (ac *ActivityController) GetByUser(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		responses.BadRequest(c, "user_id parameter required")
		return
	}

	activities, err := ac.repo.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve activities: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Activities retrieved successfully", activities)
}

// GetByType godoc
// @Summary Get activities by type
// @Tags Activities
// @Produce json
// @Param type query string true "Activity type"
// @Success 200 {object} responses.SuccessResponse{data=[]Activity}
// @Failure 400 {object} responses.ErrorResponse "Missing type parameter"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /activities/by-type [get]
func (ac *ActivityController) GetByType(c *gin.Context) {
	activityType := c.Query("type")
	if activityType == "" {
		responses.BadRequest(c, "type parameter required")
		return
	}

	activities, err := ac.repo.GetByType(c.Request.Context(), activityType)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve activities: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Activities retrieved successfully", activities)
}
