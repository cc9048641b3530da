package leaderboard

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/octofit-app/octofit-api/config"
	"github.com/octofit-app/octofit-api/pkg/responses"
	"github.com/octofit-app/octofit-api/pkg/validator"

	"github.com/gin-gonic/gin"
)

// DefaultTopLimit is used when /leaderboard/top is called without a limit.
const DefaultTopLimit = 10

// LeaderboardController handles leaderboard-related HTTP requests.
type LeaderboardController struct {
	repo      LeaderboardRepository
	appConfig *config.Config
}

// NewLeaderboardController creates a new leaderboard controller.
func NewLeaderboardController(repo LeaderboardRepository, appConfig *config.Config) *LeaderboardController {
	return &LeaderboardController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// --- DTOs for requests ---

type CreateEntryRequest struct {
	ID                   string `json:"_id"`
	UserID               string `json:"user_id" binding:"required"`
	UserName             string `json:"user_name" binding:"required"`
	TeamID               string `json:"team_id"`
	TotalActivities      int    `json:"total_activities" binding:"gte=0"`
	TotalCalories        int    `json:"total_calories"`
	TotalDurationMinutes int    `json:"total_duration_minutes" binding:"gte=0"`
	Rank                 int    `json:"rank" binding:"gte=0"`
}

type UpdateEntryRequest struct {
	UserName             *string `json:"user_name"`
	TeamID               *string `json:"team_id"`
	TotalActivities      *int    `json:"total_activities" binding:"omitempty,gte=0"`
	TotalCalories        *int    `json:"total_calories"`
	TotalDurationMinutes *int    `json:"total_duration_minutes" binding:"omitempty,gte=0"`
	Rank                 *int    `json:"rank" binding:"omitempty,gte=0"`
}

// --- Leaderboard Handlers ---

// GetLeaderboard godoc
// @Summary Get the full leaderboard
// @Description Retrieves all leaderboard entries ordered by rank.
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Entry}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /leaderboard [get]
func (lc *LeaderboardController) GetLeaderboard(c *gin.Context) {
	entries, err := lc.repo.GetAll(c.Request.Context())
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve leaderboard: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Leaderboard retrieved successfully", entries)
}

// CreateEntry godoc
// @Summary Create a leaderboard entry
// @Description Inserts a single leaderboard entry. Normally entries come from a rebuild; this exists for manual corrections.
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param entry body CreateEntryRequest true "Entry data"
// @Success 201 {object} responses.SuccessResponse{data=Entry}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /leaderboard [post]
func (lc *LeaderboardController) CreateEntry(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	entry := Entry{
		ID:                   req.ID,
		UserID:               req.UserID,
		UserName:             req.UserName,
		TeamID:               req.TeamID,
		TotalActivities:      req.TotalActivities,
		TotalCalories:        req.TotalCalories,
		TotalDurationMinutes: req.TotalDurationMinutes,
		Rank:                 req.Rank,
		UpdatedAt:            time.Now(),
	}
	if entry.ID == "" {
		entry.ID = EntryID(req.UserID)
	}

	if err := lc.repo.Create(c.Request.Context(), &entry); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create leaderboard entry: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Leaderboard entry created successfully", entry)
}

// GetEntryByID godoc
// @Summary Get a leaderboard entry by ID
// @Tags Leaderboard
// @Produce json
// @Param entry_id path string true "Entry ID"
// @Success 200 {object} responses.SuccessResponse{data=Entry}
// @Failure 404 {object} responses.ErrorResponse "Entry not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /leaderboard/{entry_id} [get]
func (lc *LeaderboardController) GetEntryByID(c *gin.Context) {
	entry, err := lc.repo.GetByID(c.Request.Context(), c.Param("entry_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Leaderboard entry")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve leaderboard entry: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Leaderboard entry retrieved successfully", entry)
}

// UpdateEntry godoc
// @Summary Update a leaderboard entry
// @Description Partially updates an entry; omitted fields are left unchanged.
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param entry_id path string true "Entry ID"
// @Param entry body UpdateEntryRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Entry}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Entry not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /leaderboard/{entry_id} [put]
func (lc *LeaderboardController) UpdateEntry(c *gin.Context) {
	entry, err := lc.repo.GetByID(c.Request.Context(), c.Param("entry_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Leaderboard entry")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve leaderboard entry: "+err.Error())
		return
	}

	var req UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	if req.UserName != nil {
		entry.UserName = *req.UserName
	}
	if req.TeamID != nil {
		entry.TeamID = *req.TeamID
	}
	if req.TotalActivities != nil {
		entry.TotalActivities = *req.TotalActivities
	}
	if req.TotalCalories != nil {
		entry.TotalCalories = *req.TotalCalories
	}
	if req.TotalDurationMinutes != nil {
		entry.TotalDurationMinutes = *req.TotalDurationMinutes
	}
	if req.Rank != nil {
		entry.Rank = *req.Rank
	}
	entry.UpdatedAt = time.Now()

	if err := lc.repo.Update(c.Request.Context(), entry); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update leaderboard entry: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Leaderboard entry updated successfully", entry)
}

// DeleteEntry godoc
// @Summary Delete a leaderboard entry
// @Tags Leaderboard
// @Produce json
// @Param entry_id path string true "Entry ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Entry not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /leaderboard/{entry_id} [delete]
func (lc *LeaderboardController) DeleteEntry(c *gin.Context) {
	if err := lc.repo.Delete(c.Request.Context(), c.Param("entry_id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Leaderboard entry")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete leaderboard entry: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Leaderboard entry deleted successfully", nil)
}

// GetTop godoc
// @Summary Get the top N leaderboard entries
// @Description Returns the first N entries of the stored rank order. No recomputation happens here.
// @Tags Leaderboard
// @Produce json
// @Param limit query int false "Number of entries" default(10)
// @Success 200 {object} responses.SuccessResponse{data=[]Entry}
// @Failure 400 {object} responses.ErrorResponse "Invalid limit"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /leaderboard/top [get]
func (lc *LeaderboardController) GetTop(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultTopLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		responses.BadRequest(c, "limit must be a non-negative integer")
		return
	}

	entries, err := lc.repo.GetAll(c.Request.Context())
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve leaderboard: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Top leaderboard entries retrieved successfully", TopN(entries, limit))
}

// GetByTeam godoc
// @Summary Get leaderboard entries for a team
// @Tags Leaderboard
// @Produce json
// @Param team_id query string true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Entry}
// @Failure 400 {object} responses.ErrorResponse "Missing team_id parameter"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /leaderboard/by-team [get]
func (lc *LeaderboardController) GetByTeam(c *gin.Context) {
	teamID := c.Query("team_id")
	if teamID == "" {
		responses.BadRequest(c, "team_id parameter required")
		return
	}

	entries, err := lc.repo.GetAll(c.Request.Context())
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve leaderboard: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team leaderboard retrieved successfully", ByTeam(entries, teamID))
}

// RebuildLeaderboard godoc
// @Summary Rebuild the leaderboard
// @Description Recomputes every entry from the current users and activities and replaces the stored set. The clear-then-insert swap is not transactional.
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Entry}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /leaderboard/rebuild [post]
func (lc *LeaderboardController) RebuildLeaderboard(c *gin.Context) {
	entries, err := Rebuild(c.Request.Context(), lc.repo, time.Now())
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to rebuild leaderboard: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Leaderboard rebuilt successfully", entries)
}
