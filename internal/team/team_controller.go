package team

import (
	"errors"
	"net/http"
	"time"

	"github.com/octofit-app/octofit-api/config"
	"github.com/octofit-app/octofit-api/internal/leaderboard"
	"github.com/octofit-app/octofit-api/internal/user"
	"github.com/octofit-app/octofit-api/pkg/responses"
	"github.com/octofit-app/octofit-api/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamController handles team-related HTTP requests.
type TeamController struct {
	repo      TeamRepository
	userRepo  user.UserRepository
	lbRepo    leaderboard.LeaderboardRepository
	appConfig *config.Config
}

// NewTeamController creates a new team controller.
func NewTeamController(repo TeamRepository, userRepo user.UserRepository, lbRepo leaderboard.LeaderboardRepository, appConfig *config.Config) *TeamController {
	return &TeamController{
		repo:      repo,
		userRepo:  userRepo,
		lbRepo:    lbRepo,
		appConfig: appConfig,
	}
}

// --- DTOs for requests ---

type CreateTeamRequest struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name" binding:"required,min=1,max=200"`
	Description string   `json:"description" binding:"max=1000"`
	Members     []string `json:"members"`
}

type UpdateTeamRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string   `json:"description" binding:"omitempty,max=1000"`
	Members     *[]string `json:"members"`
}

// --- Team Handlers ---

// GetAllTeams godoc
// @Summary Get all teams
// @Tags Teams
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Team}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	teams, err := tc.repo.GetAll(c.Request.Context())
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve teams: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Teams retrieved successfully", teams)
}

// CreateTeam godoc
// @Summary Create a new team
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team data"
// @Success 201 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	team := Team{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Members:     req.Members,
		CreatedAt:   time.Now(),
	}
	if team.ID == "" {
		team.ID = "team_" + uuid.NewString()
	}
	if team.Members == nil {
		team.Members = []string{}
	}

	if err := tc.repo.Create(c.Request.Context(), &team); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create team: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", team)
}

// GetTeamByID godoc
// @Summary Get a team by ID
// @Tags Teams
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	team, err := tc.repo.GetByID(c.Request.Context(), c.Param("team_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Team")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve team: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", team)
}

// UpdateTeam godoc
// @Summary Update a team
// @Description Partially updates a team; omitted fields are left unchanged. created_at is immutable.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team_id path string true "Team ID"
// @Param team body UpdateTeamRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=Team}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id} [put]
func (tc *TeamController) UpdateTeam(c *gin.Context) {
	team, err := tc.repo.GetByID(c.Request.Context(), c.Param("team_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Team")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve team: "+err.Error())
		return
	}

	var req UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.Members != nil {
		team.Members = *req.Members
	}

	if err := tc.repo.Update(c.Request.Context(), team); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update team: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team updated successfully", team)
}

// DeleteTeam godoc
// @Summary Delete a team
// @Description Removes a team. Members keep their team_id back-reference; no cascade.
// @Tags Teams
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id} [delete]
func (tc *TeamController) DeleteTeam(c *gin.Context) {
	if err := tc.repo.Delete(c.Request.Context(), c.Param("team_id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Team")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete team: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team deleted successfully", nil)
}

// GetTeamMembers godoc
// @Summary Get all members of a team
// @Description Derives membership from the users whose team_id matches. The team document's cached members list is ignored, as it can drift.
// @Tags Teams
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id}/members [get]
func (tc *TeamController) GetTeamMembers(c *gin.Context) {
	team, err := tc.repo.GetByID(c.Request.Context(), c.Param("team_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Team")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve team: "+err.Error())
		return
	}

	members, err := tc.userRepo.GetByTeamID(c.Request.Context(), team.ID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve members: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team members retrieved successfully", members)
}

// GetTeamLeaderboard godoc
// @Summary Get the leaderboard for a team
// @Description Returns the stored leaderboard entries tagged with this team, preserving rank order.
// @Tags Teams
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /teams/{team_id}/leaderboard [get]
func (tc *TeamController) GetTeamLeaderboard(c *gin.Context) {
	team, err := tc.repo.GetByID(c.Request.Context(), c.Param("team_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "Team")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve team: "+err.Error())
		return
	}

	entries, err := tc.lbRepo.GetAll(c.Request.Context())
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve leaderboard: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team leaderboard retrieved successfully", leaderboard.ByTeam(entries, team.ID))
}
