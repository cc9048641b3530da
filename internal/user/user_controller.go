package user

import (
	"errors"
	"net/http"
	"time"

	"github.com/octofit-app/octofit-api/config"
	"github.com/octofit-app/octofit-api/internal/activity"
	"github.com/octofit-app/octofit-api/internal/leaderboard"
	"github.com/octofit-app/octofit-api/pkg/responses"
	"github.com/octofit-app/octofit-api/pkg/validator"
	"github.com/octofit-app/octofit-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserController handles user-related HTTP requests.
type UserController struct {
	repo         UserRepository
	activityRepo activity.ActivityRepository
	statsRepo    leaderboard.LeaderboardRepository
	appConfig    *config.Config
}

// NewUserController creates a new user controller.
func NewUserController(repo UserRepository, activityRepo activity.ActivityRepository, statsRepo leaderboard.LeaderboardRepository, appConfig *config.Config) *UserController {
	return &UserController{
		repo:         repo,
		activityRepo: activityRepo,
		statsRepo:    statsRepo,
		appConfig:    appConfig,
	}
}

// --- DTOs for requests ---

type ProfileRequest struct {
	Age          int    `json:"age" binding:"omitempty,gte=0"`
	Height       int    `json:"height" binding:"omitempty,gte=0"`
	Weight       int    `json:"weight" binding:"omitempty,gte=0"`
	FitnessLevel string `json:"fitness_level" binding:"omitempty,max=50"`
}

type CreateUserRequest struct {
	ID       string         `json:"_id"`
	Name     string         `json:"name" binding:"required,min=1,max=200"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=6"`
	TeamID   string         `json:"team_id"`
	Profile  ProfileRequest `json:"profile"`
}

type UpdateUserRequest struct {
	Name     *string         `json:"name" binding:"omitempty,min=1,max=200"`
	Email    *string         `json:"email" binding:"omitempty,email"`
	Password *string         `json:"password" binding:"omitempty,min=6"`
	TeamID   *string         `json:"team_id"`
	Profile  *ProfileRequest `json:"profile"`
}

// --- User Handlers ---

// GetAllUsers godoc
// @Summary Get all users
// @Tags Users
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]User}
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /users [get]
func (uc *UserController) GetAllUsers(c *gin.Context) {
	users, err := uc.repo.GetAll(c.Request.Context())
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve users: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Users retrieved successfully", users)
}

// CreateUser godoc
// @Summary Create a new user
// @Description Registers a user. The password is bcrypt-hashed before storage and never echoed back.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User data"
// @Success 201 {object} responses.SuccessResponse{data=User}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 409 {object} responses.ErrorResponse "Email already registered"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /users [post]
func (uc *UserController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	existing, _ := uc.repo.GetByEmail(c.Request.Context(), req.Email)
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Email already registered")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := User{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		TeamID:   req.TeamID,
		Profile: Profile{
			Age:          req.Profile.Age,
			Height:       req.Profile.Height,
			Weight:       req.Profile.Weight,
			FitnessLevel: req.Profile.FitnessLevel,
		},
		CreatedAt: time.Now(),
	}
	if user.ID == "" {
		user.ID = "user_" + uuid.NewString()
	}

	if err := uc.repo.Create(c.Request.Context(), &user); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create user: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "User created successfully", user)
}

// GetUserByID godoc
// @Summary Get a user by ID
// @Tags Users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} responses.SuccessResponse{data=User}
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /users/{user_id} [get]
func (uc *UserController) GetUserByID(c *gin.Context) {
	user, err := uc.repo.GetByID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "User")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve user: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User retrieved successfully", user)
}

// UpdateUser godoc
// @Summary Update a user
// @Description Partially updates a user; omitted fields are left unchanged. created_at is immutable. Changing team_id does not rewrite any team's cached members list.
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param user body UpdateUserRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse{data=User}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /users/{user_id} [put]
func (uc *UserController) UpdateUser(c *gin.Context) {
	user, err := uc.repo.GetByID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "User")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve user: "+err.Error())
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, validator.ParseError(err))
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			responses.SendError(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		user.Password = hashed
	}
	if req.TeamID != nil {
		user.TeamID = *req.TeamID
	}
	if req.Profile != nil {
		user.Profile = Profile{
			Age:          req.Profile.Age,
			Height:       req.Profile.Height,
			Weight:       req.Profile.Weight,
			FitnessLevel: req.Profile.FitnessLevel,
		}
	}

	if err := uc.repo.Update(c.Request.Context(), user); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update user: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User updated successfully", user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Removes a user. Their activities and leaderboard entry are NOT removed; the next rebuild drops the entry.
// @Tags Users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /users/{user_id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	if err := uc.repo.Delete(c.Request.Context(), c.Param("user_id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "User")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to delete user: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User deleted successfully", nil)
}

// GetUserActivities godoc
// @Summary Get all activities for a user
// @Tags Users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "User not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /users/{user_id}/activities [get]
func (uc *UserController) GetUserActivities(c *gin.Context) {
	user, err := uc.repo.GetByID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "User")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve user: "+err.Error())
		return
	}

	activities, err := uc.activityRepo.GetByUserID(c.Request.Context(), user.ID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve activities: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Activities retrieved successfully", activities)
}

// GetUserStats godoc
// @Summary Get aggregated statistics for a user
// @Description Returns the user's leaderboard entry. 404 when no entry exists, i.e. the leaderboard has not been rebuilt since the user was created.
// @Tags Users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "User not found / no stats available"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Router /users/{user_id}/stats [get]
func (uc *UserController) GetUserStats(c *gin.Context) {
	user, err := uc.repo.GetByID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			responses.NotFound(c, "User")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve user: "+err.Error())
		return
	}

	entry, err := uc.statsRepo.GetByUserID(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, leaderboard.ErrNotFound) {
			responses.SendError(c, http.StatusNotFound, "No stats available")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve stats: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Stats retrieved successfully", entry)
}
