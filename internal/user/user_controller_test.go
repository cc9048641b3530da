package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/octofit-app/octofit-api/config"
	"github.com/octofit-app/octofit-api/internal/activity"
	"github.com/octofit-app/octofit-api/internal/leaderboard"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory UserRepository for handler tests.
type fakeUserRepo struct {
	users []User
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeUserRepo) GetByTeamID(ctx context.Context, teamID string) ([]User, error) {
	out := []User{}
	for _, u := range f.users {
		if u.TeamID == teamID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *User) error {
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *User) error {
	for i := range f.users {
		if f.users[i].ID == user.ID {
			f.users[i] = *user
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// fakeActivityRepo serves the per-user activities endpoint.
type fakeActivityRepo struct {
	activities []activity.Activity
}

func (f *fakeActivityRepo) GetAll(ctx context.Context) ([]activity.Activity, error) {
	return f.activities, nil
}

func (f *fakeActivityRepo) GetByID(ctx context.Context, id string) (*activity.Activity, error) {
	return nil, activity.ErrNotFound
}

func (f *fakeActivityRepo) GetByUserID(ctx context.Context, userID string) ([]activity.Activity, error) {
	out := []activity.Activity{}
	for _, a := range f.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeActivityRepo) GetByType(ctx context.Context, activityType string) ([]activity.Activity, error) {
	return nil, nil
}

func (f *fakeActivityRepo) Create(ctx context.Context, a *activity.Activity) error { return nil }
func (f *fakeActivityRepo) Update(ctx context.Context, a *activity.Activity) error { return nil }
func (f *fakeActivityRepo) Delete(ctx context.Context, id string) error            { return nil }

// fakeStatsRepo serves the per-user stats endpoint.
type fakeStatsRepo struct {
	entries []leaderboard.Entry
}

func (f *fakeStatsRepo) GetAll(ctx context.Context) ([]leaderboard.Entry, error) {
	return f.entries, nil
}

func (f *fakeStatsRepo) GetByID(ctx context.Context, id string) (*leaderboard.Entry, error) {
	return nil, leaderboard.ErrNotFound
}

func (f *fakeStatsRepo) GetByUserID(ctx context.Context, userID string) (*leaderboard.Entry, error) {
	for i := range f.entries {
		if f.entries[i].UserID == userID {
			return &f.entries[i], nil
		}
	}
	return nil, leaderboard.ErrNotFound
}

func (f *fakeStatsRepo) Create(ctx context.Context, e *leaderboard.Entry) error { return nil }
func (f *fakeStatsRepo) Update(ctx context.Context, e *leaderboard.Entry) error { return nil }
func (f *fakeStatsRepo) Delete(ctx context.Context, id string) error            { return nil }

func (f *fakeStatsRepo) ReplaceAll(ctx context.Context, entries []leaderboard.Entry) error {
	f.entries = entries
	return nil
}

func (f *fakeStatsRepo) FetchUserRefs(ctx context.Context) ([]leaderboard.UserRef, error) {
	return nil, nil
}

func (f *fakeStatsRepo) FetchActivityStats(ctx context.Context) ([]leaderboard.ActivityStat, error) {
	return nil, nil
}

func newTestRouter(repo UserRepository, activityRepo activity.ActivityRepository, statsRepo leaderboard.LeaderboardRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewUserController(repo, activityRepo, statsRepo, &config.Config{})

	users := r.Group("/api/users")
	users.GET("", controller.GetAllUsers)
	users.POST("", controller.CreateUser)
	users.GET("/:user_id", controller.GetUserByID)
	users.PUT("/:user_id", controller.UpdateUser)
	users.DELETE("/:user_id", controller.DeleteUser)
	users.GET("/:user_id/activities", controller.GetUserActivities)
	users.GET("/:user_id/stats", controller.GetUserStats)
	return r
}

func sampleUser() User {
	return User{
		ID:        "user_ironman",
		Name:      "Tony Stark",
		Email:     "tony@avengers.com",
		Password:  "$2a$10$notarealhashnotarealhashnotarealhash",
		TeamID:    "team_marvel",
		Profile:   Profile{Age: 48, Height: 185, Weight: 85, FitnessLevel: "Advanced"},
		CreatedAt: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateUserHashesPasswordAndHidesIt(t *testing.T) {
	repo := &fakeUserRepo{}
	r := newTestRouter(repo, &fakeActivityRepo{}, &fakeStatsRepo{})

	body, _ := json.Marshal(CreateUserRequest{
		Name:     "Steve Rogers",
		Email:    "steve@avengers.com",
		Password: "shield123",
		TeamID:   "team_marvel",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "shield123", "password must never be echoed")
	assert.NotContains(t, w.Body.String(), `"password"`)

	require.Len(t, repo.users, 1)
	stored := repo.users[0]
	assert.True(t, strings.HasPrefix(stored.ID, "user_"))
	assert.NotEqual(t, "shield123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("shield123")))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{users: []User{sampleUser()}}
	r := newTestRouter(repo, &fakeActivityRepo{}, &fakeStatsRepo{})

	body, _ := json.Marshal(CreateUserRequest{
		Name:     "Imposter",
		Email:    "tony@avengers.com",
		Password: "whoami1",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, repo.users, 1)
}

func TestCreateUserValidation(t *testing.T) {
	r := newTestRouter(&fakeUserRepo{}, &fakeActivityRepo{}, &fakeStatsRepo{})

	// Bad email and short password.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/users",
		bytes.NewReader([]byte(`{"name":"X","email":"not-an-email","password":"abc"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserByIDNotFound(t *testing.T) {
	r := newTestRouter(&fakeUserRepo{}, &fakeActivityRepo{}, &fakeStatsRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/user_missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	repo := &fakeUserRepo{users: []User{sampleUser()}}
	r := newTestRouter(repo, &fakeActivityRepo{}, &fakeStatsRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/users/user_ironman",
		bytes.NewReader([]byte(`{"password":"newsecret"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	stored := repo.users[0]
	assert.NotEqual(t, "newsecret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newsecret")))
	assert.Equal(t, "Tony Stark", stored.Name, "omitted fields stay unchanged")
}

func TestGetUserActivities(t *testing.T) {
	activities := []activity.Activity{
		{ID: "activity_1", UserID: "user_ironman", Type: activity.TypeRunning},
		{ID: "activity_2", UserID: "user_batman", Type: activity.TypeCycling},
	}
	r := newTestRouter(&fakeUserRepo{users: []User{sampleUser()}}, &fakeActivityRepo{activities: activities}, &fakeStatsRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/user_ironman/activities", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []activity.Activity `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "activity_1", resp.Data[0].ID)
}

func TestGetUserStats(t *testing.T) {
	stats := &fakeStatsRepo{entries: []leaderboard.Entry{
		{ID: "leaderboard_user_ironman", UserID: "user_ironman", TotalCalories: 1250, Rank: 1},
	}}
	r := newTestRouter(&fakeUserRepo{users: []User{sampleUser()}}, &fakeActivityRepo{}, stats)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/user_ironman/stats", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data leaderboard.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1250, resp.Data.TotalCalories)
	assert.Equal(t, 1, resp.Data.Rank)
}

func TestGetUserStatsNoEntry(t *testing.T) {
	// User exists but the leaderboard has not been rebuilt since they joined.
	r := newTestRouter(&fakeUserRepo{users: []User{sampleUser()}}, &fakeActivityRepo{}, &fakeStatsRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/user_ironman/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No stats available")
}

func TestDeleteUserNoCascade(t *testing.T) {
	activities := []activity.Activity{{ID: "activity_1", UserID: "user_ironman"}}
	activityRepo := &fakeActivityRepo{activities: activities}
	repo := &fakeUserRepo{users: []User{sampleUser()}}
	r := newTestRouter(repo, activityRepo, &fakeStatsRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/users/user_ironman", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.users)
	assert.Len(t, activityRepo.activities, 1, "activities survive user deletion")
}
