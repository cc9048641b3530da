package team

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
	"github.com/octofit-app/octofit-api/internal/leaderboard"
	"github.com/octofit-app/octofit-api/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTeamRepo is an in-memory TeamRepository for handler tests.
type fakeTeamRepo struct {
	teams []Team
}

func (f *fakeTeamRepo) GetAll(ctx context.Context) ([]Team, error) {
	return f.teams, nil
}

func (f *fakeTeamRepo) GetByID(ctx context.Context, id string) (*Team, error) {
	for i := range f.teams {
		if f.teams[i].ID == id {
			return &f.teams[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeTeamRepo) Create(ctx context.Context, team *Team) error {
	f.teams = append(f.teams, *team)
	return nil
}

func (f *fakeTeamRepo) Update(ctx context.Context, team *Team) error {
	for i := range f.teams {
		if f.teams[i].ID == team.ID {
			f.teams[i] = *team
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeTeamRepo) Delete(ctx context.Context, id string) error {
	for i := range f.teams {
		if f.teams[i].ID == id {
			f.teams = append(f.teams[:i], f.teams[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// fakeUserRepo serves the derived members endpoint.
type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]user.User, error) { return f.users, nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	return nil, user.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, user.ErrNotFound
}

func (f *fakeUserRepo) GetByTeamID(ctx context.Context, teamID string) ([]user.User, error) {
	out := []user.User{}
	for _, u := range f.users {
		if u.TeamID == teamID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error    { return nil }

// fakeLeaderboardRepo serves the team leaderboard endpoint.
type fakeLeaderboardRepo struct {
	entries []leaderboard.Entry
}

func (f *fakeLeaderboardRepo) GetAll(ctx context.Context) ([]leaderboard.Entry, error) {
	return f.entries, nil
}

func (f *fakeLeaderboardRepo) GetByID(ctx context.Context, id string) (*leaderboard.Entry, error) {
	return nil, leaderboard.ErrNotFound
}

func (f *fakeLeaderboardRepo) GetByUserID(ctx context.Context, userID string) (*leaderboard.Entry, error) {
	return nil, leaderboard.ErrNotFound
}

func (f *fakeLeaderboardRepo) Create(ctx context.Context, e *leaderboard.Entry) error { return nil }
func (f *fakeLeaderboardRepo) Update(ctx context.Context, e *leaderboard.Entry) error { return nil }
func (f *fakeLeaderboardRepo) Delete(ctx context.Context, id string) error            { return nil }

func (f *fakeLeaderboardRepo) ReplaceAll(ctx context.Context, entries []leaderboard.Entry) error {
	f.entries = entries
	return nil
}

func (f *fakeLeaderboardRepo) FetchUserRefs(ctx context.Context) ([]leaderboard.UserRef, error) {
	return nil, nil
}

func (f *fakeLeaderboardRepo) FetchActivityStats(ctx context.Context) ([]leaderboard.ActivityStat, error) {
	return nil, nil
}

func newTestRouter(repo TeamRepository, userRepo user.UserRepository, lbRepo leaderboard.LeaderboardRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewTeamController(repo, userRepo, lbRepo, &config.Config{})

	teams := r.Group("/api/teams")
	teams.GET("", controller.GetAllTeams)
	teams.POST("", controller.CreateTeam)
	teams.GET("/:team_id", controller.GetTeamByID)
	teams.PUT("/:team_id", controller.UpdateTeam)
	teams.DELETE("/:team_id", controller.DeleteTeam)
	teams.GET("/:team_id/members", controller.GetTeamMembers)
	teams.GET("/:team_id/leaderboard", controller.GetTeamLeaderboard)
	return r
}

func sampleTeams() []Team {
	now := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	return []Team{
		{ID: "team_marvel", Name: "Team Marvel", Description: "Defenders of the Earth", Members: []string{"user_stale"}, CreatedAt: now},
		{ID: "team_dc", Name: "Team DC", Description: "Justice League United", Members: []string{}, CreatedAt: now},
	}
}

func TestCreateTeamGeneratesID(t *testing.T) {
	repo := &fakeTeamRepo{}
	r := newTestRouter(repo, &fakeUserRepo{}, &fakeLeaderboardRepo{})

	body, _ := json.Marshal(CreateTeamRequest{Name: "Team X"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/teams", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.teams, 1)
	assert.True(t, strings.HasPrefix(repo.teams[0].ID, "team_"))
	assert.NotNil(t, repo.teams[0].Members, "members defaults to an empty list")
}

func TestCreateTeamValidation(t *testing.T) {
	r := newTestRouter(&fakeTeamRepo{}, &fakeUserRepo{}, &fakeLeaderboardRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/teams", bytes.NewReader([]byte(`{"name":""}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTeamByIDNotFound(t *testing.T) {
	r := newTestRouter(&fakeTeamRepo{}, &fakeUserRepo{}, &fakeLeaderboardRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/teams/team_missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTeamMembersDerivedFromUsers(t *testing.T) {
	// The cached members list names user_stale, but membership is derived from
	// the users' team_id back-references.
	users := []user.User{
		{ID: "user_ironman", Name: "Tony Stark", TeamID: "team_marvel"},
		{ID: "user_batman", Name: "Bruce Wayne", TeamID: "team_dc"},
		{ID: "user_hulk", Name: "Bruce Banner", TeamID: "team_marvel"},
	}
	r := newTestRouter(&fakeTeamRepo{teams: sampleTeams()}, &fakeUserRepo{users: users}, &fakeLeaderboardRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/teams/team_marvel/members", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []user.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	ids := []string{resp.Data[0].ID, resp.Data[1].ID}
	assert.ElementsMatch(t, []string{"user_ironman", "user_hulk"}, ids)
	assert.NotContains(t, ids, "user_stale")
}

func TestGetTeamLeaderboardPreservesRankOrder(t *testing.T) {
	lb := &fakeLeaderboardRepo{entries: []leaderboard.Entry{
		{UserID: "u1", TeamID: "team_marvel", TotalCalories: 900, Rank: 1},
		{UserID: "u2", TeamID: "team_dc", TotalCalories: 700, Rank: 2},
		{UserID: "u3", TeamID: "team_marvel", TotalCalories: 400, Rank: 3},
	}}
	r := newTestRouter(&fakeTeamRepo{teams: sampleTeams()}, &fakeUserRepo{}, lb)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/teams/team_marvel/leaderboard", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []leaderboard.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "u1", resp.Data[0].UserID)
	assert.Equal(t, "u3", resp.Data[1].UserID)
	assert.Less(t, resp.Data[0].Rank, resp.Data[1].Rank)
}

func TestGetTeamLeaderboardUnknownTeam(t *testing.T) {
	r := newTestRouter(&fakeTeamRepo{}, &fakeUserRepo{}, &fakeLeaderboardRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/teams/team_missing/leaderboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTeamPartial(t *testing.T) {
	repo := &fakeTeamRepo{teams: sampleTeams()}
	r := newTestRouter(repo, &fakeUserRepo{}, &fakeLeaderboardRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/teams/team_dc",
		bytes.NewReader([]byte(`{"description":"United we stand"}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	updated, err := repo.GetByID(context.Background(), "team_dc")
	require.NoError(t, err)
	assert.Equal(t, "United we stand", updated.Description)
	assert.Equal(t, "Team DC", updated.Name, "omitted fields stay unchanged")
}

func TestDeleteTeamNoCascade(t *testing.T) {
	users := []user.User{{ID: "user_batman", TeamID: "team_dc"}}
	userRepo := &fakeUserRepo{users: users}
	repo := &fakeTeamRepo{teams: sampleTeams()}
	r := newTestRouter(repo, userRepo, &fakeLeaderboardRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/teams/team_dc", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, repo.teams, 1)
	assert.Equal(t, "team_dc", userRepo.users[0].TeamID, "users keep their back-reference")
}
