package workout

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/octofit-app/octofit-api/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory WorkoutRepository for handler tests.
type fakeRepo struct {
	workouts []Workout
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]Workout, error) {
	return f.workouts, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Workout, error) {
	for i := range f.workouts {
		if f.workouts[i].ID == id {
			return &f.workouts[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) GetByDifficulty(ctx context.Context, difficulty string) ([]Workout, error) {
	out := []Workout{}
	for _, w := range f.workouts {
		if w.Difficulty == difficulty {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeRepo) Create(ctx context.Context, workout *Workout) error {
	f.workouts = append(f.workouts, *workout)
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, workout *Workout) error {
	for i := range f.workouts {
		if f.workouts[i].ID == workout.ID {
			f.workouts[i] = *workout
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	for i := range f.workouts {
		if f.workouts[i].ID == id {
			f.workouts = append(f.workouts[:i], f.workouts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func newTestRouter(repo WorkoutRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewWorkoutController(repo, &config.Config{})

	workouts := r.Group("/api/workouts")
	workouts.GET("", controller.GetAllWorkouts)
	workouts.POST("", controller.CreateWorkout)
	workouts.GET("/by-difficulty", controller.GetByDifficulty)
	workouts.GET("/:workout_id", controller.GetWorkoutByID)
	workouts.PUT("/:workout_id", controller.UpdateWorkout)
	workouts.DELETE("/:workout_id", controller.DeleteWorkout)
	return r
}

type workoutResponse struct {
	Status string  `json:"status"`
	Data   Workout `json:"data"`
}

type workoutListResponse struct {
	Status string    `json:"status"`
	Data   []Workout `json:"data"`
}

func sampleWorkouts() []Workout {
	now := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	reps := func(n int) *int { return &n }
	return []Workout{
		{
			ID: "workout_cardio", Name: "Cardio Blast", Difficulty: DifficultyBeginner,
			DurationMinutes: 30,
			Exercises:       []Exercise{{Name: "Jumping Jacks", Sets: 3, Reps: reps(20)}},
			CreatedAt:       now,
		},
		{
			ID: "workout_strength", Name: "Upper Body Strength", Difficulty: DifficultyIntermediate,
			DurationMinutes: 45,
			Exercises:       []Exercise{{Name: "Push-ups", Sets: 4, Reps: reps(15)}},
			CreatedAt:       now,
		},
		{
			ID: "workout_hero", Name: "Superhero Training", Difficulty: DifficultyAdvanced,
			DurationMinutes: 60,
			Exercises:       []Exercise{{Name: "Box Jumps", Sets: 5, Reps: reps(15)}},
			CreatedAt:       now,
		},
	}
}

func TestCreateWorkoutGeneratesID(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(repo)

	body, _ := json.Marshal(CreateWorkoutRequest{
		Name:            "Morning Routine",
		Difficulty:      DifficultyBeginner,
		DurationMinutes: 20,
		Exercises:       []ExerciseRequest{{Name: "Squats", Sets: 3}},
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/workouts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp workoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Data.ID, "workout_")
	require.Len(t, repo.workouts, 1)
}

func TestCreateWorkoutRequiresExercises(t *testing.T) {
	r := newTestRouter(&fakeRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/workouts",
		bytes.NewReader([]byte(`{"name":"Empty Plan","difficulty":"Beginner","duration_minutes":20,"exercises":[]}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetByDifficultyRequiresParam(t *testing.T) {
	r := newTestRouter(&fakeRepo{workouts: sampleWorkouts()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/workouts/by-difficulty", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetByDifficultyFilters(t *testing.T) {
	r := newTestRouter(&fakeRepo{workouts: sampleWorkouts()})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/workouts/by-difficulty?difficulty=Advanced", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp workoutListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "workout_hero", resp.Data[0].ID)
}

func TestUpdateWorkoutPartial(t *testing.T) {
	repo := &fakeRepo{workouts: sampleWorkouts()}
	r := newTestRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/workouts/workout_cardio",
		bytes.NewReader([]byte(`{"duration_minutes":35}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	updated, err := repo.GetByID(context.Background(), "workout_cardio")
	require.NoError(t, err)
	assert.Equal(t, 35, updated.DurationMinutes)
	assert.Equal(t, "Cardio Blast", updated.Name, "omitted fields stay unchanged")
	assert.Len(t, updated.Exercises, 1)
}

func TestGetWorkoutByIDNotFound(t *testing.T) {
	r := newTestRouter(&fakeRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/workouts/workout_missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteWorkoutNotFound(t *testing.T) {
	r := newTestRouter(&fakeRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/workouts/workout_missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
