// Package seed populates the database with the reference dataset and runs an
// initial leaderboard rebuild. It is invoked by the seed command, not by the
// server.
package seed

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/octofit-app/octofit-api/config"
	"github.com/octofit-app/octofit-api/internal/activity"
	"github.com/octofit-app/octofit-api/internal/leaderboard"
	"github.com/octofit-app/octofit-api/internal/team"
	"github.com/octofit-app/octofit-api/internal/user"
	"github.com/octofit-app/octofit-api/internal/workout"
	"github.com/octofit-app/octofit-api/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var collections = []string{"users", "teams", "activities", "leaderboard", "workouts"}

// Run clears all collections, inserts the reference dataset and rebuilds the
// leaderboard from it.
func Run(ctx context.Context, db *mongo.Database) error {
	log.Println("Clearing existing data...")
	for _, name := range collections {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("failed to clear %s: %w", name, err)
		}
	}

	if err := config.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	log.Println("Created unique index on email field")

	teams := referenceTeams()
	if err := insertMany(ctx, db, "teams", toDocs(teams)); err != nil {
		return err
	}
	log.Printf("Inserted %d teams", len(teams))

	users, err := referenceUsers()
	if err != nil {
		return err
	}
	if err := insertMany(ctx, db, "users", toDocs(users)); err != nil {
		return err
	}
	log.Printf("Inserted %d users", len(users))

	// Refresh the cached members lists on the team documents. The members
	// endpoint derives membership from user.team_id; this cache exists only
	// for wire compatibility.
	teamRepo := team.NewTeamRepository(db)
	for i := range teams {
		members := []string{}
		for _, u := range users {
			if u.TeamID == teams[i].ID {
				members = append(members, u.ID)
			}
		}
		teams[i].Members = members
		if err := teamRepo.Update(ctx, &teams[i]); err != nil {
			return fmt.Errorf("failed to update team members: %w", err)
		}
	}

	activities := referenceActivities(users)
	if err := insertMany(ctx, db, "activities", toDocs(activities)); err != nil {
		return err
	}
	log.Printf("Inserted %d activities", len(activities))

	workouts := referenceWorkouts()
	if err := insertMany(ctx, db, "workouts", toDocs(workouts)); err != nil {
		return err
	}
	log.Printf("Inserted %d workouts", len(workouts))

	log.Println("Calculating leaderboard...")
	entries, err := leaderboard.Rebuild(ctx, leaderboard.NewLeaderboardRepository(db), time.Now())
	if err != nil {
		return fmt.Errorf("failed to rebuild leaderboard: %w", err)
	}
	log.Printf("Inserted %d leaderboard entries", len(entries))

	return nil
}

func insertMany(ctx context.Context, db *mongo.Database, name string, docs []interface{}) error {
	if _, err := db.Collection(name).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert %s: %w", name, err)
	}
	return nil
}

func toDocs[T any](items []T) []interface{} {
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	return docs
}

func referenceTeams() []team.Team {
	now := time.Now()
	return []team.Team{
		{ID: "team_marvel", Name: "Team Marvel", Description: "Defenders of the Earth", CreatedAt: now, Members: []string{}},
		{ID: "team_dc", Name: "Team DC", Description: "Justice League United", CreatedAt: now, Members: []string{}},
	}
}

func referenceUsers() ([]user.User, error) {
	password, err := utils.HashPassword("octofit123")
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}
	now := time.Now()

	build := func(id, name, email, teamID string, age, height, weight int, level string) user.User {
		return user.User{
			ID: id, Name: name, Email: email, Password: password, TeamID: teamID,
			Profile:   user.Profile{Age: age, Height: height, Weight: weight, FitnessLevel: level},
			CreatedAt: now,
		}
	}

	return []user.User{
		build("user_ironman", "Tony Stark", "tony@avengers.com", "team_marvel", 48, 185, 85, "Advanced"),
		build("user_spiderman", "Peter Parker", "peter@avengers.com", "team_marvel", 23, 178, 76, "Advanced"),
		build("user_blackwidow", "Natasha Romanoff", "natasha@avengers.com", "team_marvel", 35, 170, 61, "Expert"),
		build("user_hulk", "Bruce Banner", "bruce@avengers.com", "team_marvel", 45, 175, 128, "Advanced"),
		build("user_batman", "Bruce Wayne", "bruce@justiceleague.com", "team_dc", 42, 188, 95, "Expert"),
		build("user_superman", "Clark Kent", "clark@justiceleague.com", "team_dc", 35, 191, 107, "Expert"),
		build("user_wonderwoman", "Diana Prince", "diana@justiceleague.com", "team_dc", 5000, 183, 75, "Godlike"),
		build("user_flash", "Barry Allen", "barry@justiceleague.com", "team_dc", 28, 183, 81, "Advanced"),
	}, nil
}

func referenceActivities(users []user.User) []activity.Activity {
	types := []string{
		activity.TypeRunning, activity.TypeCycling, activity.TypeSwimming,
		activity.TypeWeightTraining, activity.TypeYoga, activity.TypeBoxing,
	}

	activities := make([]activity.Activity, 0, len(users)*5)
	for _, u := range users {
		for j := 0; j < 5; j++ {
			activityType := types[j%len(types)]
			a := activity.Activity{
				ID:              fmt.Sprintf("activity_%s_%d", u.ID, j),
				UserID:          u.ID,
				Type:            activityType,
				DurationMinutes: 30 + j*10,
				CaloriesBurned:  200 + j*50,
				Date:            time.Now().AddDate(0, 0, -j),
				Notes:           fmt.Sprintf("Great %s session!", strings.ToLower(activityType)),
			}
			if j%2 == 0 {
				distance := float64(5 + j*2)
				a.DistanceKm = &distance
			}
			activities = append(activities, a)
		}
	}
	return activities
}

func referenceWorkouts() []workout.Workout {
	now := time.Now()
	reps := func(n int) *int { return &n }
	secs := func(n int) *int { return &n }

	return []workout.Workout{
		{
			ID: "workout_beginner_cardio", Name: "Beginner Cardio Blast",
			Description: "Perfect for getting started with cardio fitness",
			Difficulty:  workout.DifficultyBeginner, DurationMinutes: 30,
			Exercises: []workout.Exercise{
				{Name: "Jumping Jacks", Sets: 3, Reps: reps(20)},
				{Name: "High Knees", Sets: 3, DurationSeconds: secs(30)},
				{Name: "Burpees", Sets: 3, Reps: reps(10)},
			},
			TargetMuscles:   []string{"Legs", "Core", "Cardio"},
			EquipmentNeeded: []string{"None"},
			CreatedAt:       now,
		},
		{
			ID: "workout_strength_upper", Name: "Upper Body Strength",
			Description: "Build strength in your upper body",
			Difficulty:  workout.DifficultyIntermediate, DurationMinutes: 45,
			Exercises: []workout.Exercise{
				{Name: "Push-ups", Sets: 4, Reps: reps(15)},
				{Name: "Pull-ups", Sets: 4, Reps: reps(8)},
				{Name: "Dumbbell Press", Sets: 4, Reps: reps(12)},
			},
			TargetMuscles:   []string{"Chest", "Back", "Arms", "Shoulders"},
			EquipmentNeeded: []string{"Pull-up bar", "Dumbbells"},
			CreatedAt:       now,
		},
		{
			ID: "workout_hero_training", Name: "Superhero Training",
			Description: "Train like a superhero with this intense workout",
			Difficulty:  workout.DifficultyAdvanced, DurationMinutes: 60,
			Exercises: []workout.Exercise{
				{Name: "Box Jumps", Sets: 5, Reps: reps(15)},
				{Name: "Deadlifts", Sets: 5, Reps: reps(10)},
				{Name: "Battle Ropes", Sets: 5, DurationSeconds: secs(45)},
				{Name: "Plank", Sets: 5, DurationSeconds: secs(60)},
			},
			TargetMuscles:   []string{"Full Body"},
			EquipmentNeeded: []string{"Box", "Barbell", "Battle Ropes"},
			CreatedAt:       now,
		},
		{
			ID: "workout_flexibility", Name: "Flexibility and Mobility",
			Description: "Improve your range of motion and flexibility",
			Difficulty:  workout.DifficultyBeginner, DurationMinutes: 30,
			Exercises: []workout.Exercise{
				{Name: "Cat-Cow Stretch", Sets: 3, Reps: reps(10)},
				{Name: "Downward Dog", Sets: 3, DurationSeconds: secs(30)},
				{Name: "Hip Flexor Stretch", Sets: 3, DurationSeconds: secs(45)},
			},
			TargetMuscles:   []string{"Back", "Hips", "Legs"},
			EquipmentNeeded: []string{"Yoga mat"},
			CreatedAt:       now,
		},
		{
			ID: "workout_speed_agility", Name: "Speed and Agility Training",
			Description: "Perfect for athletes looking to improve speed",
			Difficulty:  workout.DifficultyAdvanced, DurationMinutes: 40,
			Exercises: []workout.Exercise{
				{Name: "Sprint Intervals", Sets: 8, DurationSeconds: secs(30)},
				{Name: "Ladder Drills", Sets: 5, Reps: reps(10)},
				{Name: "Cone Drills", Sets: 5, Reps: reps(10)},
			},
			TargetMuscles:   []string{"Legs", "Core", "Cardio"},
			EquipmentNeeded: []string{"Agility ladder", "Cones"},
			CreatedAt:       now,
		},
	}
}
