package catalog

import "github.com/claude/fitx/internal/models"

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// SeedPrograms returns the built-in workout programs written to an empty
// catalog on first use. Built-ins have bare numeric ids; user-created
// programs carry the "custom-" prefix and are the only mutable ones.
func SeedPrograms() []models.WorkoutProgram {
	return []models.WorkoutProgram{
		{
			ID:          "1",
			Name:        "Upper Body Strength",
			Description: "Build upper body strength with compound movements",
			Difficulty:  models.DifficultyBeginner,
			Duration:    45,
			Category:    "strength",
			Exercises: []models.Exercise{
				{ID: "1-1", Name: "Push-ups", Sets: 3, Reps: intPtr(12), RestTime: 60},
				{ID: "1-2", Name: "Dumbbell Rows", Sets: 3, Reps: intPtr(10), RestTime: 60, Weight: floatPtr(10)},
				{ID: "1-3", Name: "Shoulder Press", Sets: 3, Reps: intPtr(10), RestTime: 60, Weight: floatPtr(8)},
				{ID: "1-4", Name: "Bicep Curls", Sets: 3, Reps: intPtr(12), RestTime: 45, Weight: floatPtr(6)},
				{ID: "1-5", Name: "Tricep Dips", Sets: 3, Reps: intPtr(10), RestTime: 45},
			},
		},
		{
			ID:          "2",
			Name:        "HIIT Cardio Blast",
			Description: "High intensity interval training for maximum calorie burn",
			Difficulty:  models.DifficultyIntermediate,
			Duration:    30,
			Category:    "cardio",
			Exercises: []models.Exercise{
				{ID: "2-1", Name: "Burpees", Sets: 4, Reps: intPtr(10), RestTime: 30},
				{ID: "2-2", Name: "Jump Squats", Sets: 4, Reps: intPtr(15), RestTime: 30},
				{ID: "2-3", Name: "Mountain Climbers", Sets: 4, Duration: intPtr(30), RestTime: 20},
				{ID: "2-4", Name: "High Knees", Sets: 4, Duration: intPtr(30), RestTime: 20},
				{ID: "2-5", Name: "Box Jumps", Sets: 3, Reps: intPtr(12), RestTime: 30},
			},
		},
		{
			ID:          "3",
			Name:        "Lower Body Power",
			Description: "Build strong legs and glutes",
			Difficulty:  models.DifficultyIntermediate,
			Duration:    50,
			Category:    "strength",
			Exercises: []models.Exercise{
				{ID: "3-1", Name: "Barbell Squats", Sets: 4, Reps: intPtr(10), RestTime: 90, Weight: floatPtr(40)},
				{ID: "3-2", Name: "Romanian Deadlifts", Sets: 4, Reps: intPtr(10), RestTime: 90, Weight: floatPtr(30)},
				{ID: "3-3", Name: "Walking Lunges", Sets: 3, Reps: intPtr(12), RestTime: 60},
				{ID: "3-4", Name: "Leg Press", Sets: 3, Reps: intPtr(12), RestTime: 60, Weight: floatPtr(60)},
				{ID: "3-5", Name: "Calf Raises", Sets: 4, Reps: intPtr(15), RestTime: 45},
			},
		},
		{
			ID:          "4",
			Name:        "Core & Abs",
			Description: "Strengthen your core for better stability",
			Difficulty:  models.DifficultyBeginner,
			Duration:    20,
			Category:    "core",
			Exercises: []models.Exercise{
				{ID: "4-1", Name: "Plank", Sets: 3, Duration: intPtr(45), RestTime: 30},
				{ID: "4-2", Name: "Crunches", Sets: 3, Reps: intPtr(20), RestTime: 30},
				{ID: "4-3", Name: "Russian Twists", Sets: 3, Reps: intPtr(20), RestTime: 30},
				{ID: "4-4", Name: "Leg Raises", Sets: 3, Reps: intPtr(15), RestTime: 30},
				{ID: "4-5", Name: "Dead Bug", Sets: 3, Reps: intPtr(10), RestTime: 30},
			},
		},
		{
			ID:          "5",
			Name:        "Full Body Circuit",
			Description: "Complete full body workout with compound movements",
			Difficulty:  models.DifficultyAdvanced,
			Duration:    60,
			Category:    "strength",
			Exercises: []models.Exercise{
				{ID: "5-1", Name: "Deadlifts", Sets: 4, Reps: intPtr(8), RestTime: 90, Weight: floatPtr(50)},
				{ID: "5-2", Name: "Bench Press", Sets: 4, Reps: intPtr(10), RestTime: 90, Weight: floatPtr(40)},
				{ID: "5-3", Name: "Pull-ups", Sets: 4, Reps: intPtr(8), RestTime: 60},
				{ID: "5-4", Name: "Overhead Press", Sets: 3, Reps: intPtr(10), RestTime: 60, Weight: floatPtr(25)},
				{ID: "5-5", Name: "Barbell Rows", Sets: 3, Reps: intPtr(10), RestTime: 60, Weight: floatPtr(30)},
				{ID: "5-6", Name: "Front Squats", Sets: 3, Reps: intPtr(10), RestTime: 60, Weight: floatPtr(35)},
			},
		},
	}
}
