package models

import "fmt"

// Difficulty rates a program for catalog filtering.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Exercise is one entry of a workout program. Either Reps or Duration is set,
// never both: rep-based exercises count repetitions, time-based ones run for
// a fixed number of seconds per set.
type Exercise struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Sets     int      `json:"sets"`
	Reps     *int     `json:"reps,omitempty"`
	Duration *int     `json:"duration,omitempty"` // seconds per set
	RestTime int      `json:"restTime"`           // seconds between sets
	Weight   *float64 `json:"weight,omitempty"`   // target weight, kg
}

// WorkoutProgram is a named, ordered template of exercises.
type WorkoutProgram struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty"`
	Duration    int        `json:"duration"` // estimated minutes, see EstimateDuration
	Category    string     `json:"category"`
	Exercises   []Exercise `json:"exercises"`
}

// TotalSets is the sum of target sets across all exercises.
func (p *WorkoutProgram) TotalSets() int {
	total := 0
	for _, ex := range p.Exercises {
		total += ex.Sets
	}
	return total
}

// EstimateDuration estimates how long the given exercises take, in minutes,
// rounded up. Rep-based sets are assumed to take 45 seconds; no rest is
// counted after the final set of an exercise.
func EstimateDuration(exercises []Exercise) int {
	totalSeconds := 0
	for _, ex := range exercises {
		exerciseTime := ex.Sets * 45
		if ex.Duration != nil {
			exerciseTime = *ex.Duration * ex.Sets
		}
		totalSeconds += exerciseTime + ex.RestTime*(ex.Sets-1)
	}
	return (totalSeconds + 59) / 60
}

// FormatDuration renders minutes as "45 min", "1h" or "1h 30m".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dh", hours)
}

// FormatRestTime renders seconds as "m:ss".
func FormatRestTime(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
