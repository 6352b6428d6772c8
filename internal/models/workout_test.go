package models

import "testing"

func intPtr(v int) *int { return &v }

// TestEstimateDuration verifies the catalog duration estimate: 45s per
// rep-based set, explicit duration for timed sets, rest only between sets.
func TestEstimateDuration(t *testing.T) {
	tests := []struct {
		name      string
		exercises []Exercise
		want      int
	}{
		{
			name: "single rep exercise",
			// 3*45 + 60*2 = 255s → ceil(4.25) = 5
			exercises: []Exercise{{Sets: 3, Reps: intPtr(10), RestTime: 60}},
			want:      5,
		},
		{
			name: "time based exercise",
			// 4*30 + 20*3 = 180s → 3
			exercises: []Exercise{{Sets: 4, Duration: intPtr(30), RestTime: 20}},
			want:      3,
		},
		{
			name: "single set has no rest",
			// 1*45 → 1
			exercises: []Exercise{{Sets: 1, Reps: intPtr(10), RestTime: 90}},
			want:      1,
		},
		{
			name: "mixed program sums across exercises",
			// (2*45 + 30) + (2*60 + 30) = 120 + 150 = 270s → ceil(4.5) = 5
			exercises: []Exercise{
				{Sets: 2, Reps: intPtr(12), RestTime: 30},
				{Sets: 2, Duration: intPtr(60), RestTime: 30},
			},
			want: 5,
		},
		{
			name:      "empty",
			exercises: nil,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateDuration(tt.exercises); got != tt.want {
				t.Errorf("EstimateDuration() = %d, want %d", got, tt.want)
			}
		})
	}
}

// TestTotalSets verifies total sets is the sum over all exercises.
func TestTotalSets(t *testing.T) {
	p := WorkoutProgram{Exercises: []Exercise{{Sets: 3}, {Sets: 4}, {Sets: 1}}}
	if got := p.TotalSets(); got != 8 {
		t.Errorf("TotalSets() = %d, want 8", got)
	}
}

// TestFormatDuration verifies minute formatting for both short and hour-plus values.
func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{45, "45 min"},
		{60, "1h"},
		{90, "1h 30m"},
		{125, "2h 5m"},
		{0, "0 min"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

// TestFormatRestTime verifies m:ss formatting with zero padding.
func TestFormatRestTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{90, "1:30"},
		{45, "0:45"},
		{60, "1:00"},
		{5, "0:05"},
	}
	for _, tt := range tests {
		if got := FormatRestTime(tt.seconds); got != tt.want {
			t.Errorf("FormatRestTime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

// TestDifficultyValid verifies only the three known levels pass validation.
func TestDifficultyValid(t *testing.T) {
	for _, d := range []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced} {
		if !d.Valid() {
			t.Errorf("Difficulty(%q).Valid() = false, want true", d)
		}
	}
	if Difficulty("extreme").Valid() {
		t.Error(`Difficulty("extreme").Valid() = true, want false`)
	}
}
