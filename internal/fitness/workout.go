package fitness

import (
	"math"
	"time"
)

type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

func (i Intensity) Valid() bool {
	switch i {
	case IntensityLow, IntensityModerate, IntensityHigh:
		return true
	}
	return false
}

// Multiplier scales the per-minute calorie rate of a workout type
func (i Intensity) Multiplier() float64 {
	switch i {
	case IntensityLow:
		return 0.7
	case IntensityHigh:
		return 1.3
	default:
		return 1
	}
}

type Workout struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Duration  int       `json:"duration"` // minutes
	Calories  int       `json:"calories"`
	Date      time.Time `json:"date"`
	Intensity Intensity `json:"intensity"`
	Icon      string    `json:"icon"`
}

// Day returns the calendar day the workout was logged on
func (w Workout) Day() Day {
	return DayOf(w.Date)
}

type WorkoutType struct {
	Type      string  `json:"type"`
	Name      string  `json:"name"`
	Icon      string  `json:"icon"`
	CalPerMin float64 `json:"calPerMin"`
}

// WorkoutTypes is the fixed catalog of supported activity kinds
var WorkoutTypes = []WorkoutType{
	{Type: "running", Name: "Running", Icon: "footprints", CalPerMin: 10},
	{Type: "cycling", Name: "Cycling", Icon: "bike", CalPerMin: 8},
	{Type: "swimming", Name: "Swimming", Icon: "waves", CalPerMin: 11},
	{Type: "weights", Name: "Weight Training", Icon: "dumbbell", CalPerMin: 7},
	{Type: "yoga", Name: "Yoga", Icon: "heart", CalPerMin: 4},
	{Type: "hiit", Name: "HIIT", Icon: "zap", CalPerMin: 13},
	{Type: "walking", Name: "Walking", Icon: "footprints", CalPerMin: 5},
	{Type: "stretching", Name: "Stretching", Icon: "move", CalPerMin: 3},
}

func WorkoutTypeFor(workoutType string) (WorkoutType, bool) {
	for _, wt := range WorkoutTypes {
		if wt.Type == workoutType {
			return wt, true
		}
	}
	return WorkoutType{}, false
}

// EstimateCalories computes the calories for a workout at creation time:
// duration x type-specific rate x intensity multiplier, rounded.
// The value is never recomputed later.
func EstimateCalories(workoutType WorkoutType, durationMinutes int, intensity Intensity) int {
	return int(math.Round(
		float64(durationMinutes) * workoutType.CalPerMin * intensity.Multiplier(),
	))
}
