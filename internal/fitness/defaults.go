package fitness

import "time"

// The fixed default dataset used when no persisted state document exists
// (or when single fields are missing from it).

func daysAgo(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}

func DefaultWorkouts(now time.Time) []Workout {
	return []Workout{
		{ID: "w1", Type: "running", Name: "Morning Run", Duration: 35, Calories: 350, Date: daysAgo(now, 0), Intensity: IntensityHigh, Icon: "footprints"},
		{ID: "w2", Type: "yoga", Name: "Sunrise Yoga", Duration: 45, Calories: 180, Date: daysAgo(now, 0), Intensity: IntensityLow, Icon: "heart"},
		{ID: "w3", Type: "weights", Name: "Upper Body", Duration: 50, Calories: 350, Date: daysAgo(now, 1), Intensity: IntensityHigh, Icon: "dumbbell"},
		{ID: "w4", Type: "cycling", Name: "Evening Ride", Duration: 40, Calories: 320, Date: daysAgo(now, 1), Intensity: IntensityModerate, Icon: "bike"},
		{ID: "w5", Type: "hiit", Name: "Tabata Session", Duration: 25, Calories: 325, Date: daysAgo(now, 2), Intensity: IntensityHigh, Icon: "zap"},
		{ID: "w6", Type: "swimming", Name: "Pool Laps", Duration: 30, Calories: 330, Date: daysAgo(now, 2), Intensity: IntensityModerate, Icon: "waves"},
		{ID: "w7", Type: "walking", Name: "Lunch Walk", Duration: 30, Calories: 150, Date: daysAgo(now, 3), Intensity: IntensityLow, Icon: "footprints"},
		{ID: "w8", Type: "weights", Name: "Leg Day", Duration: 55, Calories: 385, Date: daysAgo(now, 3), Intensity: IntensityHigh, Icon: "dumbbell"},
		{ID: "w9", Type: "running", Name: "Interval Run", Duration: 30, Calories: 300, Date: daysAgo(now, 4), Intensity: IntensityHigh, Icon: "footprints"},
		{ID: "w10", Type: "yoga", Name: "Power Yoga", Duration: 60, Calories: 240, Date: daysAgo(now, 4), Intensity: IntensityModerate, Icon: "heart"},
		{ID: "w11", Type: "cycling", Name: "Hill Climb", Duration: 45, Calories: 360, Date: daysAgo(now, 5), Intensity: IntensityHigh, Icon: "bike"},
		{ID: "w12", Type: "stretching", Name: "Recovery Stretch", Duration: 20, Calories: 60, Date: daysAgo(now, 5), Intensity: IntensityLow, Icon: "move"},
		{ID: "w13", Type: "hiit", Name: "CrossFit WOD", Duration: 35, Calories: 455, Date: daysAgo(now, 6), Intensity: IntensityHigh, Icon: "zap"},
		{ID: "w14", Type: "swimming", Name: "Open Water", Duration: 40, Calories: 440, Date: daysAgo(now, 6), Intensity: IntensityHigh, Icon: "waves"},
		{ID: "w15", Type: "walking", Name: "Evening Stroll", Duration: 25, Calories: 125, Date: daysAgo(now, 0), Intensity: IntensityLow, Icon: "footprints"},
	}
}

func DefaultGoals() DailyGoals {
	return DailyGoals{
		Steps:         10000,
		Calories:      500,
		Water:         8,
		ActiveMinutes: 60,
	}
}

func DefaultWeeklyStats(now time.Time) []DailyStats {
	return []DailyStats{
		{Date: daysAgo(now, 6), Steps: 8540, CaloriesBurned: 620, WaterIntake: 7, ActiveMinutes: 55},
		{Date: daysAgo(now, 5), Steps: 11200, CaloriesBurned: 480, WaterIntake: 8, ActiveMinutes: 45},
		{Date: daysAgo(now, 4), Steps: 9800, CaloriesBurned: 540, WaterIntake: 6, ActiveMinutes: 65},
		{Date: daysAgo(now, 3), Steps: 7300, CaloriesBurned: 430, WaterIntake: 9, ActiveMinutes: 40},
		{Date: daysAgo(now, 2), Steps: 12500, CaloriesBurned: 710, WaterIntake: 8, ActiveMinutes: 80},
		{Date: daysAgo(now, 1), Steps: 10100, CaloriesBurned: 550, WaterIntake: 7, ActiveMinutes: 60},
		{Date: daysAgo(now, 0), Steps: 6200, CaloriesBurned: 380, WaterIntake: 5, ActiveMinutes: 35},
	}
}

func DefaultProfile() UserProfile {
	return UserProfile{
		Name:   "Alex Rivera",
		Age:    28,
		Weight: 74,
		Height: 178,
		Avatar: "",
	}
}

// DefaultTodayStats is the last entry of the default weekly stats if present,
// else a fixed literal fallback
func DefaultTodayStats(now time.Time) DailyStats {
	weeklyStats := DefaultWeeklyStats(now)
	if len(weeklyStats) > 0 {
		return weeklyStats[len(weeklyStats)-1]
	}
	return DailyStats{
		Date:           now,
		Steps:          6200,
		CaloriesBurned: 380,
		WaterIntake:    5,
		ActiveMinutes:  35,
	}
}

func DefaultState(now time.Time) *State {
	return &State{
		Workouts:    DefaultWorkouts(now),
		Goals:       DefaultGoals(),
		WeeklyStats: DefaultWeeklyStats(now),
		Profile:     DefaultProfile(),
		TodayStats:  DefaultTodayStats(now),
	}
}
