package fitness

import (
	"math"
	"time"
)

// Derived analytics over the fitness state. All functions here are pure and
// stateless - they are recomputed from the given snapshot on demand, there is
// no hidden cache to invalidate.

// Streak lookback windows used by the two analytics consumers
const (
	DashboardStreakLookbackDays = 30
	ProgressStreakLookbackDays  = 60
)

// WorkoutsOnDay returns the workouts logged on the given calendar day,
// keeping the input order
func WorkoutsOnDay(workouts []Workout, day Day) []Workout {
	var matching []Workout
	for _, w := range workouts {
		if w.Day() == day {
			matching = append(matching, w)
		}
	}
	return matching
}

// Streak counts consecutive calendar days, walking backward from today, with
// at least one logged workout. The walk stops at the first workout-free day
// (day 0 = today, so no workout today means streak 0) and is bounded by the
// given lookback window.
func Streak(workouts []Workout, now time.Time, lookbackDays int) int {
	workoutDays := make(map[Day]bool, len(workouts))
	for _, w := range workouts {
		workoutDays[w.Day()] = true
	}

	streak := 0
	for i := 0; i < lookbackDays; i++ {
		if !workoutDays[DayOf(now.AddDate(0, 0, -i))] {
			break
		}
		streak++
	}
	return streak
}

type WeekTotals struct {
	Calories      int `json:"calories"`
	Steps         int `json:"steps"`
	Water         int `json:"water"`
	ActiveMinutes int `json:"activeMinutes"`
}

// SumWeeklyStats sums each numeric field across all weekly stats entries
func SumWeeklyStats(weeklyStats []DailyStats) WeekTotals {
	var totals WeekTotals
	for _, day := range weeklyStats {
		totals.Calories += day.CaloriesBurned
		totals.Steps += day.Steps
		totals.Water += day.WaterIntake
		totals.ActiveMinutes += day.ActiveMinutes
	}
	return totals
}

// BestDay returns the weekly stats entry with the maximum caloriesBurned.
// Ties resolve to the first occurrence in input order. The second return
// value is false for empty input.
func BestDay(weeklyStats []DailyStats) (DailyStats, bool) {
	if len(weeklyStats) == 0 {
		return DailyStats{}, false
	}
	best := weeklyStats[0]
	for _, day := range weeklyStats[1:] {
		if day.CaloriesBurned > best.CaloriesBurned {
			best = day
		}
	}
	return best, true
}

// GoalCompletionRate returns the percentage (rounded to the nearest percent)
// of weekly stats days where caloriesBurned, steps AND activeMinutes each
// meet or exceed the corresponding goal. Water is excluded from the
// composite check.
func GoalCompletionRate(weeklyStats []DailyStats, goals DailyGoals) int {
	if len(weeklyStats) == 0 {
		return 0
	}

	daysMetGoals := 0
	for _, day := range weeklyStats {
		if day.CaloriesBurned >= goals.Calories &&
			day.Steps >= goals.Steps &&
			day.ActiveMinutes >= goals.ActiveMinutes {
			daysMetGoals++
		}
	}

	return int(math.Round(float64(daysMetGoals) / float64(len(weeklyStats)) * 100))
}

type TypeShare struct {
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

// TypeDistribution counts workouts by type among the workouts whose calendar
// day matches one of the days present in weeklyStats. With zero matching
// workouts the denominator is treated as 1, so the result is empty rather
// than a division by zero.
func TypeDistribution(workouts []Workout, weeklyStats []DailyStats) map[string]TypeShare {
	recentDays := make(map[Day]bool, len(weeklyStats))
	for _, day := range weeklyStats {
		recentDays[day.Day()] = true
	}

	type2count := make(map[string]int)
	total := 0
	for _, w := range workouts {
		if recentDays[w.Day()] {
			type2count[w.Type]++
			total++
		}
	}

	if total == 0 {
		total = 1
	}

	distribution := make(map[string]TypeShare, len(type2count))
	for workoutType, count := range type2count {
		distribution[workoutType] = TypeShare{
			Count:      count,
			Percentage: int(math.Round(float64(count) / float64(total) * 100)),
		}
	}
	return distribution
}

// ProgressPercent returns min(current/target*100, 100), rounded. The target
// is contractually positive (goals are validated by the form layer), callers
// must guard the zero case.
func ProgressPercent(current, target int) int {
	percent := int(math.Round(float64(current) / float64(target) * 100))
	if percent > 100 {
		return 100
	}
	return percent
}
