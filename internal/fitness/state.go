package fitness

import "time"

// Day is a calendar day in "YYYY-MM-DD" form, derived from the UTC date of a
// timestamp. No timezone conversion is done on purpose, matching the way the
// clients truncate ISO timestamps.
type Day string

func DayOf(t time.Time) Day {
	return Day(t.UTC().Format(time.DateOnly))
}

type DailyGoals struct {
	Steps         int `json:"steps"`
	Calories      int `json:"calories"`
	Water         int `json:"water"` // glasses
	ActiveMinutes int `json:"activeMinutes"`
}

type DailyStats struct {
	Date           time.Time `json:"date"`
	Steps          int       `json:"steps"`
	CaloriesBurned int       `json:"caloriesBurned"`
	WaterIntake    int       `json:"waterIntake"`
	ActiveMinutes  int       `json:"activeMinutes"`
}

func (ds DailyStats) Day() Day {
	return DayOf(ds.Date)
}

type UserProfile struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Weight float64 `json:"weight"` // kg
	Height float64 `json:"height"` // cm
	Avatar string  `json:"avatar"`
}

// State is the full fitness tracking state: the single source of truth for
// workouts, goals and daily statistics. It is persisted as one JSON document
// and is only mutated through the store intents.
//
// Note that workouts and weeklyStats track overlapping but not identical
// information (per-workout records vs per-day aggregates) and are never
// reconciled with each other - two independently updated ledgers.
type State struct {
	Workouts    []Workout    `json:"workouts"`
	Goals       DailyGoals   `json:"goals"`
	WeeklyStats []DailyStats `json:"weeklyStats"`
	Profile     UserProfile  `json:"profile"`
	TodayStats  DailyStats   `json:"todayStats"`
}

// Clone returns a deep copy of the state, so that handed out snapshots
// cannot alias the store-owned one
func (s *State) Clone() *State {
	clone := &State{
		Goals:      s.Goals,
		Profile:    s.Profile,
		TodayStats: s.TodayStats,
	}
	if s.Workouts != nil {
		clone.Workouts = make([]Workout, len(s.Workouts))
		copy(clone.Workouts, s.Workouts)
	}
	if s.WeeklyStats != nil {
		clone.WeeklyStats = make([]DailyStats, len(s.WeeklyStats))
		copy(clone.WeeklyStats, s.WeeklyStats)
	}
	return clone
}

// GoalsPatch carries a partial goals update; nil fields are left unchanged
type GoalsPatch struct {
	Steps         *int `json:"steps,omitempty"`
	Calories      *int `json:"calories,omitempty"`
	Water         *int `json:"water,omitempty"`
	ActiveMinutes *int `json:"activeMinutes,omitempty"`
}

// ProfilePatch carries a partial profile update; nil fields are left unchanged
type ProfilePatch struct {
	Name   *string  `json:"name,omitempty"`
	Age    *int     `json:"age,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Avatar *string  `json:"avatar,omitempty"`
}

// DailyStatsPatch carries a partial today-stats update; nil fields are left
// unchanged. It bypasses the workout-derived accounting.
type DailyStatsPatch struct {
	Date           *time.Time `json:"date,omitempty"`
	Steps          *int       `json:"steps,omitempty"`
	CaloriesBurned *int       `json:"caloriesBurned,omitempty"`
	WaterIntake    *int       `json:"waterIntake,omitempty"`
	ActiveMinutes  *int       `json:"activeMinutes,omitempty"`
}
