package fitness

import "time"

// Intent is a named request to change the fitness state, interpreted
// deterministically by Apply. The intent set is closed: these are the only
// ways the state can be mutated.
type Intent interface {
	Kind() string
}

type AddWorkoutIntent struct {
	Workout Workout
}

type DeleteWorkoutIntent struct {
	ID string
}

type UpdateGoalsIntent struct {
	Patch GoalsPatch
}

type UpdateProfileIntent struct {
	Patch ProfilePatch
}

type UpdateTodayStatsIntent struct {
	Patch DailyStatsPatch
}

type IncrementWaterIntent struct{}

type DecrementWaterIntent struct{}

func (AddWorkoutIntent) Kind() string       { return "addWorkout" }
func (DeleteWorkoutIntent) Kind() string    { return "deleteWorkout" }
func (UpdateGoalsIntent) Kind() string      { return "updateGoals" }
func (UpdateProfileIntent) Kind() string    { return "updateProfile" }
func (UpdateTodayStatsIntent) Kind() string { return "updateTodayStats" }
func (IncrementWaterIntent) Kind() string   { return "incrementWater" }
func (DecrementWaterIntent) Kind() string   { return "decrementWater" }

// Apply interprets an intent against the given state snapshot and returns the
// resulting snapshot. It is pure (no I/O) and total: every recognized intent
// has defined behavior, unrecognized intents return the input unchanged.
// The input state is never mutated.
//
// The now parameter marks the current calendar day - deleting a workout only
// adjusts todayStats when the workout was logged today. Adding a workout
// adjusts todayStats unconditionally, regardless of the workout date.
func Apply(state *State, intent Intent, now time.Time) *State {
	switch in := intent.(type) {
	case AddWorkoutIntent:
		next := state.Clone()
		next.Workouts = append([]Workout{in.Workout}, next.Workouts...)
		next.TodayStats.CaloriesBurned += in.Workout.Calories
		next.TodayStats.ActiveMinutes += in.Workout.Duration
		return next

	case DeleteWorkoutIntent:
		index := -1
		for i, w := range state.Workouts {
			if w.ID == in.ID {
				index = i
				break
			}
		}
		if index < 0 {
			// deleting a nonexistent workout is a no-op, not an error
			return state
		}

		workout := state.Workouts[index]
		next := state.Clone()
		next.Workouts = append(next.Workouts[:index], next.Workouts[index+1:]...)
		if workout.Day() == DayOf(now) {
			next.TodayStats.CaloriesBurned = floorZero(next.TodayStats.CaloriesBurned - workout.Calories)
			next.TodayStats.ActiveMinutes = floorZero(next.TodayStats.ActiveMinutes - workout.Duration)
		}
		return next

	case UpdateGoalsIntent:
		next := state.Clone()
		if in.Patch.Steps != nil {
			next.Goals.Steps = *in.Patch.Steps
		}
		if in.Patch.Calories != nil {
			next.Goals.Calories = *in.Patch.Calories
		}
		if in.Patch.Water != nil {
			next.Goals.Water = *in.Patch.Water
		}
		if in.Patch.ActiveMinutes != nil {
			next.Goals.ActiveMinutes = *in.Patch.ActiveMinutes
		}
		return next

	case UpdateProfileIntent:
		next := state.Clone()
		if in.Patch.Name != nil {
			next.Profile.Name = *in.Patch.Name
		}
		if in.Patch.Age != nil {
			next.Profile.Age = *in.Patch.Age
		}
		if in.Patch.Weight != nil {
			next.Profile.Weight = *in.Patch.Weight
		}
		if in.Patch.Height != nil {
			next.Profile.Height = *in.Patch.Height
		}
		if in.Patch.Avatar != nil {
			next.Profile.Avatar = *in.Patch.Avatar
		}
		return next

	case UpdateTodayStatsIntent:
		next := state.Clone()
		if in.Patch.Date != nil {
			next.TodayStats.Date = *in.Patch.Date
		}
		if in.Patch.Steps != nil {
			next.TodayStats.Steps = *in.Patch.Steps
		}
		if in.Patch.CaloriesBurned != nil {
			next.TodayStats.CaloriesBurned = *in.Patch.CaloriesBurned
		}
		if in.Patch.WaterIntake != nil {
			next.TodayStats.WaterIntake = *in.Patch.WaterIntake
		}
		if in.Patch.ActiveMinutes != nil {
			next.TodayStats.ActiveMinutes = *in.Patch.ActiveMinutes
		}
		return next

	case IncrementWaterIntent:
		next := state.Clone()
		next.TodayStats.WaterIntake++
		return next

	case DecrementWaterIntent:
		next := state.Clone()
		next.TodayStats.WaterIntake = floorZero(next.TodayStats.WaterIntake - 1)
		return next

	default:
		return state
	}
}

func floorZero(value int) int {
	if value < 0 {
		return 0
	}
	return value
}
