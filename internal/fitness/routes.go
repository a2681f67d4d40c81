package fitness

import (
	"github.com/2beens/fittracker/internal/middleware"
	"github.com/2beens/fittracker/internal/telemetry/metrics"

	"github.com/gorilla/mux"
)

// SetupRoutes registers all fitness routes on the given router. The mutating
// endpoints go through the rate limiter, the read-only ones do not.
func SetupRoutes(
	router *mux.Router,
	store *Store,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	intentsAllowedPerMin int,
) {
	handler := NewHandler(store)
	statsHandler := NewStatsHandler(store)

	router.HandleFunc("/fitness/state", handler.HandleGetState).Methods("GET", "OPTIONS").Name("fitness-state")
	router.HandleFunc("/fitness/workouts", handler.HandleListWorkouts).Methods("GET", "OPTIONS").Name("list-workouts")
	router.HandleFunc("/fitness/workouts/today", handler.HandleListTodayWorkouts).Methods("GET", "OPTIONS").Name("today-workouts")
	router.HandleFunc("/fitness/workouts/types", handler.HandleWorkoutTypes).Methods("GET", "OPTIONS").Name("workout-types")
	router.HandleFunc("/fitness/workouts/estimate", handler.HandleCaloriesEstimate).Methods("GET", "OPTIONS").Name("calories-estimate")

	statsRouter := router.PathPrefix("/fitness/stats").Subrouter()
	statsRouter.HandleFunc("/streak", statsHandler.HandleStreak).Methods("GET", "OPTIONS").Name("stats-streak")
	statsRouter.HandleFunc("/weekly", statsHandler.HandleWeekly).Methods("GET", "OPTIONS").Name("stats-weekly")
	statsRouter.HandleFunc("/completion", statsHandler.HandleCompletionRate).Methods("GET", "OPTIONS").Name("stats-completion")
	statsRouter.HandleFunc("/distribution", statsHandler.HandleTypeDistribution).Methods("GET", "OPTIONS").Name("stats-distribution")
	statsRouter.HandleFunc("/progress", statsHandler.HandleProgress).Methods("GET", "OPTIONS").Name("stats-progress")
	statsRouter.HandleFunc("/summary", statsHandler.HandleSummary).Methods("GET", "OPTIONS").Name("stats-summary")

	intentsRouter := router.PathPrefix("/fitness").Subrouter()
	intentsRouter.HandleFunc("/workouts", handler.HandleAddWorkout).Methods("POST", "OPTIONS").Name("new-workout")
	intentsRouter.HandleFunc("/workouts/{id}", handler.HandleDeleteWorkout).Methods("DELETE", "OPTIONS").Name("delete-workout")
	intentsRouter.HandleFunc("/goals", handler.HandleUpdateGoals).Methods("PUT", "OPTIONS").Name("update-goals")
	intentsRouter.HandleFunc("/profile", handler.HandleUpdateProfile).Methods("PUT", "OPTIONS").Name("update-profile")
	intentsRouter.HandleFunc("/today", handler.HandleUpdateTodayStats).Methods("PUT", "OPTIONS").Name("update-today-stats")
	intentsRouter.HandleFunc("/water/increment", handler.HandleIncrementWater).Methods("POST", "OPTIONS").Name("water-increment")
	intentsRouter.HandleFunc("/water/decrement", handler.HandleDecrementWater).Methods("POST", "OPTIONS").Name("water-decrement")

	// rate limit the mutating endpoints to prevent abuse
	intentsRouter.Use(middleware.RateLimit(rateLimiter, "fitness-intents", intentsAllowedPerMin, metricsManager))
}
