package fitness

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	log "github.com/sirupsen/logrus"
)

type StreakResponse struct {
	Streak       int `json:"streak"`
	LookbackDays int `json:"lookbackDays"`
}

type WeeklyStatsResponse struct {
	Totals  WeekTotals  `json:"totals"`
	BestDay *DailyStats `json:"bestDay,omitempty"`
}

type CompletionRateResponse struct {
	CompletionRate int `json:"completionRate"`
	Days           int `json:"days"`
}

type ProgressResponse struct {
	Calories      int `json:"calories"`
	Steps         int `json:"steps"`
	Water         int `json:"water"`
	ActiveMinutes int `json:"activeMinutes"`
}

type StatsSummaryResponse struct {
	Streak         int                  `json:"streak"`
	Totals         WeekTotals           `json:"totals"`
	BestDay        *DailyStats          `json:"bestDay,omitempty"`
	CompletionRate int                  `json:"completionRate"`
	Distribution   map[string]TypeShare `json:"distribution"`
}

// StatsHandler serves the derived analytics. Everything is recomputed from a
// fresh snapshot per request.
type StatsHandler struct {
	store   *Store
	nowFunc func() time.Time
}

func NewStatsHandler(store *Store) *StatsHandler {
	return &StatsHandler{
		store:   store,
		nowFunc: time.Now,
	}
}

func (handler *StatsHandler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.stats.streak")
	defer span.End()

	lookbackDays := DashboardStreakLookbackDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		days, err := strconv.Atoi(daysParam)
		if err != nil || days < 1 {
			http.Error(w, "error, days has to be a positive number", http.StatusBadRequest)
			return
		}
		lookbackDays = days
	}

	snapshot := handler.store.Snapshot()
	handler.writeJSON(w, StreakResponse{
		Streak:       Streak(snapshot.Workouts, handler.nowFunc(), lookbackDays),
		LookbackDays: lookbackDays,
	})
}

func (handler *StatsHandler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.stats.weekly")
	defer span.End()

	snapshot := handler.store.Snapshot()

	resp := WeeklyStatsResponse{
		Totals: SumWeeklyStats(snapshot.WeeklyStats),
	}
	if bestDay, ok := BestDay(snapshot.WeeklyStats); ok {
		resp.BestDay = &bestDay
	}

	handler.writeJSON(w, resp)
}

func (handler *StatsHandler) HandleCompletionRate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.stats.completionRate")
	defer span.End()

	snapshot := handler.store.Snapshot()
	handler.writeJSON(w, CompletionRateResponse{
		CompletionRate: GoalCompletionRate(snapshot.WeeklyStats, snapshot.Goals),
		Days:           len(snapshot.WeeklyStats),
	})
}

func (handler *StatsHandler) HandleTypeDistribution(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.stats.typeDistribution")
	defer span.End()

	snapshot := handler.store.Snapshot()
	handler.writeJSON(w, TypeDistribution(snapshot.Workouts, snapshot.WeeklyStats))
}

func (handler *StatsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.stats.summary")
	defer span.End()

	snapshot := handler.store.Snapshot()

	resp := StatsSummaryResponse{
		Streak:         Streak(snapshot.Workouts, handler.nowFunc(), ProgressStreakLookbackDays),
		Totals:         SumWeeklyStats(snapshot.WeeklyStats),
		CompletionRate: GoalCompletionRate(snapshot.WeeklyStats, snapshot.Goals),
		Distribution:   TypeDistribution(snapshot.Workouts, snapshot.WeeklyStats),
	}
	if bestDay, ok := BestDay(snapshot.WeeklyStats); ok {
		resp.BestDay = &bestDay
	}

	handler.writeJSON(w, resp)
}

func (handler *StatsHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.stats.progress")
	defer span.End()

	snapshot := handler.store.Snapshot()
	goals := snapshot.Goals
	today := snapshot.TodayStats

	handler.writeJSON(w, ProgressResponse{
		Calories:      progressOrZero(today.CaloriesBurned, goals.Calories),
		Steps:         progressOrZero(today.Steps, goals.Steps),
		Water:         progressOrZero(today.WaterIntake, goals.Water),
		ActiveMinutes: progressOrZero(today.ActiveMinutes, goals.ActiveMinutes),
	})
}

func progressOrZero(current, target int) int {
	if target <= 0 {
		return 0
	}
	return ProgressPercent(current, target)
}

func (handler *StatsHandler) writeJSON(w http.ResponseWriter, resp any) {
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal stats response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
