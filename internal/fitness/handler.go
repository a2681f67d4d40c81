package fitness

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type AddWorkoutRequest struct {
	Type      string     `json:"type"`
	Name      string     `json:"name"`
	Duration  int        `json:"duration"`
	Intensity Intensity  `json:"intensity"`
	Date      *time.Time `json:"date,omitempty"`
}

type AddWorkoutResponse struct {
	Workout    Workout `json:"workout"`
	CountToday int     `json:"countToday"`
}

type DeleteWorkoutResponse struct {
	DeletedID string `json:"deletedId"`
}

type WorkoutsListResponse struct {
	Workouts []Workout `json:"workouts"`
	Total    int       `json:"total"`
}

type CaloriesEstimateResponse struct {
	Type      string    `json:"type"`
	Duration  int       `json:"duration"`
	Intensity Intensity `json:"intensity"`
	Calories  int       `json:"calories"`
}

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{
		store: store,
	}
}

func (handler *Handler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.state")
	defer span.End()

	stateJson, err := json.Marshal(handler.store.Snapshot())
	if err != nil {
		log.Errorf("failed to marshal state: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, stateJson, http.StatusOK)
}

func (handler *Handler) HandleAddWorkout(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.addWorkout")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	workoutType, ok := WorkoutTypeFor(req.Type)
	if !ok {
		http.Error(w, "error, unknown workout type", http.StatusBadRequest)
		return
	}
	if req.Duration <= 0 {
		http.Error(w, "error, duration has to be a positive number of minutes", http.StatusBadRequest)
		return
	}
	if !req.Intensity.Valid() {
		http.Error(w, "error, invalid intensity", http.StatusBadRequest)
		return
	}

	name := req.Name
	if name == "" {
		name = workoutType.Name
	}

	workout := Workout{
		Type:      workoutType.Type,
		Name:      name,
		Duration:  req.Duration,
		Calories:  EstimateCalories(workoutType, req.Duration, req.Intensity),
		Intensity: req.Intensity,
		Icon:      workoutType.Icon,
	}
	if req.Date != nil {
		workout.Date = *req.Date
	}

	added := handler.store.AddWorkout(workout)

	log.Debugf("new workout added: [%s] [%s]: %s", added.Type, added.Name, added.ID)

	snapshot := handler.store.Snapshot()
	resp := AddWorkoutResponse{
		Workout:    added,
		CountToday: len(WorkoutsOnDay(snapshot.Workouts, DayOf(time.Now()))),
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal new workout: %s", err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.deleteWorkout")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if !handler.store.DeleteWorkout(id) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteWorkoutResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.listWorkouts")
	defer span.End()

	workouts := handler.store.Snapshot().Workouts

	if typeFilter := r.URL.Query().Get("type"); typeFilter != "" {
		filtered := make([]Workout, 0, len(workouts))
		for _, workout := range workouts {
			if workout.Type == typeFilter {
				filtered = append(filtered, workout)
			}
		}
		workouts = filtered
	}

	listRespJson, err := json.Marshal(WorkoutsListResponse{
		Workouts: workouts,
		Total:    len(workouts),
	})
	if err != nil {
		log.Errorf("marshal workouts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleListTodayWorkouts(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.listTodayWorkouts")
	defer span.End()

	today := WorkoutsOnDay(handler.store.Snapshot().Workouts, DayOf(time.Now()))
	if today == nil {
		today = []Workout{}
	}

	listRespJson, err := json.Marshal(WorkoutsListResponse{
		Workouts: today,
		Total:    len(today),
	})
	if err != nil {
		log.Errorf("marshal today workouts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleWorkoutTypes(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.workoutTypes")
	defer span.End()

	typesJson, err := json.Marshal(WorkoutTypes)
	if err != nil {
		log.Errorf("marshal workout types error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, typesJson, http.StatusOK)
}

func (handler *Handler) HandleCaloriesEstimate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.caloriesEstimate")
	defer span.End()

	workoutType, ok := WorkoutTypeFor(r.URL.Query().Get("type"))
	if !ok {
		http.Error(w, "error, unknown workout type", http.StatusBadRequest)
		return
	}

	duration, err := strconv.Atoi(r.URL.Query().Get("duration"))
	if err != nil || duration <= 0 {
		http.Error(w, "error, duration has to be a positive number of minutes", http.StatusBadRequest)
		return
	}

	intensity := Intensity(r.URL.Query().Get("intensity"))
	if intensity == "" {
		intensity = IntensityModerate
	}
	if !intensity.Valid() {
		http.Error(w, "error, invalid intensity", http.StatusBadRequest)
		return
	}

	estimateJson, err := json.Marshal(CaloriesEstimateResponse{
		Type:      workoutType.Type,
		Duration:  duration,
		Intensity: intensity,
		Calories:  EstimateCalories(workoutType, duration, intensity),
	})
	if err != nil {
		log.Errorf("marshal calories estimate error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, estimateJson, http.StatusOK)
}

func (handler *Handler) HandleUpdateGoals(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.updateGoals")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var patch GoalsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Errorf("update goals, unmarshal json params: %s", err)
		http.Error(w, "update goals failed", http.StatusBadRequest)
		return
	}

	goals := handler.store.UpdateGoals(patch)

	goalsJson, err := json.Marshal(goals)
	if err != nil {
		log.Errorf("failed to marshal goals: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(goalsJson))
}

func (handler *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.updateProfile")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var patch ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Errorf("update profile, unmarshal json params: %s", err)
		http.Error(w, "update profile failed", http.StatusBadRequest)
		return
	}

	profile := handler.store.UpdateProfile(patch)

	profileJson, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(profileJson))
}

func (handler *Handler) HandleUpdateTodayStats(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.updateTodayStats")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var patch DailyStatsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Errorf("update today stats, unmarshal json params: %s", err)
		http.Error(w, "update today stats failed", http.StatusBadRequest)
		return
	}

	todayStats := handler.store.UpdateTodayStats(patch)

	statsJson, err := json.Marshal(todayStats)
	if err != nil {
		log.Errorf("failed to marshal today stats: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(statsJson))
}

func (handler *Handler) HandleIncrementWater(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.incrementWater")
	defer span.End()

	handler.writeTodayStats(w, handler.store.IncrementWater())
}

func (handler *Handler) HandleDecrementWater(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.fitness.decrementWater")
	defer span.End()

	handler.writeTodayStats(w, handler.store.DecrementWater())
}

func (handler *Handler) writeTodayStats(w http.ResponseWriter, todayStats DailyStats) {
	statsJson, err := json.Marshal(todayStats)
	if err != nil {
		log.Errorf("failed to marshal today stats: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(statsJson))
}
