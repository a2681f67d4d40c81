package fitness

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*Handler, *Store) {
	t.Helper()
	store := newTestStore(t, NewTestStorage())
	return NewHandler(store), store
}

func TestHandler_HandleGetState(t *testing.T) {
	handler, store := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/fitness/state", nil)

	handler.HandleGetState(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var state State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Len(t, state.Workouts, len(store.Snapshot().Workouts))
	assert.Equal(t, store.Snapshot().Goals, state.Goals)
}

func TestHandler_HandleAddWorkout(t *testing.T) {
	handler, store := newTestHandler(t)
	countBefore := len(store.Snapshot().Workouts)

	reqJson, err := json.Marshal(AddWorkoutRequest{
		Type:      "running",
		Name:      "Morning Run",
		Duration:  30,
		Intensity: IntensityHigh,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/fitness/workouts", bytes.NewReader(reqJson))
	req.Header.Set("Content-Type", "application/json")

	handler.HandleAddWorkout(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AddWorkoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Workout.ID)
	assert.Equal(t, "running", resp.Workout.Type)
	// 30 min * 10 cal/min * 1.3
	assert.Equal(t, 390, resp.Workout.Calories)
	assert.Equal(t, "footprints", resp.Workout.Icon)
	assert.Positive(t, resp.CountToday)

	assert.Len(t, store.Snapshot().Workouts, countBefore+1)
}

func TestHandler_HandleAddWorkout_DefaultsNameToTypeName(t *testing.T) {
	handler, _ := newTestHandler(t)

	reqJson, err := json.Marshal(AddWorkoutRequest{
		Type:      "weights",
		Duration:  45,
		Intensity: IntensityModerate,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/fitness/workouts", bytes.NewReader(reqJson))
	req.Header.Set("Content-Type", "application/json")

	handler.HandleAddWorkout(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AddWorkoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Weight Training", resp.Workout.Name)
}

func TestHandler_HandleAddWorkout_Invalid(t *testing.T) {
	handler, _ := newTestHandler(t)

	testCases := map[string]AddWorkoutRequest{
		"unknown type": {
			Type: "parkour", Duration: 30, Intensity: IntensityLow,
		},
		"zero duration": {
			Type: "running", Duration: 0, Intensity: IntensityLow,
		},
		"negative duration": {
			Type: "running", Duration: -5, Intensity: IntensityLow,
		},
		"invalid intensity": {
			Type: "running", Duration: 30, Intensity: "extreme",
		},
	}

	for name, addReq := range testCases {
		t.Run(name, func(t *testing.T) {
			reqJson, err := json.Marshal(addReq)
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/fitness/workouts", bytes.NewReader(reqJson))
			req.Header.Set("Content-Type", "application/json")

			handler.HandleAddWorkout(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_HandleAddWorkout_InvalidContentType(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/fitness/workouts", bytes.NewReader([]byte("{}")))

	handler.HandleAddWorkout(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_HandleDeleteWorkout(t *testing.T) {
	handler, store := newTestHandler(t)
	added := store.AddWorkout(Workout{
		Type: "hiit", Name: "Quick One", Duration: 20,
		Calories: 260, Intensity: IntensityHigh,
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", fmt.Sprintf("/fitness/workouts/%s", added.ID), nil)
	req = mux.SetURLVars(req, map[string]string{"id": added.ID})

	handler.HandleDeleteWorkout(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp DeleteWorkoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, added.ID, resp.DeletedID)
}

func TestHandler_HandleDeleteWorkout_NotFound(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/fitness/workouts/unknown-id", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "unknown-id"})

	handler.HandleDeleteWorkout(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_HandleListWorkouts(t *testing.T) {
	handler, store := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/fitness/workouts", nil)

	handler.HandleListWorkouts(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp WorkoutsListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, len(store.Snapshot().Workouts), resp.Total)
}

func TestHandler_HandleListWorkouts_TypeFilter(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/fitness/workouts?type=running", nil)

	handler.HandleListWorkouts(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp WorkoutsListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Workouts)
	for _, workout := range resp.Workouts {
		assert.Equal(t, "running", workout.Type)
	}
}

func TestHandler_HandleListTodayWorkouts(t *testing.T) {
	handler, store := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/fitness/workouts/today", nil)

	handler.HandleListTodayWorkouts(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp WorkoutsListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// default dataset has 3 workouts dated today
	expected := WorkoutsOnDay(store.Snapshot().Workouts, DayOf(store.nowFunc()))
	assert.Equal(t, len(expected), resp.Total)
}

func TestHandler_HandleWorkoutTypes(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/fitness/workouts/types", nil)

	handler.HandleWorkoutTypes(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var types []WorkoutType
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &types))
	assert.Len(t, types, len(WorkoutTypes))
}

func TestHandler_HandleCaloriesEstimate(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/fitness/workouts/estimate?type=cycling&duration=40&intensity=moderate", nil)

	handler.HandleCaloriesEstimate(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CaloriesEstimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// 40 min * 8 cal/min
	assert.Equal(t, 320, resp.Calories)
}

func TestHandler_HandleCaloriesEstimate_BadParams(t *testing.T) {
	handler, _ := newTestHandler(t)

	for name, target := range map[string]string{
		"unknown type":  "/fitness/workouts/estimate?type=parkour&duration=40",
		"missing type":  "/fitness/workouts/estimate?duration=40",
		"bad duration":  "/fitness/workouts/estimate?type=cycling&duration=abc",
		"bad intensity": "/fitness/workouts/estimate?type=cycling&duration=40&intensity=ultra",
	} {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", target, nil)

			handler.HandleCaloriesEstimate(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_HandleUpdateGoals(t *testing.T) {
	handler, store := newTestHandler(t)

	reqJson, err := json.Marshal(GoalsPatch{Steps: intPtr(15000)})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/fitness/goals", bytes.NewReader(reqJson))
	req.Header.Set("Content-Type", "application/json")

	handler.HandleUpdateGoals(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var goals DailyGoals
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &goals))
	assert.Equal(t, 15000, goals.Steps)
	assert.Equal(t, DefaultGoals().Calories, goals.Calories)
	assert.Equal(t, 15000, store.Snapshot().Goals.Steps)
}

func TestHandler_HandleUpdateProfile(t *testing.T) {
	handler, store := newTestHandler(t)

	reqJson, err := json.Marshal(ProfilePatch{Weight: float64Ptr(71.5)})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/fitness/profile", bytes.NewReader(reqJson))
	req.Header.Set("Content-Type", "application/json")

	handler.HandleUpdateProfile(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile UserProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, 71.5, profile.Weight)
	assert.Equal(t, DefaultProfile().Name, profile.Name)
	assert.Equal(t, 71.5, store.Snapshot().Profile.Weight)
}

func TestHandler_HandleUpdateTodayStats(t *testing.T) {
	handler, store := newTestHandler(t)

	reqJson, err := json.Marshal(DailyStatsPatch{Steps: intPtr(7777)})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/fitness/today", bytes.NewReader(reqJson))
	req.Header.Set("Content-Type", "application/json")

	handler.HandleUpdateTodayStats(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var todayStats DailyStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todayStats))
	assert.Equal(t, 7777, todayStats.Steps)
	assert.Equal(t, 7777, store.Snapshot().TodayStats.Steps)
}

func TestHandler_HandleWater(t *testing.T) {
	handler, store := newTestHandler(t)
	waterBefore := store.Snapshot().TodayStats.WaterIntake

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/fitness/water/increment", nil)
	handler.HandleIncrementWater(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var todayStats DailyStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todayStats))
	assert.Equal(t, waterBefore+1, todayStats.WaterIntake)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/fitness/water/decrement", nil)
	handler.HandleDecrementWater(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todayStats))
	assert.Equal(t, waterBefore, todayStats.WaterIntake)
}
