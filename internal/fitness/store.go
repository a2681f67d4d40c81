package fitness

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/2beens/fittracker/internal/telemetry/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const saveTimeout = 10 * time.Second

// Store holds the current in-memory fitness state and applies transitions
// through the closed intent set. Intents are applied one at a time, to
// completion; readers always get deep-copied snapshots. Persistence is
// fire-and-forget: the new snapshot is visible immediately, before (and
// regardless of whether) the write to durable storage completes.
type Store struct {
	storage        Storage
	metricsManager *metrics.Manager
	nowFunc        func() time.Time

	mu    sync.Mutex
	state *State

	saveWg sync.WaitGroup
}

type NewStoreParams struct {
	Storage        Storage
	MetricsManager *metrics.Manager
}

func NewStore(ctx context.Context, params NewStoreParams) (*Store, error) {
	if params.Storage == nil {
		// a wiring mistake, not a runtime condition to recover from
		return nil, errors.New("store storage is nil")
	}

	s := &Store{
		storage:        params.Storage,
		metricsManager: params.MetricsManager,
		nowFunc:        time.Now,
	}
	s.state = s.initialState(ctx)

	return s, nil
}

// initialState loads the persisted state document; for each missing top-level
// field (or when no document exists at all) the fixed default is substituted.
// A corrupt document degrades to the defaults, never to a failure.
func (s *Store) initialState(ctx context.Context) *State {
	defaults := DefaultState(s.nowFunc())

	loaded, err := s.storage.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrStateNotFound) {
			log.Debugln("fitness store: no persisted state found, using defaults")
		} else {
			log.Errorf("fitness store: load state: %s", err)
		}
		return defaults
	}

	if loaded.Workouts == nil {
		loaded.Workouts = defaults.Workouts
	}
	if loaded.Goals == (DailyGoals{}) {
		loaded.Goals = defaults.Goals
	}
	if loaded.WeeklyStats == nil {
		loaded.WeeklyStats = defaults.WeeklyStats
	}
	if loaded.Profile == (UserProfile{}) {
		loaded.Profile = defaults.Profile
	}
	if loaded.TodayStats == (DailyStats{}) {
		loaded.TodayStats = defaults.TodayStats
	}

	return loaded
}

// Snapshot returns a deep copy of the current state
func (s *Store) Snapshot() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies the given intent and returns the resulting snapshot.
// The new state is saved to storage asynchronously; a failed save leaves the
// in-memory state authoritative for the session.
func (s *Store) Dispatch(intent Intent) *State {
	s.mu.Lock()
	next := Apply(s.state, intent, s.nowFunc())
	s.state = next
	snapshot := next.Clone()
	s.mu.Unlock()

	if s.metricsManager != nil {
		s.metricsManager.CounterIntents.With(
			prometheus.Labels{"intent": intent.Kind()},
		).Inc()
	}

	s.persist(snapshot)
	return snapshot
}

func (s *Store) persist(snapshot *State) {
	s.saveWg.Add(1)
	go func() {
		defer s.saveWg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		startedAt := time.Now()
		if err := s.storage.Save(ctx, snapshot); err != nil {
			log.Errorf("fitness store: save state: %s", err)
			if s.metricsManager != nil {
				s.metricsManager.CounterStateSaveErrors.Inc()
			}
			return
		}

		if s.metricsManager != nil {
			s.metricsManager.HistStateSaveDuration.Observe(time.Since(startedAt).Seconds())
		}
	}()
}

// WaitForPendingSaves blocks until all fired state saves have finished.
// Used on graceful shutdown so the last snapshot reaches durable storage.
func (s *Store) WaitForPendingSaves() {
	s.saveWg.Wait()
}

// AddWorkout assigns a fresh unique id to the given workout, prepends it to
// the workouts list and adjusts todayStats by its calories and duration.
// The returned workout carries the assigned id.
func (s *Store) AddWorkout(workout Workout) Workout {
	workout.ID = uuid.NewString()
	if workout.Date.IsZero() {
		workout.Date = s.nowFunc()
	}

	s.Dispatch(AddWorkoutIntent{Workout: workout})

	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsAdded.Inc()
	}
	return workout
}

// DeleteWorkout removes the workout with the given id and reports whether it
// was present. Deleting an unknown id is a no-op.
func (s *Store) DeleteWorkout(id string) bool {
	existed := false
	for _, w := range s.Snapshot().Workouts {
		if w.ID == id {
			existed = true
			break
		}
	}

	s.Dispatch(DeleteWorkoutIntent{ID: id})

	if existed && s.metricsManager != nil {
		s.metricsManager.CounterWorkoutsDeleted.Inc()
	}
	return existed
}

func (s *Store) UpdateGoals(patch GoalsPatch) DailyGoals {
	return s.Dispatch(UpdateGoalsIntent{Patch: patch}).Goals
}

func (s *Store) UpdateProfile(patch ProfilePatch) UserProfile {
	return s.Dispatch(UpdateProfileIntent{Patch: patch}).Profile
}

func (s *Store) UpdateTodayStats(patch DailyStatsPatch) DailyStats {
	return s.Dispatch(UpdateTodayStatsIntent{Patch: patch}).TodayStats
}

func (s *Store) IncrementWater() DailyStats {
	return s.Dispatch(IncrementWaterIntent{}).TodayStats
}

func (s *Store) DecrementWater() DailyStats {
	return s.Dispatch(DecrementWaterIntent{}).TodayStats
}
