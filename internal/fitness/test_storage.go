package fitness

import (
	"context"
	"sync"
)

// TestStorage is an in-memory Storage used in tests (and usable as an
// ephemeral backend). Load and Save errors can be injected.
type TestStorage struct {
	mu    sync.Mutex
	state *State

	LoadErr error
	SaveErr error

	saveCalls int
}

func NewTestStorage() *TestStorage {
	return &TestStorage{}
}

func (ts *TestStorage) Load(_ context.Context) (*State, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.LoadErr != nil {
		return nil, ts.LoadErr
	}
	if ts.state == nil {
		return nil, ErrStateNotFound
	}
	return ts.state.Clone(), nil
}

func (ts *TestStorage) Save(_ context.Context, state *State) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.saveCalls++
	if ts.SaveErr != nil {
		return ts.SaveErr
	}
	ts.state = state.Clone()
	return nil
}

func (ts *TestStorage) SaveCalls() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.saveCalls
}

func (ts *TestStorage) SetState(state *State) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.state = state.Clone()
}
