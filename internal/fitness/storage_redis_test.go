package fitness

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStorage_Load(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()
	storage := NewRedisStorage(db)

	state := DefaultState(time.Now())
	stateJson, err := json.Marshal(state)
	require.NoError(t, err)

	mock.ExpectGet(StateDocumentKey).SetVal(string(stateJson))

	loaded, err := storage.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, loaded.Workouts, len(state.Workouts))
	assert.Equal(t, state.Goals, loaded.Goals)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStorage_LoadAbsentKey(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()
	storage := NewRedisStorage(db)

	mock.ExpectGet(StateDocumentKey).RedisNil()

	_, err := storage.Load(context.Background())
	assert.ErrorIs(t, err, ErrStateNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStorage_LoadCorruptDocument(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()
	storage := NewRedisStorage(db)

	mock.ExpectGet(StateDocumentKey).SetVal("{not really json")

	_, err := storage.Load(context.Background())
	assert.ErrorIs(t, err, ErrStateNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStorage_Save(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()
	storage := NewRedisStorage(db)

	state := DefaultState(time.Now())
	stateJson, err := json.Marshal(state)
	require.NoError(t, err)

	mock.ExpectSet(StateDocumentKey, stateJson, 0).SetVal("OK")

	require.NoError(t, storage.Save(context.Background(), state))
	require.NoError(t, mock.ExpectationsWereMet())
}
