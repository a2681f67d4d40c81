package fitness

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/2beens/fittracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// FileStorage keeps the state document in a single JSON file on disk
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{
		path: path,
	}
}

func (fs *FileStorage) Load(ctx context.Context) (_ *State, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "storage.file.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	stateJson, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var state State
	if err := json.Unmarshal(stateJson, &state); err != nil {
		log.Warnf("state file [%s] corrupt, falling back to defaults: %s", fs.path, err)
		return nil, ErrStateNotFound
	}

	return &state, nil
}

func (fs *FileStorage) Save(ctx context.Context, state *State) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "storage.file.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	stateJson, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	// write to a temp file first, then rename, so a crash mid-write
	// cannot leave a half-written document behind
	tempFile, err := os.CreateTemp(filepath.Dir(fs.path), filepath.Base(fs.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	if _, err := tempFile.Write(stateJson); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempFile.Name())
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempFile.Name())
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tempFile.Name(), fs.path); err != nil {
		_ = os.Remove(tempFile.Name())
		return fmt.Errorf("rename temp state file: %w", err)
	}

	return nil
}
