package fitness

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/fittracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// PostgresStorage keeps the state document in a single JSONB row, keyed by
// the fixed document key
type PostgresStorage struct {
	db *pgxpool.Pool
}

func NewPostgresStorage(db *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{
		db: db,
	}
}

func (ps *PostgresStorage) Load(ctx context.Context) (_ *State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.postgres.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := ps.db.Query(
		ctx,
		`SELECT document FROM fitness_state WHERE doc_key = $1;`,
		StateDocumentKey,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrStateNotFound
	}

	var stateJson []byte
	if err := rows.Scan(&stateJson); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	var state State
	if err := json.Unmarshal(stateJson, &state); err != nil {
		log.Warnf("state document [%s] corrupt, falling back to defaults: %s", StateDocumentKey, err)
		return nil, ErrStateNotFound
	}

	return &state, nil
}

func (ps *PostgresStorage) Save(ctx context.Context, state *State) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.postgres.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	stateJson, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	tag, err := ps.db.Exec(
		ctx,
		`INSERT INTO fitness_state (doc_key, document, updated_at)
			VALUES ($1, $2, NOW())
		ON CONFLICT (doc_key) DO UPDATE
			SET document = EXCLUDED.document, updated_at = NOW();`,
		StateDocumentKey, stateJson,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return errors.New("unexpected error [no rows affected]")
	}

	return nil
}
