package record

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	_ "modernc.org/sqlite"

	"studyhub/internal/config"
)

var sqlOpen = sql.Open

// LocalStore implements Store on an embedded sqlite database, as the
// fallback when SurrealDB is unreachable. Each collection is one row
// holding the whole collection as a JSON array; every mutation reads the
// array, changes it in memory and writes it back. That is deliberately
// simple: collections here are small and the store only exists so the
// portal keeps working without a database server.
type LocalStore struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

var _ Store = (*LocalStore)(nil)

type migrationStep struct {
	Name string
	SQL  string
}

var localMigrations = []migrationStep{
	{
		Name: "create_table_collections",
		SQL: `CREATE TABLE IF NOT EXISTS collections (
  name    TEXT PRIMARY KEY,
  records TEXT NOT NULL DEFAULT '[]'
);`,
	},
}

// OpenLocal opens (creating if needed) the sqlite file and applies the
// schema. The driver is wrapped with otelsql so store calls show up in
// traces like every other dependency.
func OpenLocal(cfg config.LocalConfig, log zerolog.Logger) (*LocalStore, error) {
	if !strings.Contains(cfg.Path, ":memory:") {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create local store directory: %w", err)
		}
	}

	driverName, err := otelsql.Register("sqlite",
		otelsql.WithAttributes(semconv.DBSystemSqlite),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register otelsql: %w", err)
	}

	db, err := sqlOpen(driverName, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	// The whole-collection read/modify/write cycle assumes one writer.
	db.SetMaxOpenConns(1)

	s := &LocalStore{db: db, log: log}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *LocalStore) migrate(ctx context.Context) error {
	for _, step := range localMigrations {
		if _, err := s.db.ExecContext(ctx, step.SQL); err != nil {
			s.log.Error().Err(err).Str("migration_step", step.Name).Msg("local store migration failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		s.log.Debug().Str("migration_step", step.Name).Msg("local store migration applied")
	}
	return nil
}

func (s *LocalStore) List(ctx context.Context, collection string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(ctx, collection)
}

func (s *LocalStore) ListBy(ctx context.Context, collection, field, value string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.read(ctx, collection)
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(recs))
	for _, rec := range recs {
		if v, ok := rec[field].(string); ok && v == value {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *LocalStore) Get(ctx context.Context, collection, id string) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.read(ctx, collection)
	if err != nil {
		return nil, false, err
	}
	for _, rec := range recs {
		if rec["id"] == id {
			return rec, true, nil
		}
	}
	return nil, false, nil
}

func (s *LocalStore) Create(ctx context.Context, collection string, fields Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.read(ctx, collection)
	if err != nil {
		return nil, err
	}

	rec := make(Record, len(fields)+1)
	for k, v := range fields {
		rec[k] = v
	}
	if id, _ := rec["id"].(string); id == "" {
		rec["id"] = uuid.NewString()
	}

	if err := s.write(ctx, collection, append(recs, rec)); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *LocalStore) Merge(ctx context.Context, collection, id string, patch Record) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.read(ctx, collection)
	if err != nil {
		return false, err
	}
	found := false
	for _, rec := range recs {
		if rec["id"] != id {
			continue
		}
		for k, v := range patch {
			if k == "id" {
				continue // identifiers are immutable
			}
			rec[k] = v
		}
		found = true
		break
	}
	if !found {
		return false, nil
	}
	return true, s.write(ctx, collection, recs)
}

func (s *LocalStore) Delete(ctx context.Context, collection, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.read(ctx, collection)
	if err != nil {
		return false, err
	}
	kept := make([]Record, 0, len(recs))
	for _, rec := range recs {
		if rec["id"] != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(recs) {
		return false, nil
	}
	return true, s.write(ctx, collection, kept)
}

func (s *LocalStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *LocalStore) Close() error {
	return s.db.Close()
}

// read loads a collection's JSON array; a collection that was never
// written reads as empty.
func (s *LocalStore) read(ctx context.Context, collection string) ([]Record, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT records FROM collections WHERE name = ?`, collection).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}

	var recs []Record
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", collection, err)
	}
	if recs == nil {
		recs = []Record{}
	}
	return recs, nil
}

// write replaces a collection's JSON array wholesale.
func (s *LocalStore) write(ctx context.Context, collection string, recs []Record) error {
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", collection, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (name, records) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET records = excluded.records
	`, collection, string(raw))
	if err != nil {
		return fmt.Errorf("write collection %s: %w", collection, err)
	}
	return nil
}
