package record

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	surrealdb "github.com/surrealdb/surrealdb.go"

	"studyhub/internal/config"
)

// surrealAPI is the slice of the driver surface the store uses,
// satisfied by *surrealdb.DB.
type surrealAPI interface {
	Select(what string) (any, error)
	Create(thing string, data any) (any, error)
	Change(what string, data any) (any, error)
	Delete(what string) (any, error)
	Query(sql string, vars any) (any, error)
	Info() (any, error)
	Close()
}

var _ surrealAPI = (*surrealdb.DB)(nil)

// SurrealStore implements Store on top of the SurrealDB websocket driver.
// Collections map to tables; record ids on the SurrealDB side are
// "table:id" strings, which this store flattens to the bare id on read
// and rejoins on write.
type SurrealStore struct {
	db  surrealAPI
	log zerolog.Logger
}

var _ Store = (*SurrealStore)(nil)

var (
	surrealOnce sync.Once
	surrealConn *SurrealStore
	surrealErr  error
)

// ConnectSurreal dials SurrealDB, signs in and selects the configured
// namespace/database. The connection is established at most once per
// process; a repeated call returns the existing handle (or the original
// failure) without dialing again.
func ConnectSurreal(cfg config.SurrealConfig, log zerolog.Logger) (*SurrealStore, error) {
	surrealOnce.Do(func() {
		db, err := surrealdb.New(cfg.URL)
		if err != nil {
			surrealErr = fmt.Errorf("dial surrealdb at %s: %w", cfg.URL, err)
			return
		}
		if cfg.User != "" {
			if _, err := db.Signin(map[string]any{"user": cfg.User, "pass": cfg.Pass}); err != nil {
				db.Close()
				surrealErr = fmt.Errorf("surrealdb signin: %w", err)
				return
			}
		}
		if _, err := db.Use(cfg.Namespace, cfg.Database); err != nil {
			db.Close()
			surrealErr = fmt.Errorf("surrealdb use %s/%s: %w", cfg.Namespace, cfg.Database, err)
			return
		}
		log.Info().Str("url", cfg.URL).Str("ns", cfg.Namespace).Str("db", cfg.Database).
			Msg("connected to surrealdb")
		surrealConn = &SurrealStore{db: db, log: log}
	})
	return surrealConn, surrealErr
}

func (s *SurrealStore) List(ctx context.Context, collection string) ([]Record, error) {
	res, err := s.db.Select(collection)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", collection, err)
	}
	return decodeRecords(collection, res)
}

func (s *SurrealStore) ListBy(ctx context.Context, collection, field, value string) ([]Record, error) {
	// field comes from internal callers only (fixed reference names),
	// never from request input; value is always bound.
	q := fmt.Sprintf("SELECT * FROM %s WHERE %s = $value", collection, field)
	res, err := s.db.Query(q, map[string]any{"value": value})
	if err != nil {
		return nil, fmt.Errorf("query %s by %s: %w", collection, field, err)
	}
	return decodeRecords(collection, unwrapQuery(res))
}

func (s *SurrealStore) Get(ctx context.Context, collection, id string) (Record, bool, error) {
	res, err := s.db.Select(joinID(collection, id))
	if err != nil {
		if isAbsence(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("select %s:%s: %w", collection, id, err)
	}
	recs, err := decodeRecords(collection, res)
	if err != nil {
		return nil, false, err
	}
	// A select of a missing record id answers with an empty array, not
	// an error.
	if len(recs) == 0 {
		return nil, false, nil
	}
	return recs[0], true, nil
}

func (s *SurrealStore) Create(ctx context.Context, collection string, fields Record) (Record, error) {
	res, err := s.db.Create(collection, stripID(fields))
	if err != nil {
		return nil, fmt.Errorf("create in %s: %w", collection, err)
	}
	return decodeRecord(collection, res)
}

func (s *SurrealStore) Merge(ctx context.Context, collection, id string, patch Record) (bool, error) {
	// SurrealDB creates the record when changing a nonexistent id, so
	// existence is checked first to keep no-match reported as no-match.
	if _, found, err := s.Get(ctx, collection, id); err != nil || !found {
		return false, err
	}
	if _, err := s.db.Change(joinID(collection, id), stripID(patch)); err != nil {
		if isAbsence(err) {
			return false, nil
		}
		return false, fmt.Errorf("change %s:%s: %w", collection, id, err)
	}
	return true, nil
}

func (s *SurrealStore) Delete(ctx context.Context, collection, id string) (bool, error) {
	// The driver's delete reports nothing back, so existence is checked
	// first to distinguish a removed record from a no-match.
	if _, found, err := s.Get(ctx, collection, id); err != nil || !found {
		return false, err
	}
	if _, err := s.db.Delete(joinID(collection, id)); err != nil {
		return false, fmt.Errorf("delete %s:%s: %w", collection, id, err)
	}
	return true, nil
}

func (s *SurrealStore) Ping(ctx context.Context) error {
	if _, err := s.db.Info(); err != nil {
		return fmt.Errorf("surrealdb info: %w", err)
	}
	return nil
}

func (s *SurrealStore) Close() error {
	s.db.Close()
	return nil
}

// joinID turns a bare identifier into the "table:id" form SurrealDB
// addresses records by. Already-qualified ids pass through.
func joinID(collection, id string) string {
	if strings.HasPrefix(id, collection+":") {
		return id
	}
	return collection + ":" + id
}

// flattenID rewrites a record's id from "table:id" to the bare id.
func flattenID(collection string, rec Record) Record {
	if raw, ok := rec["id"].(string); ok {
		rec["id"] = strings.TrimPrefix(raw, collection+":")
	}
	return rec
}

// stripID drops the id key so the database stays the only id authority.
func stripID(fields Record) Record {
	out := make(Record, len(fields))
	for k, v := range fields {
		if k == "id" {
			continue
		}
		out[k] = v
	}
	return out
}

// decodeRecords normalizes a driver result (nil, a single object or an
// array of objects) into flattened records.
func decodeRecords(collection string, res any) ([]Record, error) {
	switch v := res.(type) {
	case nil:
		return []Record{}, nil
	case []any:
		out := make([]Record, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s: unexpected element %T in result", collection, item)
			}
			out = append(out, flattenID(collection, m))
		}
		return out, nil
	case map[string]any:
		return []Record{flattenID(collection, v)}, nil
	default:
		return nil, fmt.Errorf("%s: unexpected result shape %T", collection, res)
	}
}

// decodeRecord normalizes a driver result expected to carry one record.
func decodeRecord(collection string, res any) (Record, error) {
	recs, err := decodeRecords(collection, res)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: empty result", collection)
	}
	return recs[0], nil
}

// unwrapQuery peels the {status, result} envelope the query RPC wraps
// each statement in; a single statement is always issued here.
func unwrapQuery(res any) any {
	arr, ok := res.([]any)
	if !ok || len(arr) == 0 {
		return res
	}
	env, ok := arr[0].(map[string]any)
	if !ok {
		return res
	}
	if inner, ok := env["result"]; ok {
		return inner
	}
	return res
}

// isAbsence reports whether the driver error means "no such record"
// rather than a transport or server fault.
func isAbsence(err error) bool {
	return errors.Is(err, surrealdb.ErrNoRow)
}
