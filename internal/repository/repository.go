// Package repository provides the uniform entity lifecycle over the
// record store: one generic implementation parameterized by entity type,
// collection name and sort order, instead of one hand-rolled CRUD set per
// entity kind.
//
// Read and write faults never surface as errors here. Listing falls back
// to an empty slice, Add to nil, Update/Delete to StatusError, always
// logged. Availability over strictness is the deliberate policy for a
// content-listing tool; callers that care inspect the Status.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"studyhub/internal/model"
	"studyhub/internal/record"
)

// Status is the non-throwing outcome of an Update or Delete. A no-match
// is reported distinctly so callers can decide whether it matters.
type Status int

const (
	StatusOK Status = iota
	StatusNotFound
	StatusError
)

// EntityRepo is what the service layer depends on; Repo is the one
// implementation, mocked in tests.
type EntityRepo[T any] interface {
	GetAll(ctx context.Context) []T
	GetByParent(ctx context.Context, field, parentID string) []T
	Get(ctx context.Context, id string) *T
	Add(ctx context.Context, entity T) *T
	Update(ctx context.Context, id string, patch map[string]any) Status
	Delete(ctx context.Context, id string) Status
}

var (
	_ EntityRepo[model.Semester] = (*Repo[model.Semester])(nil)
	_ EntityRepo[model.Subject]  = (*Repo[model.Subject])(nil)
	_ EntityRepo[model.Resource] = (*Repo[model.Resource])(nil)
)

// Repo is the generic repository over one entity kind.
type Repo[T any] struct {
	store      record.Store
	collection string
	less       func(a, b T) bool
	log        zerolog.Logger
}

// New builds a repository for one collection. less defines the canonical
// listing order applied to every read, whichever backend serves it.
func New[T any](store record.Store, collection string, less func(a, b T) bool, log zerolog.Logger) *Repo[T] {
	return &Repo[T]{
		store:      store,
		collection: collection,
		less:       less,
		log:        log.With().Str("collection", collection).Logger(),
	}
}

// NewSemesters lists by order, name breaking ties.
func NewSemesters(store record.Store, log zerolog.Logger) *Repo[model.Semester] {
	return New(store, record.CollectionSemesters, func(a, b model.Semester) bool {
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.Name < b.Name
	}, log)
}

// NewSubjects lists by name.
func NewSubjects(store record.Store, log zerolog.Logger) *Repo[model.Subject] {
	return New(store, record.CollectionSubjects, func(a, b model.Subject) bool {
		return a.Name < b.Name
	}, log)
}

// NewResources lists newest first.
func NewResources(store record.Store, log zerolog.Logger) *Repo[model.Resource] {
	return New(store, record.CollectionPDFs, func(a, b model.Resource) bool {
		if !a.CreatedAt.Equal(b.CreatedAt.Time) {
			return a.CreatedAt.After(b.CreatedAt.Time)
		}
		return a.Title < b.Title
	}, log)
}

// GetAll returns every entity in canonical order. On a store fault it
// logs and returns an empty slice.
func (r *Repo[T]) GetAll(ctx context.Context) []T {
	entities, err := r.load(ctx)
	if err != nil {
		r.log.Error().Err(err).Str("op", "getAll").Msg("repository read failed")
		return []T{}
	}
	return entities
}

// GetByParent returns the entities whose reference field equals parentID,
// in canonical order. Fail-soft like GetAll.
func (r *Repo[T]) GetByParent(ctx context.Context, field, parentID string) []T {
	recs, err := r.store.ListBy(ctx, r.collection, field, parentID)
	if err != nil {
		r.log.Error().Err(err).Str("op", "getByParent").Str("field", field).Msg("repository read failed")
		return []T{}
	}
	entities, err := decodeAll[T](recs)
	if err != nil {
		r.log.Error().Err(err).Str("op", "getByParent").Msg("repository decode failed")
		return []T{}
	}
	r.sort(entities)
	return entities
}

// Get returns the entity with the given identifier, nil if absent or on
// fault (logged).
func (r *Repo[T]) Get(ctx context.Context, id string) *T {
	rec, found, err := r.store.Get(ctx, r.collection, id)
	if err != nil {
		r.log.Error().Err(err).Str("op", "get").Str("id", id).Msg("repository read failed")
		return nil
	}
	if !found {
		return nil
	}
	entity, err := decode[T](rec)
	if err != nil {
		r.log.Error().Err(err).Str("op", "get").Str("id", id).Msg("repository decode failed")
		return nil
	}
	return &entity
}

// Add persists a new entity. The store assigns the opaque identifier;
// whatever id the input carries is discarded. Returns the stored entity,
// or nil on fault (logged).
func (r *Repo[T]) Add(ctx context.Context, entity T) *T {
	fields, err := encode(entity)
	if err != nil {
		r.log.Error().Err(err).Str("op", "add").Msg("repository encode failed")
		return nil
	}
	delete(fields, "id")

	rec, err := r.store.Create(ctx, r.collection, fields)
	if err != nil {
		r.log.Error().Err(err).Str("op", "add").Msg("repository write failed")
		return nil
	}
	stored, err := decode[T](rec)
	if err != nil {
		r.log.Error().Err(err).Str("op", "add").Msg("repository decode failed")
		return nil
	}
	return &stored
}

// Update merges patch into the entity with the given identifier. Fields
// not mentioned keep their values; the identifier itself cannot be
// patched.
func (r *Repo[T]) Update(ctx context.Context, id string, patch map[string]any) Status {
	// The caller keeps its map; strip the id from a copy.
	fields := make(record.Record, len(patch))
	for k, v := range patch {
		if k == "id" {
			continue
		}
		fields[k] = v
	}
	found, err := r.store.Merge(ctx, r.collection, id, fields)
	if err != nil {
		r.log.Error().Err(err).Str("op", "update").Str("id", id).Msg("repository write failed")
		return StatusError
	}
	if !found {
		return StatusNotFound
	}
	return StatusOK
}

// Delete removes the entity with the given identifier, permanently.
// Related entities referencing it are left in place; there is no cascade.
func (r *Repo[T]) Delete(ctx context.Context, id string) Status {
	found, err := r.store.Delete(ctx, r.collection, id)
	if err != nil {
		r.log.Error().Err(err).Str("op", "delete").Str("id", id).Msg("repository write failed")
		return StatusError
	}
	if !found {
		return StatusNotFound
	}
	return StatusOK
}

// load reads and sorts the whole collection, surfacing faults to callers
// inside the package (the seeder must not mistake a fault for emptiness).
func (r *Repo[T]) load(ctx context.Context) ([]T, error) {
	recs, err := r.store.List(ctx, r.collection)
	if err != nil {
		return nil, err
	}
	entities, err := decodeAll[T](recs)
	if err != nil {
		return nil, err
	}
	r.sort(entities)
	return entities, nil
}

func (r *Repo[T]) sort(entities []T) {
	sort.SliceStable(entities, func(i, j int) bool {
		return r.less(entities[i], entities[j])
	})
}

// encode and decode go through JSON so both backends see the exact same
// record shape as the HTTP layer emits.
func encode[T any](entity T) (record.Record, error) {
	b, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("encode entity: %w", err)
	}
	var fields record.Record
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("encode entity: %w", err)
	}
	return fields, nil
}

func decode[T any](rec record.Record) (T, error) {
	var entity T
	b, err := json.Marshal(rec)
	if err != nil {
		return entity, fmt.Errorf("decode record: %w", err)
	}
	if err := json.Unmarshal(b, &entity); err != nil {
		return entity, fmt.Errorf("decode record: %w", err)
	}
	return entity, nil
}

func decodeAll[T any](recs []record.Record) ([]T, error) {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		entity, err := decode[T](rec)
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}
