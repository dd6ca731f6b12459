package record

import "context"

// Package record abstracts the portal's record persistence behind a small
// collection-of-documents contract. Two backends implement it: SurrealDB
// over websocket RPC (the normal mode) and an embedded sqlite key-value
// store (the fallback when no database server is reachable). The backend
// is chosen once at startup and injected; nothing re-checks per call.

// Collection names shared by both backends. A record written under a name
// through one backend must read back identically through the other, save
// for the identifier format.
const (
	CollectionSemesters = "semesters"
	CollectionSubjects  = "subjects"
	CollectionPDFs      = "pdfs"
)

// Record is a loosely-shaped stored document. The repository layer owns
// the mapping to and from typed entities.
type Record = map[string]any

// Store is the backend-neutral persistence contract. Identifiers passed
// in and returned are bare opaque strings; backends that key records as
// "collection:id" translate at their own boundary.
type Store interface {
	// List returns every record in the collection, empty if the
	// collection does not exist yet. Order is backend-defined; callers
	// sort.
	List(ctx context.Context, collection string) ([]Record, error)

	// ListBy returns the records whose field equals value.
	ListBy(ctx context.Context, collection, field, value string) ([]Record, error)

	// Get returns the record with the given identifier. The boolean is
	// false when no record matches.
	Get(ctx context.Context, collection, id string) (Record, bool, error)

	// Create persists a new record. Backends assign the identifier when
	// fields carries none and return the stored record.
	Create(ctx context.Context, collection string, fields Record) (Record, error)

	// Merge folds patch into the record with the given identifier,
	// leaving unmentioned fields untouched. The boolean is false when no
	// record matches; that is not an error.
	Merge(ctx context.Context, collection, id string, patch Record) (bool, error)

	// Delete removes the record with the given identifier, permanently.
	// The boolean is false when no record matches; that is not an error.
	Delete(ctx context.Context, collection, id string) (bool, error)

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	Close() error
}
