package record

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/internal/config"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := OpenLocal(config.LocalConfig{Path: ":memory:"}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLocalStoreCreateAndList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	recs, err := s.List(ctx, CollectionSemesters)
	require.NoError(t, err)
	assert.Empty(t, recs, "unwritten collection reads as empty")

	created, err := s.Create(ctx, CollectionSemesters, Record{"name": "Semester 1", "order": 1})
	require.NoError(t, err)
	assert.NotEmpty(t, created["id"], "store assigns an id")
	assert.Equal(t, "Semester 1", created["name"])

	recs, err = s.List(ctx, CollectionSemesters)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, created["id"], recs[0]["id"])
}

func TestLocalStoreCreateKeepsProvidedID(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Create(ctx, CollectionSubjects, Record{"id": "sub-1", "name": "Maths"})
	require.NoError(t, err)
	assert.Equal(t, "sub-1", created["id"])
}

func TestLocalStoreGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Create(ctx, CollectionSubjects, Record{"name": "Physics", "semesterId": "s1"})
	require.NoError(t, err)

	got, found, err := s.Get(ctx, CollectionSubjects, created["id"].(string))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Physics", got["name"])

	_, found, err = s.Get(ctx, CollectionSubjects, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLocalStoreMergeIsSparse(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Create(ctx, CollectionSemesters, Record{"name": "Semester 9", "order": 9})
	require.NoError(t, err)
	id := created["id"].(string)

	ok, err := s.Merge(ctx, CollectionSemesters, id, Record{"name": "Sem IX"})
	require.NoError(t, err)
	assert.True(t, ok)

	got, found, err := s.Get(ctx, CollectionSemesters, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Sem IX", got["name"])
	assert.EqualValues(t, 9, got["order"], "unmentioned field untouched")
}

func TestLocalStoreMergeIgnoresIDField(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Create(ctx, CollectionSemesters, Record{"name": "Semester 1", "order": 1})
	require.NoError(t, err)
	id := created["id"].(string)

	ok, err := s.Merge(ctx, CollectionSemesters, id, Record{"id": "hijacked", "name": "First"})
	require.NoError(t, err)
	assert.True(t, ok)

	_, found, err := s.Get(ctx, CollectionSemesters, id)
	require.NoError(t, err)
	assert.True(t, found, "record still reachable under the original id")
}

func TestLocalStoreMergeNoMatch(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ok, err := s.Merge(ctx, CollectionSemesters, "missing", Record{"name": "x"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalStoreDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	created, err := s.Create(ctx, CollectionPDFs, Record{"title": "Unit 1 notes"})
	require.NoError(t, err)
	id := created["id"].(string)

	ok, err := s.Delete(ctx, CollectionPDFs, id)
	require.NoError(t, err)
	assert.True(t, ok)

	recs, err := s.List(ctx, CollectionPDFs)
	require.NoError(t, err)
	assert.Empty(t, recs)

	ok, err = s.Delete(ctx, CollectionPDFs, id)
	require.NoError(t, err)
	assert.False(t, ok, "second delete is a no-match")
}

func TestLocalStoreListBy(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Create(ctx, CollectionSubjects, Record{"name": "Maths", "semesterId": "s1"})
	require.NoError(t, err)
	_, err = s.Create(ctx, CollectionSubjects, Record{"name": "Physics", "semesterId": "s2"})
	require.NoError(t, err)
	_, err = s.Create(ctx, CollectionSubjects, Record{"name": "Chemistry", "semesterId": "s1"})
	require.NoError(t, err)

	recs, err := s.ListBy(ctx, CollectionSubjects, "semesterId", "s1")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.Equal(t, "s1", rec["semesterId"])
	}
}

func TestLocalStoreCollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Create(ctx, CollectionSemesters, Record{"name": "Semester 1"})
	require.NoError(t, err)

	recs, err := s.List(ctx, CollectionSubjects)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
