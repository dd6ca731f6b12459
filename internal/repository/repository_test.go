package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"studyhub/internal/config"
	"studyhub/internal/model"
	"studyhub/internal/record"
	"studyhub/internal/record/mocks"
)

func newLocalStore(t *testing.T) record.Store {
	t.Helper()
	s, err := record.OpenLocal(config.LocalConfig{Path: ":memory:"}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAddThenGetAll(t *testing.T) {
	ctx := context.Background()
	repo := NewSemesters(newLocalStore(t), zerolog.Nop())

	added := repo.Add(ctx, model.Semester{Name: "Semester 1", Order: 1})
	require.NotNil(t, added)
	assert.NotEmpty(t, added.ID, "identifier assigned on creation")
	assert.Equal(t, "Semester 1", added.Name)
	assert.Equal(t, 1, added.Order)

	all := repo.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, *added, all[0])
}

func TestGetAllSortsSemestersByOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewSemesters(newLocalStore(t), zerolog.Nop())

	require.NotNil(t, repo.Add(ctx, model.Semester{Name: "Semester 3", Order: 3}))
	require.NotNil(t, repo.Add(ctx, model.Semester{Name: "Semester 1", Order: 1}))
	require.NotNil(t, repo.Add(ctx, model.Semester{Name: "Semester 2", Order: 2}))

	all := repo.GetAll(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].Order, all[1].Order, all[2].Order})
}

func TestGetAllSortsSubjectsByName(t *testing.T) {
	ctx := context.Background()
	repo := NewSubjects(newLocalStore(t), zerolog.Nop())

	require.NotNil(t, repo.Add(ctx, model.Subject{Name: "Physics", SemesterID: "s1"}))
	require.NotNil(t, repo.Add(ctx, model.Subject{Name: "Chemistry", SemesterID: "s1"}))
	require.NotNil(t, repo.Add(ctx, model.Subject{Name: "Maths", SemesterID: "s1"}))

	all := repo.GetAll(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, "Chemistry", all[0].Name)
	assert.Equal(t, "Maths", all[1].Name)
	assert.Equal(t, "Physics", all[2].Name)
}

func TestGetAllSortsResourcesNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewResources(newLocalStore(t), zerolog.Nop())

	old := model.Timestamp{Time: time.UnixMilli(1000).UTC()}
	newer := model.Timestamp{Time: time.UnixMilli(2000).UTC()}
	require.NotNil(t, repo.Add(ctx, model.Resource{Title: "old", CreatedAt: old}))
	require.NotNil(t, repo.Add(ctx, model.Resource{Title: "new", CreatedAt: newer}))

	all := repo.GetAll(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].Title)
	assert.Equal(t, "old", all[1].Title)
}

// Both backends must yield the same entity for the same stored fields,
// identifier format aside: the remote store hands back RFC 3339 datetime
// strings and table-qualified ids it flattens, the local store hands
// back the epoch-millisecond numbers it was given.
func TestBackendShapeRoundTrip(t *testing.T) {
	ctx := context.Background()

	remoteShaped := record.Record{
		"id":         "r1",
		"title":      "Lecture Notes",
		"fileName":   "notes.pdf",
		"fileUrl":    "pdfs/abc.pdf",
		"semesterId": "s1",
		"subjectId":  "sub1",
		"createdAt":  "2026-08-28T10:15:30.500Z",
	}
	localShaped := record.Record{
		"id":         "r1",
		"title":      "Lecture Notes",
		"fileName":   "notes.pdf",
		"fileUrl":    "pdfs/abc.pdf",
		"semesterId": "s1",
		"subjectId":  "sub1",
		"createdAt":  float64(time.Date(2026, 8, 28, 10, 15, 30, int(500*time.Millisecond), time.UTC).UnixMilli()),
	}

	fromShape := func(rec record.Record) model.Resource {
		store := new(mocks.MockStore)
		store.On("Get", mock.Anything, record.CollectionPDFs, "r1").Return(rec, true, nil).Once()

		repo := NewResources(store, zerolog.Nop())
		got := repo.Get(ctx, "r1")
		require.NotNil(t, got)
		store.AssertExpectations(t)
		return *got
	}

	fromRemote := fromShape(remoteShaped)
	fromLocal := fromShape(localShaped)
	assert.Equal(t, fromRemote, fromLocal)
	assert.True(t, fromRemote.CreatedAt.Equal(time.UnixMilli(1787912130500)))
}

func TestUpdateMergesNotReplaces(t *testing.T) {
	ctx := context.Background()
	repo := NewSemesters(newLocalStore(t), zerolog.Nop())

	added := repo.Add(ctx, model.Semester{Name: "Semester 9", Order: 9})
	require.NotNil(t, added)

	assert.Equal(t, StatusOK, repo.Update(ctx, added.ID, map[string]any{"name": "Sem IX"}))

	all := repo.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "Sem IX", all[0].Name)
	assert.Equal(t, 9, all[0].Order, "unmentioned field unchanged")
	assert.Equal(t, added.ID, all[0].ID)
}

func TestUpdateLeavesCallerPatchIntact(t *testing.T) {
	ctx := context.Background()
	repo := NewSemesters(newLocalStore(t), zerolog.Nop())

	added := repo.Add(ctx, model.Semester{Name: "Semester 1", Order: 1})
	require.NotNil(t, added)

	patch := map[string]any{"id": "forged", "name": "Sem I"}
	assert.Equal(t, StatusOK, repo.Update(ctx, added.ID, patch))

	// The repository strips the id from its own copy only.
	assert.Equal(t, map[string]any{"id": "forged", "name": "Sem I"}, patch)

	got := repo.Get(ctx, added.ID)
	require.NotNil(t, got)
	assert.Equal(t, added.ID, got.ID)
	assert.Equal(t, "Sem I", got.Name)
}

func TestUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewSemesters(newLocalStore(t), zerolog.Nop())

	assert.Equal(t, StatusNotFound, repo.Update(ctx, "missing", map[string]any{"name": "x"}))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSemesters(newLocalStore(t), zerolog.Nop())

	added := repo.Add(ctx, model.Semester{Name: "Semester 1", Order: 1})
	require.NotNil(t, added)

	assert.Equal(t, StatusOK, repo.Delete(ctx, added.ID))
	assert.Empty(t, repo.GetAll(ctx))
	assert.Equal(t, StatusNotFound, repo.Delete(ctx, added.ID))
}

func TestGetByParent(t *testing.T) {
	ctx := context.Background()
	repo := NewSubjects(newLocalStore(t), zerolog.Nop())

	require.NotNil(t, repo.Add(ctx, model.Subject{Name: "Physics", SemesterID: "s1"}))
	require.NotNil(t, repo.Add(ctx, model.Subject{Name: "Algebra", SemesterID: "s1"}))
	require.NotNil(t, repo.Add(ctx, model.Subject{Name: "Biology", SemesterID: "s2"}))

	got := repo.GetByParent(ctx, "semesterId", "s1")
	require.Len(t, got, 2)
	assert.Equal(t, "Algebra", got[0].Name, "canonical order applies to filtered reads")
	assert.Equal(t, "Physics", got[1].Name)
}

// Deleting a semester leaves its subjects in place. Orphaning is the
// chosen behavior, not an oversight.
func TestDeleteSemesterOrphansSubjects(t *testing.T) {
	ctx := context.Background()
	store := newLocalStore(t)
	semesters := NewSemesters(store, zerolog.Nop())
	subjects := NewSubjects(store, zerolog.Nop())

	sem := semesters.Add(ctx, model.Semester{Name: "Semester 1", Order: 1})
	require.NotNil(t, sem)
	sub := subjects.Add(ctx, model.Subject{Name: "Maths", SemesterID: sem.ID})
	require.NotNil(t, sub)

	require.Equal(t, StatusOK, semesters.Delete(ctx, sem.ID))

	orphans := subjects.GetByParent(ctx, "semesterId", sem.ID)
	require.Len(t, orphans, 1)
	assert.Equal(t, sub.ID, orphans[0].ID)
}

// The concrete lifecycle scenario: add Semester 9, rename it, delete it.
func TestSemesterLifecycleScenario(t *testing.T) {
	ctx := context.Background()
	store := newLocalStore(t)
	repo := NewSemesters(store, zerolog.Nop())
	seeder := NewSemesterSeeder(repo, zerolog.Nop())

	_, err := seeder.EnsureDefaults(ctx)
	require.NoError(t, err)

	added := repo.Add(ctx, model.Semester{Name: "Semester 9", Order: 9})
	require.NotNil(t, added)

	all := repo.GetAll(ctx)
	require.Len(t, all, 9)
	assert.Equal(t, added.ID, all[8].ID, "order 9 lists last")

	require.Equal(t, StatusOK, repo.Update(ctx, added.ID, map[string]any{"name": "Sem IX"}))
	all = repo.GetAll(ctx)
	assert.Equal(t, "Sem IX", all[8].Name)
	assert.Equal(t, 9, all[8].Order)

	require.Equal(t, StatusOK, repo.Delete(ctx, added.ID))
	for _, sem := range repo.GetAll(ctx) {
		assert.NotEqual(t, 9, sem.Order)
	}
}

func TestGetAllFailsSoftOnStoreFault(t *testing.T) {
	ctx := context.Background()
	mStore := new(mocks.MockStore)
	mStore.On("List", ctx, record.CollectionSemesters).Return(nil, assert.AnError)

	repo := NewSemesters(mStore, zerolog.Nop())

	all := repo.GetAll(ctx)
	assert.NotNil(t, all)
	assert.Empty(t, all)
	mStore.AssertExpectations(t)
}

func TestAddFailsSoftOnStoreFault(t *testing.T) {
	ctx := context.Background()
	mStore := new(mocks.MockStore)
	mStore.On("Create", ctx, record.CollectionSemesters, mock.Anything).Return(nil, assert.AnError)

	repo := NewSemesters(mStore, zerolog.Nop())

	assert.Nil(t, repo.Add(ctx, model.Semester{Name: "Semester 1", Order: 1}))
	mStore.AssertExpectations(t)
}

func TestUpdateReportsErrorStatusOnStoreFault(t *testing.T) {
	ctx := context.Background()
	mStore := new(mocks.MockStore)
	mStore.On("Merge", ctx, record.CollectionSemesters, "id1", mock.Anything).
		Return(false, assert.AnError)

	repo := NewSemesters(mStore, zerolog.Nop())

	assert.Equal(t, StatusError, repo.Update(ctx, "id1", map[string]any{"name": "x"}))
	mStore.AssertExpectations(t)
}

func TestAddDiscardsCallerID(t *testing.T) {
	ctx := context.Background()
	mStore := new(mocks.MockStore)
	mStore.On("Create", ctx, record.CollectionSemesters, mock.MatchedBy(func(fields record.Record) bool {
		_, hasID := fields["id"]
		return !hasID
	})).Return(record.Record{"id": "assigned", "name": "Semester 1", "order": 1}, nil)

	repo := NewSemesters(mStore, zerolog.Nop())

	added := repo.Add(ctx, model.Semester{ID: "caller-picked", Name: "Semester 1", Order: 1})
	require.NotNil(t, added)
	assert.Equal(t, "assigned", added.ID)
	mStore.AssertExpectations(t)
}
