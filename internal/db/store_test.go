package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	sqlDB, err := Open(filepath.Join(t.TempDir(), "featgen.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return NewStore(sqlDB)
}

func TestStore_RegisterDocument(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	ok, err := s.IsRegistered(ctx, "login")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.RecordDocument(ctx, DocumentRecord{
		Name:       "login",
		SourcePath: "docs/login.md",
		TargetPath: "features/login.feature",
		Scenarios:  []string{"Login", "Logout"},
	}))

	ok, err = s.IsRegistered(ctx, "login")
	require.NoError(t, err)
	assert.True(t, ok)

	path, err := s.TargetPath(ctx, "login")
	require.NoError(t, err)
	assert.Equal(t, "features/login.feature", path)
}

func TestStore_RecordDocumentReplacesScenarios(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	rec := DocumentRecord{Name: "login", SourcePath: "a", TargetPath: "b", Scenarios: []string{"One", "Two"}}
	require.NoError(t, s.RecordDocument(ctx, rec))
	rec.Scenarios = []string{"Three"}
	require.NoError(t, s.RecordDocument(ctx, rec))

	rows, err := s.Scenarios(ctx, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, ScenarioRow{Document: "login", Position: 1, Name: "Three"}, rows[0])

	docs, scenarios, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, docs)
	assert.Equal(t, 1, scenarios)
}

func TestStore_ScenariosFilter(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.RecordDocument(ctx, DocumentRecord{Name: "b", SourcePath: "b.md", TargetPath: "b.feature", Scenarios: []string{"B1"}}))
	require.NoError(t, s.RecordDocument(ctx, DocumentRecord{Name: "a", SourcePath: "a.md", TargetPath: "a.feature", Scenarios: []string{"A1", "A2"}}))

	all, err := s.Scenarios(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Document)
	assert.Equal(t, "A2", all[1].Name)
	assert.Equal(t, "b", all[2].Document)

	only, err := s.Scenarios(ctx, "b")
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, "B1", only[0].Name)
}

func TestStore_Builds(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	last, err := s.LastBuild(ctx)
	require.NoError(t, err)
	assert.Nil(t, last)

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, s.RecordBuild(ctx, BuildRecord{ID: "first", StartedAt: start, Generated: 1}))
	require.NoError(t, s.RecordBuild(ctx, BuildRecord{ID: "second", StartedAt: start.Add(time.Minute), Skipped: 2, Failed: 1}))

	last, err = s.LastBuild(ctx)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "second", last.ID)
	assert.Equal(t, 2, last.Skipped)
	assert.Equal(t, 1, last.Failed)
	assert.True(t, start.Add(time.Minute).Equal(last.StartedAt))
}

func TestStore_TargetPathMissing(t *testing.T) {
	_, err := openTestStore(t).TargetPath(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document nope not found")
}

func TestStore_Documents(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.RecordDocument(ctx, DocumentRecord{Name: "login", SourcePath: "login.md", TargetPath: "login.feature", Scenarios: []string{"Login", "Logout"}}))
	require.NoError(t, s.RecordDocument(ctx, DocumentRecord{Name: "empty", SourcePath: "empty.md", TargetPath: "empty.feature"}))

	docs, err := s.Documents(ctx)
	require.NoError(t, err)
	assert.Equal(t, []DocumentSummary{
		{Name: "empty", TargetPath: "empty.feature", Scenarios: 0},
		{Name: "login", TargetPath: "login.feature", Scenarios: 2},
	}, docs)
}
