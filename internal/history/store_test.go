// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grouchyseafowl/robostripper/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, types.Run{
		InputPath:  "a.pdf",
		OutputPath: "/out/a.txt",
		Status:     types.StatusStripped,
		Pages:      12,
		OCRPages:   2,
	}))
	require.NoError(t, s.Record(ctx, types.Run{
		InputPath: "b.pdf",
		Status:    types.StatusFailed,
	}))

	runs, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, "b.pdf", runs[0].InputPath)
	assert.Equal(t, types.StatusFailed, runs[0].Status)
	assert.Equal(t, "a.pdf", runs[1].InputPath)
	assert.Equal(t, "/out/a.txt", runs[1].OutputPath)
	assert.Equal(t, 12, runs[1].Pages)
	assert.Equal(t, 2, runs[1].OCRPages)
	assert.False(t, runs[1].CreatedAt.IsZero())
}

func TestRecentLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, types.Run{InputPath: "x.pdf", Status: types.StatusStripped}))
	}

	runs, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestPrune(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	outDir := t.TempDir()

	existing := filepath.Join(outDir, "a.txt")
	require.NoError(t, os.WriteFile(existing, []byte("stripped text"), 0o644))
	missing := filepath.Join(outDir, "gone.txt")

	require.NoError(t, s.Record(ctx, types.Run{InputPath: "a.pdf", OutputPath: existing, Status: types.StatusStripped}))
	require.NoError(t, s.Record(ctx, types.Run{InputPath: "gone.pdf", OutputPath: missing, Status: types.StatusStripped}))
	require.NoError(t, s.Record(ctx, types.Run{InputPath: "bad.pdf", Status: types.StatusFailed}))

	var out bytes.Buffer
	summary, err := s.Prune(ctx, &out)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Deleted)
	assert.Equal(t, 1, summary.Missing)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 2, summary.Total())
	assert.NoFileExists(t, existing)
	assert.Contains(t, out.String(), "deleted: "+existing)

	runs, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, runs, "all rows should be cleared after prune")
}

func TestNewStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "history")
	s, err := NewStore(types.HistoryConfig{Dir: dir})
	require.NoError(t, err)
	defer s.Close()

	assert.DirExists(t, dir)
	assert.FileExists(t, filepath.Join(dir, dbFile))
}
