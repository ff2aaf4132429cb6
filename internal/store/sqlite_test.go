package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rms.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()

	var out []string
	ok, err := s.Get(ctx, Rooms, &out)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, Rooms, []string{"a", "b"}))
	ok, err = s.Get(ctx, Rooms, &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, out)
}

func TestSQLiteUpsert(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rms.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.Put(ctx, Users, []string{"first"}))
	require.NoError(t, s.Put(ctx, Users, []string{"second"}))

	var out []string
	ok, err := s.Get(ctx, Users, &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"second"}, out)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rms.db")
	ctx := context.Background()

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, Settings, map[string]bool{"showLeaderboard": false}))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	var out map[string]bool
	ok, err := s.Get(ctx, Settings, &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, out["showLeaderboard"])
}

func TestSQLiteDeleteAndNotify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rms.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	var changes []Collection
	s.Subscribe(func(c Collection) { changes = append(changes, c) })

	require.NoError(t, s.Put(ctx, Logs, []string{"x"}))
	require.NoError(t, s.Delete(ctx, Logs))

	var out []string
	ok, err := s.Get(ctx, Logs, &out)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []Collection{Logs, Logs}, changes)
}
