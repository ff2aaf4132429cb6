package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetMissingCollection(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var out []string
	ok, err := m.Get(ctx, Users, &out)
	require.NoError(t, err)
	assert.False(t, ok, "never-written collection reports absent")
	assert.Nil(t, out)
}

func TestMemoryPutGetRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	type doc struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	in := []doc{{ID: "1", Name: "alpha"}, {ID: "2", Name: "beta"}}
	require.NoError(t, m.Put(ctx, Rooms, in))

	var out []doc
	ok, err := m.Get(ctx, Rooms, &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, out)
}

func TestMemoryPutReplacesWholeCollection(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Put(ctx, Rooms, []string{"a", "b", "c"}))
	require.NoError(t, m.Put(ctx, Rooms, []string{"d"}))

	var out []string
	_, err := m.Get(ctx, Rooms, &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, out, "last write wins")
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Put(ctx, Session, map[string]string{"id": "1"}))
	require.NoError(t, m.Delete(ctx, Session))

	var out map[string]string
	ok, err := m.Get(ctx, Session, &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubscribeNotifiesOnWrite(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var got []Collection
	unsubscribe := m.Subscribe(func(c Collection) {
		got = append(got, c)
	})

	m.Put(ctx, Rooms, []string{"a"})
	m.Delete(ctx, Rooms)
	assert.Equal(t, []Collection{Rooms, Rooms}, got)

	unsubscribe()
	m.Put(ctx, Users, []string{"b"})
	assert.Len(t, got, 2, "unsubscribed callbacks stop firing")
}

func TestSubscribeMultipleListeners(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	a, b := 0, 0
	m.Subscribe(func(Collection) { a++ })
	m.Subscribe(func(Collection) { b++ })

	m.Put(ctx, Payments, []string{"p"})
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}
