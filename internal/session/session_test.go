package session

import (
	"testing"

	"todo-planner-api/internal/store"
	"todo-planner-api/internal/testutil"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	return NewManager(store.NewGormStore(db), zerolog.Nop())
}

func TestSession_ReusedAcrossCalls(t *testing.T) {
	m := newTestManager(t)

	first := m.Session("u-1")
	second := m.Session("u-1")
	require.Same(t, first, second)
}

func TestSession_PerUserIsolation(t *testing.T) {
	m := newTestManager(t)

	alice := m.Session("u-alice")
	bob := m.Session("u-bob")
	require.NotSame(t, alice, bob)

	alice.Gateway.AddProject("private")
	require.Len(t, alice.Gateway.State().Projects, 1)
	require.Empty(t, bob.Gateway.State().Projects)
}

func TestDrop_DiscardsWorkingSet(t *testing.T) {
	m := newTestManager(t)

	s := m.Session("u-1")
	s.Gateway.AddProject("kept in store")
	m.Drop("u-1")

	// the replacement session reloads the persisted rows
	replacement := m.Session("u-1")
	require.NotSame(t, s, replacement)
	require.Len(t, replacement.Gateway.State().Projects, 1)
}
