package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"insurance-agent/internal/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGetOrCreate_GeneratesID(t *testing.T) {
	orig := newSessionID
	newSessionID = func() string { return "generated-id" }
	defer func() { newSessionID = orig }()

	store := NewStore(0)
	sess := store.GetOrCreate("", "user-1")
	require.Equal(t, "generated-id", sess.ID)
	require.Equal(t, "user-1", sess.UserID)
	require.Zero(t, sess.MessageCount)
	require.Empty(t, sess.History)
	require.Equal(t, 1, store.Len())
}

func TestGetOrCreate_ReturnsExistingAndTouches(t *testing.T) {
	store := NewStore(0)
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = fixedClock(created)

	first := store.GetOrCreate("sess-1", "user-1")

	later := created.Add(10 * time.Minute)
	store.now = fixedClock(later)
	second := store.GetOrCreate("sess-1", "user-1")

	require.Same(t, first, second)
	require.Equal(t, created, second.CreatedAt)
	require.Equal(t, later, second.LastActiveAt)
	require.Equal(t, 1, store.Len())
}

func TestGetOrCreate_UnknownCallerSuppliedID(t *testing.T) {
	// Unknown ids create a session under that id rather than failing.
	store := NewStore(0)
	sess := store.GetOrCreate("client-chosen", "user-1")
	require.Equal(t, "client-chosen", sess.ID)

	got, err := store.Get("client-chosen")
	require.NoError(t, err)
	require.Same(t, sess, got)
}

func TestGet_NotFound(t *testing.T) {
	store := NewStore(0)
	_, err := store.Get("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	store := NewStore(0)
	store.GetOrCreate("sess-1", "user-1")

	require.True(t, store.Delete("sess-1"))
	require.False(t, store.Delete("sess-1"))
	require.Equal(t, 0, store.Len())
}

func TestSweep_RemovesOnlyExpired(t *testing.T) {
	store := NewStore(0)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	store.now = fixedClock(base)
	store.GetOrCreate("stale", "user-1")

	fresh := base.Add(25 * time.Minute)
	store.now = fixedClock(fresh)
	store.GetOrCreate("fresh", "user-2")

	store.now = fixedClock(base.Add(31 * time.Minute))
	removed := store.Sweep(30 * time.Minute)
	require.Equal(t, 1, removed)

	_, err := store.Get("stale")
	require.ErrorIs(t, err, ErrNotFound)

	kept, err := store.Get("fresh")
	require.NoError(t, err)
	// The sweep itself must not touch the survivor's last-active timestamp.
	require.Equal(t, fresh, kept.LastActiveAt)
}

func TestSweep_ExactBoundaryRetained(t *testing.T) {
	store := NewStore(0)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = fixedClock(base)
	store.GetOrCreate("edge", "user-1")

	// now - lastActive == timeout is not strictly greater, so it survives.
	store.now = fixedClock(base.Add(30 * time.Minute))
	require.Equal(t, 0, store.Sweep(30*time.Minute))
	require.Equal(t, 1, store.Len())
}

func TestAppendExchange_OrderAndCap(t *testing.T) {
	sess := &Session{}
	sess.AppendExchange("q1", "a1", 4)
	sess.AppendExchange("q2", "a2", 4)
	sess.AppendExchange("q3", "a3", 4)

	require.Equal(t, []domain.Turn{
		{Role: domain.RoleUser, Content: "q2"},
		{Role: domain.RoleAssistant, Content: "a2"},
		{Role: domain.RoleUser, Content: "q3"},
		{Role: domain.RoleAssistant, Content: "a3"},
	}, sess.History)
}

func TestAppendExchange_Unbounded(t *testing.T) {
	sess := &Session{}
	for i := 0; i < 50; i++ {
		sess.AppendExchange("q", "a", 0)
	}
	require.Len(t, sess.History, 100)
}
