package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"upchat/internal/domain"
)

func TestRoom_JoinLeave_TracksMembership(t *testing.T) {
	req := require.New(t)
	room := NewRoom()

	req.Equal(0, room.Len())

	req.True(room.Join("a"))
	req.True(room.Join("b"))
	req.Equal(2, room.Len())
	req.Len(room.Names(), 2)

	// Duplicate join is refused.
	req.False(room.Join("a"))
	req.Equal(2, room.Len())

	req.True(room.Leave("a"))
	req.Equal(1, room.Len())
	req.Len(room.Names(), 1)

	// Second leave is an idempotent no-op.
	req.False(room.Leave("a"))
	req.Equal(1, room.Len())
}

func TestRoom_Names_StableRegistrationOrder(t *testing.T) {
	req := require.New(t)
	room := NewRoom()

	room.Join("first")
	room.Join("second")
	room.Join("third")

	room.Identify("second", "Bob")
	room.Identify("first", "Alice")

	// Never-identified participants appear as the empty string.
	req.Equal([]string{"Alice", "Bob", ""}, room.Names())

	room.Leave("second")
	req.Equal([]string{"Alice", ""}, room.Names())
}

func TestRoom_Identify_EmptyNameBecomesAnonymous(t *testing.T) {
	req := require.New(t)
	room := NewRoom()

	room.Join("a")
	req.True(room.Identify("a", ""))
	req.Equal([]string{domain.DefaultName}, room.Names())

	// Renaming is repeatable.
	req.True(room.Identify("a", "Alice"))
	req.Equal([]string{"Alice"}, room.Names())

	// Stale handle is ignored.
	req.False(room.Identify("gone", "Ghost"))
}

func TestRoom_Post_AppendsAndSnapshotsName(t *testing.T) {
	req := require.New(t)
	room := NewRoom()

	room.Join("a")
	room.Identify("a", "Alice")

	entry, ok := room.Post("a", "hello")
	req.True(ok)
	req.Equal(domain.Entry{Name: "Alice", Text: "hello"}, entry)

	// A later rename does not rewrite the recorded entry.
	room.Identify("a", "Alicia")
	req.Equal([]domain.Entry{{Name: "Alice", Text: "hello"}}, room.Transcript())
}

func TestRoom_Post_EmptyTextAndStaleHandleAreNoOps(t *testing.T) {
	req := require.New(t)
	room := NewRoom()

	room.Join("a")

	_, ok := room.Post("a", "")
	req.False(ok)
	req.Empty(room.Transcript())

	_, ok = room.Post("gone", "hi")
	req.False(ok)
	req.Empty(room.Transcript())

	// Whitespace is not empty.
	entry, ok := room.Post("a", "   ")
	req.True(ok)
	req.Equal("   ", entry.Text)
	req.Len(room.Transcript(), 1)
}

func TestRoom_Post_UnidentifiedSenderHasEmptyName(t *testing.T) {
	req := require.New(t)
	room := NewRoom()

	room.Join("a")
	entry, ok := room.Post("a", "hi")
	req.True(ok)
	req.Equal("", entry.Name)
}

func TestRoom_Transcript_ReturnsCopy(t *testing.T) {
	req := require.New(t)
	room := NewRoom()

	room.Join("a")
	room.Post("a", "one")

	snapshot := room.Transcript()
	snapshot[0].Text = "mutated"

	req.Equal("one", room.Transcript()[0].Text)
}

func TestRoom_ResolveName(t *testing.T) {
	req := require.New(t)
	room := NewRoom()

	room.Join("a")
	room.Identify("a", "Alice")

	name, err := room.ResolveName(context.Background(), "a")
	req.NoError(err)
	req.Equal("Alice", name)

	_, err = room.ResolveName(context.Background(), "gone")
	req.ErrorIs(err, ErrUnknownParticipant)
}
