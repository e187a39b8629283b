package chat

import (
	"context"
	"errors"

	"upchat/internal/domain"
)

// Handle identifies one connected participant for the lifetime of its
// connection. Handles are opaque to the room; the hub mints them.
type Handle string

// ErrUnknownParticipant is returned by name resolution for a handle that is
// not (or no longer) registered.
var ErrUnknownParticipant = errors.New("unknown participant")

type participant struct {
	name       string
	identified bool
}

// Room holds the connection registry and the message transcript. It is a
// plain single-goroutine structure: the hub run loop is its only writer, so
// no locking happens here. The transcript grows without bound for the life
// of the process.
type Room struct {
	order        []Handle
	participants map[Handle]*participant
	transcript   []domain.Entry
}

func NewRoom() *Room {
	return &Room{
		participants: make(map[Handle]*participant),
	}
}

// Join registers a new participant with its name unset. It returns false if
// the handle is already registered.
func (r *Room) Join(h Handle) bool {
	if _, ok := r.participants[h]; ok {
		return false
	}
	r.participants[h] = &participant{}
	r.order = append(r.order, h)
	return true
}

// Leave removes a participant. It is idempotent: removing an absent handle
// returns false and changes nothing.
func (r *Room) Leave(h Handle) bool {
	if _, ok := r.participants[h]; !ok {
		return false
	}
	delete(r.participants, h)
	for i, o := range r.order {
		if o == h {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Identify sets the participant's display name. Empty names normalize to
// DefaultName; stale handles are ignored and return false.
func (r *Room) Identify(h Handle, rawName string) bool {
	p, ok := r.participants[h]
	if !ok {
		return false
	}
	if rawName == "" {
		rawName = domain.DefaultName
	}
	p.name = rawName
	p.identified = true
	return true
}

// Post appends a transcript entry tagged with the sender's current name and
// returns it. Empty text and stale handles are silent no-ops.
func (r *Room) Post(h Handle, text string) (domain.Entry, bool) {
	p, ok := r.participants[h]
	if !ok || text == "" {
		return domain.Entry{}, false
	}
	entry := domain.Entry{Name: p.name, Text: text}
	r.transcript = append(r.transcript, entry)
	return entry, true
}

// Handles returns a point-in-time snapshot of the live participants in
// registration order. Roster resolution and broadcast fan-out both iterate
// this order.
func (r *Room) Handles() []Handle {
	out := make([]Handle, len(r.order))
	copy(out, r.order)
	return out
}

// Names returns the current roster in registration order. A never-identified
// participant appears as the empty string; identifying with an empty name
// yields DefaultName instead.
func (r *Room) Names() []string {
	names := make([]string, len(r.order))
	for i, h := range r.order {
		names[i] = r.participants[h].name
	}
	return names
}

// ResolveName implements NameResolver over the registry.
func (r *Room) ResolveName(_ context.Context, h Handle) (string, error) {
	p, ok := r.participants[h]
	if !ok {
		return "", ErrUnknownParticipant
	}
	return p.name, nil
}

// Transcript returns a read-only copy of the message history for replay.
func (r *Room) Transcript() []domain.Entry {
	out := make([]domain.Entry, len(r.transcript))
	copy(out, r.transcript)
	return out
}

// Len reports the number of live participants.
func (r *Room) Len() int {
	return len(r.participants)
}
