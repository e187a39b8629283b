package hub

import (
	"context"

	"upchat/internal/chat"
	"upchat/internal/config"
	"upchat/internal/domain"
	"upchat/internal/log"
)

type inbound struct {
	client *Client
	frame  domain.Frame
}

// Hub serializes every connection event onto one goroutine. Run is the only
// writer of the room: registration, identify, message and disconnect are all
// delivered through channels and processed to completion one at a time,
// which is what keeps the registry and transcript consistent without locks.
type Hub struct {
	room *chat.Room

	clients    map[chat.Handle]*Client
	register   chan *Client
	unregister chan *Client
	frames     chan inbound

	cfg config.WebSocketConfig
}

func NewHub(cfg config.WebSocketConfig) *Hub {
	return &Hub{
		room:       chat.NewRoom(),
		clients:    make(map[chat.Handle]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		frames:     make(chan inbound),
		cfg:        cfg,
	}
}

// Register adds a client to the hub. The client receives a private replay of
// the transcript before any event that arrives after it.
func (h *Hub) Register(c *Client) {
	h.register <- c
}

// Unregister removes a client. Safe to call more than once for the same
// client; only the first removal publishes a roster update.
func (h *Hub) Unregister(c *Client) {
	h.unregister <- c
}

// Forward hands a parsed inbound frame to the run loop.
func (h *Hub) Forward(c *Client, frame domain.Frame) {
	h.frames <- inbound{client: c, frame: frame}
}

// Run processes hub events until ctx is cancelled. Call it in its own
// goroutine, once.
func (h *Hub) Run(ctx context.Context) {
	l := log.L()

	for {
		select {
		case <-ctx.Done():
			for id, c := range h.clients {
				close(c.Send)
				delete(h.clients, id)
			}
			l.Info().Msg("hub stopped")
			return

		case c := <-h.register:
			if !h.room.Join(c.ID) {
				l.Warn().Str(log.FieldClientID, string(c.ID)).Msg("duplicate register ignored")
				continue
			}
			h.clients[c.ID] = c
			h.replay(c)
			l.Debug().Str(log.FieldClientID, string(c.ID)).Msg("client registered")

		case c := <-h.unregister:
			if !h.room.Leave(c.ID) {
				continue
			}
			delete(h.clients, c.ID)
			close(c.Send)
			l.Debug().Str(log.FieldClientID, string(c.ID)).Msg("client unregistered")
			h.publishRoster(ctx)

		case in := <-h.frames:
			h.handleFrame(ctx, in.client, in.frame)
		}
	}
}

func (h *Hub) handleFrame(ctx context.Context, c *Client, frame domain.Frame) {
	l := log.L()

	switch frame.Event {
	case domain.EventIdentify:
		name := domain.Coerce(frame.Data)
		if !h.room.Identify(c.ID, name) {
			return
		}
		l.Debug().Str(log.FieldClientID, string(c.ID)).Str(log.FieldName, name).Msg("client identified")
		h.publishRoster(ctx)

	case domain.EventMessage:
		text := domain.Coerce(frame.Data)
		entry, ok := h.room.Post(c.ID, text)
		if !ok {
			return
		}
		h.broadcast(domain.NewMessageFrame(entry))

	default:
		l.Debug().Str(log.FieldClientID, string(c.ID)).Str(log.FieldEvent, frame.Event).Msg("unknown event ignored")
	}
}

// replay privately delivers the existing transcript, in order, to a newly
// registered client. Nothing is appended and no other client observes it.
func (h *Hub) replay(c *Client) {
	for _, entry := range h.room.Transcript() {
		data, err := encodeFrame(domain.NewMessageFrame(entry))
		if err != nil {
			continue
		}
		if !c.enqueue(data) {
			h.drop(c)
			return
		}
	}
}

// publishRoster resolves every participant's name (fan-out, fail-all) and
// broadcasts the ordered list. A failed resolution drops the whole publish;
// clients keep the previous roster until the next successful one.
func (h *Hub) publishRoster(ctx context.Context) {
	handles := h.room.Handles()
	names, err := chat.ResolveRoster(ctx, h.room, handles)
	if err != nil {
		l := log.L()
		l.Warn().Err(err).Msg("roster publish dropped")
		return
	}
	h.broadcast(domain.NewRosterFrame(names))
}

// broadcast delivers a frame to every live client in registration order.
// Delivery is fire-and-forget: a client whose buffer is full is scheduled
// for removal and the rest still receive the frame.
func (h *Hub) broadcast(v interface{}) {
	data, err := encodeFrame(v)
	if err != nil {
		l := log.L()
		l.Error().Err(err).Msg("broadcast encode failed")
		return
	}

	for _, handle := range h.room.Handles() {
		c, ok := h.clients[handle]
		if !ok {
			continue
		}
		if !c.enqueue(data) {
			h.drop(c)
		}
	}
}

// drop re-enqueues an unregister for a client that cannot keep up. Done from
// a fresh goroutine so the run loop never blocks on itself.
func (h *Hub) drop(c *Client) {
	l := log.L()
	l.Warn().Str(log.FieldClientID, string(c.ID)).Msg("client send buffer full, dropping")
	go h.Unregister(c)
}
