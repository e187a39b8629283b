package domain

import (
	"encoding/json"
	"strconv"
)

// WebSocket event names, client to server.
const (
	EventIdentify = "identify"
	EventMessage  = "message"
)

// WebSocket event names, server to client. EventMessage is used in both
// directions; EventRoster only flows outward.
const (
	EventRoster = "roster"
)

// DefaultName is stored when a participant identifies with an empty name.
const DefaultName = "Anonymous"

// Entry is one delivered chat message. Name is a snapshot of the sender's
// display name at send time; later renames do not rewrite old entries.
type Entry struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Frame is the envelope for every inbound WebSocket message.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Server -> client frames.

type MessageFrame struct {
	Event string `json:"event"`
	Data  Entry  `json:"data"`
}

type RosterFrame struct {
	Event string   `json:"event"`
	Data  []string `json:"data"`
}

func NewMessageFrame(e Entry) *MessageFrame {
	return &MessageFrame{Event: EventMessage, Data: e}
}

func NewRosterFrame(names []string) *RosterFrame {
	return &RosterFrame{Event: EventRoster, Data: names}
}

// Coerce renders an arbitrary JSON payload as a display string. Empty-ish
// payloads (absent, null, false, 0, "") coerce to the empty string;
// whitespace survives untouched.
func Coerce(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}

	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if !t {
			return ""
		}
		return "true"
	case float64:
		if t == 0 {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
