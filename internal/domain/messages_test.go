package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"string", `"hello"`, "hello"},
		{"whitespace survives", `"   "`, "   "},
		{"null", `null`, ""},
		{"false", `false`, ""},
		{"true", `true`, "true"},
		{"zero", `0`, ""},
		{"number", `42`, "42"},
		{"float", `1.5`, "1.5"},
		{"empty string", `""`, ""},
		{"object", `{"a":1}`, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Coerce(json.RawMessage(tt.raw)))
		})
	}
}

func TestCoerce_AbsentPayload(t *testing.T) {
	require.Equal(t, "", Coerce(nil))
}

func TestFrameRoundTrip(t *testing.T) {
	req := require.New(t)

	data, err := json.Marshal(NewMessageFrame(Entry{Name: "Alice", Text: "hi"}))
	req.NoError(err)
	req.JSONEq(`{"event":"message","data":{"name":"Alice","text":"hi"}}`, string(data))

	data, err = json.Marshal(NewRosterFrame([]string{"Alice", ""}))
	req.NoError(err)
	req.JSONEq(`{"event":"roster","data":["Alice",""]}`, string(data))

	var frame Frame
	req.NoError(json.Unmarshal([]byte(`{"event":"identify","data":"Alice"}`), &frame))
	req.Equal(EventIdentify, frame.Event)
	req.Equal("Alice", Coerce(frame.Data))
}
