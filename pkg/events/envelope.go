package events

import (
	"encoding/json"
	"time"
)

// Envelope is the wire form of an Event, shared by every sink.
type Envelope struct {
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurred_at"`
	Data       map[string]interface{} `json:"data"`
}

func Encode(evt Event) ([]byte, error) {
	return json.Marshal(Envelope{
		Type:       evt.EventType(),
		OccurredAt: evt.Timestamp(),
		Data:       evt.Payload(),
	})
}

func Decode(payload []byte) (BaseEvent, error) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return BaseEvent{}, err
	}
	return BaseEvent{Type: env.Type, Data: env.Data, OccurredAt: env.OccurredAt}, nil
}
