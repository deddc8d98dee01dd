package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// ChannelSink publishes events onto a watermill topic, usually a gochannel
// pub/sub read by the activity consumer.
type ChannelSink struct {
	publisher message.Publisher
	topic     string
}

func NewChannelSink(publisher message.Publisher, topic string) *ChannelSink {
	return &ChannelSink{publisher: publisher, topic: topic}
}

func (s *ChannelSink) Publish(ctx context.Context, evt Event) error {
	payload, err := Encode(evt)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", evt.EventType())

	if err := s.publisher.Publish(s.topic, msg); err != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", s.topic, err)
	}
	return nil
}
