package service

import (
	"context"

	"annotation-notes-be/internal/pkg/logger"
	"annotation-notes-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// IActivityConsumer drains the in-process event topic into the activity log.
type IActivityConsumer interface {
	Consume(ctx context.Context) error
}

type activityConsumer struct {
	subscriber message.Subscriber
	topicName  string
	activity   logger.ILogger
}

func NewActivityConsumer(subscriber message.Subscriber, topicName string, activity logger.ILogger) IActivityConsumer {
	return &activityConsumer{
		subscriber: subscriber,
		topicName:  topicName,
		activity:   activity,
	}
}

// Consume subscribes and returns; messages are handled on a goroutine until
// ctx is done or the subscriber is closed.
func (c *activityConsumer) Consume(ctx context.Context) error {
	messages, err := c.subscriber.Subscribe(ctx, c.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			c.processMessage(msg)
		}
	}()

	return nil
}

func (c *activityConsumer) processMessage(msg *message.Message) {
	// Every message is acked: nothing here is worth a redelivery.
	defer msg.Ack()

	evt, err := events.Decode(msg.Payload)
	if err != nil {
		c.activity.Warn("ACTIVITY", "Dropped undecodable event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	details := make(map[string]interface{}, len(evt.Payload())+1)
	for k, v := range evt.Payload() {
		details[k] = v
	}
	details["occurred_at"] = evt.Timestamp()

	c.activity.Info("ACTIVITY", evt.EventType(), details)
}
