package nats

import (
	"testing"

	"annotation-notes-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "events.notebook.created", Subject(events.NotebookCreated))
	assert.Equal(t, "events.user.registered", Subject(events.UserRegistered))
	assert.Equal(t, "events.annotation.deleted", Subject(events.AnnotationDeleted))
}
