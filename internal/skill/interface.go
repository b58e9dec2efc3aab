package skill

import (
	"context"

	"voice-skill/pkg/alexa"
)

// UseCase routes one inbound event through a skill Definition.
type UseCase interface {
	// Execute handles event and reports the outcome to host. Exactly one of
	// host.Succeed or host.Fail is called.
	Execute(ctx context.Context, event *alexa.Event, host Completion)

	// Handle runs the same pipeline and returns the outcome directly. The
	// envelope is nil for session-ended requests.
	Handle(ctx context.Context, event *alexa.Event) (*alexa.Envelope, error)
}

// Completion is the host's result channel.
type Completion interface {
	Succeed(envelope *alexa.Envelope)
	Fail(err error)
}
