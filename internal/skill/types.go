package skill

import (
	"context"
	"fmt"

	"voice-skill/pkg/alexa"
)

// --- Hook signatures ---

// SessionStartedFunc runs once for a new session, before request dispatch.
type SessionStartedFunc func(ctx context.Context, req *alexa.Request, session *alexa.Session) error

// LaunchFunc answers a launch request through resp.
type LaunchFunc func(ctx context.Context, req *alexa.Request, session *alexa.Session, resp *alexa.ResponseBuilder) error

// IntentDispatchFunc answers an intent request through resp.
type IntentDispatchFunc func(ctx context.Context, req *alexa.Request, session *alexa.Session, resp *alexa.ResponseBuilder) error

// IntentFunc handles one named intent.
type IntentFunc func(ctx context.Context, intent alexa.Intent, session *alexa.Session, resp *alexa.ResponseBuilder) error

// SessionEndedFunc runs when the host closes the session.
type SessionEndedFunc func(ctx context.Context, req *alexa.Request, session *alexa.Session) error

// IntentHandlers maps intent names to handlers. A missing name is expected
// and surfaces as ErrUnsupportedIntent.
type IntentHandlers map[string]IntentFunc

// Dispatch looks up the intent named in req and runs its handler.
func (h IntentHandlers) Dispatch(ctx context.Context, req *alexa.Request, session *alexa.Session, resp *alexa.ResponseBuilder) error {
	if req.Intent == nil {
		return fmt.Errorf("%w: intent request without intent", ErrInvalidEvent)
	}

	handler, ok := h[req.Intent.Name]
	if !ok || handler == nil {
		return fmt.Errorf("%w = %s", ErrUnsupportedIntent, req.Intent.Name)
	}

	return handler(ctx, *req.Intent, session, resp)
}

// --- Application identity ---

// ApplicationCheck decides which application ids are accepted. The zero
// value requires an id and is rejected by Definition.Validate until one is set.
type ApplicationCheck struct {
	disabled      bool
	applicationID string
}

// RequireApplicationID accepts only events addressed to id.
func RequireApplicationID(id string) ApplicationCheck {
	return ApplicationCheck{applicationID: id}
}

// AnyApplication turns the identity check off.
func AnyApplication() ApplicationCheck {
	return ApplicationCheck{disabled: true}
}

// Enabled reports whether ids are compared at all.
func (a ApplicationCheck) Enabled() bool {
	return !a.disabled
}

// ApplicationID is the expected id; empty when the check is disabled.
func (a ApplicationCheck) ApplicationID() string {
	return a.applicationID
}

// Verify returns ErrAuthorizationMismatch when id is not accepted.
func (a ApplicationCheck) Verify(id string) error {
	if a.disabled {
		return nil
	}
	if id != a.applicationID {
		return fmt.Errorf("%w: got %q", ErrAuthorizationMismatch, id)
	}
	return nil
}

// --- Definition ---

// Definition is a concrete skill: identity policy, hooks and intent table.
// Nil hooks fall back to the defaults described on each field.
type Definition struct {
	Name        string
	Application ApplicationCheck

	// OnSessionStarted defaults to a no-op.
	OnSessionStarted SessionStartedFunc
	// OnLaunch defaults to returning ErrUnimplementedHook.
	OnLaunch LaunchFunc
	// OnIntent defaults to Intents.Dispatch.
	OnIntent IntentDispatchFunc
	// OnSessionEnded defaults to a no-op.
	OnSessionEnded SessionEndedFunc

	Intents IntentHandlers
}

// Validate checks the definition before it is used to serve events.
func (d Definition) Validate() error {
	if d.Application.Enabled() && d.Application.ApplicationID() == "" {
		return ErrApplicationIDRequired
	}
	return nil
}
