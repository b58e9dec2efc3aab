package usecase

import (
	"context"
	"fmt"

	"voice-skill/internal/skill"
	"voice-skill/pkg/alexa"
)

// Execute runs Handle and converts its outcome into exactly one host signal.
func (uc *implUseCase) Execute(ctx context.Context, event *alexa.Event, host skill.Completion) {
	env, err := uc.Handle(ctx, event)
	if err != nil {
		uc.l.Errorf(ctx, "%s: unexpected exception (%s): %v", LogPrefixExecute, skill.KindOf(err), err)
		host.Fail(err)
		return
	}
	host.Succeed(env)
}

// Handle validates event, prepares its session and dispatches it. Panics in
// skill code are recovered and returned as a HandlerError.
func (uc *implUseCase) Handle(ctx context.Context, event *alexa.Event) (env *alexa.Envelope, err error) {
	stage := StageDispatch
	defer func() {
		if r := recover(); r != nil {
			env = nil
			err = &skill.HandlerError{Stage: stage, Err: fmt.Errorf("%w: %v", skill.ErrHandlerPanic, r)}
		}
	}()

	if err := validateEvent(event); err != nil {
		return nil, err
	}

	appID := event.Session.Application.ApplicationID
	uc.l.Debugf(ctx, "%s: session applicationId: %s", LogPrefixHandle, appID)

	if err := uc.def.Application.Verify(appID); err != nil {
		uc.l.Warnf(ctx, "%s: the applicationIds don't match: %s and %s", LogPrefixHandle, appID, uc.def.Application.ApplicationID())
		return nil, err
	}

	if event.Session.Attributes == nil {
		event.Session.Attributes = map[string]any{}
	}

	if event.Session.New {
		stage = StageSessionStarted
		if err := uc.def.OnSessionStarted(ctx, event.Request, event.Session); err != nil {
			return nil, wrapHandlerErr(StageSessionStarted, err)
		}
	}

	stage = requestStage(event.Request.Type)
	return uc.dispatch(ctx, event)
}

func validateEvent(event *alexa.Event) error {
	switch {
	case event == nil:
		return fmt.Errorf("%w: nil event", skill.ErrInvalidEvent)
	case event.Session == nil:
		return fmt.Errorf("%w: missing session", skill.ErrInvalidEvent)
	case event.Request == nil:
		return fmt.Errorf("%w: missing request", skill.ErrInvalidEvent)
	case event.Request.Type == alexa.RequestTypeIntent && event.Request.Intent == nil:
		return fmt.Errorf("%w: intent request without intent", skill.ErrInvalidEvent)
	}
	return nil
}

// requestStage names the hook a request kind is dispatched to.
func requestStage(t alexa.RequestType) string {
	switch t {
	case alexa.RequestTypeLaunch:
		return StageLaunch
	case alexa.RequestTypeIntent:
		return StageIntent
	case alexa.RequestTypeSessionEnded:
		return StageSessionEnded
	default:
		return StageDispatch
	}
}
