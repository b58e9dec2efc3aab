package usecase

import (
	"context"
	"errors"
	"fmt"

	"voice-skill/internal/skill"
	"voice-skill/pkg/alexa"
)

// dispatch routes on the request kind.
func (uc *implUseCase) dispatch(ctx context.Context, event *alexa.Event) (*alexa.Envelope, error) {
	req := event.Request
	session := event.Session

	switch req.Type {
	case alexa.RequestTypeLaunch:
		resp := alexa.NewResponseBuilder(session)
		if err := uc.def.OnLaunch(ctx, req, session, resp); err != nil {
			return nil, wrapHandlerErr(StageLaunch, err)
		}
		return emitted(StageLaunch, resp)

	case alexa.RequestTypeIntent:
		if req.Intent != nil {
			uc.l.Debugf(ctx, "%s: dispatch intent = %s", LogPrefixDispatch, req.Intent.Name)
		}
		resp := alexa.NewResponseBuilder(session)
		if err := uc.def.OnIntent(ctx, req, session, resp); err != nil {
			return nil, wrapHandlerErr(StageIntent, err)
		}
		return emitted(StageIntent, resp)

	case alexa.RequestTypeSessionEnded:
		if err := uc.def.OnSessionEnded(ctx, req, session); err != nil {
			return nil, wrapHandlerErr(StageSessionEnded, err)
		}
		return nil, nil

	default:
		return nil, fmt.Errorf("%w: %q", skill.ErrUnsupportedRequestType, req.Type)
	}
}

func emitted(stage string, resp *alexa.ResponseBuilder) (*alexa.Envelope, error) {
	env, ok := resp.Envelope()
	if !ok {
		return nil, fmt.Errorf("%s: %w", stage, skill.ErrNoResponse)
	}
	return env, nil
}

// wrapHandlerErr leaves framework errors as they are and wraps anything
// raised by skill code in a HandlerError.
func wrapHandlerErr(stage string, err error) error {
	var herr *skill.HandlerError
	switch {
	case errors.As(err, &herr),
		errors.Is(err, skill.ErrUnimplementedHook),
		errors.Is(err, skill.ErrUnsupportedIntent),
		errors.Is(err, skill.ErrInvalidEvent):
		return err
	default:
		return &skill.HandlerError{Stage: stage, Err: err}
	}
}
