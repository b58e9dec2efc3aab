package usecase

import (
	"context"

	"voice-skill/internal/skill"
	"voice-skill/pkg/alexa"
)

func defaultOnSessionStarted(ctx context.Context, req *alexa.Request, session *alexa.Session) error {
	return nil
}

func defaultOnLaunch(ctx context.Context, req *alexa.Request, session *alexa.Session, resp *alexa.ResponseBuilder) error {
	return skill.ErrUnimplementedHook
}

func defaultOnSessionEnded(ctx context.Context, req *alexa.Request, session *alexa.Session) error {
	return nil
}
