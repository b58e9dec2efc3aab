package scalehelper

import (
	"context"
	"fmt"
	"strings"

	"voice-skill/pkg/alexa"
)

func (h *scaleHelper) onSessionStarted(ctx context.Context, req *alexa.Request, session *alexa.Session) error {
	h.l.Infof(ctx, "%s: session started: requestId=%s sessionId=%s", LogPrefix, req.RequestID, session.SessionID)
	return nil
}

func (h *scaleHelper) onSessionEnded(ctx context.Context, req *alexa.Request, session *alexa.Session) error {
	h.l.Infof(ctx, "%s: session ended: sessionId=%s reason=%s", LogPrefix, session.SessionID, req.Reason)
	return nil
}

func (h *scaleHelper) onLaunch(ctx context.Context, req *alexa.Request, session *alexa.Session, resp *alexa.ResponseBuilder) error {
	// Re-prompted when the user says nothing or something not understood.
	resp.Ask(alexa.PlainText(SpeechWelcome), alexa.PlainText(SpeechWelcomeReprompt))
	return nil
}

func (h *scaleHelper) getScale(ctx context.Context, intent alexa.Intent, session *alexa.Session, resp *alexa.ResponseBuilder) error {
	scaleName, hasScale := intent.SlotValue(SlotScale)
	patternName, hasPattern := intent.SlotValue(SlotPattern)

	lookup := strings.ToLower(scaleName + " " + patternName)

	if hasScale && hasPattern {
		if notes, ok := h.catalog.Notes(lookup); ok {
			resp.TellWithCard(
				alexa.Speech{Type: alexa.SpeechTypePlainText, Speech: fmt.Sprintf(SpeechNotesFormat, notes)},
				fmt.Sprintf(CardTitleFormat, lookup),
				cardNotes(notes),
			)
			return nil
		}
	}

	speech := SpeechNotUnderstood
	if hasScale && hasPattern {
		h.l.Infof(ctx, "%s: no notes for %q", LogPrefix, lookup)
		speech = fmt.Sprintf(SpeechUnknownFormat, lookup)
	}

	resp.Ask(
		alexa.Speech{Type: alexa.SpeechTypePlainText, Speech: speech},
		alexa.Speech{Type: alexa.SpeechTypePlainText, Speech: SpeechNameAScale},
	)
	return nil
}

func (h *scaleHelper) stop(ctx context.Context, intent alexa.Intent, session *alexa.Session, resp *alexa.ResponseBuilder) error {
	resp.Tell(alexa.PlainText(SpeechStop))
	return nil
}

func (h *scaleHelper) cancel(ctx context.Context, intent alexa.Intent, session *alexa.Session, resp *alexa.ResponseBuilder) error {
	resp.Tell(alexa.PlainText(SpeechCancel))
	return nil
}

func (h *scaleHelper) help(ctx context.Context, intent alexa.Intent, session *alexa.Session, resp *alexa.ResponseBuilder) error {
	resp.Ask(
		alexa.Speech{Type: alexa.SpeechTypePlainText, Speech: SpeechHelp},
		alexa.Speech{Type: alexa.SpeechTypePlainText, Speech: SpeechHelpReprompt},
	)
	return nil
}
