package scalehelper

import (
	"voice-skill/internal/skill"
	"voice-skill/pkg/log"
)

type scaleHelper struct {
	l       log.Logger
	catalog Catalog
}

// New returns the Scale Helper skill definition.
func New(l log.Logger, app skill.ApplicationCheck, catalog Catalog) skill.Definition {
	h := &scaleHelper{
		l:       l,
		catalog: catalog,
	}

	return skill.Definition{
		Name:             "Scale Helper",
		Application:      app,
		OnSessionStarted: h.onSessionStarted,
		OnLaunch:         h.onLaunch,
		OnSessionEnded:   h.onSessionEnded,
		Intents: skill.IntentHandlers{
			IntentGetScale: h.getScale,
			IntentStop:     h.stop,
			IntentCancel:   h.cancel,
			IntentHelp:     h.help,
		},
	}
}
