package usecase

import (
	"voice-skill/internal/skill"
	"voice-skill/pkg/log"
)

// implUseCase is the private implementation of skill.UseCase.
type implUseCase struct {
	def skill.Definition
	l   log.Logger
}

var _ skill.UseCase = (*implUseCase)(nil)

// New creates the event router for def. Nil hooks are replaced by defaults
// here so dispatch never has to check for them.
func New(def skill.Definition, l log.Logger) (*implUseCase, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	if def.Intents == nil {
		def.Intents = skill.IntentHandlers{}
	}
	if def.OnSessionStarted == nil {
		def.OnSessionStarted = defaultOnSessionStarted
	}
	if def.OnLaunch == nil {
		def.OnLaunch = defaultOnLaunch
	}
	if def.OnIntent == nil {
		def.OnIntent = def.Intents.Dispatch
	}
	if def.OnSessionEnded == nil {
		def.OnSessionEnded = defaultOnSessionEnded
	}

	return &implUseCase{
		def: def,
		l:   l,
	}, nil
}
