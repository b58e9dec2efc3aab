package http

import (
	"github.com/gin-gonic/gin"

	"voice-skill/internal/skill"
	"voice-skill/pkg/log"
)

// Handler is the public interface for the skill HTTP delivery layer.
type Handler interface {
	HandleEvent(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc skill.UseCase
}

// New creates a new HTTP handler serving skill events.
func New(l log.Logger, uc skill.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
