package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voice-skill/pkg/alexa"
)

// completion adapts a gin request to the skill.Completion host channel.
type completion struct {
	c *gin.Context
	h *handler
}

// Succeed writes the envelope as-is. Session-ended requests carry no
// envelope and get an empty 200.
func (r *completion) Succeed(env *alexa.Envelope) {
	if env == nil {
		r.c.Status(http.StatusOK)
		return
	}
	r.c.JSON(http.StatusOK, env)
}

// Fail maps the dispatch error onto an HTTP error response.
func (r *completion) Fail(err error) {
	r.h.mapError(r.c, err)
}
