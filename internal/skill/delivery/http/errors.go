package http

import (
	"github.com/gin-gonic/gin"

	"voice-skill/internal/skill"
	"voice-skill/pkg/response"
)

// mapError translates dispatch errors into HTTP errors.
func (h *handler) mapError(c *gin.Context, err error) {
	switch skill.KindOf(err) {
	case skill.KindAuthorization:
		response.Unauthorized(c)
	case skill.KindInvalidEvent, skill.KindUnsupportedIntent:
		response.Error(c, err, map[string]interface{}{"kind": skill.KindOf(err).String()})
	default:
		response.InternalError(c, err)
	}
}
