package http

import (
	"github.com/gin-gonic/gin"

	"voice-skill/pkg/alexa"
)

// processEventReq binds the inbound event body.
func (h *handler) processEventReq(c *gin.Context) (alexa.Event, error) {
	var event alexa.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		return event, err
	}
	return event, nil
}
