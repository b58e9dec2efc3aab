package http

import (
	"github.com/gin-gonic/gin"

	"voice-skill/pkg/response"
)

// HandleEvent godoc
// @Summary     Dispatch a skill event
// @Description Validates a voice-assistant event, routes it to the skill and returns the speech envelope.
// @Tags        Skill
// @Accept      json
// @Produce     json
// @Param       body body alexa.Event true "Inbound event"
// @Success     200  {object} alexa.Envelope
// @Failure     400  {object} response.Resp "Invalid event or unsupported intent"
// @Failure     401  {object} response.Resp "Application id mismatch"
// @Failure     500  {object} response.Resp "Handler error"
// @Router      /skill [POST]
func (h *handler) HandleEvent(c *gin.Context) {
	ctx := c.Request.Context()

	event, err := h.processEventReq(c)
	if err != nil {
		h.l.Warnf(ctx, "skill.delivery.http.HandleEvent: bad event body: %v", err)
		response.Error(c, err, nil)
		return
	}

	h.uc.Execute(ctx, &event, &completion{c: c, h: h})
}
