package http

import (
	"github.com/gin-gonic/gin"

	"air-cargo-assistant/pkg/response"
)

// Converse godoc
// @Summary     Hold one conversation turn
// @Description Interprets the user message against the accumulated state and returns the assistant reply plus the updated state to echo back on the next turn.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body converseReq true "User message plus the state returned by the previous turn"
// @Success     200 {object} converseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversation [POST]
func (h *handler) Converse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConverseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Converse(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Converse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newConverseResp(output))
}
