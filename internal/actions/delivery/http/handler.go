package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"workspace-agent/internal/actions"
	"workspace-agent/pkg/response"
)

// HandleAction godoc
// @Summary     Dispatch an action
// @Description Routes a named function with flat parameters to a Gmail/Calendar operation and returns the text result envelope.
// @Tags        Actions
// @Accept      json
// @Produce     json
// @Param       body body actions.Request true "Action invocation"
// @Success     200 {object} actions.Response
// @Failure     500 {object} actions.ErrorResponse
// @Router      /agent/actions [POST]
func (h *handler) HandleAction(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "actions handler: %v", err)
		response.Forbidden(c)
		return
	}
	if err := h.security.CheckRateLimit(extractSource(c)); err != nil {
		h.l.Warnf(ctx, "actions handler: %v", err)
		c.JSON(http.StatusTooManyRequests, actions.ErrorResponse{
			StatusCode: http.StatusTooManyRequests,
			Body:       fmt.Sprintf("Error: %v", err),
		})
		return
	}

	var req actions.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "actions handler: failed to parse request: %v", err)
		c.JSON(http.StatusInternalServerError, actions.ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       fmt.Sprintf("Error: %v", err),
		})
		return
	}

	resp, err := h.d.Dispatch(ctx, req)
	if err != nil {
		// Parameter parsing failed before the operation ran; operation
		// failures are already rendered as text lines inside the envelope.
		c.JSON(http.StatusInternalServerError, actions.ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Body:       fmt.Sprintf("Error: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func extractSource(c *gin.Context) string {
	return c.ClientIP()
}
