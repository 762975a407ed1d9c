package api

import (
	"net/http"

	resdto "club-portal/internal/handler/dto/response"
	"club-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventUseCase usecase.EventUseCase
}

func NewEventHandler(eventUseCase usecase.EventUseCase) *EventHandler {
	return &EventHandler{
		eventUseCase: eventUseCase,
	}
}

// @Summary Upcoming events
// @Tags events
// @Produce json
// @Success 200 {array} resdto.EventResponse
// @Router /events [get]
func (h *EventHandler) UpcomingEvents(c *gin.Context) {
	events, err := h.eventUseCase.UpcomingEvents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.EventResponse, len(events))
	for i, rm := range events {
		response[i] = resdto.FromEvent(rm)
	}
	c.JSON(http.StatusOK, response)
}
