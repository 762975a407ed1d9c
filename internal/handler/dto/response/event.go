package response

import (
	"time"

	"club-portal/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type EventResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Snippet  string    `json:"snippet,omitempty"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

func FromEvent(rm *readmodel.EventRM) *EventResponse {
	return &EventResponse{
		ID:       rm.ID,
		Title:    rm.Title,
		Snippet:  rm.Snippet,
		StartsAt: rm.StartsAt,
		EndsAt:   rm.EndsAt,
	}
}
