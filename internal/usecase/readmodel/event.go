package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type EventRM struct {
	ID       uuid.UUID
	Title    string
	Snippet  string
	StartsAt time.Time
	EndsAt   time.Time
}
