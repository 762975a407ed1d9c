package kitchen

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate     = errors.New("invalid calendar date")
	ErrUnknownMealKind = errors.New("unknown meal kind")
	ErrMealFull        = errors.New("meal has reached its sophomore limit")
)

type MealKind string

const (
	KindBrunch MealKind = "brunch"
	KindLunch  MealKind = "lunch"
	KindDinner MealKind = "dinner"
)

func ParseMealKind(s string) (MealKind, error) {
	switch MealKind(s) {
	case KindBrunch, KindLunch, KindDinner:
		return MealKind(s), nil
	}
	return "", ErrUnknownMealKind
}

func (k MealKind) Label() string {
	switch k {
	case KindBrunch:
		return "Brunch"
	case KindLunch:
		return "Lunch"
	case KindDinner:
		return "Dinner"
	}
	return string(k)
}

// MealSnapshot is a read-only view of one dining event as loaded from
// storage. At most one meal of a given kind exists per day.
type MealSnapshot struct {
	ID             uuid.UUID
	Day            time.Time
	Kind           MealKind
	SophomoreLimit int
	Menu           string
}

// MealAttendance augments a snapshot with the attendance counts the
// eligibility rules operate on. SophomoreCount is the number of entries whose
// person is in the current sophomore class; Attending counts every entry.
type MealAttendance struct {
	MealSnapshot
	SophomoreCount int
	Attending      int
}

// Eligible reports whether one more signup is admitted for the meal. The cap
// applies to the sophomore headcount only and does not inspect the signing-up
// person at all (the requester's own class year is irrelevant).
func Eligible(m MealAttendance) bool {
	return m.SophomoreCount < m.SophomoreLimit
}

// Entry records one confirmed signup.
type Entry struct {
	ID        uuid.UUID
	MealID    uuid.UUID
	PersonID  uuid.UUID
	CreatedAt time.Time
}

func NewEntry(mealID, personID uuid.UUID, now time.Time) Entry {
	return Entry{
		ID:        uuid.New(),
		MealID:    mealID,
		PersonID:  personID,
		CreatedAt: now,
	}
}

// NewDate composes a calendar date from integer parts, rejecting
// combinations that do not name a real day (month 13, Feb 30, ...).
func NewDate(year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, ErrInvalidDate
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// SophomoreClassYear maps an instant to the graduation year of the students
// who are sophomores at that time. The academic year rolls over in July:
// in fall 2025 and spring 2026 the sophomore class is 2028.
func SophomoreClassYear(now time.Time) int {
	base := now.Year()
	if now.Month() < time.July {
		base--
	}
	return base + 3
}
