package domain

import "time"

// TimeLayout is how creation instants are persisted: ISO-8601 UTC, whole seconds.
const TimeLayout = "2006-01-02T15:04:05Z"

type AnswerValue int

const (
	AnswerNo    AnswerValue = 0
	AnswerYes   AnswerValue = 1
	AnswerMaybe AnswerValue = 2
)

func (v AnswerValue) Valid() bool {
	return v == AnswerNo || v == AnswerYes || v == AnswerMaybe
}

type BookingSession struct {
	ID           string
	NextOccasion int
	Title        string
	TimeCreated  time.Time
	Description  string
	Location     string
}

// Occasion is one candidate date/time window of a booking. The sequence
// number is assigned at creation and is the join key for answers; it is
// never reused or renumbered, and it does not follow display order.
type Occasion struct {
	BookingID string
	Occasion  int
	Date      string // YYYY-MM-DD
	TimeStart string // HH:MM
	TimeEnd   string // HH:MM
}

type Answer struct {
	BookingID string
	Occasion  int
	Name      string
	Answer    AnswerValue
}

// Comment is append-only. Name is free text and may be blank.
type Comment struct {
	BookingID   string
	TimeCreated time.Time
	Name        string
	Comment     string
}
