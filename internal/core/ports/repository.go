package ports

import (
	"context"

	"github.com/hallgrim/bokat/internal/core/domain"
)

// BookingPatch is a partial update of booking metadata. Nil fields are
// left untouched.
type BookingPatch struct {
	Title       *string
	Description *string
	Location    *string
}

// Store is the backend-agnostic contract for the four record kinds plus
// the per-booking active flag. Both the relational and the flat-file
// backends implement it; only one is live per process.
//
// Append methods are idempotent by natural key: re-appending an unchanged
// row is a no-op, appending a changed row supersedes the old version.
type Store interface {
	CreateBooking(ctx context.Context, id, title, description, location string) error
	UpdateBooking(ctx context.Context, id string, patch BookingPatch) error
	GetBooking(ctx context.Context, id string) (*domain.BookingSession, error)
	ListBookings(ctx context.Context) ([]domain.BookingSession, error)

	// NextOccasion returns the booking's current counter value and
	// increments the stored counter, atomically with respect to
	// concurrent calls for the same booking.
	NextOccasion(ctx context.Context, id string) (int, error)

	AppendOccasion(ctx context.Context, occ domain.Occasion) error
	GetOccasions(ctx context.Context, id string) ([]domain.Occasion, error)

	AppendAnswer(ctx context.Context, ans domain.Answer) error
	UpdateAnswer(ctx context.Context, ans domain.Answer) error
	GetAnswers(ctx context.Context, id string) ([]domain.Answer, error)

	AppendComment(ctx context.Context, c domain.Comment) error
	GetComments(ctx context.Context, id string) ([]domain.Comment, error)

	GetActive(ctx context.Context, id string) (bool, error)
	SetActive(ctx context.Context, id string, active bool) error
}
