package relational

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/hallgrim/bokat/internal/core/domain"
	"github.com/hallgrim/bokat/internal/core/ports"
)

func newTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// One connection, or every query would see its own empty memory db.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, CreateSchema(db))

	return NewStore(db), db
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestBookingRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateBooking(ctx, "b1", "Standup", "daily", "office"))

	b, err := store.GetBooking(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Standup", b.Title)
	assert.Equal(t, 0, b.NextOccasion)
	assert.Equal(t, time.UTC, b.TimeCreated.Location())

	_, err = store.GetBooking(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateBooking_Partial(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateBooking(ctx, "b1", "Old", "desc", "loc"))

	location := "elsewhere"
	require.NoError(t, store.UpdateBooking(ctx, "b1", ports.BookingPatch{Location: &location}))

	b, err := store.GetBooking(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Old", b.Title)
	assert.Equal(t, "elsewhere", b.Location)

	err = store.UpdateBooking(ctx, "nope", ports.BookingPatch{Location: &location})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Empty patch still reports unknown ids.
	err = store.UpdateBooking(ctx, "nope", ports.BookingPatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNextOccasion_Sequential(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateBooking(ctx, "b1", "t", "", ""))

	first, err := store.NextOccasion(ctx, "b1")
	require.NoError(t, err)
	second, err := store.NextOccasion(ctx, "b1")
	require.NoError(t, err)

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	b, err := store.GetBooking(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, 2, b.NextOccasion)

	_, err = store.NextOccasion(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAppendOccasion_Idempotent(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateBooking(ctx, "b1", "t", "", ""))

	occ := domain.Occasion{BookingID: "b1", Occasion: 0, Date: "2024-01-01", TimeStart: "09:00", TimeEnd: "10:00"}
	require.NoError(t, store.AppendOccasion(ctx, occ))
	require.NoError(t, store.AppendOccasion(ctx, occ))

	assert.Equal(t, 1, countRows(t, db, "occasions"))
}

func TestAppendAnswer_UpsertByNaturalKey(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateBooking(ctx, "b1", "t", "", ""))

	ans := domain.Answer{BookingID: "b1", Occasion: 0, Name: "Alice", Answer: domain.AnswerNo}
	require.NoError(t, store.AppendAnswer(ctx, ans))

	ans.Answer = domain.AnswerYes
	require.NoError(t, store.AppendAnswer(ctx, ans))

	assert.Equal(t, 1, countRows(t, db, "answers"))

	answers, err := store.GetAnswers(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, domain.AnswerYes, answers[0].Answer)
}

func TestAnswers_FirstSeenOrderSurvivesEdits(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateBooking(ctx, "b1", "t", "", ""))

	require.NoError(t, store.AppendAnswer(ctx, domain.Answer{BookingID: "b1", Occasion: 0, Name: "Östen", Answer: domain.AnswerYes}))
	require.NoError(t, store.AppendAnswer(ctx, domain.Answer{BookingID: "b1", Occasion: 0, Name: "Alice", Answer: domain.AnswerNo}))
	require.NoError(t, store.AppendAnswer(ctx, domain.Answer{BookingID: "b1", Occasion: 1, Name: "Östen", Answer: domain.AnswerMaybe}))
	require.NoError(t, store.AppendAnswer(ctx, domain.Answer{BookingID: "b1", Occasion: 0, Name: "Östen", Answer: domain.AnswerMaybe}))

	answers, err := store.GetAnswers(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, answers, 3)
	assert.Equal(t, "Östen", answers[0].Name)
	assert.Equal(t, "Alice", answers[1].Name)
	assert.Equal(t, "Östen", answers[2].Name)
}

func TestUpdateAnswer_MissingRow(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	err := store.UpdateAnswer(ctx, domain.Answer{BookingID: "b1", Occasion: 0, Name: "Alice", Answer: domain.AnswerYes})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComments_SortedAndIdempotent(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateBooking(ctx, "b1", "t", "", ""))

	later := domain.Comment{BookingID: "b1", TimeCreated: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), Name: "Alice", Comment: "works"}
	earlier := domain.Comment{BookingID: "b1", TimeCreated: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), Name: "", Comment: "anon"}

	require.NoError(t, store.AppendComment(ctx, later))
	require.NoError(t, store.AppendComment(ctx, earlier))
	require.NoError(t, store.AppendComment(ctx, later))

	assert.Equal(t, 2, countRows(t, db, "comments"))

	comments, err := store.GetComments(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "anon", comments[0].Comment)
}

func TestActive_DefaultsTrue(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	active, err := store.GetActive(ctx, "b1")
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, store.SetActive(ctx, "b1", false))
	require.NoError(t, store.SetActive(ctx, "b1", false))

	active, err = store.GetActive(ctx, "b1")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestListBookings_NewestFirst(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	_, err := db.Exec(`
		INSERT INTO bookings (booking_id, next_occasion, title, time_created, description, location)
		VALUES ('old', 0, 'Old', '2024-01-01T10:00:00Z', '', ''),
		       ('new', 0, 'New', '2024-02-01T10:00:00Z', '', '')
	`)
	require.NoError(t, err)

	bookings, err := store.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "new", bookings[0].ID)
	assert.Equal(t, "old", bookings[1].ID)
}
