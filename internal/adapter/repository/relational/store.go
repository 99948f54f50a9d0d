// Package relational implements the Store contract on database/sql.
// The bind style ($1, $2, ...) and the ON CONFLICT upserts work on both
// supported drivers, postgres (lib/pq) and sqlite (modernc), so one
// codebase serves both engines.
package relational

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hallgrim/bokat/internal/core/domain"
	"github.com/hallgrim/bokat/internal/core/ports"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateBooking(ctx context.Context, id, title, description, location string) error {
	query := `
	INSERT INTO bookings (booking_id, next_occasion, title, time_created, description, location)
	VALUES ($1, 0, $2, $3, $4, $5)
	`

	created := time.Now().UTC().Truncate(time.Second).Format(domain.TimeLayout)

	_, err := s.db.ExecContext(ctx, query, id, title, created, description, location)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

func (s *Store) UpdateBooking(ctx context.Context, id string, patch ports.BookingPatch) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	set := func(column string, value *string) error {
		if value == nil {
			return nil
		}
		query := fmt.Sprintf(`UPDATE bookings SET %s = $1 WHERE booking_id = $2`, column)
		result, err := tx.ExecContext(ctx, query, *value, id)
		if err != nil {
			return err
		}
		n, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
		}
		return nil
	}

	if err := set("title", patch.Title); err != nil {
		return err
	}
	if err := set("description", patch.Description); err != nil {
		return err
	}
	if err := set("location", patch.Location); err != nil {
		return err
	}

	if patch.Title == nil && patch.Description == nil && patch.Location == nil {
		// Nothing to change, but the contract still reports unknown ids.
		var one int
		err := tx.QueryRowContext(ctx, `SELECT 1 FROM bookings WHERE booking_id = $1`, id).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
		}
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetBooking(ctx context.Context, id string) (*domain.BookingSession, error) {
	query := `
	SELECT booking_id, next_occasion, title, time_created, description, location
	FROM bookings
	WHERE booking_id = $1
	`

	b, err := scanBooking(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Store) ListBookings(ctx context.Context) ([]domain.BookingSession, error) {
	query := `
	SELECT booking_id, next_occasion, title, time_created, description, location
	FROM bookings
	ORDER BY time_created DESC, booking_id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var bookings []domain.BookingSession
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, *b)
	}

	return bookings, rows.Err()
}

// NextOccasion relies on a single UPDATE ... RETURNING statement for the
// read-then-increment, so two concurrent calls can never observe the
// same counter value.
func (s *Store) NextOccasion(ctx context.Context, id string) (int, error) {
	query := `
	UPDATE bookings
	SET next_occasion = next_occasion + 1
	WHERE booking_id = $1
	RETURNING next_occasion
	`

	var incremented int
	err := s.db.QueryRowContext(ctx, query, id).Scan(&incremented)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return 0, err
	}

	return incremented - 1, nil
}

func (s *Store) AppendOccasion(ctx context.Context, occ domain.Occasion) error {
	query := `
	INSERT INTO occasions (booking_id, occasion, date, time_start, time_end)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (booking_id, occasion) DO UPDATE
	SET date = excluded.date, time_start = excluded.time_start, time_end = excluded.time_end
	`

	_, err := s.db.ExecContext(ctx, query, occ.BookingID, occ.Occasion, occ.Date, occ.TimeStart, occ.TimeEnd)
	if err != nil {
		return fmt.Errorf("failed to append occasion %d: %w", occ.Occasion, err)
	}

	return nil
}

func (s *Store) GetOccasions(ctx context.Context, id string) ([]domain.Occasion, error) {
	query := `
	SELECT booking_id, occasion, date, time_start, time_end
	FROM occasions
	WHERE booking_id = $1
	ORDER BY occasion
	`

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var occasions []domain.Occasion
	for rows.Next() {
		var occ domain.Occasion
		if err := rows.Scan(&occ.BookingID, &occ.Occasion, &occ.Date, &occ.TimeStart, &occ.TimeEnd); err != nil {
			return nil, err
		}

		occasions = append(occasions, occ)
	}

	return occasions, rows.Err()
}

// AppendAnswer upserts by natural key. The pos column records booking-wide
// insertion order so that respondent columns keep their first-seen order;
// an update leaves pos untouched.
func (s *Store) AppendAnswer(ctx context.Context, ans domain.Answer) error {
	query := `
	INSERT INTO answers (booking_id, occasion, name, answer, pos)
	SELECT $1, $2, $3, $4, COALESCE(MAX(pos), -1) + 1
	FROM answers
	WHERE booking_id = $1
	ON CONFLICT (booking_id, occasion, name) DO UPDATE
	SET answer = excluded.answer
	`

	_, err := s.db.ExecContext(ctx, query, ans.BookingID, ans.Occasion, ans.Name, int(ans.Answer))
	if err != nil {
		return fmt.Errorf("failed to append answer: %w", err)
	}

	return nil
}

func (s *Store) UpdateAnswer(ctx context.Context, ans domain.Answer) error {
	query := `
	UPDATE answers
	SET answer = $1
	WHERE booking_id = $2 AND occasion = $3 AND name = $4
	`

	result, err := s.db.ExecContext(ctx, query, int(ans.Answer), ans.BookingID, ans.Occasion, ans.Name)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return fmt.Errorf("answer %s/%d/%s: %w", ans.BookingID, ans.Occasion, ans.Name, domain.ErrNotFound)
	}

	return nil
}

func (s *Store) GetAnswers(ctx context.Context, id string) ([]domain.Answer, error) {
	query := `
	SELECT booking_id, occasion, name, answer
	FROM answers
	WHERE booking_id = $1
	ORDER BY pos
	`

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var answers []domain.Answer
	for rows.Next() {
		var ans domain.Answer
		var value int
		if err := rows.Scan(&ans.BookingID, &ans.Occasion, &ans.Name, &value); err != nil {
			return nil, err
		}

		ans.Answer = domain.AnswerValue(value)
		answers = append(answers, ans)
	}

	return answers, rows.Err()
}

func (s *Store) AppendComment(ctx context.Context, c domain.Comment) error {
	// Comments have no surrogate key; the full row is the natural key,
	// so re-appending an identical comment must stay a no-op.
	query := `
	INSERT INTO comments (booking_id, time_created, name, comment)
	SELECT $1, $2, $3, $4
	WHERE NOT EXISTS (
		SELECT 1 FROM comments
		WHERE booking_id = $1 AND time_created = $2 AND name = $3 AND comment = $4
	)
	`

	created := c.TimeCreated.UTC().Truncate(time.Second).Format(domain.TimeLayout)

	_, err := s.db.ExecContext(ctx, query, c.BookingID, created, c.Name, c.Comment)
	if err != nil {
		return fmt.Errorf("failed to append comment: %w", err)
	}

	return nil
}

func (s *Store) GetComments(ctx context.Context, id string) ([]domain.Comment, error) {
	query := `
	SELECT booking_id, time_created, name, comment
	FROM comments
	WHERE booking_id = $1
	ORDER BY time_created
	`

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		var created string
		if err := rows.Scan(&c.BookingID, &created, &c.Name, &c.Comment); err != nil {
			return nil, err
		}

		c.TimeCreated, err = time.Parse(domain.TimeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("malformed comment timestamp %q: %w", created, err)
		}

		comments = append(comments, c)
	}

	return comments, rows.Err()
}

func (s *Store) GetActive(ctx context.Context, id string) (bool, error) {
	query := `SELECT is_active FROM active WHERE booking_id = $1`

	var active bool
	err := s.db.QueryRowContext(ctx, query, id).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) {
		// No explicit record means the booking is active.
		return true, nil
	}
	if err != nil {
		return false, err
	}

	return active, nil
}

func (s *Store) SetActive(ctx context.Context, id string, active bool) error {
	query := `
	INSERT INTO active (booking_id, is_active)
	VALUES ($1, $2)
	ON CONFLICT (booking_id) DO UPDATE
	SET is_active = excluded.is_active
	`

	_, err := s.db.ExecContext(ctx, query, id, active)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.BookingSession, error) {
	var b domain.BookingSession
	var created string

	err := row.Scan(&b.ID, &b.NextOccasion, &b.Title, &created, &b.Description, &b.Location)
	if err != nil {
		return nil, err
	}

	b.TimeCreated, err = time.Parse(domain.TimeLayout, created)
	if err != nil {
		return nil, fmt.Errorf("malformed booking timestamp %q: %w", created, err)
	}

	return &b, nil
}
