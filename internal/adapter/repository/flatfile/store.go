// Package flatfile implements the Store contract on append-only CSV
// table files, one per record kind, under a single data directory.
//
// Every write is a read-merge-rewrite of one whole table file, guarded
// by an in-process mutex per table. There is no cross-process lock:
// concurrent writers from separate processes can lose updates to the
// same table, which the deployment accepts for single-process use.
package flatfile

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/hallgrim/bokat/internal/core/domain"
	"github.com/hallgrim/bokat/internal/core/ports"
)

type Store struct {
	bookings  table
	occasions table
	answers   table
	comments  table
	active    table

	muBookings  sync.Mutex
	muOccasions sync.Mutex
	muAnswers   sync.Mutex
	muComments  sync.Mutex
	muActive    sync.Mutex
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	return &Store{
		bookings: table{
			path:   dir + "/bookings.csv",
			header: []string{"booking_id", "next_occasion", "title", "time_created", "description", "location"},
			keyLen: 1,
		},
		occasions: table{
			path:   dir + "/occasions.csv",
			header: []string{"booking_id", "occasion", "date", "time_start", "time_end"},
			keyLen: 2,
		},
		answers: table{
			path:   dir + "/answers.csv",
			header: []string{"booking_id", "occasion", "name", "answer"},
			keyLen: 3,
		},
		comments: table{
			path:   dir + "/comments.csv",
			header: []string{"booking_id", "time_created", "name", "comment"},
			keyLen: 4,
		},
		active: table{
			path:   dir + "/active.csv",
			header: []string{"booking_id", "is_active"},
			keyLen: 1,
		},
	}, nil
}

func (s *Store) CreateBooking(ctx context.Context, id, title, description, location string) error {
	s.muBookings.Lock()
	defer s.muBookings.Unlock()

	rows, err := s.bookings.load()
	if err != nil {
		return err
	}

	created := time.Now().UTC().Truncate(time.Second).Format(domain.TimeLayout)
	row := []string{id, "0", title, created, description, location}

	return s.bookings.write(s.bookings.merge(rows, row))
}

func (s *Store) UpdateBooking(ctx context.Context, id string, patch ports.BookingPatch) error {
	s.muBookings.Lock()
	defer s.muBookings.Unlock()

	rows, err := s.bookings.load()
	if err != nil {
		return err
	}

	for _, row := range rows {
		if row[0] != id {
			continue
		}
		if patch.Title != nil {
			row[2] = *patch.Title
		}
		if patch.Description != nil {
			row[4] = *patch.Description
		}
		if patch.Location != nil {
			row[5] = *patch.Location
		}
		return s.bookings.write(rows)
	}

	return fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
}

func (s *Store) GetBooking(ctx context.Context, id string) (*domain.BookingSession, error) {
	s.muBookings.Lock()
	defer s.muBookings.Unlock()

	rows, err := s.bookings.load()
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row[0] == id {
			return parseBooking(row)
		}
	}

	return nil, fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
}

func (s *Store) ListBookings(ctx context.Context) ([]domain.BookingSession, error) {
	s.muBookings.Lock()
	defer s.muBookings.Unlock()

	rows, err := s.bookings.load()
	if err != nil {
		return nil, err
	}

	var bookings []domain.BookingSession
	for _, row := range rows {
		b, err := parseBooking(row)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		if !bookings[i].TimeCreated.Equal(bookings[j].TimeCreated) {
			return bookings[i].TimeCreated.After(bookings[j].TimeCreated)
		}
		return bookings[i].ID < bookings[j].ID
	})

	return bookings, nil
}

// NextOccasion holds the bookings table lock across the whole
// read-increment-rewrite, so two concurrent calls for the same booking
// can never hand out the same sequence number.
func (s *Store) NextOccasion(ctx context.Context, id string) (int, error) {
	s.muBookings.Lock()
	defer s.muBookings.Unlock()

	rows, err := s.bookings.load()
	if err != nil {
		return 0, err
	}

	for _, row := range rows {
		if row[0] != id {
			continue
		}

		current, err := strconv.Atoi(row[1])
		if err != nil {
			return 0, fmt.Errorf("malformed next_occasion %q for booking %s: %w", row[1], id, err)
		}

		row[1] = strconv.Itoa(current + 1)
		if err := s.bookings.write(rows); err != nil {
			return 0, err
		}

		return current, nil
	}

	return 0, fmt.Errorf("booking %s: %w", id, domain.ErrNotFound)
}

func (s *Store) AppendOccasion(ctx context.Context, occ domain.Occasion) error {
	s.muOccasions.Lock()
	defer s.muOccasions.Unlock()

	rows, err := s.occasions.load()
	if err != nil {
		return err
	}

	row := []string{occ.BookingID, strconv.Itoa(occ.Occasion), occ.Date, occ.TimeStart, occ.TimeEnd}

	return s.occasions.write(s.occasions.merge(rows, row))
}

func (s *Store) GetOccasions(ctx context.Context, id string) ([]domain.Occasion, error) {
	s.muOccasions.Lock()
	defer s.muOccasions.Unlock()

	rows, err := s.occasions.load()
	if err != nil {
		return nil, err
	}

	var occasions []domain.Occasion
	for _, row := range rows {
		if row[0] != id {
			continue
		}

		seq, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("malformed occasion number %q: %w", row[1], err)
		}

		occasions = append(occasions, domain.Occasion{
			BookingID: row[0],
			Occasion:  seq,
			Date:      row[2],
			TimeStart: row[3],
			TimeEnd:   row[4],
		})
	}

	sort.Slice(occasions, func(i, j int) bool { return occasions[i].Occasion < occasions[j].Occasion })

	return occasions, nil
}

func (s *Store) AppendAnswer(ctx context.Context, ans domain.Answer) error {
	s.muAnswers.Lock()
	defer s.muAnswers.Unlock()

	rows, err := s.answers.load()
	if err != nil {
		return err
	}

	row := []string{ans.BookingID, strconv.Itoa(ans.Occasion), ans.Name, strconv.Itoa(int(ans.Answer))}

	return s.answers.write(s.answers.merge(rows, row))
}

func (s *Store) UpdateAnswer(ctx context.Context, ans domain.Answer) error {
	s.muAnswers.Lock()
	defer s.muAnswers.Unlock()

	rows, err := s.answers.load()
	if err != nil {
		return err
	}

	seq := strconv.Itoa(ans.Occasion)
	for _, row := range rows {
		if row[0] == ans.BookingID && row[1] == seq && row[2] == ans.Name {
			row[3] = strconv.Itoa(int(ans.Answer))
			return s.answers.write(rows)
		}
	}

	return fmt.Errorf("answer %s/%d/%s: %w", ans.BookingID, ans.Occasion, ans.Name, domain.ErrNotFound)
}

func (s *Store) GetAnswers(ctx context.Context, id string) ([]domain.Answer, error) {
	s.muAnswers.Lock()
	defer s.muAnswers.Unlock()

	rows, err := s.answers.load()
	if err != nil {
		return nil, err
	}

	var answers []domain.Answer
	for _, row := range rows {
		if row[0] != id {
			continue
		}

		seq, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("malformed occasion number %q: %w", row[1], err)
		}

		value, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("malformed answer value %q: %w", row[3], err)
		}

		answers = append(answers, domain.Answer{
			BookingID: row[0],
			Occasion:  seq,
			Name:      row[2],
			Answer:    domain.AnswerValue(value),
		})
	}

	return answers, nil
}

func (s *Store) AppendComment(ctx context.Context, c domain.Comment) error {
	s.muComments.Lock()
	defer s.muComments.Unlock()

	rows, err := s.comments.load()
	if err != nil {
		return err
	}

	created := c.TimeCreated.UTC().Truncate(time.Second).Format(domain.TimeLayout)
	row := []string{c.BookingID, created, c.Name, c.Comment}

	return s.comments.write(s.comments.merge(rows, row))
}

func (s *Store) GetComments(ctx context.Context, id string) ([]domain.Comment, error) {
	s.muComments.Lock()
	defer s.muComments.Unlock()

	rows, err := s.comments.load()
	if err != nil {
		return nil, err
	}

	var comments []domain.Comment
	for _, row := range rows {
		if row[0] != id {
			continue
		}

		created, err := time.Parse(domain.TimeLayout, row[1])
		if err != nil {
			return nil, fmt.Errorf("malformed comment timestamp %q: %w", row[1], err)
		}

		comments = append(comments, domain.Comment{
			BookingID:   row[0],
			TimeCreated: created,
			Name:        row[2],
			Comment:     row[3],
		})
	}

	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].TimeCreated.Before(comments[j].TimeCreated)
	})

	return comments, nil
}

func (s *Store) GetActive(ctx context.Context, id string) (bool, error) {
	s.muActive.Lock()
	defer s.muActive.Unlock()

	rows, err := s.active.load()
	if err != nil {
		return false, err
	}

	for _, row := range rows {
		if row[0] != id {
			continue
		}

		active, err := strconv.ParseBool(row[1])
		if err != nil {
			return false, fmt.Errorf("malformed is_active %q: %w", row[1], err)
		}

		return active, nil
	}

	// No explicit record means the booking is active.
	return true, nil
}

func (s *Store) SetActive(ctx context.Context, id string, active bool) error {
	s.muActive.Lock()
	defer s.muActive.Unlock()

	rows, err := s.active.load()
	if err != nil {
		return err
	}

	row := []string{id, strconv.FormatBool(active)}

	return s.active.write(s.active.merge(rows, row))
}

func parseBooking(row []string) (*domain.BookingSession, error) {
	next, err := strconv.Atoi(row[1])
	if err != nil {
		return nil, fmt.Errorf("malformed next_occasion %q: %w", row[1], err)
	}

	created, err := time.Parse(domain.TimeLayout, row[3])
	if err != nil {
		return nil, fmt.Errorf("malformed booking timestamp %q: %w", row[3], err)
	}

	return &domain.BookingSession{
		ID:           row[0],
		NextOccasion: next,
		Title:        row[2],
		TimeCreated:  created,
		Description:  row[4],
		Location:     row[5],
	}, nil
}
