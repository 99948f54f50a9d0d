package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hallgrim/bokat/internal/core/domain"
	"github.com/hallgrim/bokat/internal/core/locale"
	"github.com/hallgrim/bokat/internal/core/ports"
)

const (
	indexCacheKey = "bookings:index"
	indexCacheTTL = 30 * time.Second
)

// BookingService is the single entry point of the core: plain
// structured requests in, plain structured results out. It owns no
// state besides its collaborators; every read re-reconciles from the
// store.
type BookingService struct {
	store ports.Store
	cache *redis.Client // optional booking-index cache; nil disables it
	loc   locale.Table
}

func NewBookingService(store ports.Store, cache *redis.Client, loc locale.Table) *BookingService {
	return &BookingService{
		store: store,
		cache: cache,
		loc:   loc,
	}
}

// CreateBooking mints an identifier, persists the metadata record and
// returns the new id. The title is required.
func (s *BookingService) CreateBooking(ctx context.Context, title, description, location string) (string, error) {
	if title == "" {
		return "", &domain.ValidationError{Field: "title", Reason: "is required"}
	}

	id := newBookingID()
	if err := s.store.CreateBooking(ctx, id, title, description, location); err != nil {
		return "", err
	}

	s.invalidateIndex(ctx)

	return id, nil
}

func (s *BookingService) UpdateBookingFields(ctx context.Context, id string, patch ports.BookingPatch) error {
	if patch.Title != nil && *patch.Title == "" {
		return &domain.ValidationError{Field: "title", Reason: "is required"}
	}

	if err := s.store.UpdateBooking(ctx, id, patch); err != nil {
		return err
	}

	s.invalidateIndex(ctx)

	return nil
}

// AddOccasion allocates the next sequence number for the booking and
// appends the occasion. The returned number is the stable join key for
// answers; it never changes even though display order is chronological.
func (s *BookingService) AddOccasion(ctx context.Context, id, date, start, end string) (int, error) {
	if date == "" {
		return 0, &domain.ValidationError{Field: "date", Reason: "is required"}
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return 0, &domain.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}

	seq, err := s.store.NextOccasion(ctx, id)
	if err != nil {
		return 0, err
	}

	err = s.store.AppendOccasion(ctx, domain.Occasion{
		BookingID: id,
		Occasion:  seq,
		Date:      date,
		TimeStart: start,
		TimeEnd:   end,
	})
	if err != nil {
		return 0, err
	}

	return seq, nil
}

// RegisterRespondent claims a name for this booking and seeds a "no"
// answer for every existing occasion, so the new column shows up fully
// populated. Registration happens exactly once per name; later edits go
// through AddAnswer/UpdateAnswer keyed by the name.
func (s *BookingService) RegisterRespondent(ctx context.Context, id, name string) error {
	if name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}

	names, err := s.ListRespondentNames(ctx, id)
	if err != nil {
		return err
	}
	for _, n := range names {
		if n == name {
			return fmt.Errorf("booking %s, name %s: %w", id, name, domain.ErrDuplicateRespondent)
		}
	}

	occasions, err := s.store.GetOccasions(ctx, id)
	if err != nil {
		return err
	}

	for _, occ := range occasions {
		err := s.store.AppendAnswer(ctx, domain.Answer{
			BookingID: id,
			Occasion:  occ.Occasion,
			Name:      name,
			Answer:    domain.AnswerNo,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// AddAnswer records one respondent's answer for one occasion. An
// existing answer for the same (occasion, name) is superseded in place.
func (s *BookingService) AddAnswer(ctx context.Context, id string, occasion int, name string, value domain.AnswerValue) error {
	if name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	if !value.Valid() {
		return &domain.ValidationError{Field: "answer", Reason: "must be no, yes or maybe"}
	}

	if err := s.occasionExists(ctx, id, occasion); err != nil {
		return err
	}

	return s.store.AppendAnswer(ctx, domain.Answer{
		BookingID: id,
		Occasion:  occasion,
		Name:      name,
		Answer:    value,
	})
}

// UpdateAnswer edits an existing answer and fails if the respondent has
// never answered this occasion.
func (s *BookingService) UpdateAnswer(ctx context.Context, id string, occasion int, name string, value domain.AnswerValue) error {
	if !value.Valid() {
		return &domain.ValidationError{Field: "answer", Reason: "must be no, yes or maybe"}
	}

	return s.store.UpdateAnswer(ctx, domain.Answer{
		BookingID: id,
		Occasion:  occasion,
		Name:      name,
		Answer:    value,
	})
}

// AddComment appends a comment. The author name is free text and may be
// blank; the text itself is required.
func (s *BookingService) AddComment(ctx context.Context, id, name, text string) error {
	if text == "" {
		return &domain.ValidationError{Field: "comment", Reason: "is required"}
	}

	if _, err := s.store.GetBooking(ctx, id); err != nil {
		return err
	}

	return s.store.AppendComment(ctx, domain.Comment{
		BookingID:   id,
		TimeCreated: time.Now().UTC().Truncate(time.Second),
		Name:        name,
		Comment:     text,
	})
}

func (s *BookingService) SetActive(ctx context.Context, id string, active bool) error {
	if _, err := s.store.GetBooking(ctx, id); err != nil {
		return err
	}

	if err := s.store.SetActive(ctx, id, active); err != nil {
		return err
	}

	s.invalidateIndex(ctx)

	return nil
}

// ListBookings returns the newest active bookings. Inactive bookings
// are filtered out before the limit is applied, so deactivating a
// recent booking never hides an older active one.
func (s *BookingService) ListBookings(ctx context.Context, limit int) ([]domain.BookingSession, error) {
	if cached, ok := s.cachedIndex(ctx); ok {
		return truncate(cached, limit), nil
	}

	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	var active []domain.BookingSession
	for _, b := range bookings {
		isActive, err := s.store.GetActive(ctx, b.ID)
		if err != nil {
			return nil, err
		}
		if isActive {
			active = append(active, b)
		}
	}

	s.storeIndex(ctx, active)

	return truncate(active, limit), nil
}

// ListOccasions returns the booking's occasions in display order,
// date then start time.
func (s *BookingService) ListOccasions(ctx context.Context, id string) ([]domain.Occasion, error) {
	if _, err := s.store.GetBooking(ctx, id); err != nil {
		return nil, err
	}

	occasions, err := s.store.GetOccasions(ctx, id)
	if err != nil {
		return nil, err
	}

	sortOccasions(occasions)

	return occasions, nil
}

func (s *BookingService) ListRespondentNames(ctx context.Context, id string) ([]string, error) {
	if _, err := s.store.GetBooking(ctx, id); err != nil {
		return nil, err
	}

	answers, err := s.store.GetAnswers(ctx, id)
	if err != nil {
		return nil, err
	}

	return respondentNames(answers), nil
}

// GetTable reconciles, tallies and projects the booking in one pass.
// A non-empty editName produces the edit view for that respondent.
func (s *BookingService) GetTable(ctx context.Context, id, editName string) (*Table, error) {
	view, err := s.Reconcile(ctx, id)
	if err != nil {
		return nil, err
	}

	return Project(view, editName, s.loc), nil
}

func (s *BookingService) occasionExists(ctx context.Context, id string, occasion int) error {
	occasions, err := s.store.GetOccasions(ctx, id)
	if err != nil {
		return err
	}
	for _, occ := range occasions {
		if occ.Occasion == occasion {
			return nil
		}
	}
	return fmt.Errorf("booking %s, occasion %d: %w", id, occasion, domain.ErrNotFound)
}

// cachedIndex and storeIndex cover only the filtered booking index;
// the reconciled table is never cached. Cache failures degrade to the
// store read.
func (s *BookingService) cachedIndex(ctx context.Context) ([]domain.BookingSession, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, err := s.cache.Get(ctx, indexCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var bookings []domain.BookingSession
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, false
	}

	return bookings, true
}

func (s *BookingService) storeIndex(ctx context.Context, bookings []domain.BookingSession) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(bookings)
	if err != nil {
		return
	}

	s.cache.Set(ctx, indexCacheKey, data, indexCacheTTL)
}

func (s *BookingService) invalidateIndex(ctx context.Context) {
	if s.cache == nil {
		return
	}

	s.cache.Del(ctx, indexCacheKey)
}

func truncate(bookings []domain.BookingSession, limit int) []domain.BookingSession {
	if limit <= 0 || limit >= len(bookings) {
		return bookings
	}
	return bookings[:limit]
}
