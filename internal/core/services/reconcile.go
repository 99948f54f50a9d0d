package services

import (
	"context"
	"sort"

	"github.com/hallgrim/bokat/internal/core/domain"
)

// ReconciledView joins the independently stored record kinds of one
// booking into a relational in-memory view. It is recomputed from the
// store on every read; nothing here survives a request.
type ReconciledView struct {
	Booking   domain.BookingSession
	Occasions []domain.Occasion // sorted by (date, start time)
	Answers   []domain.Answer
	Comments  []domain.Comment // sorted by creation time
	Names     []string         // unique respondent names, first-seen order
}

// Reconcile reads all record kinds for the booking and assembles the
// view. Consistency within one call is whatever the individual reads
// returned; there is no cross-table snapshot, which the design accepts
// for single-owner bookings.
func (s *BookingService) Reconcile(ctx context.Context, id string) (*ReconciledView, error) {
	booking, err := s.store.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	occasions, err := s.store.GetOccasions(ctx, id)
	if err != nil {
		return nil, err
	}

	answers, err := s.store.GetAnswers(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.store.GetComments(ctx, id)
	if err != nil {
		return nil, err
	}

	sortOccasions(occasions)

	return &ReconciledView{
		Booking:   *booking,
		Occasions: occasions,
		Answers:   answers,
		Comments:  comments,
		Names:     respondentNames(answers),
	}, nil
}

// sortOccasions orders by calendar date, then start time. Sequence
// numbers stay untouched: they are the join key, not the display order.
func sortOccasions(occasions []domain.Occasion) {
	sort.SliceStable(occasions, func(i, j int) bool {
		if occasions[i].Date != occasions[j].Date {
			return occasions[i].Date < occasions[j].Date
		}
		return occasions[i].TimeStart < occasions[j].TimeStart
	})
}

func respondentNames(answers []domain.Answer) []string {
	seen := make(map[string]bool)
	var names []string
	for _, ans := range answers {
		if !seen[ans.Name] {
			seen[ans.Name] = true
			names = append(names, ans.Name)
		}
	}
	return names
}
