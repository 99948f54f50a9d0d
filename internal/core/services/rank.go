package services

import (
	"sort"

	"github.com/hallgrim/bokat/internal/core/domain"
)

// OccasionTally is the aggregated vote result for one occasion.
type OccasionTally struct {
	Checked  int  // answers with value yes; maybe never counts
	Answered bool // at least one answer row exists
	Rank     int  // dense rank, 1 = most yes votes; 0 = unranked
}

// TallyAnswers counts yes votes per occasion and assigns a dense rank:
// occasions with equal counts share a rank, the next distinct lower
// count advances the rank by exactly one. Occasions without any answer
// row stay at the unranked sentinel 0. The result is keyed by occasion
// sequence number and is stable under recomputation.
func TallyAnswers(occasions []domain.Occasion, answers []domain.Answer) map[int]OccasionTally {
	tallies := make(map[int]OccasionTally, len(occasions))
	for _, occ := range occasions {
		tallies[occ.Occasion] = OccasionTally{}
	}

	for _, ans := range answers {
		t, ok := tallies[ans.Occasion]
		if !ok {
			// Answer for an occasion the store no longer returns;
			// it cannot influence any displayed row.
			continue
		}
		t.Answered = true
		if ans.Answer == domain.AnswerYes {
			t.Checked++
		}
		tallies[ans.Occasion] = t
	}

	var counts []int
	seen := make(map[int]bool)
	for _, t := range tallies {
		if t.Answered && !seen[t.Checked] {
			seen[t.Checked] = true
			counts = append(counts, t.Checked)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	rankByCount := make(map[int]int, len(counts))
	for i, c := range counts {
		rankByCount[c] = i + 1
	}

	for seq, t := range tallies {
		if t.Answered {
			t.Rank = rankByCount[t.Checked]
			tallies[seq] = t
		}
	}

	return tallies
}
