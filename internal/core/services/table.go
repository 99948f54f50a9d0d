package services

import (
	"fmt"
	"time"

	"github.com/hallgrim/bokat/internal/core/domain"
	"github.com/hallgrim/bokat/internal/core/locale"
)

// answerSymbols is the fixed rendering of the tri-state: no stays
// blank, yes becomes a check mark, maybe a question mark.
var answerSymbols = map[domain.AnswerValue]string{
	domain.AnswerNo:    "",
	domain.AnswerYes:   "✓",
	domain.AnswerMaybe: "?",
}

// TableRow is one occasion in chronological order. Cells line up with
// Table.Header: weekday, date, start, end, vote fraction, then one
// symbol cell per respondent.
type TableRow struct {
	Occasion int // sequence number, the join key
	Rank     int // dense rank, 0 = unranked
	Cells    []string
}

// Table is the presentation-ready projection of a reconciled booking.
type Table struct {
	ID          string
	Title       string
	Description string
	Location    string
	TimeCreated time.Time

	Header []string
	Rows   []TableRow
	Names  []string

	// EditAnswers is only populated for the edit view: the excluded
	// respondent's answer per occasion, same order as Rows.
	EditAnswers []domain.AnswerValue

	Comments []domain.Comment
}

// Project turns a reconciled view into the display table. editName
// selects the edit view: that respondent's column is removed from the
// main rows and their answers are returned separately so they can see
// everyone else's votes while editing their own.
func Project(view *ReconciledView, editName string, loc locale.Table) *Table {
	names := view.Names
	if editName != "" {
		names = withoutName(names, editName)
	}

	tallies := TallyAnswers(view.Occasions, view.Answers)

	// (occasion, name) -> value, for cell lookup
	byKey := make(map[answerKey]domain.AnswerValue, len(view.Answers))
	for _, ans := range view.Answers {
		byKey[answerKey{ans.Occasion, ans.Name}] = ans.Answer
	}

	header := []string{"", loc.Date, loc.Start, loc.End, loc.Votes}
	header = append(header, names...)

	t := &Table{
		ID:          view.Booking.ID,
		Title:       view.Booking.Title,
		Description: view.Booking.Description,
		Location:    view.Booking.Location,
		TimeCreated: view.Booking.TimeCreated,
		Header:      header,
		Names:       names,
		Comments:    view.Comments,
	}

	for _, occ := range view.Occasions {
		tally := tallies[occ.Occasion]

		fraction := ""
		if tally.Answered {
			fraction = fmt.Sprintf("%d/%d", tally.Checked, len(view.Names))
		}

		cells := []string{weekdayName(occ.Date, loc), occ.Date, occ.TimeStart, occ.TimeEnd, fraction}
		for _, name := range names {
			value, ok := byKey[answerKey{occ.Occasion, name}]
			if !ok {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, answerSymbols[value])
		}

		t.Rows = append(t.Rows, TableRow{
			Occasion: occ.Occasion,
			Rank:     tally.Rank,
			Cells:    cells,
		})

		if editName != "" {
			value := byKey[answerKey{occ.Occasion, editName}]
			t.EditAnswers = append(t.EditAnswers, value)
		}
	}

	return t
}

type answerKey struct {
	occasion int
	name     string
}

// weekdayName maps the occasion date to the locale's weekday, Monday
// first. An unparseable date renders as an empty weekday cell rather
// than failing the whole table.
func weekdayName(date string, loc locale.Table) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return loc.Weekdays[(int(d.Weekday())+6)%7]
}

func withoutName(names []string, exclude string) []string {
	var out []string
	for _, n := range names {
		if n != exclude {
			out = append(out, n)
		}
	}
	return out
}
