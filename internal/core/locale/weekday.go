// Package locale holds the display vocabulary for the table projection:
// weekday names (Monday first, matching time layouts used by bookings)
// and the fixed column headers. The deployment picks a locale with a
// BCP-47 tag; Swedish is the default because that is what the production
// deployment runs.
package locale

import "golang.org/x/text/language"

type Table struct {
	Tag      language.Tag
	Weekdays [7]string // Monday = 0 .. Sunday = 6
	Date     string
	Start    string
	End      string
	Votes    string
}

var tables = []Table{
	{
		Tag:      language.Swedish,
		Weekdays: [7]string{"Måndag", "Tisdag", "Onsdag", "Torsdag", "Fredag", "Lördag", "Söndag"},
		Date:     "Datum",
		Start:    "Från",
		End:      "Till",
		Votes:    "Röster",
	},
	{
		Tag:      language.English,
		Weekdays: [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
		Date:     "Date",
		Start:    "From",
		End:      "To",
		Votes:    "Votes",
	},
}

var matcher language.Matcher

func init() {
	tags := make([]language.Tag, len(tables))
	for i, t := range tables {
		tags[i] = t.Tag
	}
	matcher = language.NewMatcher(tags)
}

// Match resolves a BCP-47 tag to the closest supported vocabulary.
// Unknown or empty tags fall back to the first (Swedish) table.
func Match(tag string) Table {
	t, err := language.Parse(tag)
	if err != nil {
		return tables[0]
	}
	_, i, _ := matcher.Match(t)
	return tables[i]
}
