package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	assert.Equal(t, "Måndag", Match("sv").Weekdays[0])
	assert.Equal(t, "Monday", Match("en").Weekdays[0])

	// Regional variants resolve to their base language.
	assert.Equal(t, "Datum", Match("sv-FI").Date)
	assert.Equal(t, "Date", Match("en-US").Date)
}

func TestMatch_FallsBackToSwedish(t *testing.T) {
	assert.Equal(t, "Söndag", Match("").Weekdays[6])
	assert.Equal(t, "Söndag", Match("not a tag").Weekdays[6])
}
