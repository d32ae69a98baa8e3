package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFareTable() *FareTable {
	return NewFareTable(map[string]FareRule{
		"10-02": {FareID: "10-02", Price: 9.55, Currency: "CAD"},
		"02-20": {FareID: "02-20", Price: 12.80, Currency: "CAD"},
	})
}

func TestFareTableLookup(t *testing.T) {
	fares := testFareTable()

	quote, err := fares.Lookup("10", "02")
	require.NoError(t, err)
	assert.Equal(t, "10-02", quote.FareID)
	assert.Equal(t, 9.55, quote.Price)
	assert.Equal(t, "CAD", quote.Currency)
	assert.Equal(t, "10", quote.FromZone)
	assert.Equal(t, "02", quote.ToZone)
}

func TestFareTableNoReverseFallback(t *testing.T) {
	fares := testFareTable()

	// 10-02 is priced; 02-10 is a different journey and must miss.
	_, err := fares.Lookup("02", "10")
	assert.ErrorIs(t, err, ErrFareNotFound)
	assert.True(t, IsNotFound(err))
}

func TestFareTableMissingZones(t *testing.T) {
	fares := testFareTable()

	tests := []struct {
		name     string
		from, to string
	}{
		{"unknown pair", "10", "99"},
		{"empty origin zone", "", "02"},
		{"empty destination zone", "10", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fares.Lookup(tt.from, tt.to)
			assert.ErrorIs(t, err, ErrFareNotFound)
		})
	}
}

func TestFareTableCopiesInput(t *testing.T) {
	rules := map[string]FareRule{"10-02": {FareID: "10-02", Price: 9.55, Currency: "CAD"}}
	fares := NewFareTable(rules)

	delete(rules, "10-02")

	_, err := fares.Lookup("10", "02")
	assert.NoError(t, err)
	assert.Equal(t, 1, fares.Len())
}
