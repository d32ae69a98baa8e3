package transit

// FareRule maps a directed zone pair to a priced fare. The key convention is
// "<originZone>-<destinationZone>"; the reverse direction is a distinct rule
// and is never substituted when the forward lookup misses.
type FareRule struct {
	FareID   string
	Price    float64
	Currency string
}

// FareQuote is a priced fare between two resolved stops.
type FareQuote struct {
	FareID   string  `json:"fareId"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	FromZone string  `json:"fromZone"`
	ToZone   string  `json:"toZone"`
}

// FareTable resolves directed zone pairs to fares.
type FareTable struct {
	rules map[string]FareRule
}

// NewFareTable builds a fare table from zone-pair keys. Later entries for the
// same key replace earlier ones.
func NewFareTable(rules map[string]FareRule) *FareTable {
	copied := make(map[string]FareRule, len(rules))
	for k, v := range rules {
		copied[k] = v
	}
	return &FareTable{rules: copied}
}

// Lookup returns the fare for travel from one zone to another. Stops without
// a zone and zone pairs without a priced rule both report ErrFareNotFound.
func (t *FareTable) Lookup(fromZone, toZone string) (FareQuote, error) {
	if fromZone == "" || toZone == "" {
		return FareQuote{}, ErrFareNotFound
	}

	rule, ok := t.rules[fromZone+"-"+toZone]
	if !ok {
		return FareQuote{}, ErrFareNotFound
	}

	return FareQuote{
		FareID:   rule.FareID,
		Price:    rule.Price,
		Currency: rule.Currency,
		FromZone: fromZone,
		ToZone:   toZone,
	}, nil
}

// Len returns the number of priced zone pairs.
func (t *FareTable) Len() int {
	return len(t.rules)
}
