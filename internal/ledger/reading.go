package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numericPrefix matches the leading number of a user-typed value, so "150km"
// reads as 150 and "abc" does not read at all.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?`)

// parseNumber reads a user-typed decimal. A decimal comma is accepted.
func parseNumber(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	m := numericPrefix.FindString(s)
	if m == "" {
		return decimal.Zero, false
	}
	switch {
	case strings.HasPrefix(m, "."):
		m = "0" + m
	case strings.HasPrefix(m, "-."), strings.HasPrefix(m, "+."):
		m = m[:1] + "0" + m[1:]
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Reading is a raw odometer or fuel-rate value as the driver typed it.
// Stored days may hold it as a JSON string or a JSON number; it is always
// written back as a string.
type Reading string

// Decimal parses r leniently. ok is false for empty or unparsable text.
func (r Reading) Decimal() (decimal.Decimal, bool) {
	return parseNumber(string(r))
}

// odometer is the reading as a distance; junk and negatives count as zero.
func (r Reading) odometer() decimal.Decimal {
	d, ok := r.Decimal()
	if !ok || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func (r *Reading) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Reading(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("reading must be a string or a number: %w", err)
	}
	*r = Reading(n.String())
	return nil
}

func (r Reading) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}
