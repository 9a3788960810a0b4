package cashout

import (
	"fmt"
	"regexp"
)

// A Convert row only records the asset converted away; the destination asset
// appears nowhere but in the notes, as "Converted 29.98841098 MANA to
// 36.78628798 LRC". The note must be parsed to synthesize the missing buy leg.

// conversionNote captures source amount, source symbol, destination amount and
// destination symbol, in that order.
var conversionNote = regexp.MustCompile(`([\d.]+) ([A-Z]+) to ([\d.]+) ([A-Z\d]+)`)

// ConversionError reports a Convert row whose notes do not encode a conversion.
type ConversionError struct {
	Row   int // index of the offending row in the input
	Notes string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("row %d: cannot parse conversion note %q", e.Row, e.Notes)
}

// conversion is the destination leg extracted from a Convert row's notes.
type conversion struct {
	FromQuantity Quantity
	FromAsset    string
	ToQuantity   Quantity
	ToAsset      string
}

// parseConversion extracts the two legs of a conversion from a note.
func parseConversion(notes string) (conversion, error) {
	matches := conversionNote.FindStringSubmatch(notes)
	if matches == nil {
		return conversion{}, fmt.Errorf("notes %q do not match the conversion grammar", notes)
	}
	from, err := ParseQuantity(matches[1])
	if err != nil {
		return conversion{}, fmt.Errorf("invalid source quantity %q: %w", matches[1], err)
	}
	to, err := ParseQuantity(matches[3])
	if err != nil {
		return conversion{}, fmt.Errorf("invalid destination quantity %q: %w", matches[3], err)
	}
	return conversion{
		FromQuantity: from,
		FromAsset:    matches[2],
		ToQuantity:   to,
		ToAsset:      matches[4],
	}, nil
}
