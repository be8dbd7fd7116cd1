package farmsub

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The map data fragment encodes one entry per county as text, not markup.
// The constants below pin the observed shape of that text: every entry
// starts with a "C"-prefixed five-digit county FIPS marker, a `",`
// sequence separates the marker from the rest of the entry, every dollar
// amount is introduced by "$", and each amount drags a markup tail behind
// it from the tooltip the source renders it in. The total amount sits in a
// bold tag, the four program amounts in table cells, so they carry
// different tails.
const (
	markerPrefix       = "C"
	idPayloadDelimiter = `",`
	valueDelimiter     = "$"
	totalTerminator    = "</b>"
	categoryTerminator = "</td>"
)

// markerRe matches a record boundary: the marker letter followed by a
// five-digit zero-padded county FIPS code.
var markerRe = regexp.MustCompile(markerPrefix + `\d{5}`)

// amountRe matches a cleaned-up dollar amount: plain digits with an
// optional fraction, no sign, no exponent.
var amountRe = regexp.MustCompile(`^\d+(\.\d+)?$`)

// DecodeBlock splits a map data block into one chunk per county record and
// decodes each chunk into a typed Record. Results come back in block
// order, one per marker, each carrying either the Record or the error that
// stopped it; a malformed record never affects its siblings. The year is
// attached to every record as given, since the block itself does not
// carry it.
//
// DecodeBlock is a pure function of its arguments and keeps no state
// between calls, so blocks from different pages can be decoded in any
// order, or concurrently, with identical results.
func DecodeBlock(block string, year int) []RecordResult {
	bounds := markerRe.FindAllStringIndex(block, -1)
	if len(bounds) == 0 {
		return nil
	}

	// Cut immediately before each marker so the county identifier stays
	// attached to its own record rather than the previous one. Whatever
	// precedes the first marker is header preamble, not a record.
	results := make([]RecordResult, 0, len(bounds))
	for i, b := range bounds {
		end := len(block)
		if i+1 < len(bounds) {
			end = bounds[i+1][0]
		}
		results = append(results, decodeChunk(block[b[0]:end], year))
	}
	return results
}

// decodeChunk decodes a single record's raw text. The chunk starts with
// its marker and runs up to the next marker.
func decodeChunk(chunk string, year int) RecordResult {
	id, payload, ok := strings.Cut(chunk, idPayloadDelimiter)
	if !ok {
		return RecordResult{Err: Errorf(EDELIMITER, "record %q: no %q between identifier and values", snippet(chunk), idPayloadDelimiter)}
	}

	regionID, err := parseRegionID(id)
	if err != nil {
		return RecordResult{Err: err}
	}

	values, err := parseCategoryValues(payload)
	if err != nil {
		return RecordResult{Err: fmt.Errorf("record %s%05d: %w", markerPrefix, regionID, err)}
	}

	return RecordResult{Record: &Record{
		RegionID:     regionID,
		Total:        values[0],
		Commodity:    values[1],
		Conservation: values[2],
		Disaster:     values[3],
		Insurance:    values[4],
		Year:         year,
	}}
}

// parseRegionID strips the marker letter and parses the remaining digits
// as the county FIPS code.
func parseRegionID(id string) (int, error) {
	digits := strings.TrimPrefix(id, markerPrefix)
	if digits == "" || digits == id || !isDigits(digits) {
		return 0, Errorf(EBADIDENT, "identifier %q is not %q followed by digits", id, markerPrefix)
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, Errorf(EBADIDENT, "identifier %q: %v", id, err)
	}
	return n, nil
}

// parseCategoryValues cuts the payload at every dollar sign and projects
// the five amounts that follow, in the fixed category order. Text before
// the first dollar sign is tooltip boilerplate and is discarded; text
// after the fifth amount's tail is ignored.
func parseCategoryValues(payload string) ([5]float64, error) {
	var values [5]float64

	parts := strings.Split(payload, valueDelimiter)
	if len(parts) < len(values)+1 {
		return values, Errorf(ECATEGORYCOUNT, "found %d amounts, want %d", len(parts)-1, len(values))
	}

	// Parse all five fields even when one fails, so a bad field reports
	// which category broke without hiding the state of the others.
	var bad []string
	for i, c := range Categories() {
		terminator := categoryTerminator
		if c == CategoryTotal {
			terminator = totalTerminator
		}

		// Everything from the terminator onward is markup noise. A missing
		// terminator leaves the fragment as the amount; that alone does not
		// corrupt the numeric text in front of it.
		raw, _, _ := strings.Cut(parts[i+1], terminator)

		v, err := parseAmount(raw)
		if err != nil {
			bad = append(bad, fmt.Sprintf("%s: %v", c, err))
			continue
		}
		values[i] = v
	}
	if len(bad) > 0 {
		return values, Errorf(ENUMERIC, "%s", strings.Join(bad, "; "))
	}
	return values, nil
}

// parseAmount parses one dollar amount after stripping thousands
// separators. Anything but a plain non-negative decimal is rejected.
func parseAmount(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if !amountRe.MatchString(cleaned) {
		return 0, fmt.Errorf("amount %q is not a non-negative decimal", strings.TrimSpace(raw))
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %v", strings.TrimSpace(raw), err)
	}
	return v, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// snippet shortens raw record text for error messages.
func snippet(s string) string {
	const max = 24
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
