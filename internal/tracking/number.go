package tracking

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

const orderNumberPrefix = "DO"

// FormatOrderNumber renders DO<year>-<seq> with the sequence zero-padded to four digits.
func FormatOrderNumber(year, seq int) string {
	return fmt.Sprintf("%s%d-%04d", orderNumberPrefix, year, seq)
}

// NextOrderNumber derives the next order number for year from the existing
// keys: the highest sequence already used that year plus one, or 1 when the
// year has no orders yet. Keys whose sequence does not start with a digit are
// ignored. Gaps are not reused.
func NextOrderNumber(year int, keys []string) string {
	prefix := fmt.Sprintf("%s%d-", orderNumberPrefix, year)
	highest := 0
	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		seq, ok := parseSequence(key)
		if ok && seq > highest {
			highest = seq
		}
	}
	return FormatOrderNumber(year, highest+1)
}

// parseSequence reads the leading digits of the segment after the first dash.
func parseSequence(key string) (int, bool) {
	_, rest, found := strings.Cut(key, "-")
	if !found {
		return 0, false
	}
	if segment, _, more := strings.Cut(rest, "-"); more {
		rest = segment
	}
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	seq, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}
	return seq, true
}

// CompareOrderNumbers orders keys by year, then by sequence as a number, so
// sequences past 9999 still follow 9999. Keys that are not DO<year>-<seq>
// sort before all well-formed keys, among themselves by string.
func CompareOrderNumbers(a, b string) int {
	ay, as, aok := orderKey(a)
	by, bs, bok := orderKey(b)
	if aok != bok {
		if aok {
			return 1
		}
		return -1
	}
	if c := cmp.Compare(ay, by); c != 0 {
		return c
	}
	if c := cmp.Compare(as, bs); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func orderKey(number string) (year, seq int, ok bool) {
	rest, found := strings.CutPrefix(number, orderNumberPrefix)
	if !found {
		return 0, 0, false
	}
	yearPart, _, found := strings.Cut(rest, "-")
	if !found {
		return 0, 0, false
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return 0, 0, false
	}
	seq, ok = parseSequence(number)
	if !ok {
		return 0, 0, false
	}
	return year, seq, true
}
