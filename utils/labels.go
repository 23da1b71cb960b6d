package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// inchMarks are the characters editors use for inches and quotes in spec labels,
// e.g. `2.5" SATA`, `2.5″ SATA`, `2.5” SATA`
const inchMarks = "\"'″′“”‘’"

// NormalizeLabel normalizes a spec label for comparison:
// whitespace removed, upper case. "8 GB" -> "8GB", "ddr4" -> "DDR4"
func NormalizeLabel(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// StripInchMarks removes quote and inch-mark characters from a label
func StripInchMarks(label string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(inchMarks, r) {
			return -1
		}
		return r
	}, label)
}

// ParseCapacityGB parses a capacity label such as "8GB", "512 GB" or "1TB" into gigabytes.
// Returns false when the label has no recognizable number.
func ParseCapacityGB(label string) (float64, bool) {
	s := NormalizeLabel(label)
	if s == "" {
		return 0, false
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "TB"):
		multiplier = 1024
		s = strings.TrimSuffix(s, "TB")
	case strings.HasSuffix(s, "GB"):
		s = strings.TrimSuffix(s, "GB")
	case strings.HasSuffix(s, "G"):
		s = strings.TrimSuffix(s, "G")
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n * multiplier, true
}
