package errors

import (
	"slices"
	"strconv"
	"strings"
)

// Reference width bounds used by the gallery front ends. Widths above ten
// produce more cards than fit comfortably on screen.
const (
	MinWidth     = 1
	MaxWidth     = 10
	DefaultWidth = 4
)

// ParseWidth converts user input into a board width and checks it against
// [lo, hi]. Non-numeric input and out-of-range values are reported with
// the same descriptive message so front ends can show it verbatim.
func ParseWidth(input string, lo, hi int) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, New(ErrCodeInvalidWidth, "enter a number between %d and %d", lo, hi)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, Wrap(ErrCodeInvalidWidth, err, "enter a number between %d and %d", lo, hi)
	}
	if err := ValidateWidth(n, lo, hi); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateWidth checks that n lies in [lo, hi].
func ValidateWidth(n, lo, hi int) error {
	if lo > hi {
		return New(ErrCodeInvalidConfig, "width bounds inverted: min %d > max %d", lo, hi)
	}
	if n < lo || n > hi {
		return New(ErrCodeInvalidWidth, "enter a number between %d and %d", lo, hi)
	}
	return nil
}

// ValidateFormat checks that format is one of the supported formats.
// Matching is case-sensitive; callers lowercase user input first.
func ValidateFormat(format string, supported []string) error {
	if slices.Contains(supported, format) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(supported, ", "))
}

// ValidateStyle checks that style is one of the supported styles.
func ValidateStyle(style string, supported []string) error {
	if slices.Contains(supported, style) {
		return nil
	}
	return New(ErrCodeInvalidStyle, "unsupported style %q (want one of %s)", style, strings.Join(supported, ", "))
}
