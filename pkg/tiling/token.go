package tiling

import (
	"fmt"
	"strings"
)

// Token is a single placement on the board.
type Token uint8

const (
	// Vertical is one upright domino covering both rows of a column.
	Vertical Token = iota + 1

	// HorizontalPair is two flat dominoes stacked on top of each other,
	// covering both rows of two adjacent columns.
	HorizontalPair
)

// Tokens lists every placement kind in enumeration order. Tilings that
// start with an earlier token are listed first.
var Tokens = []Token{Vertical, HorizontalPair}

// Width returns the number of columns the placement consumes.
// Unknown tokens consume nothing.
func (t Token) Width() int {
	switch t {
	case Vertical:
		return 1
	case HorizontalPair:
		return 2
	}
	return 0
}

// Valid reports whether t is one of the defined placements.
func (t Token) Valid() bool {
	return t == Vertical || t == HorizontalPair
}

// String returns the single-letter form: "V" or "H".
func (t Token) String() string {
	switch t {
	case Vertical:
		return "V"
	case HorizontalPair:
		return "H"
	}
	return fmt.Sprintf("Token(%d)", uint8(t))
}

// Name returns a human-readable name for the placement.
func (t Token) Name() string {
	switch t {
	case Vertical:
		return "vertical"
	case HorizontalPair:
		return "horizontal pair"
	}
	return t.String()
}

// ParseToken converts "V" or "H" (any case) back into a Token.
func ParseToken(s string) (Token, error) {
	s = strings.TrimSpace(s)
	for _, tok := range Tokens {
		if strings.EqualFold(s, tok.String()) {
			return tok, nil
		}
	}
	return 0, fmt.Errorf("unknown placement %q (want V or H)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Token) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("marshal %s: invalid placement", t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Token) UnmarshalText(b []byte) error {
	tok, err := ParseToken(string(b))
	if err != nil {
		return err
	}
	*t = tok
	return nil
}
