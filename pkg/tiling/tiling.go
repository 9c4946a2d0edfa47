package tiling

import (
	"fmt"
	"strings"
)

// Tiling is an ordered left-to-right sequence of placements.
type Tiling []Token

// Width returns the number of columns covered by the tiling.
func (t Tiling) Width() int {
	w := 0
	for _, tok := range t {
		w += tok.Width()
	}
	return w
}

// Counts returns how many Vertical and HorizontalPair placements t holds.
func (t Tiling) Counts() (vertical, pairs int) {
	for _, tok := range t {
		switch tok {
		case Vertical:
			vertical++
		case HorizontalPair:
			pairs++
		}
	}
	return vertical, pairs
}

// Dominoes returns the number of physical dominoes in the tiling.
// A horizontal pair counts as two.
func (t Tiling) Dominoes() int {
	v, h := t.Counts()
	return v + 2*h
}

// String returns the compact letter form, e.g. "VHV".
// The empty tiling is rendered as "∅".
func (t Tiling) String() string {
	if len(t) == 0 {
		return "∅"
	}
	var b strings.Builder
	for _, tok := range t {
		b.WriteString(tok.String())
	}
	return b.String()
}

// Validate checks that every placement is known and that the tiling covers
// exactly width columns.
func (t Tiling) Validate(width int) error {
	for i, tok := range t {
		if !tok.Valid() {
			return fmt.Errorf("placement %d: invalid token %s", i, tok)
		}
	}
	if got := t.Width(); got != width {
		return fmt.Errorf("tiling %s covers %d columns, want %d", t, got, width)
	}
	return nil
}

// Parse reads the compact letter form produced by [Tiling.String].
// Spaces and commas between letters are ignored, so "V,H,V" and "V H V"
// parse the same as "VHV". "∅" and the empty string yield the empty tiling.
func Parse(s string) (Tiling, error) {
	s = strings.TrimSpace(s)
	if s == "∅" {
		return Tiling{}, nil
	}
	t := make(Tiling, 0, len(s))
	for i, r := range s {
		if r == ' ' || r == ',' {
			continue
		}
		tok, err := ParseToken(string(r))
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		t = append(t, tok)
	}
	return t, nil
}

// prepend returns a new tiling with tok in front of rest.
// rest is shared with memoized results and must not be modified.
func prepend(tok Token, rest Tiling) Tiling {
	t := make(Tiling, 0, len(rest)+1)
	t = append(t, tok)
	return append(t, rest...)
}
