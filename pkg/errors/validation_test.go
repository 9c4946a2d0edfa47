package errors

import "testing"

func TestParseWidth(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"lower bound", "1", 1, false},
		{"upper bound", "10", 10, false},
		{"padded", "  4 ", 4, false},
		{"zero", "0", 0, true},
		{"too large", "11", 0, true},
		{"negative", "-3", 0, true},
		{"empty", "", 0, true},
		{"not a number", "four", 0, true},
		{"float", "2.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWidth(tt.input, MinWidth, MaxWidth)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWidth(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !Is(err, ErrCodeInvalidWidth) {
					t.Errorf("ParseWidth(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidWidth)
				}
				if msg := UserMessage(err); msg != "enter a number between 1 and 10" {
					t.Errorf("UserMessage = %q", msg)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateWidthInvertedBounds(t *testing.T) {
	err := ValidateWidth(5, 10, 1)
	if !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("ValidateWidth with inverted bounds = %v, want %v", err, ErrCodeInvalidConfig)
	}
}

func TestValidateFormat(t *testing.T) {
	supported := []string{"text", "svg", "json"}
	if err := ValidateFormat("svg", supported); err != nil {
		t.Errorf("ValidateFormat(svg) = %v", err)
	}
	err := ValidateFormat("pdf", supported)
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormat(pdf) = %v, want %v", err, ErrCodeInvalidFormat)
	}
}

func TestValidateStyle(t *testing.T) {
	supported := []string{"simple", "blueprint"}
	if err := ValidateStyle("blueprint", supported); err != nil {
		t.Errorf("ValidateStyle(blueprint) = %v", err)
	}
	if err := ValidateStyle("neon", supported); !Is(err, ErrCodeInvalidStyle) {
		t.Errorf("ValidateStyle(neon) = %v, want %v", err, ErrCodeInvalidStyle)
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidWidth,
		ErrCodeInvalidFormat,
		ErrCodeInvalidStyle,
		ErrCodeInvalidConfig,
		ErrCodeBusy,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}
	seen := make(map[Code]bool)
	for _, c := range codes {
		if seen[c] {
			t.Errorf("duplicate error code %s", c)
		}
		seen[c] = true
	}
}
