package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Color
		ok       bool
	}{
		{"lowercase", "red", ColorRed, true},
		{"mixed case", "Green", ColorGreen, true},
		{"padded", "  yellow ", ColorYellow, true},
		{"bright variant", "bright-yellow", ColorBrightYellow, true},
		{"default", "default", ColorDefault, true},
		{"unknown", "mauve", ColorDefault, false},
		{"empty", "", ColorDefault, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := ParseColor(tc.input)
			if ok != tc.ok {
				t.Fatalf("ParseColor(%q) ok = %v, expected %v", tc.input, ok, tc.ok)
			}
			if ok && c != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.input, c, tc.expected)
			}
		})
	}
}
