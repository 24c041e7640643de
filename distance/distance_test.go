package distance

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"1pt", true},
		{"3%", true},
		{"0.5cm", true},
		{"10mm", true},
		{"2in", true},
		{"72px", true},
		{"1.25pt", true},
		{" 1pt ", true},
		{"", false},
		{"pt", false},
		{"1", false},
		{"1 pt", false},
		{"-1pt", false},
		{"1.pt", false},
		{".5pt", false},
		{"1em", false},
		{"3%%", false},
		{"1pt2", false},
		{"auto", false},
	}

	for _, tt := range tests {
		got := IsValid(tt.text)
		if got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
