package util

import "testing"

func TestFormatDateTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2024-03-05T14:07:09Z", "2024-03-05 14:07"},
		{"2024-03-05T14:07:09.123456Z", "2024-03-05 14:07"},
		{"not a date", "not a date"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := FormatDateTime(tt.input); got != tt.want {
			t.Errorf("FormatDateTime(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
