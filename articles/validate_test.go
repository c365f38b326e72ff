package articles

import "testing"

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"UTC timestamp", "2024-09-09T12:00:00Z", true},
		{"UTC timestamp with milliseconds", "2024-09-01T00:00:00.000Z", true},
		{"no trailing Z", "2024-09-09T12:00:00", false},
		{"numeric offset instead of Z", "2024-09-09T12:00:00+02:00", false},
		{"not a date", "not-a-date", false},
		{"date only", "2024-09-09", false},
		{"impossible month", "2024-13-09T12:00:00Z", false},
		{"impossible day", "2024-02-30T12:00:00Z", false},
		{"microsecond precision", "2024-09-09T12:00:00.000000Z", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDate(tt.input); got != tt.want {
				t.Errorf("IsValidDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
