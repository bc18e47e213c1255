package hospital

import (
	"regexp"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// The email and phone patterns are anchored at the start only, so content
// trailing a valid prefix is accepted. Kept lenient on purpose: tightening
// would reject input that existing data files already contain.
var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`^\+?[0-9 -]{10,}`)
)

// ValidateEmail reports whether s starts with a local@domain.tld shape.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePhone reports whether s starts with an optional + followed by at
// least ten digits, spaces, or hyphens.
func ValidatePhone(s string) bool {
	return phonePattern.MatchString(s)
}

// ValidateDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidateDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ValidateTime reports whether s is a 24-hour HH:MM time.
func ValidateTime(s string) bool {
	_, err := time.Parse(timeLayout, s)
	return err == nil
}
