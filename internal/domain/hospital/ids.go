package hospital

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerateID derives the next id for prefix from the keys already in use:
// the highest all-digit suffix among keys sharing the prefix, plus one,
// zero-padded to four digits (PAT0001, PAT0002, ...). Deterministic for a
// given key set; keys under other prefixes never collide because the
// prefix itself must match.
func GenerateID(prefix string, existing []string) string {
	max := 0
	for _, key := range existing {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		suffix := key[len(prefix):]
		if suffix == "" || !allDigits(suffix) {
			continue
		}
		if n, _ := strconv.Atoi(suffix); n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%04d", prefix, max+1)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
