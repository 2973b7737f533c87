package config

import (
	"fmt"
	"strconv"
	"strings"
)

var sizeUnits = map[string]int64{
	"":  1,
	"B": 1,
	"K": 1 << 10,
	"M": 1 << 20,
	"G": 1 << 30,
}

// ParseSize parses a byte count or byte rate such as "512K", "2M", "1.5MB"
// or "4M/s" (case-insensitive, powers of 1024). A trailing "/s" is accepted
// so bitrates read naturally in the config file.
func ParseSize(s string) (int64, error) {
	raw := s
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "/S")
	if s == "" {
		return 0, fmt.Errorf("invalid size: %q", raw)
	}

	// Accept both "M" and "MB".
	if len(s) > 1 && strings.HasSuffix(s, "B") && strings.ContainsAny(s[len(s)-2:len(s)-1], "KMG") {
		s = s[:len(s)-1]
	}

	numStr := strings.TrimRight(s, "BKMG")
	unit := s[len(numStr):]
	mult, ok := sizeUnits[unit]
	if !ok || numStr == "" {
		return 0, fmt.Errorf("invalid size: %q", raw)
	}

	if n, err := strconv.ParseInt(numStr, 10, 64); err == nil && n >= 0 {
		return n * mult, nil
	}
	f, err := strconv.ParseFloat(numStr, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("invalid size: %q", raw)
	}
	return int64(f * float64(mult)), nil
}
