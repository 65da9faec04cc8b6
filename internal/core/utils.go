package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var dayRegex = regexp.MustCompile(`^(?i:day)?(\d{1,3})$`)

// ParseDay turns a day argument into its ordinal.
// Supports:
// 1. Plain numbers: 7, 07, 25
// 2. Package-style names: day7, day07, Day25
func ParseDay(s string) (int, error) {
	matches := dayRegex.FindStringSubmatch(strings.TrimSpace(s))
	if matches == nil {
		return 0, fmt.Errorf("%w: '%s' (expected a number like 7 or day07)", ErrInvalidDay, s)
	}
	day, err := strconv.Atoi(matches[1])
	if err != nil || day < 1 {
		return 0, fmt.Errorf("%w: '%s' (day must be positive)", ErrInvalidDay, s)
	}
	return day, nil
}

// ParseDayRange parses an inclusive [from, to] pair of day arguments.
func ParseDayRange(from, to string) (int, int, error) {
	start, err := ParseDay(from)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseDay(to)
	if err != nil {
		return 0, 0, err
	}
	if start > end {
		return 0, 0, fmt.Errorf("%w: range %d..%d is reversed", ErrInvalidDay, start, end)
	}
	return start, end, nil
}

// CacheFileName returns the file name for a day, e.g. day07.txt.
func CacheFileName(day int) string {
	return fmt.Sprintf("%s%02d%s", CacheFilePrefix, day, CacheFileExt)
}

// SessionEnvName returns the credential variable name for a year.
func SessionEnvName(year string) string {
	return SessionEnvPrefix + year + SessionEnvSuffix
}

// MaskToken hides all but the last four characters of a secret.
func MaskToken(token string) string {
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}
