package service

import (
	"regexp"
	"strconv"
)

const DefaultTimeLimitMinutes = 60

var timeLimitPattern = regexp.MustCompile(`(?i)(\d+)\s*minutes?`)

// TimeLimitMinutes extracts the minutes from a free-form time limit such as "45 minutes".
// Anything that does not match falls back to DefaultTimeLimitMinutes.
func TimeLimitMinutes(timeLimit string) int {
	m := timeLimitPattern.FindStringSubmatch(timeLimit)
	if m == nil {
		return DefaultTimeLimitMinutes
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultTimeLimitMinutes
	}
	return n
}
