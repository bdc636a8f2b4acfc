package helpers

import (
	"strconv"
	"time"
)

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParseDate parses an RFC3339 timestamp, the format all date values use
// when they cross the API boundary.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
