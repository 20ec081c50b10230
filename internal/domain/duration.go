package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ComputeDuration returns the elapsed time between entry and exit formatted
// as HH:MM:SS. Hours are not wrapped at 24, so multi-day visits render as
// e.g. "26:15:00". Exit must be strictly after entry.
func ComputeDuration(entry, exit time.Time) (string, error) {
	if !exit.After(entry) {
		return "", ErrInvalidTimeRange("exit time must be after entry time")
	}
	return FormatClock(exit.Sub(entry)), nil
}

// FormatClock renders a duration as zero-padded HH:MM:SS with unbounded hours.
func FormatClock(d time.Duration) string {
	secs := int64(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// ParseClock parses an HH:MM:SS string into a duration. Hours may exceed 24;
// minutes and seconds must be in [0, 59].
func ParseClock(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, ErrValidation("duration %q must be in HH:MM:SS format", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 {
		return 0, ErrValidation("duration %q has an invalid hour component", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, ErrValidation("duration %q has an invalid minute component", s)
	}
	sec, err := strconv.Atoi(parts[2])
	if err != nil || sec < 0 || sec > 59 {
		return 0, ErrValidation("duration %q has an invalid second component", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(sec)*time.Second, nil
}
