package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tj/go-naturaldate"
)

// parseDateTime parses the --older-than value. It supports:
// - Named dates: "today", "yesterday" (midnight, deterministic)
// - ISO 8601: "2006-01-02", "2006-01-02T15:04:05", with timezone variants
// - Relative day counts: "30d", "365d" (Go's ParseDuration has no "d")
// - Go durations: "24h", "2h30m"
// - Natural language fallback via go-naturaldate: "last month", "2 years ago"
//
// ISO formats are tried before natural language so parsing stays
// deterministic.
func parseDateTime(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	now := time.Now()

	switch dateStr {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil

	case "yesterday":
		yesterday := now.AddDate(0, 0, -1)

		return time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, yesterday.Location()), nil
	}

	isoFormats := []string{
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}

	for _, format := range isoFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	if strings.HasSuffix(dateStr, "d") {
		daysStr := strings.TrimSuffix(dateStr, "d")
		if days, err := strconv.Atoi(daysStr); err == nil && days >= 0 {
			return now.Add(-time.Duration(days) * 24 * time.Hour), nil
		}
	}

	if duration, err := time.ParseDuration(dateStr); err == nil {
		return now.Add(-duration), nil
	}

	return parseNaturalDate(dateStr, now)
}

// parseNaturalDate attempts natural language parsing as a last resort.
func parseNaturalDate(dateStr string, now time.Time) (time.Time, error) {
	t, err := naturaldate.Parse(dateStr, now, naturaldate.WithDirection(naturaldate.Past))
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date: %s. Supported formats: ISO 8601 (2006-01-02), relative durations (30d, 24h), named dates (today, yesterday), or natural language (last month, 2 years ago)", dateStr)
	}

	// naturaldate can return the reference time unchanged instead of an
	// error when it cannot parse the input.
	if !t.Equal(now) {
		return t, nil
	}

	if lower := strings.ToLower(strings.TrimSpace(dateStr)); lower == "now" {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}
