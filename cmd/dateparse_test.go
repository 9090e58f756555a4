package main

import (
	"testing"
	"time"
)

func TestParseDateTime_EmptyString(t *testing.T) {
	_, err := parseDateTime("")
	if err == nil {
		t.Error("Expected error for empty string")
	}
}

func TestParseDateTime_NamedDates(t *testing.T) {
	for _, input := range []string{"today", "yesterday"} {
		t.Run(input, func(t *testing.T) {
			result, err := parseDateTime(input)
			if err != nil {
				t.Fatalf("Expected %s to parse successfully, got error: %v", input, err)
			}

			if result.Hour() != 0 || result.Minute() != 0 || result.Second() != 0 {
				t.Errorf("Expected %s to return midnight, got %02d:%02d:%02d",
					input, result.Hour(), result.Minute(), result.Second())
			}
		})
	}

	yesterday, _ := parseDateTime("yesterday")
	today, _ := parseDateTime("today")

	if !yesterday.Before(today) {
		t.Errorf("Expected yesterday (%v) to be before today (%v)", yesterday, today)
	}
}

func TestParseDateTime_ISO8601Formats(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
		desc     string
	}{
		{"2025-01-01", true, "ISO 8601 date only"},
		{"2025-01-01T15:04:05", true, "ISO 8601 datetime without timezone"},
		{"2025-01-01T15:04:05Z", true, "ISO 8601 datetime with Z suffix"},
		{"2025-01-01T15:04:05-07:00", true, "ISO 8601 datetime with timezone offset"},
		{"2025-02-29", false, "invalid date, 2025 is not a leap year"},
		{"2024-02-29", true, "valid date, 2024 is a leap year"},
		{"2025/01/01", false, "wrong separator"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result, err := parseDateTime(tc.input)
			if tc.expected && err != nil {
				t.Errorf("Expected %s to parse successfully (%s), got error: %v", tc.input, tc.desc, err)
			}

			if tc.expected && result.IsZero() {
				t.Errorf("Expected %s to return valid time (%s), got zero time", tc.input, tc.desc)
			}

			if !tc.expected && err == nil {
				t.Errorf("Expected %s to fail parsing (%s), but it succeeded", tc.input, tc.desc)
			}
		})
	}
}

func TestParseDateTime_RelativeDayDurations(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"1d", true},
		{"30d", true},
		{"365d", true},
		{"-1d", false},
		{"3.5d", false},
		{"d", false},
	}

	now := time.Now()

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result, err := parseDateTime(tc.input)
			if tc.expected && err != nil {
				t.Errorf("Expected %s to parse successfully, got error: %v", tc.input, err)
			}

			if !tc.expected && err == nil {
				t.Errorf("Expected %s to fail parsing, but it succeeded", tc.input)
			}

			// Relative inputs always land in the past.
			if tc.expected && err == nil && result.After(now.Add(time.Second)) {
				t.Errorf("Expected %s to return a past time, got %v", tc.input, result)
			}
		})
	}
}

func TestParseDateTime_GoDurations(t *testing.T) {
	now := time.Now()

	for _, input := range []string{"24h", "2h30m", "1h30m45s"} {
		t.Run(input, func(t *testing.T) {
			result, err := parseDateTime(input)
			if err != nil {
				t.Fatalf("Expected %s to parse successfully, got error: %v", input, err)
			}

			if result.After(now) {
				t.Errorf("Expected %s to return a past time, got %v", input, result)
			}
		})
	}
}

func TestParseDateTime_NaturalLanguage(t *testing.T) {
	now := time.Now()

	for _, input := range []string{"last week", "3 days ago", "last month", "2 years ago"} {
		t.Run(input, func(t *testing.T) {
			result, err := parseDateTime(input)
			if err != nil {
				t.Fatalf("Expected %s to parse successfully, got error: %v", input, err)
			}

			if !result.Before(now) {
				t.Errorf("Expected %s to return a past time, got %v", input, result)
			}
		})
	}
}

func TestParseDateTime_InvalidInputs(t *testing.T) {
	testCases := []string{
		"invalid",
		"garbage",
		"not a date",
		"%%%",
	}

	for _, input := range testCases {
		t.Run(input, func(t *testing.T) {
			_, err := parseDateTime(input)
			if err == nil {
				t.Errorf("Expected %s to fail parsing, but it succeeded", input)
			}
		})
	}
}

func TestParseDateTime_ISOBeforeNaturalLanguage(t *testing.T) {
	result, err := parseDateTime("2025-01-01")
	if err != nil {
		t.Fatalf("Expected 2025-01-01 to parse successfully, got error: %v", err)
	}

	if result.Year() != 2025 || result.Month() != time.January || result.Day() != 1 {
		t.Errorf("Expected 2025-01-01 to parse as January 1, 2025, got %v", result)
	}
}
