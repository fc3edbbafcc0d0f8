package parser

import (
	"testing"
	"time"

	"github.com/cwarden/agenda/internal/agenda"
)

// Wednesday.
var today = agenda.Date{Year: 2024, Month: time.March, Day: 6}

func TestParseRelativeDays(t *testing.T) {
	tests := []struct {
		input    string
		expected agenda.Date
	}{
		{"today", today},
		{"Tomorrow", agenda.Date{Year: 2024, Month: time.March, Day: 7}},
		{"yesterday", agenda.Date{Year: 2024, Month: time.March, Day: 5}},
		{"this fri", agenda.Date{Year: 2024, Month: time.March, Day: 8}},
		{"this wednesday", agenda.Date{Year: 2024, Month: time.March, Day: 13}},
		{"next monday", agenda.Date{Year: 2024, Month: time.March, Day: 18}},
		{"in 3 days", agenda.Date{Year: 2024, Month: time.March, Day: 9}},
		{"in  1 week", agenda.Date{Year: 2024, Month: time.March, Day: 13}},
		{"2 weeks from now", agenda.Date{Year: 2024, Month: time.March, Day: 20}},
		{"in 1 month", agenda.Date{Year: 2024, Month: time.April, Day: 6}},
		{"+30", agenda.Date{Year: 2024, Month: time.April, Day: 5}},
		{"-6", agenda.Date{Year: 2024, Month: time.February, Day: 29}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDay(tt.input, today)
			if err != nil {
				t.Fatalf("ParseDay failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ParseDay(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseAbsoluteDays(t *testing.T) {
	tests := []struct {
		input    string
		expected agenda.Date
	}{
		{"2024-12-25", agenda.Date{Year: 2024, Month: time.December, Day: 25}},
		{"2025-1-2", agenda.Date{Year: 2025, Month: time.January, Day: 2}},
		{"12/25", agenda.Date{Year: 2024, Month: time.December, Day: 25}},
		{"2/29/2024", agenda.Date{Year: 2024, Month: time.February, Day: 29}},
		{"07-04", agenda.Date{Year: 2024, Month: time.July, Day: 4}},
		{"December 25", agenda.Date{Year: 2024, Month: time.December, Day: 25}},
		{"jan 15, 2025", agenda.Date{Year: 2025, Month: time.January, Day: 15}},
		{"May 1 2023", agenda.Date{Year: 2023, Month: time.May, Day: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDay(tt.input, today)
			if err != nil {
				t.Fatalf("ParseDay failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ParseDay(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseDayErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"   ",
		"someday",
		"2023-02-29",
		"13/01",
		"04/31",
		"smarch 3",
		"next weekday",
		"in two days",
	} {
		t.Run(input, func(t *testing.T) {
			if got, err := ParseDay(input, today); err == nil {
				t.Errorf("ParseDay(%q) = %v, want error", input, got)
			}
		})
	}
}
