// Package parser reads the day arguments of the command line: ISO dates,
// short numeric and month-name dates, and relative days such as
// "tomorrow", "next fri" or "in 2 weeks".
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cwarden/agenda/internal/agenda"
)

var (
	isoRe       = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	numericRe   = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})(?:[/-](\d{4}))?$`)
	monthNameRe = regexp.MustCompile(`^([a-z]+)\s+(\d{1,2})(?:,?\s+(\d{4}))?$`)
	weekdayRe   = regexp.MustCompile(`^(next|this)\s+([a-z]+)$`)
	inRe        = regexp.MustCompile(`^in\s+(\d+)\s+(day|days|week|weeks|month|months)$`)
	fromNowRe   = regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks|month|months)\s+from\s+(now|today)$`)
	offsetRe    = regexp.MustCompile(`^([+-]\d+)$`)
)

var weekdays = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// ParseDay reads a day relative to today. Dates without a year fall in
// the year of today.
func ParseDay(input string, today agenda.Date) (agenda.Date, error) {
	lower := strings.ToLower(strings.Join(strings.Fields(input), " "))
	if lower == "" {
		return agenda.Date{}, fmt.Errorf("empty date")
	}

	switch lower {
	case "today":
		return today, nil
	case "tomorrow", "tmrw":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	if m := isoRe.FindStringSubmatch(lower); m != nil {
		return build(atoi(m[1]), atoi(m[2]), atoi(m[3]), input)
	}

	// MM/DD/YYYY, MM-DD or MM/DD
	if m := numericRe.FindStringSubmatch(lower); m != nil {
		year := today.Year
		if m[3] != "" {
			year = atoi(m[3])
		}
		return build(year, atoi(m[1]), atoi(m[2]), input)
	}

	// Month DD, YYYY or Month DD
	if m := monthNameRe.FindStringSubmatch(lower); m != nil {
		if month, ok := months[m[1]]; ok {
			year := today.Year
			if m[3] != "" {
				year = atoi(m[3])
			}
			return build(year, int(month), atoi(m[2]), input)
		}
	}

	// Next/this weekday
	if m := weekdayRe.FindStringSubmatch(lower); m != nil {
		if wd, ok := weekdays[m[2]]; ok {
			return nextWeekday(today, wd, m[1] == "next"), nil
		}
	}

	// In N days/weeks/months, N days/weeks/months from now
	if m := inRe.FindStringSubmatch(lower); m != nil {
		return shift(today, atoi(m[1]), m[2]), nil
	}
	if m := fromNowRe.FindStringSubmatch(lower); m != nil {
		return shift(today, atoi(m[1]), m[2]), nil
	}

	// +N or -N days
	if m := offsetRe.FindStringSubmatch(lower); m != nil {
		return today.AddDays(atoi(m[1])), nil
	}

	return agenda.Date{}, fmt.Errorf("unrecognized date %q", input)
}

// build checks that the day exists instead of normalizing it.
func build(year, month, day int, input string) (agenda.Date, error) {
	if month < 1 || month > 12 || day < 1 || day > agenda.DaysIn(year, time.Month(month)) {
		return agenda.Date{}, fmt.Errorf("invalid date %q", input)
	}
	return agenda.Date{Year: year, Month: time.Month(month), Day: day}, nil
}

func shift(today agenda.Date, n int, unit string) agenda.Date {
	switch {
	case strings.HasPrefix(unit, "week"):
		return today.AddDays(7 * n)
	case strings.HasPrefix(unit, "month"):
		return agenda.DateOf(time.Date(today.Year, today.Month+time.Month(n), today.Day, 0, 0, 0, 0, time.UTC))
	default:
		return today.AddDays(n)
	}
}

// nextWeekday returns the coming target day, never today. With
// skipThisWeek the day is taken from the following week.
func nextWeekday(today agenda.Date, target time.Weekday, skipThisWeek bool) agenda.Date {
	days := int(target - today.Weekday())
	if days <= 0 || skipThisWeek {
		days += 7
	}
	return today.AddDays(days)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
