package org

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	headlineRe = regexp.MustCompile(`^(\*+)\s+(.*?)\s*$`)
	tagsRe     = regexp.MustCompile(`\s+:([\w@#%:]+):$`)
	planningRe = regexp.MustCompile(`(SCHEDULED|DEADLINE|CLOSED):\s*(<[^>]*>|\[[^\]]*\])`)
	activeRe   = regexp.MustCompile(`<(\d{4}-\d{2}-\d{2}[^>]*)>(?:--<(\d{4}-\d{2}-\d{2}[^>]*)>)?`)
	drawerRe   = regexp.MustCompile(`^\s*:([\w-]+):\s*$`)
	clockRe    = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:-(\d{1,2}):(\d{2}))?$`)
)

// Load parses the outline file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Parse reads an outline. Timestamps are interpreted in the local time
// zone. A malformed active timestamp is an error.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}
	var current *Headline
	inDrawer := false
	lineNum := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if matches := headlineRe.FindStringSubmatch(line); matches != nil {
			h, err := parseHeadline(len(matches[1]), matches[2], lineNum)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNum, err)
			}
			doc.Headlines = append(doc.Headlines, h)
			current = h
			inDrawer = false
			continue
		}

		if current == nil {
			doc.Preamble = append(doc.Preamble, line)
			continue
		}
		current.Body = append(current.Body, line)

		// Drawers hold properties and clock logs, never agenda entries.
		if m := drawerRe.FindStringSubmatch(line); m != nil {
			inDrawer = !strings.EqualFold(m[1], "END")
			continue
		}
		if inDrawer {
			continue
		}

		if err := current.parseBodyLine(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

func parseHeadline(level int, text string, lineNum int) (*Headline, error) {
	h := &Headline{Level: level, Line: lineNum}

	if m := tagsRe.FindStringSubmatch(text); m != nil {
		for _, tag := range strings.Split(m[1], ":") {
			if tag != "" {
				h.Tags = append(h.Tags, tag)
			}
		}
		text = strings.TrimSpace(text[:len(text)-len(m[0])])
	}
	h.Title = text

	stamps, err := activeTimestamps(text)
	if err != nil {
		return nil, err
	}
	h.Timestamps = stamps
	return h, nil
}

func (h *Headline) parseBodyLine(line string) error {
	for _, m := range planningRe.FindAllStringSubmatch(line, -1) {
		raw := m[2]
		ts, err := parseTimestamp(raw[1:len(raw)-1], raw[0] == '<')
		if err != nil {
			return fmt.Errorf("%s: %w", m[1], err)
		}
		ts.Raw = raw

		switch m[1] {
		case "DEADLINE":
			h.Deadline = &ts
		case "SCHEDULED":
			h.Scheduled = &ts
		case "CLOSED":
			h.Closed = &ts
		}
	}

	stamps, err := activeTimestamps(planningRe.ReplaceAllString(line, ""))
	if err != nil {
		return err
	}
	h.Timestamps = append(h.Timestamps, stamps...)
	return nil
}

// activeTimestamps returns the active point and range timestamps in text.
func activeTimestamps(text string) ([]Timestamp, error) {
	var out []Timestamp

	for _, m := range activeRe.FindAllStringSubmatch(text, -1) {
		ts, err := parseTimestamp(m[1], true)
		if err != nil {
			return nil, err
		}

		if m[2] != "" {
			end, err := parseTimestamp(m[2], true)
			if err != nil {
				return nil, err
			}
			ts.End = &end.Start
			ts.HasEndTime = end.HasTime
		}

		ts.Raw = m[0]
		out = append(out, ts)
	}

	return out, nil
}

// parseTimestamp parses the inside of a timestamp:
// "2024-03-05 Tue 10:00-11:30 +1w".
func parseTimestamp(inner string, active bool) (Timestamp, error) {
	fields := strings.Fields(inner)
	if len(fields) == 0 {
		return Timestamp{}, fmt.Errorf("empty timestamp")
	}

	date, err := time.ParseInLocation("2006-01-02", fields[0], time.Local)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid date %q", fields[0])
	}
	ts := Timestamp{Start: date, Active: active}

	for _, field := range fields[1:] {
		switch {
		case clockRe.MatchString(field):
			m := clockRe.FindStringSubmatch(field)
			start, err := atClock(date, m[1], m[2])
			if err != nil {
				return Timestamp{}, err
			}
			ts.Start = start
			ts.HasTime = true

			if m[3] != "" {
				end, err := atClock(date, m[3], m[4])
				if err != nil {
					return Timestamp{}, err
				}
				ts.End = &end
				ts.HasEndTime = true
			}

		case strings.ContainsAny(field[:1], "+.-"):
			// Repeater or warning delay.

		case isWord(field):
			// Day name, in any language.

		default:
			return Timestamp{}, fmt.Errorf("unexpected %q in timestamp", field)
		}
	}

	return ts, nil
}

func atClock(date time.Time, hour, minute string) (time.Time, error) {
	h, _ := strconv.Atoi(hour)
	m, _ := strconv.Atoi(minute)
	if h > 23 || m > 59 {
		return time.Time{}, fmt.Errorf("invalid time %s:%s", hour, minute)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, 0, 0, date.Location()), nil
}

func isWord(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return false
		}
	}
	return true
}
