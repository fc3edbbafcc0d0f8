// Package style holds the terminal style tokens used to draw the calendar
// and the event panel. Tokens are raw SGR sequences that callers splice
// into text; they are never interpreted by the renderers.
package style

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Levels is the number of busy intensities a day can be drawn with.
const Levels = 10

type Style struct {
	None string

	Month       string
	Today       string
	WeekdayName string
	WeekendName string
	Weekday     string
	Weekend     string

	Default   string
	Highlight string
	Vacant    string
	Special   string

	Levels [Levels]string

	EventHeader  string
	EventPast    string
	EventToday   string
	EventFuture  string
	EventSpecial string
}

// Plain returns a style where every token is empty. Output drawn with it
// contains no escape sequences at all.
func Plain() *Style {
	return &Style{}
}

// Default returns the standard style with busy levels drawn from the named
// palette.
func Default(palette string) (*Style, error) {
	if _, ok := palettes[palette]; !ok {
		return nil, fmt.Errorf("unknown palette %q", palette)
	}

	reset := sgr(termenv.ResetSeq)
	bold := sgr(termenv.BoldSeq)
	light := sgr(termenv.FaintSeq)
	fgBlack := sgr(termenv.ANSIColor(termenv.ANSIBlack).Sequence(false))
	fgWhite := sgr(termenv.ANSIColor(termenv.ANSIWhite).Sequence(false))
	bgBlack := sgr(termenv.ANSIColor(termenv.ANSIBlack).Sequence(true))
	fgRed := sgr(termenv.ANSIColor(termenv.ANSIRed).Sequence(false))

	s := &Style{
		None: reset,

		Month:       reset + bold + fgWhite + bgBlack,
		Today:       reset + bold + rgb("#ffffff", false) + rgb("#000000", true),
		WeekdayName: reset + bold + fgBlack,
		WeekendName: reset + light + fgBlack,
		Weekday:     reset,
		Weekend:     reset + light,

		Highlight: ColorPair("yellow", 3),
		Vacant:    reset + light,

		EventHeader:  reset + bold + rgb("#000000", false),
		EventPast:    reset + light,
		EventToday:   reset + fgBlack + bold,
		EventFuture:  reset,
		EventSpecial: fgRed,
	}
	for i := range s.Levels {
		s.Levels[i] = reset + ColorPair(palette, i)
	}
	return s, nil
}

// Level returns the busy token for a day holding count events. Counts past
// the last level saturate.
func (s *Style) Level(count int) string {
	if count < 1 {
		return ""
	}
	return s.Levels[min(count-1, Levels-1)]
}

// Override replaces a named token with a palette color pair spec of the
// form "palette:level" or with a raw termenv color ("#rrggbb" or an ANSI
// index), used by the color lines of the config file.
func (s *Style) Override(element, spec string) error {
	token, err := parseColorSpec(spec)
	if err != nil {
		return fmt.Errorf("color %s: %w", element, err)
	}

	switch element {
	case "month":
		s.Month = token
	case "today":
		s.Today = token
	case "weekday_name":
		s.WeekdayName = token
	case "weekend_name":
		s.WeekendName = token
	case "weekend":
		s.Weekend = token
	case "default":
		s.Default = token
	case "highlight":
		s.Highlight = token
	case "vacant":
		s.Vacant = token
	case "special":
		s.Special = token
	case "event_header":
		s.EventHeader = token
	case "event_past":
		s.EventPast = token
	case "event_today":
		s.EventToday = token
	case "event_future":
		s.EventFuture = token
	case "event_special":
		s.EventSpecial = token
	default:
		return fmt.Errorf("unknown style element: %s", element)
	}
	return nil
}

func parseColorSpec(spec string) (string, error) {
	spec = strings.TrimSpace(spec)
	if name, level, ok := strings.Cut(spec, ":"); ok {
		var n int
		if _, err := fmt.Sscanf(level, "%d", &n); err != nil {
			return "", fmt.Errorf("invalid level %q", level)
		}
		if _, known := palettes[name]; !known {
			return "", fmt.Errorf("unknown palette %q", name)
		}
		return sgr(termenv.ResetSeq) + ColorPair(name, n), nil
	}

	c := termenv.TrueColor.Color(spec)
	if c == nil {
		return "", fmt.Errorf("invalid color %q", spec)
	}
	return sgr(termenv.ResetSeq) + sgr(c.Sequence(false)), nil
}

func sgr(seq string) string {
	return termenv.CSI + seq + "m"
}

func rgb(hex string, bg bool) string {
	return sgr(termenv.RGBColor(hex).Sequence(bg))
}
