// Package org reads org-mode outline files: headlines, planning lines and
// active timestamps. Only what the agenda needs is parsed; markup, lists,
// tables and blocks are kept as raw body lines.
package org

import "time"

// Timestamp is an org timestamp, a point in time or a range.
type Timestamp struct {
	Start      time.Time
	End        *time.Time // nil for point timestamps
	HasTime    bool       // Start carries a time of day
	HasEndTime bool       // End carries a time of day
	Active     bool
	Raw        string
}

// IsRange reports whether the timestamp has an end.
func (t Timestamp) IsRange() bool {
	return t.End != nil
}

type Headline struct {
	Level     int
	Title     string // without stars and trailing tags
	Tags      []string
	Line      int
	Deadline  *Timestamp
	Scheduled *Timestamp
	Closed    *Timestamp
	// Timestamps holds the active timestamps of the headline and its body,
	// planning lines excluded, in order of appearance.
	Timestamps []Timestamp
	Body       []string
}

type Document struct {
	Path      string
	Preamble  []string // lines before the first headline
	Headlines []*Headline
}
