package org

import "github.com/cwarden/agenda/internal/agenda"

// Loader loads path as an agenda outline. It satisfies agenda.Loader.
func Loader(path string) (agenda.Outline, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return outline{doc}, nil
}

type outline struct {
	doc *Document
}

func (o outline) Headings() []agenda.Heading {
	out := make([]agenda.Heading, len(o.doc.Headlines))
	for i, h := range o.doc.Headlines {
		out[i] = heading{h}
	}
	return out
}

type heading struct {
	h *Headline
}

func (h heading) Title() string {
	return h.h.Title
}

func (h heading) Deadline() (agenda.Span, bool) {
	if h.h.Deadline == nil {
		return agenda.Span{}, false
	}
	return span(*h.h.Deadline), true
}

func (h heading) Timestamps() []agenda.Span {
	out := make([]agenda.Span, len(h.h.Timestamps))
	for i, ts := range h.h.Timestamps {
		out[i] = span(ts)
	}
	return out
}

func span(ts Timestamp) agenda.Span {
	s := agenda.Span{Start: agenda.MomentOf(ts.Start, ts.HasTime)}
	if ts.End != nil {
		end := agenda.MomentOf(*ts.End, ts.HasEndTime)
		s.End = &end
	}
	return s
}
