package agenda

// Outline is a parsed outline document as seen by the agenda.
type Outline interface {
	Headings() []Heading
}

// Heading is one outline entry with its timestamps.
type Heading interface {
	// Title is the raw heading text, keywords and tags included.
	Title() string
	Deadline() (Span, bool)
	// Timestamps returns the active point and range timestamps of the
	// heading in declaration order.
	Timestamps() []Span
}

// Loader opens and parses one outline file.
type Loader func(path string) (Outline, error)

// Holidays maps days off to their label.
type Holidays map[Date]string

// Surface is where the agenda draws. Positions are 1-indexed.
type Surface interface {
	Write(text string, pos Position)
	// Clear erases the whole surface.
	Clear()
	// ClearFrom erases from pos to the end of the surface.
	ClearFrom(pos Position)
	Flush() error
}
