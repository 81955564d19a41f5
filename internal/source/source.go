// Package source defines pluggable content providers for the pager.
//
// A Source produces styled text in chunks. Reading may block, so the
// pager only ever calls ReadChunk from a worker goroutine, never from
// the render loop.
package source

// Fragment is a run of text sharing one style tag. Style tags are
// opaque to the engine; the UI maps them to terminal styles.
type Fragment struct {
	Style string
	Text  string
}

// Source is a named, possibly streaming provider of styled text.
type Source interface {
	// Name returns the filename or display name for this input.
	Name() string

	// AtEnd reports whether the end of the input was reached.
	AtEnd() bool

	// ReadChunk reads the next batch of content. It may block and is
	// always invoked off the render loop. A nil slice with a nil error
	// means no content was available for this call.
	ReadChunk() ([]Fragment, error)

	// Close releases resources held by the source.
	Close() error
}

// Dummy is an empty source. The registry substitutes it when no real
// source exists so callers never special-case emptiness.
type Dummy struct{}

func (Dummy) Name() string                   { return "" }
func (Dummy) AtEnd() bool                    { return true }
func (Dummy) ReadChunk() ([]Fragment, error) { return nil, nil }
func (Dummy) Close() error                   { return nil }

// String is a one-shot source backed by a plain string. The first
// ReadChunk returns the entire content.
type String struct {
	name string
	text string
	read bool
}

// NewString creates a source serving the given text.
func NewString(name, text string) *String {
	return &String{name: name, text: text}
}

func (s *String) Name() string { return s.name }
func (s *String) AtEnd() bool  { return s.read }
func (s *String) Close() error { return nil }

func (s *String) ReadChunk() ([]Fragment, error) {
	if s.read {
		return nil, nil
	}
	s.read = true
	return []Fragment{{Text: s.text}}, nil
}

// FormattedText is a one-shot source backed by pre-styled fragments,
// used for generated content such as the help screen.
type FormattedText struct {
	name  string
	frags []Fragment
	read  bool
}

// NewFormattedText creates a source serving the given fragments.
func NewFormattedText(name string, frags []Fragment) *FormattedText {
	return &FormattedText{name: name, frags: frags}
}

func (s *FormattedText) Name() string { return s.name }
func (s *FormattedText) AtEnd() bool  { return s.read }
func (s *FormattedText) Close() error { return nil }

func (s *FormattedText) ReadChunk() ([]Fragment, error) {
	if s.read {
		return nil, nil
	}
	s.read = true
	return s.frags, nil
}

// Generator pulls content from a caller-supplied iterator function.
// The iterator returns ok == false when exhausted; exhaustion is not
// an error.
type Generator struct {
	name string
	next func() ([]Fragment, bool)
	eof  bool
}

// NewGenerator creates a source that repeatedly calls next until it
// reports exhaustion.
func NewGenerator(name string, next func() ([]Fragment, bool)) *Generator {
	return &Generator{name: name, next: next}
}

func (s *Generator) Name() string { return s.name }
func (s *Generator) AtEnd() bool  { return s.eof }
func (s *Generator) Close() error { return nil }

func (s *Generator) ReadChunk() ([]Fragment, error) {
	if s.eof {
		return nil, nil
	}
	frags, ok := s.next()
	if !ok {
		s.eof = true
		return nil, nil
	}
	return frags, nil
}
