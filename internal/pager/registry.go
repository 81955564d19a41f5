package pager

import (
	"errors"

	"github.com/five82/skim/internal/source"
)

// ErrLastBuffer is returned when removal would leave the registry
// empty. The message text is shown to the user verbatim.
var ErrLastBuffer = errors.New("Can't remove the last buffer.")

// Entry pairs a source with its view state. The view lives exactly as
// long as the entry does.
type Entry struct {
	ID     int64
	Source source.Source
	View   *View

	// stalled is set when a mid-stream read failed; the source is then
	// treated as having reached its end and is never read again.
	stalled bool

	// done mirrors the source's end-of-stream state on the main loop,
	// fed back through the Done chunk of each prefetch task.
	done bool
}

// AtEnd reports whether streaming for this entry is finished, either
// because the source is exhausted or because a read failed. The source
// itself is only consulted while no read is in flight; a prefetch
// worker owns the source's state for the duration of its task.
func (e *Entry) AtEnd() bool {
	if e.stalled || e.done {
		return true
	}
	if e.View.Loading {
		return false
	}
	return e.Source.AtEnd()
}

// Registry is the ordered collection of open sources and the current
// index. All methods must be called from the main loop.
type Registry struct {
	entries []*Entry
	current int
	nextID  int64

	dummy *Entry
}

// NewRegistry returns an empty registry. Current() and CurrentView()
// serve a placeholder entry until a real source is added.
func NewRegistry() *Registry {
	return &Registry{
		dummy: &Entry{Source: source.Dummy{}, View: NewView()},
	}
}

// Len returns the number of real sources.
func (r *Registry) Len() int { return len(r.entries) }

// Index returns the current source index.
func (r *Registry) Index() int { return r.current }

// Add appends a source, creates its view, and makes it current.
func (r *Registry) Add(src source.Source) *View {
	r.nextID++
	e := &Entry{ID: r.nextID, Source: src, View: NewView()}
	r.entries = append(r.entries, e)
	r.current = len(r.entries) - 1
	return e.View
}

// OpenFile opens path as a new file source and focuses it. On failure
// the registry is left unchanged and the error is returned for display
// as a status message.
func (r *Registry) OpenFile(path string) error {
	src, err := source.NewFile(path)
	if err != nil {
		return err
	}
	r.Add(src)
	return nil
}

// RemoveCurrent deletes the current source after focusing the previous
// one. Removing the last remaining source is rejected with
// ErrLastBuffer and leaves the registry unchanged.
func (r *Registry) RemoveCurrent() error {
	if len(r.entries) <= 1 {
		return ErrLastBuffer
	}
	removed := r.current
	r.FocusPrevious()
	_ = r.entries[removed].Source.Close()
	r.entries = append(r.entries[:removed], r.entries[removed+1:]...)
	if r.current > removed {
		r.current--
	}
	return nil
}

// FocusNext advances the current index, wrapping past the end.
func (r *Registry) FocusNext() {
	if len(r.entries) == 0 {
		return
	}
	r.current = (r.current + 1) % len(r.entries)
}

// FocusPrevious moves the current index back, wrapping past the start.
func (r *Registry) FocusPrevious() {
	if len(r.entries) == 0 {
		return
	}
	r.current = (r.current - 1 + len(r.entries)) % len(r.entries)
}

// CurrentEntry returns the active entry, or the placeholder when the
// registry is empty. Never nil.
func (r *Registry) CurrentEntry() *Entry {
	if len(r.entries) == 0 {
		return r.dummy
	}
	return r.entries[r.current]
}

// Current returns the active source.
func (r *Registry) Current() source.Source { return r.CurrentEntry().Source }

// CurrentView returns the active view state.
func (r *Registry) CurrentView() *View { return r.CurrentEntry().View }

// Entries returns the registry's entries in order. The slice is owned
// by the registry and must not be modified.
func (r *Registry) Entries() []*Entry { return r.entries }

// byID finds an entry by its stable id. Returns nil when the source
// was removed, which late prefetch deliveries must tolerate.
func (r *Registry) byID(id int64) *Entry {
	for _, e := range r.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Close closes every source. Used on shutdown.
func (r *Registry) Close() {
	for _, e := range r.entries {
		_ = e.Source.Close()
	}
}
