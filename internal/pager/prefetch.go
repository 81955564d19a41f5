package pager

import (
	"strings"

	"github.com/five82/skim/internal/source"
)

// Geometry describes what the viewport showed on the last render.
type Geometry struct {
	Height          int // visible line count of the body window
	LastVisibleLine int // index just past the last rendered line
}

// Chunk is one hand-off from a prefetch worker to the main loop.
// Chunks for a given source arrive in read order. A Chunk with Done
// set marks the end of a prefetch task and clears the view's Loading
// flag; one with Err set reports a mid-stream failure. AtEnd on the
// Done chunk carries the source's end-of-stream state back to the
// main loop, so nobody has to ask the source while a later worker
// might be reading it.
type Chunk struct {
	SourceID int64
	Frags    []source.Fragment
	Err      error
	Done     bool
	AtEnd    bool
}

// Prefetcher keeps enough content loaded that scrolling forward never
// stalls. It never blocks the caller: reads run on a goroutine, at
// most one per source, and results come back through Events.
type Prefetcher struct {
	events chan Chunk
}

// NewPrefetcher creates a prefetcher. The channel buffer only smooths
// bursts; ordering is preserved regardless of its size.
func NewPrefetcher() *Prefetcher {
	return &Prefetcher{events: make(chan Chunk, 64)}
}

// Events is the ordered hand-off queue. The main loop must drain it
// and feed each Chunk to Registry.Apply.
func (p *Prefetcher) Events() <-chan Chunk { return p.events }

// Tick decides, after a render, whether more data should be pulled for
// the entry. Follow mode forces a read regardless of slack. Reports
// whether a worker was started.
func (p *Prefetcher) Tick(e *Entry, geom Geometry, follow bool) bool {
	v := e.View
	if v.Loading || e.AtEnd() || geom.Height <= 0 {
		return false
	}

	// Keep at least two screens of content below the viewport.
	slack := v.LineCount() - geom.LastVisibleLine
	if slack >= 2*geom.Height && !follow {
		return false
	}

	target := 2*geom.Height - slack
	if target < 1 {
		target = 1
	}

	v.Loading = true
	go p.read(e.Source, e.ID, target)
	return true
}

// read runs on a worker goroutine. It calls ReadChunk until the source
// ends or target newline boundaries have been produced, handing every
// chunk to the main loop in order. It never touches the view.
func (p *Prefetcher) read(src source.Source, id int64, target int) {
	for target > 0 && !src.AtEnd() {
		frags, err := src.ReadChunk()
		if err != nil {
			p.events <- Chunk{SourceID: id, Err: err}
			break
		}
		if len(frags) > 0 {
			for _, f := range frags {
				target -= strings.Count(f.Text, "\n")
			}
			p.events <- Chunk{SourceID: id, Frags: frags}
		}
	}
	p.events <- Chunk{SourceID: id, Done: true, AtEnd: src.AtEnd()}
}

// Apply merges a delivered chunk into the owning view on the main
// loop. Chunks for sources that were removed mid-read are dropped.
// The returned status text is non-empty when a read error should be
// surfaced to the user.
func (r *Registry) Apply(c Chunk, follow bool) (status string) {
	e := r.byID(c.SourceID)
	if e == nil {
		return ""
	}
	if c.Err != nil {
		e.stalled = true
		status = c.Err.Error()
	}
	if len(c.Frags) > 0 {
		e.View.Append(c.Frags)
		if follow && e == r.CurrentEntry() {
			e.View.MoveCursorToEnd()
		}
	}
	if c.Done {
		e.View.Loading = false
		if c.AtEnd {
			e.done = true
		}
	}
	return status
}
