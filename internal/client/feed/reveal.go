package feed

// DefaultPageSize is how many articles are revealed initially and per
// advance signal.
const DefaultPageSize = 6

// Reveal is the incremental-reveal cursor over a filtered sequence. It
// only tracks the visible count; the sequence itself (and its length)
// stays with the caller. All items are already local, so advancing is
// pure arithmetic; no network pagination is involved.
type Reveal struct {
	pageSize int
	visible  int
}

// NewReveal returns a cursor showing the first pageSize items. A
// non-positive pageSize falls back to DefaultPageSize.
func NewReveal(pageSize int) *Reveal {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Reveal{pageSize: pageSize, visible: pageSize}
}

// Visible returns how many of total items are currently revealed.
func (r *Reveal) Visible(total int) int {
	if r.visible > total {
		return total
	}
	return r.visible
}

// HasMore reports whether items remain beyond the cursor.
func (r *Reveal) HasMore(total int) bool {
	return r.visible < total
}

// Advance grows the window by one page in response to a reveal signal
// (the sentinel entering the viewport). It is a no-op when no items
// remain; the cursor never exceeds total. Reports whether the window
// actually grew.
func (r *Reveal) Advance(total int) bool {
	if !r.HasMore(total) {
		return false
	}
	r.visible += r.pageSize
	if r.visible > total {
		r.visible = total
	}
	return true
}

// Reset snaps the cursor back to the first page. Must be called
// synchronously with any filter or search change so no stale
// over-revealed window survives the transition.
func (r *Reveal) Reset() {
	r.visible = r.pageSize
}
