package app

import (
	"errors"

	"example.com/gapedit/pkg/search"
)

var errNoMatch = errors.New("no match")

// runSearchPrompt asks for a query, highlights every match in the active
// document and moves the cursor to the first match after it, wrapping to
// the top.
func (r *Runner) runSearchPrompt() {
	r.runPrompt("Search: ", r.LastSearch, func(query string) error {
		if !r.findNext(query) {
			return errNoMatch
		}
		return nil
	})
}

// findNext highlights query in the active document and jumps to the next
// match. It reports whether any match exists.
func (r *Runner) findNext(query string) bool {
	d := r.doc()
	ranges := search.SearchAll(d.Bytes(), []byte(query))
	idx := search.SearchNext(ranges, d.Cursor())
	r.Logger.Event("search", map[string]any{"query": query, "matches": len(ranges)})
	if idx < 0 {
		r.highlights = nil
		return false
	}
	r.LastSearch = query
	r.highlights = ranges
	d.MoveAbsolute(ranges[idx].Start)
	return true
}
