// Package feed implements the article-listing pipeline: filtering and
// sorting of the fetched collection, plus the incremental reveal window
// grown as the user scrolls. The pipeline only reorders and filters a
// local copy; articles themselves are never mutated here.
package feed

import "github.com/elivanov/inkwell/internal/client/models"

// Feed ties the fetched collection, the filter state and the reveal
// cursor together. Changing the query or filters recomputes the filtered
// sequence and resets the cursor in the same call, so a stale window is
// never observable.
type Feed struct {
	articles []models.Article
	filters  Filters
	reveal   *Reveal
	filtered []models.Article
}

func New(pageSize int) *Feed {
	f := &Feed{
		filters: DefaultFilters(),
		reveal:  NewReveal(pageSize),
	}
	f.filtered = Apply(f.articles, f.filters)
	return f
}

// SetArticles replaces the fetched collection and recomputes the view,
// resetting the cursor to the first page.
func (f *Feed) SetArticles(articles []models.Article) {
	f.articles = articles
	f.refresh()
}

// SetFilters replaces the filter state, recomputes and resets the cursor.
func (f *Feed) SetFilters(filters Filters) {
	f.filters = filters
	f.refresh()
}

// SetQuery updates only the search query, recomputes and resets the cursor.
func (f *Feed) SetQuery(query string) {
	f.filters.Query = query
	f.refresh()
}

// ResetFilters restores the default filter state (empty query included).
func (f *Feed) ResetFilters() {
	f.filters = DefaultFilters()
	f.refresh()
}

func (f *Feed) refresh() {
	f.filtered = Apply(f.articles, f.filters)
	f.reveal.Reset()
}

func (f *Feed) Filters() Filters { return f.filters }

// Len is the length of the filtered sequence.
func (f *Feed) Len() int { return len(f.filtered) }

// Visible returns the currently revealed slice of the filtered sequence.
func (f *Feed) Visible() []models.Article {
	return f.filtered[:f.reveal.Visible(len(f.filtered))]
}

// HasMore reports whether items remain beyond the revealed window.
func (f *Feed) HasMore() bool {
	return f.reveal.HasMore(len(f.filtered))
}

// Advance reveals the next page in response to a reveal signal. Reports
// whether the window grew.
func (f *Feed) Advance() bool {
	return f.reveal.Advance(len(f.filtered))
}

// Authors lists the distinct author names of the fetched collection.
func (f *Feed) Authors() []string {
	return Authors(f.articles)
}
