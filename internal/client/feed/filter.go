package feed

import (
	"sort"
	"strings"

	"github.com/elivanov/inkwell/internal/client/models"
)

// DateOrder orders by creation timestamp. It is always applied and defaults
// to newest-first.
type DateOrder string

const (
	DateNewest DateOrder = "newest"
	DateOldest DateOrder = "oldest"
)

// CountOrder orders by an engagement counter (likes or views). The zero
// value leaves the previous ordering untouched.
type CountOrder string

const (
	CountUnordered CountOrder = ""
	CountMost      CountOrder = "most"
	CountLeast     CountOrder = "least"
)

// Filters is the UI-local filter state of the listing page. It is pure
// data and never persisted.
type Filters struct {
	Query    string
	Category models.Category // "" = no category filter
	Author   string          // "" = no author filter
	Date     DateOrder       // "" behaves as DateNewest
	Likes    CountOrder
	Views    CountOrder
}

// DefaultFilters returns the initial filter state.
func DefaultFilters() Filters {
	return Filters{Date: DateNewest}
}

// Apply produces a new ordered sequence from articles under f. The input
// is never mutated. Steps run in a fixed order regardless of which
// filters are set: text search, category, author, then date ordering,
// then likes, then views. Each later sort is stable over the previous
// one, so when several orders are set the last one applied dominates.
func Apply(articles []models.Article, f Filters) []models.Article {
	list := make([]models.Article, len(articles))
	copy(list, articles)

	if q := strings.TrimSpace(f.Query); q != "" {
		q = strings.ToLower(q)
		list = keep(list, func(a models.Article) bool {
			return strings.Contains(strings.ToLower(a.Title), q) ||
				strings.Contains(strings.ToLower(a.Content), q)
		})
	}

	if f.Category != "" {
		list = keep(list, func(a models.Article) bool { return a.Category == f.Category })
	}

	if f.Author != "" {
		list = keep(list, func(a models.Article) bool { return a.AuthorName() == f.Author })
	}

	if f.Date == DateOldest {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		})
	} else {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		})
	}

	switch f.Likes {
	case CountMost:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Likes > list[j].Likes })
	case CountLeast:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Likes < list[j].Likes })
	}

	switch f.Views {
	case CountMost:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Views > list[j].Views })
	case CountLeast:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Views < list[j].Views })
	}

	return list
}

func keep(list []models.Article, pred func(models.Article) bool) []models.Article {
	out := list[:0]
	for _, a := range list {
		if pred(a) {
			out = append(out, a)
		}
	}
	return out
}

// Authors returns the distinct author display names of articles in
// first-seen order, using the fallback label for absent authors. Used to
// populate the author filter choices.
func Authors(articles []models.Article) []string {
	seen := make(map[string]struct{}, len(articles))
	var names []string
	for _, a := range articles {
		name := a.AuthorName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// Popular returns the n most-viewed articles, most viewed first. The
// input is not mutated.
func Popular(articles []models.Article, n int) []models.Article {
	list := make([]models.Article, len(articles))
	copy(list, articles)
	sort.SliceStable(list, func(i, j int) bool { return list[i].Views > list[j].Views })
	if n < len(list) {
		list = list[:n]
	}
	return list
}
