package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/elivanov/inkwell/internal/client/feed"
	"github.com/elivanov/inkwell/internal/client/models"
)

// Refresh re-fetches the whole feed from the backend. The current filters
// survive the refresh; the reveal cursor starts over.
func (a *App) Refresh(ctx context.Context) error {
	articles, err := a.client.ListArticles(ctx)
	if err != nil {
		return err
	}
	a.articles = articles
	a.feed.SetArticles(articles)
	fmt.Fprintf(a.out, "Loaded %d articles\n", len(articles))
	return nil
}

// List prints the currently visible slice of the filtered feed.
func (a *App) List(ctx context.Context) error {
	visible := a.feed.Visible()
	if len(visible) == 0 {
		fmt.Fprintln(a.out, "No articles found")
		return nil
	}
	for _, item := range visible {
		a.printOverview(item)
	}
	if a.feed.HasMore() {
		fmt.Fprintf(a.out, "... %d more, type 'more' to reveal\n", a.feed.Len()-len(visible))
	}
	return nil
}

func (a *App) printOverview(item models.Article) {
	fmt.Fprintf(a.out, "[%s] %s | %s | %s | %s | %d likes, %d views\n",
		item.ID, item.Title, item.Category, item.AuthorName(),
		models.ReadTime(item.Content), item.Likes, item.Views)
}

// More reveals the next page of the filtered feed and lists it.
func (a *App) More(ctx context.Context) error {
	if !a.feed.Advance() {
		fmt.Fprintln(a.out, "No more articles")
		return nil
	}
	return a.List(ctx)
}

// Search filters the feed by a case-insensitive title/content substring.
// An empty query drops the search filter.
func (a *App) Search(ctx context.Context, query string) error {
	a.feed.SetQuery(query)
	return a.List(ctx)
}

// FilterCategory narrows the feed to one category. "all" drops the filter.
func (a *App) FilterCategory(ctx context.Context, name string) error {
	f := a.feed.Filters()
	if strings.EqualFold(name, "all") {
		f.Category = ""
	} else {
		c, ok := parseCategory(name)
		if !ok {
			return fmt.Errorf("unknown category %q, one of: %s", name, categoryList())
		}
		f.Category = c
	}
	a.feed.SetFilters(f)
	return a.List(ctx)
}

// parseCategory matches a user-typed category name against the fixed set,
// ignoring case.
func parseCategory(name string) (models.Category, bool) {
	for _, c := range models.Categories {
		if strings.EqualFold(name, string(c)) {
			return c, true
		}
	}
	return "", false
}

func categoryList() string {
	names := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// FilterAuthor narrows the feed to one author display name. "all" drops
// the filter.
func (a *App) FilterAuthor(ctx context.Context, name string) error {
	f := a.feed.Filters()
	if strings.EqualFold(name, "all") {
		f.Author = ""
	} else {
		f.Author = name
	}
	a.feed.SetFilters(f)
	return a.List(ctx)
}

// Sort reorders the feed. Date accepts asc (oldest first) and desc (newest
// first, the default). Likes and views accept desc (most first, the default
// when the field is named) and asc.
func (a *App) Sort(ctx context.Context, field, direction string) error {
	f := a.feed.Filters()
	switch field {
	case "date":
		if direction == "asc" {
			f.Date = feed.DateOldest
		} else {
			f.Date = feed.DateNewest
		}
	case "likes":
		if direction == "asc" {
			f.Likes = feed.CountLeast
		} else {
			f.Likes = feed.CountMost
		}
	case "views":
		if direction == "asc" {
			f.Views = feed.CountLeast
		} else {
			f.Views = feed.CountMost
		}
	default:
		return fmt.Errorf("unknown sort field %q, one of: date, likes, views", field)
	}
	a.feed.SetFilters(f)
	return a.List(ctx)
}

// ClearFilters drops every filter and goes back to the newest-first feed.
func (a *App) ClearFilters(ctx context.Context) error {
	a.feed.ResetFilters()
	return a.List(ctx)
}

// Popular prints the most viewed articles across the whole fetch,
// regardless of the active filters.
func (a *App) Popular(ctx context.Context) error {
	top := feed.Popular(a.articles, 4)
	if len(top) == 0 {
		fmt.Fprintln(a.out, "No articles found")
		return nil
	}
	for _, item := range top {
		a.printOverview(item)
	}
	return nil
}

// Authors prints the distinct author names of the current fetch.
func (a *App) Authors(ctx context.Context) error {
	for _, name := range feed.Authors(a.articles) {
		fmt.Fprintln(a.out, name)
	}
	return nil
}
