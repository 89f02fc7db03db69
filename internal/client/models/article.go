// Package models holds the client-side domain types shared by the feed,
// composer, editor and API layers.
package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Category is one of the fixed set the backend schema accepts.
type Category string

const (
	CategoryTechnology Category = "Technology"
	CategoryDesign     Category = "Design"
	CategoryLifestyle  Category = "Lifestyle"
	CategoryEducation  Category = "Education"
	CategoryTravel     Category = "Travel"
	CategoryFood       Category = "Food"
	CategoryOther      Category = "Other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryTechnology,
	CategoryDesign,
	CategoryLifestyle,
	CategoryEducation,
	CategoryTravel,
	CategoryFood,
	CategoryOther,
}

// IsValid reports whether c belongs to the fixed category set.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ContentFormat records how Article.Content should be interpreted.
type ContentFormat string

const (
	FormatMarkdown ContentFormat = "markdown"
	FormatRich     ContentFormat = "rich"
)

// UnknownAuthor is the fallback label for articles whose author record
// is absent.
const UnknownAuthor = "Unknown"

// Author is the embedded author record of an article.
type Author struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Article is a single authored post as served by the backend.
type Article struct {
	ID        string        `json:"_id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Format    ContentFormat `json:"format,omitempty"`
	Category  Category      `json:"category"`
	Image     string        `json:"image"`
	Author    *Author       `json:"author"`
	Likes     int           `json:"likes"`
	Views     int           `json:"views"`
	CreatedAt time.Time     `json:"createdAt"`
}

// AuthorName returns the author's display name, or UnknownAuthor when the
// author record is missing or empty.
func (a Article) AuthorName() string {
	if a.Author == nil || a.Author.Name == "" {
		return UnknownAuthor
	}
	return a.Author.Name
}

// OwnedBy reports whether the article was written by the user with the
// given id. This is UI gating only; the backend is the authority on
// whether an edit or delete is actually allowed.
func (a Article) OwnedBy(userID string) bool {
	return userID != "" && a.Author != nil && a.Author.ID == userID
}

// ReadTime estimates reading time at 200 words per minute, rounded up,
// formatted as "N min read". Empty content reads as "0 min read".
func ReadTime(content string) string {
	words := len(strings.Fields(content))
	if words == 0 {
		return "0 min read"
	}
	minutes := int(math.Ceil(float64(words) / 200))
	return fmt.Sprintf("%d min read", minutes)
}
