package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/elivanov/inkwell/internal/client/editor"
	"github.com/elivanov/inkwell/internal/client/models"
)

// Read fetches one article and prints it in full.
func (a *App) Read(ctx context.Context, id string) error {
	article, err := a.client.GetArticle(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, article.Title)
	fmt.Fprintf(a.out, "%s | %s | %s | %s\n",
		article.Category, article.AuthorName(),
		article.CreatedAt.Format("Jan 2, 2006"), models.ReadTime(article.Content))
	fmt.Fprintf(a.out, "%d likes, %d views\n", article.Likes, article.Views)
	if article.Image != "" {
		fmt.Fprintf(a.out, "Cover: %s\n", article.Image)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, article.Content)
	return nil
}

// Edit loads an owned article and walks through its fields. Leaving a field
// empty keeps the current value. The updated record is submitted in full and
// re-fetched afterwards.
func (a *App) Edit(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	ed := editor.New(a.client)
	if err := ed.Load(ctx, id); err != nil {
		return err
	}
	if err := ed.StartEdit(a.store.UserID()); err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s] (empty keeps current)", ed.Title), a.out)
	if err != nil {
		return err
	}
	if title != "" {
		ed.Title = title
	}

	category, err := getSimpleText(a.reader, fmt.Sprintf("Category [%s] (empty keeps current)", ed.Category), a.out)
	if err != nil {
		return err
	}
	if category != "" {
		c, ok := parseCategory(category)
		if !ok {
			return fmt.Errorf("unknown category %q, one of: %s", category, categoryList())
		}
		ed.Category = c
	}

	body, err := GetMultiline(a.reader, "Body (empty keeps current):", a.out)
	if err != nil {
		return err
	}
	if body != "" {
		ed.Content = body
	}

	cover, err := getSimpleText(a.reader, "Cover image path to upload (empty keeps current)", a.out)
	if err != nil {
		return err
	}
	if cover != "" {
		data, err := readFile(cover)
		if err != nil {
			return err
		}
		if err := ed.UploadCover(ctx, baseName(cover), data); err != nil {
			return err
		}
	}

	if err := ed.Save(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Saved")
	return a.Refresh(ctx)
}

// Delete removes an owned article after an explicit confirmation.
func (a *App) Delete(ctx context.Context, id string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	ed := editor.New(a.client)
	if err := ed.Load(ctx, id); err != nil {
		return err
	}
	if !ed.CanEdit(a.store.UserID()) {
		return editor.ErrNotOwner
	}

	err := ed.Delete(ctx, func() bool {
		answer, err := getSimpleText(a.reader,
			fmt.Sprintf("Delete %q? This cannot be undone (y/N)", ed.Article().Title), a.out)
		if err != nil {
			return false
		}
		return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted")
	return a.Refresh(ctx)
}
