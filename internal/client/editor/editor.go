// Package editor implements the article detail view with in-place
// editing and deletion for the owning user.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/elivanov/inkwell/internal/client/api"
	"github.com/elivanov/inkwell/internal/client/models"
)

// ErrNotOwner is returned when edit mode is requested by a user who is
// not the article's author. This gate is a UI affordance only; the
// backend enforces the real authorization on save and delete, and this
// client trusts it to do so.
var ErrNotOwner = errors.New("only the author can edit this article")

// ErrDeleteAborted is returned when the user declines the delete
// confirmation.
var ErrDeleteAborted = errors.New("delete canceled")

// Editor holds one fetched article plus local working copies of its
// editable fields. Cancel restores the copies from the last-fetched
// server values; there is no deeper undo history.
type Editor struct {
	client  api.Client
	article *models.Article
	editing bool

	// working copies, meaningful while editing
	Title      string
	Content    string
	Category   models.Category
	CoverImage string

	coverLoading bool
}

func New(client api.Client) *Editor {
	return &Editor{client: client}
}

// Load fetches the article by id and resets the working copies to the
// server values.
func (e *Editor) Load(ctx context.Context, id string) error {
	article, err := e.client.GetArticle(ctx, id)
	if err != nil {
		return err
	}
	e.article = article
	e.restore()
	return nil
}

func (e *Editor) restore() {
	e.Title = e.article.Title
	e.Content = e.article.Content
	e.Category = e.article.Category
	e.CoverImage = e.article.Image
}

// Article returns the last-fetched server record.
func (e *Editor) Article() *models.Article { return e.article }

func (e *Editor) Editing() bool { return e.editing }

// CanEdit reports whether userID owns the loaded article. Advisory only.
func (e *Editor) CanEdit(userID string) bool {
	return e.article != nil && e.article.OwnedBy(userID)
}

// StartEdit enters edit mode, gated on ownership.
func (e *Editor) StartEdit(userID string) error {
	if !e.CanEdit(userID) {
		return ErrNotOwner
	}
	e.editing = true
	return nil
}

// Cancel leaves edit mode and restores the working copies from the
// last-fetched server values.
func (e *Editor) Cancel() {
	if e.article != nil {
		e.restore()
	}
	e.editing = false
}

// Save submits the full updated record and re-fetches it to reconcile
// with whatever the backend actually stored.
func (e *Editor) Save(ctx context.Context) error {
	if e.article == nil {
		return fmt.Errorf("no article loaded")
	}

	_, err := e.client.UpdateArticle(ctx, e.article.ID, api.ArticlePayload{
		Title:    e.Title,
		Content:  e.Content,
		Category: e.Category,
		Image:    e.CoverImage,
		Format:   e.article.Format,
	})
	if err != nil {
		return err
	}

	if err := e.Load(ctx, e.article.ID); err != nil {
		return err
	}
	e.editing = false
	return nil
}

// Delete removes the article after the confirm callback approves it.
// On success the caller navigates away from the detail view.
func (e *Editor) Delete(ctx context.Context, confirm func() bool) error {
	if e.article == nil {
		return fmt.Errorf("no article loaded")
	}
	if confirm == nil || !confirm() {
		return ErrDeleteAborted
	}
	return e.client.DeleteArticle(ctx, e.article.ID)
}

// CoverLoading reports whether a cover upload is in flight.
func (e *Editor) CoverLoading() bool { return e.coverLoading }

// UploadCover sends a replacement cover through the same backend upload
// path the composer uses and adopts the hosted URL into the working copy.
// The previous value is kept on failure.
func (e *Editor) UploadCover(ctx context.Context, filename string, data []byte) error {
	e.coverLoading = true
	defer func() { e.coverLoading = false }()

	hosted, err := e.client.UploadImage(ctx, filename, data)
	if err != nil {
		return fmt.Errorf("image upload failed: %w", err)
	}
	e.CoverImage = hosted
	return nil
}
