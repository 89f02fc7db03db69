package composer

import (
	"context"
	"fmt"
	"net/url"

	"github.com/elivanov/inkwell/internal/client/api"
)

// coverImageService is the AI image endpoint; the prompt is appended as a
// path segment.
const coverImageService = "https://image.pollinations.ai/prompt/"

// coverStyleSuffix is the fixed style descriptor appended to the title so
// generated covers come out in a consistent look.
const coverStyleSuffix = ", award-winning photography, professional stock photo style, " +
	"ultra detailed, vibrant colors, soft natural lighting, shallow depth of field, " +
	"no text, no watermark, 35mm lens, clean background, confident, "

// CoverImageURL builds the deterministic AI image URL for a title. The
// same title always yields the same URL.
func CoverImageURL(title string) string {
	return coverImageService + url.PathEscape(title+coverStyleSuffix)
}

// CoverLoading reports whether a cover acquisition (upload or generation)
// is in flight. While true, the previous cover (if any) is still set;
// it is only replaced once the new one resolves.
func (d *Draft) CoverLoading() bool { return d.coverLoading }

// RemoveCover clears the cover image reference.
func (d *Draft) RemoveCover() { d.cover = "" }

// UploadCover transmits a single image file to the backend and adopts the
// hosted URL it returns. On failure the previous cover is kept.
func (d *Draft) UploadCover(ctx context.Context, client api.Client, filename string, data []byte) error {
	d.coverLoading = true
	defer func() { d.coverLoading = false }()

	hosted, err := client.UploadImage(ctx, filename, data)
	if err != nil {
		return fmt.Errorf("image upload failed: %w", err)
	}
	d.cover = hosted
	return nil
}

// GenerateCover builds the AI image URL from the title and adopts it as
// the cover only after the image is confirmed to load. The probe is used
// purely as a fetch-completion signal. Requires a non-empty title.
func (d *Draft) GenerateCover(ctx context.Context, client api.Client) error {
	if d.Title == "" {
		return ErrMissingTitle
	}

	d.coverLoading = true
	defer func() { d.coverLoading = false }()

	candidate := CoverImageURL(d.Title)
	if err := client.ProbeImage(ctx, candidate); err != nil {
		return fmt.Errorf("failed to generate image: %w", err)
	}
	d.cover = candidate
	return nil
}
