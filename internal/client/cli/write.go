package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/elivanov/inkwell/internal/client/composer"
	"github.com/elivanov/inkwell/internal/client/models"
)

// Write starts a drafting session with its own command loop. The draft lives
// only inside this loop; "publish" submits it and "discard" (or EOF) throws
// it away.
func (a *App) Write(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	d := composer.NewDraft()
	fmt.Fprintln(a.out, "Draft started. Commands: title <text>, category <name>, body, tab, convert, generate, genimage, upload <path>, removecover, status, preview, publish, discard")

	for {
		fmt.Fprintf(a.out, "draft (%s)> ", d.Mode())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		done, err := a.draftCommand(ctx, d, cmd, arg)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err.Error())
		}
		if done {
			return nil
		}
	}
}

// draftCommand executes one drafting command. It reports whether the session
// is over.
func (a *App) draftCommand(ctx context.Context, d *composer.Draft, cmd, arg string) (bool, error) {
	switch cmd {
	case "title":
		d.Title = arg

	case "category":
		c, ok := parseCategory(arg)
		if !ok {
			return false, fmt.Errorf("unknown category %q, one of: %s", arg, categoryList())
		}
		d.Category = c

	case "body":
		body, err := GetMultiline(a.reader, "Enter the article body:", a.out)
		if err != nil {
			return false, err
		}
		if d.Mode() == composer.ModeRich {
			d.SetRich(body)
		} else {
			d.SetMarkdown(body)
		}

	case "tab":
		// Switching never converts; each buffer keeps what it had.
		if d.Mode() == composer.ModeMarkdown {
			d.SetMode(composer.ModeRich)
		} else {
			d.SetMode(composer.ModeMarkdown)
		}
		fmt.Fprintf(a.out, "Now editing the %s buffer\n", d.Mode())

	case "convert":
		if err := d.ConvertToRich(); err != nil {
			return false, err
		}
		fmt.Fprintln(a.out, "Markdown rendered into the rich buffer, now editing rich")

	case "generate":
		err := d.GenerateText(ctx, a.client, func(fragment string) {
			fmt.Fprint(a.out, fragment)
		})
		fmt.Fprintln(a.out)
		if err != nil {
			return false, err
		}

	case "genimage":
		if err := d.GenerateCover(ctx, a.client); err != nil {
			return false, err
		}
		fmt.Fprintf(a.out, "Cover set: %s\n", d.Cover())

	case "upload":
		if arg == "" {
			fmt.Fprintln(a.out, "Usage: upload <path>")
			return false, nil
		}
		data, err := readFile(arg)
		if err != nil {
			return false, err
		}
		if err := d.UploadCover(ctx, a.client, baseName(arg), data); err != nil {
			return false, err
		}
		fmt.Fprintf(a.out, "Cover set: %s\n", d.Cover())

	case "removecover":
		d.RemoveCover()

	case "status":
		a.printDraftStatus(d)

	case "preview":
		a.printDraftStatus(d)
		content, format := d.Content()
		if format == models.FormatMarkdown && content != "" {
			rendered, err := composer.MarkdownToRich(content)
			if err != nil {
				return false, err
			}
			fmt.Fprintln(a.out, rendered)
		} else {
			fmt.Fprintln(a.out, content)
		}

	case "publish":
		article, err := d.Submit(ctx, a.client)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(a.out, "Published: %s\n", article.ID)
		if err := a.Refresh(ctx); err != nil {
			return true, err
		}
		return true, nil

	case "discard":
		fmt.Fprintln(a.out, "Draft discarded")
		return true, nil

	case "help":
		fmt.Fprintln(a.out, "Commands: title <text>, category <name>, body, tab, convert, generate, genimage, upload <path>, removecover, status, preview, publish, discard")

	default:
		fmt.Fprintln(a.out, "Unknown draft command:", cmd)
	}
	return false, nil
}

func (a *App) printDraftStatus(d *composer.Draft) {
	fmt.Fprintf(a.out, "Title:    %s\n", d.Title)
	fmt.Fprintf(a.out, "Category: %s\n", d.Category)
	fmt.Fprintf(a.out, "Cover:    %s\n", d.Cover())
	fmt.Fprintf(a.out, "Mode:     %s\n", d.Mode())
}
