package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	List(ctx context.Context) error
	More(ctx context.Context) error
	Search(ctx context.Context, query string) error
	FilterCategory(ctx context.Context, name string) error
	FilterAuthor(ctx context.Context, name string) error
	Sort(ctx context.Context, field, direction string) error
	ClearFilters(ctx context.Context) error
	Popular(ctx context.Context) error
	Authors(ctx context.Context) error
	Read(ctx context.Context, id string) error
	Write(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Subscribe(ctx context.Context) error
}

// run reports the handler error back to the user instead of aborting the
// loop. Every failure surfaces inline, next to the command that caused it.
func run(err error) {
	if err != nil {
		printlnFn("Error:", err.Error())
	}
}

// runREPL starts a simple read-eval-print loop for the Inkwell CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help                — show available commands
//	  - refresh             — re-fetch the article feed
//	  - list | l            — show the visible slice of the filtered feed
//	  - more                — reveal the next page of the feed
//	  - search <text>       — filter by title/content substring
//	  - category <name|all> — filter by category
//	  - author <name|all>   — filter by author display name
//	  - sort <date|likes|views> [asc|desc] — reorder the feed
//	  - clear               — drop all filters, back to newest-first
//	  - popular             — show the most viewed articles
//	  - authors             — list distinct author names in the feed
//	  - read <id>           — show one article in full
//	  - subscribe           — subscribe an email to the newsletter
//	  - exit | quit         — leave the program
//
//	Not logged in:
//	  - register            — create an account
//	  - login               — authenticate
//
//	Logged in:
//	  - write               — start a new draft (interactive)
//	  - edit <id>           — edit an owned article
//	  - delete <id>         — delete an owned article
//	  - logout              — log out and forget the saved session
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("inkwell %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Feed: refresh, (l)ist, more, search <text>, category <name|all>, author <name|all>, sort <date|likes|views> [asc|desc], clear, popular, authors, read <id>, subscribe")
			if a.isLoggedIn() {
				printlnFn("Account: write, edit <id>, delete <id>, logout, exit")
			} else {
				printlnFn("Account: register, login, exit")
			}

		case "register":
			run(a.Register(ctx))

		case "login":
			run(a.Login(ctx))

		case "logout":
			run(a.Logout(ctx))

		case "refresh":
			run(a.Refresh(ctx))

		case "l", "list":
			run(a.List(ctx))

		case "more":
			run(a.More(ctx))

		case "search":
			run(a.Search(ctx, strings.Join(args, " ")))

		case "category":
			if len(args) == 0 {
				printlnFn("Usage: category <name|all>")
				continue
			}
			run(a.FilterCategory(ctx, args[0]))

		case "author":
			if len(args) == 0 {
				printlnFn("Usage: author <name|all>")
				continue
			}
			run(a.FilterAuthor(ctx, strings.Join(args, " ")))

		case "sort":
			if len(args) == 0 {
				printlnFn("Usage: sort <date|likes|views> [asc|desc]")
				continue
			}
			direction := ""
			if len(args) > 1 {
				direction = args[1]
			}
			run(a.Sort(ctx, args[0], direction))

		case "clear":
			run(a.ClearFilters(ctx))

		case "popular":
			run(a.Popular(ctx))

		case "authors":
			run(a.Authors(ctx))

		case "read":
			if len(args) == 0 {
				printlnFn("Usage: read <id>")
				continue
			}
			run(a.Read(ctx, args[0]))

		case "write":
			run(a.Write(ctx))

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			run(a.Edit(ctx, args[0]))

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			run(a.Delete(ctx, args[0]))

		case "subscribe":
			run(a.Subscribe(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
