package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	ListPosts(ctx context.Context, args []string) error
	ShowPost(ctx context.Context, args []string) error
	NewPost(ctx context.Context) error
	EditPost(ctx context.Context, args []string) error
	DeletePost(ctx context.Context, args []string) error
	ListCategories(ctx context.Context) error
	NewCategory(ctx context.Context) error
	EditCategory(ctx context.Context, args []string) error
	DeleteCategory(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the blog CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command and the rest as arguments, and dispatches to methods on 'a'.
// Unknown commands are reported back to the user. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("blog client (type 'help' for commands)")
	for {
		printlnFn(fmt.Sprintf("blog (%s)> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: posts, post <id>, newpost, editpost <id>, delpost <id>, cats, newcat, editcat <id>, delcat <id>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, posts, post <id>, cats, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "posts":
			_ = a.ListPosts(ctx, args)

		case "post":
			_ = a.ShowPost(ctx, args)

		case "newpost":
			_ = a.NewPost(ctx)

		case "editpost":
			_ = a.EditPost(ctx, args)

		case "delpost":
			_ = a.DeletePost(ctx, args)

		case "cats":
			_ = a.ListCategories(ctx)

		case "newcat":
			_ = a.NewCategory(ctx)

		case "editcat":
			_ = a.EditCategory(ctx, args)

		case "delcat":
			_ = a.DeleteCategory(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
