package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/SkitsONe/blogctl/internal/client/api"
	"github.com/SkitsONe/blogctl/internal/client/models"
)

var errNotLoggedIn = errors.New("not logged in")

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return errNotLoggedIn
	}
	return nil
}

// argID parses the single id argument of commands like "post <id>".
func argID(args []string, usage string) (models.ID, error) {
	if len(args) == 0 {
		printlnFn("Usage:", usage)
		return 0, errors.New("missing id")
	}
	id, err := models.ParseID(args[0])
	if err != nil {
		printlnFn("Error:", err.Error())
		return 0, err
	}
	return id, nil
}

// ListPosts fetches and prints the post collection. An optional argument
// filters by category id. List failures degrade to an empty listing with the
// recorded error shown.
func (a *App) ListPosts(ctx context.Context, args []string) error {
	var params url.Values
	if len(args) > 0 {
		id, err := models.ParseID(args[0])
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		params = url.Values{"category_id": {id.String()}}
	}

	a.posts.FetchPosts(ctx, params)

	if msg := a.posts.Err(); msg != "" {
		printlnFn("Error:", msg)
		return nil
	}

	all := a.posts.All()
	if len(all) == 0 {
		printlnFn("No posts")
		return nil
	}
	for _, p := range all {
		printlnFn(fmt.Sprintf("#%d\t%s", p.ID, p.Title))
	}
	return nil
}

// ShowPost fetches and prints a single post.
func (a *App) ShowPost(ctx context.Context, args []string) error {
	id, err := argID(args, "post <id>")
	if err != nil {
		return err
	}

	p, err := a.posts.FetchPost(ctx, id)
	if err != nil {
		printAPIError(err)
		return err
	}

	printlnFn(fmt.Sprintf("#%d %s (category %d)", p.ID, p.Title, p.CategoryID))
	printlnFn(p.Body)
	return nil
}

// NewPost collects post fields and creates the post.
func (a *App) NewPost(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	body, err := GetMultiline(a.reader, "Enter body (empty line to finish):", os.Stdout)
	if err != nil {
		return err
	}
	catArg, err := getSimpleText(a.reader, "Enter category id (empty for none)", os.Stdout)
	if err != nil {
		return err
	}

	data := api.PostData{Title: title, Body: body}
	if catArg != "" {
		id, err := models.ParseID(catArg)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		data.CategoryID = id
	}

	p, err := a.posts.CreatePost(ctx, data)
	if err != nil {
		printAPIError(err)
		return err
	}

	printlnFn(fmt.Sprintf("Created post #%d", p.ID))
	return nil
}

// EditPost fetches a post, prompts for replacement fields, and updates it.
// Empty input keeps the current value.
func (a *App) EditPost(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	id, err := argID(args, "editpost <id>")
	if err != nil {
		return err
	}

	current, err := a.posts.FetchPost(ctx, id)
	if err != nil {
		printAPIError(err)
		return err
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Enter title [%s]", current.Title), os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		title = current.Title
	}
	body, err := GetMultiline(a.reader, "Enter body (empty line to keep current):", os.Stdout)
	if err != nil {
		return err
	}
	if body == "" {
		body = current.Body
	}

	p, err := a.posts.UpdatePost(ctx, id, api.PostData{Title: title, Body: body, CategoryID: current.CategoryID})
	if err != nil {
		printAPIError(err)
		return err
	}

	printlnFn(fmt.Sprintf("Updated post #%d", p.ID))
	return nil
}

// DeletePost removes a post.
func (a *App) DeletePost(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	id, err := argID(args, "delpost <id>")
	if err != nil {
		return err
	}

	if err := a.posts.DeletePost(ctx, id); err != nil {
		printAPIError(err)
		return err
	}

	printlnFn(fmt.Sprintf("Deleted post #%d", id))
	return nil
}
