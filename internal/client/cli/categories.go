package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/SkitsONe/blogctl/internal/client/api"
)

// ListCategories fetches and prints all categories.
func (a *App) ListCategories(ctx context.Context) error {
	a.categories.FetchCategories(ctx)

	if msg := a.categories.Err(); msg != "" {
		printlnFn("Error:", msg)
		return nil
	}

	all := a.categories.All()
	if len(all) == 0 {
		printlnFn("No categories")
		return nil
	}
	for _, c := range all {
		printlnFn(fmt.Sprintf("#%d\t%s", c.ID, c.Name))
	}
	return nil
}

// NewCategory prompts for a name and creates the category.
func (a *App) NewCategory(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter category name", os.Stdout)
	if err != nil {
		return err
	}

	c, err := a.categories.CreateCategory(ctx, api.CategoryData{Name: name})
	if err != nil {
		printAPIError(err)
		return err
	}

	printlnFn(fmt.Sprintf("Created category #%d", c.ID))
	return nil
}

// EditCategory renames a category.
func (a *App) EditCategory(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	id, err := argID(args, "editcat <id>")
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter new name", os.Stdout)
	if err != nil {
		return err
	}

	c, err := a.categories.UpdateCategory(ctx, id, api.CategoryData{Name: name})
	if err != nil {
		printAPIError(err)
		return err
	}

	printlnFn(fmt.Sprintf("Renamed category #%d to %s", c.ID, c.Name))
	return nil
}

// DeleteCategory removes a category.
func (a *App) DeleteCategory(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	id, err := argID(args, "delcat <id>")
	if err != nil {
		return err
	}

	if err := a.categories.DeleteCategory(ctx, id); err != nil {
		printAPIError(err)
		return err
	}

	printlnFn(fmt.Sprintf("Deleted category #%d", id))
	return nil
}
