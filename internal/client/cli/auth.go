package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/SkitsONe/blogctl/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// printAPIError renders a normalized error for the user, including per-field
// validation messages when present.
func printAPIError(err error) {
	var aerr *api.Error
	if errors.As(err, &aerr) {
		printlnFn("Error:", aerr.Message)
		for field, msgs := range aerr.Errors {
			for _, m := range msgs {
				printlnFn(fmt.Sprintf("  %s: %s", field, m))
			}
		}
		return
	}
	printlnFn("Error:", err.Error())
}

// Login prompts for credentials and establishes a session. The error is
// rendered here and returned for callers that want to branch on it.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.session.Login(ctx, api.Credentials{Email: email, Password: password}); err != nil {
		printAPIError(err)
		return err
	}

	printlnFn("Logged in as", a.status())
	return nil
}

// Register prompts for account details and creates the account. A successful
// registration also establishes a session.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	_, err = a.session.Register(ctx, api.RegisterData{
		Name:                 name,
		Email:                email,
		Password:             password,
		PasswordConfirmation: password,
	})
	if err != nil {
		printAPIError(err)
		return err
	}

	printlnFn("Registered as", a.status())
	return nil
}

// Logout ends the session. It never fails: the backend call is best-effort
// and local teardown is unconditional.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out")
	return nil
}

// Whoami shows the current session's user.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(fmt.Sprintf("#%d %s <%s>", u.ID, u.Name, u.Email))
	return nil
}
