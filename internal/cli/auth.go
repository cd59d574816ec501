package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/abookhq/abook/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates a new account.
// The user id namespacing the new user's data files is assigned here.
//
// The password byte slice is wiped before returning. A taken username is
// reported to the user without bubbling the error into the REPL.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	userID := uuid.New().String()
	if _, err := a.session.Register(ctx, username, string(password), userID); err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			fmt.Println("That username is already taken.")
			return nil
		}
		return err
	}

	fmt.Println("Account created. You can log in now.")
	return nil
}

// Login prompts for credentials and authenticates. Unknown usernames and
// wrong passwords are deliberately reported with the same message.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	current, err := a.session.Login(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) || errors.Is(err, common.ErrBadCredentials) {
			a.log.Debug(ctx, "login rejected", "username", username, "error", err)
			fmt.Println("Invalid username or password.")
			return nil
		}
		return err
	}

	fmt.Printf("Welcome, %s!\n", current.Username)
	return nil
}

// Logout releases the working model and clears the session.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}

// WhoAmI prints the currently logged-in account.
func (a *App) WhoAmI(ctx context.Context) error {
	current, ok := a.session.CurrentAccount()
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s (user id %s)\n", current.Username, current.UserID)
	return nil
}
