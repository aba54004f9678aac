package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vipclub/vipclub-cli/internal/common"
)

// getSecret is an indirection used to facilitate testing.
var getSecret = GetSecret

// Login walks the external login handoff: the user completes the browser
// flow, receives a one-time session id in the callback URL, and pastes it
// here. The id is exchanged for a bearer token by the session manager.
//
// A failed exchange is reported to the user; the session settles anonymous
// either way and the spent id cannot be retried.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Println("Already logged in. Use 'logout' first.")
		return nil
	}

	fmt.Println("Complete the login in your browser, then paste the session id")
	fmt.Println("from the callback URL (the session_id query parameter).")

	sessionID, err := getSecret("Session id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.ExchangeSessionID(ctx, sessionID); err != nil {
		if errors.Is(err, common.ErrEmptySessionID) {
			fmt.Println("No session id entered.")
			return nil
		}
		fmt.Println("Login failed. Obtain a fresh session id and try again.")
		return err
	}

	if id, ok := a.session.Current().Identity(); ok {
		fmt.Printf("Welcome, %s!\n", id.Name)
	}
	return nil
}

// Logout invalidates the session locally and, best effort, remotely.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}

// Whoami prints the current identity.
func (a *App) Whoami(ctx context.Context) error {
	st := a.session.Current()
	id, ok := st.Identity()
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}

	fmt.Printf("User:    %s\n", id.Name)
	fmt.Printf("Email:   %s\n", id.Email)
	fmt.Printf("ID:      %s\n", id.UserID)
	fmt.Printf("Member since: %s\n", id.CreatedAt)
	return nil
}
