package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// getStatus renders the prompt prefix: the current screen, the logged-in
// user, and the connectivity mode.
func (a *App) getStatus() string {
	s := string(a.guard.Current())
	if id, ok := a.session.Current().Identity(); ok {
		s = id.Name + " @ " + s
	}
	if mode := a.currentMode(); mode != "" {
		s = s + " " + string(mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the interactive loop until EOF or an exit command.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to VIP Club CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	runREPL(ctx, a, a.getStatus, scanner)
}
