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
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Wallet(ctx context.Context) error
	Transactions(ctx context.Context, typeFilter string) error
	Deposit(ctx context.Context, amount string) error
	Withdraw(ctx context.Context, amount string) error
	Transfer(ctx context.Context, amount, from, to string) error
	Notifications(ctx context.Context, unreadOnly bool) error
	MarkRead(ctx context.Context, notificationID string) error
	ReadAll(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the VIP Club CLI.
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
//	Not logged in:
//	  - help                         — show available commands
//	  - login                        — exchange a session id for a token
//	  - exit | quit                  — leave the program
//
//	Logged in:
//	  - help                         — show available commands
//	  - whoami                       — show the current identity
//	  - wallet                       — show balances
//	  - tx [type]                    — list transactions, optionally by type
//	  - deposit <amount>             — add funds
//	  - withdraw <amount>            — request a withdrawal
//	  - transfer <amount> [<from> <to>] — move funds between balances;
//	    balance names are prompted for when omitted
//	  - (n)otifications [unread]     — list notifications
//	  - read <id>                    — mark one notification as read
//	  - readall                      — mark all notifications as read
//	  - logout                       — log out
//	  - exit | quit                  — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vip> %s > ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, wallet, tx, deposit, withdraw, transfer, (n)otifications, read, readall, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "wallet":
			_ = a.Wallet(ctx)

		case "tx", "transactions":
			typeFilter := ""
			if len(args) > 0 {
				typeFilter = args[0]
			}
			_ = a.Transactions(ctx, typeFilter)

		case "deposit":
			if len(args) == 0 {
				printlnFn("Usage: deposit <amount>")
				continue
			}
			_ = a.Deposit(ctx, args[0])

		case "withdraw":
			if len(args) == 0 {
				printlnFn("Usage: withdraw <amount>")
				continue
			}
			_ = a.Withdraw(ctx, args[0])

		case "transfer":
			switch len(args) {
			case 1:
				// balance names are prompted for
				_ = a.Transfer(ctx, args[0], "", "")
			case 3:
				_ = a.Transfer(ctx, args[0], args[1], args[2])
			default:
				printlnFn("Usage: transfer <amount> [<from> <to>]")
			}

		case "n", "notifications":
			unreadOnly := len(args) > 0 && args[0] == "unread"
			_ = a.Notifications(ctx, unreadOnly)

		case "read":
			if len(args) == 0 {
				printlnFn("Usage: read <id>")
				continue
			}
			_ = a.MarkRead(ctx, args[0])

		case "readall":
			_ = a.ReadAll(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
