// Package cli provides the interactive VIP Club command-line client.
//
// It wires configuration, the local store, the backend API client, the
// session manager, and an interactive REPL. Typical flow: bootstrap the
// persisted session, start a background connectivity watcher, and execute
// user commands.
//
// Key features:
//   - Login via one-time session id from the browser handoff / Logout
//   - Wallet: balances, transaction history, deposit, withdraw, transfer
//   - Notifications: list, mark read
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
