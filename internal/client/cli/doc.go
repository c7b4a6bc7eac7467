// Package cli provides the interactive FinSync terminal client.
//
// It wires configuration, the local store, the API client, the session
// container and the auth service, and runs a REPL next to a background
// connectivity watcher. Typical flow: restore the stored session, land on
// /dashboard or /login accordingly, then execute user commands.
//
// Commands:
//   - login / signup (alias register) / logout
//   - whoami: show the session container
//   - theme, sidebar: header preferences
//
// The header line drawn by package navbar is printed above every prompt.
// See App.Run and runREPL for details.
package cli
