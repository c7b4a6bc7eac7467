package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Header(ctx context.Context) string
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ToggleTheme(ctx context.Context) error
	ToggleSideBar(ctx context.Context) error
}

type readResult struct {
	line string
	err  error
}

// readLine reads one line from reader, giving up when ctx is done. The
// pending read is left behind on cancellation; it ends with the process
// or when the reader is closed.
func readLine(ctx context.Context, reader *bufio.Reader) (string, error) {
	ch := make(chan readResult, 1)
	go func() {
		line, err := reader.ReadString('\n')
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// runREPL starts a simple read-eval-print loop for the FinSync CLI.
//
// Each iteration writes the navigation header and a prompt carrying
// statusFn to w, reads one line from reader and dispatches its first word.
// The loop exits on EOF, when ctx is cancelled, or when the user types
// "exit" or "quit".
//
//	Not logged in:
//	  - help               show available commands
//	  - login              authenticate
//	  - signup | register  create an account
//	  - theme | sidebar    header preferences
//	  - exit | quit        leave the program
//
//	Logged in:
//	  - help, whoami, logout, theme, sidebar, exit
//
// Command errors are not fatal: handlers report them to the user and the
// loop carries on so the user can retry.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintln(w, a.Header(ctx))
		fmt.Fprintf(w, "fs %s > ", statusFn())

		line, err := readLine(ctx, reader)
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: whoami, logout, theme, sidebar, exit")
			} else {
				fmt.Fprintln(w, "Available commands: login, signup, theme, sidebar, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup", "register":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "sidebar":
			_ = a.ToggleSideBar(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
