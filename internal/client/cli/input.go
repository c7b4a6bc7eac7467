package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned. A cancelled ctx abandons the read.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(ctx context.Context, reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := readLine(ctx, reader)
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password
// from the user's terminal without echo. A newline is printed after
// the read to keep the UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(ctx context.Context, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}

	type result struct {
		pw  []byte
		err error
	}
	read := readPassword
	ch := make(chan result, 1)
	go func() {
		pw, err := read(int(os.Stdin.Fd()))
		ch <- result{pw: pw, err: err}
	}()

	var r result
	select {
	case <-ctx.Done():
		r.err = ctx.Err()
	case r = <-ch:
	}

	fmt.Fprintln(w)
	if r.err != nil {
		return nil, r.err
	}
	return r.pw, nil
}
