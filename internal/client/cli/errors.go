package cli

import "errors"

// ErrNotLoggedIn is returned by commands that need a session.
var ErrNotLoggedIn = errors.New("not logged in")
