// Package navbar draws the header shown above the client's prompt.
//
// The header is a pure reader of session state. It reads login state and
// the user's name from the session container and, as a separate signal, the
// profile image URL from the durable store. The only things it changes are
// the theme preference and the sidebar flag, neither of which is part of the
// session.
package navbar
