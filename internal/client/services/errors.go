package services

import "errors"

var (
	// ErrMalformedResponse is a 2xx response that lacks the token or user.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrInFlight rejects a submission while the previous one is pending.
	ErrInFlight = errors.New("request already in flight")
	// ErrStaleResponse means the submission was abandoned before its
	// response arrived; the response was discarded.
	ErrStaleResponse = errors.New("stale response discarded")
)

// User-visible messages.
const (
	MsgLoginSuccess       = "Login successful!"
	MsgLoginMalformed     = "Login failed: Invalid response structure."
	MsgLoginFailed        = "Login failed. Please try again."
	MsgSignupSuccess      = "Account created. Please log in."
	MsgSignupMalformed    = "Signup failed: Invalid response structure."
	MsgSignupFailed       = "Signup failed. Please try again."
	MsgImageUploadFailed  = "Profile image upload failed. Please try again."
	MsgSessionStoreFailed = "Could not save your session. Please try again."
	MsgLoggedOut          = "You have been logged out."
)
