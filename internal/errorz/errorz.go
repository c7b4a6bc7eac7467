// Package errorz contains error types that carry structure beyond a message.
package errorz

import "strings"

// Keyed ties an error to the input field it concerns.
type Keyed struct {
	Key string
	Err error
}

func (k Keyed) Error() string {
	return k.Key + ": " + k.Err.Error()
}

func (k Keyed) Unwrap() error {
	return k.Err
}

// InvalidInput signals that an input is invalid due to the wrapped errors,
// usually a list of Keyed field errors.
type InvalidInput []error

func (e InvalidInput) Error() string {
	var b strings.Builder
	b.WriteString("invalid input:\n")
	for _, err := range e {
		b.WriteString(err.Error())
		b.WriteString("\n")
	}
	return b.String()
}

func (e InvalidInput) Unwrap() []error {
	return e
}

// Field returns the first error recorded for key, or nil.
func (e InvalidInput) Field(key string) error {
	for _, err := range e {
		if k, ok := err.(Keyed); ok && k.Key == key {
			return k.Err
		}
	}
	return nil
}
