// Package session holds the in-memory, observable view of who is logged in.
//
// A Container is created once by the application and passed to everything
// that reads or writes session state; there is no package-level instance.
// Writers use the mutation actions, readers use Snapshot or Subscribe.
package session

import "github.com/dmitrijs2005/finsync/internal/client/models"

// State is an immutable snapshot of the container.
//
// User is the structured record; Name, Email and Categories duplicate its
// fields for convenient access. The bearer token is deliberately absent: it
// lives only in the durable store.
type State struct {
	User       *models.Record
	Name       string
	Email      string
	Categories models.Categories
}

// IsLoggedIn reports whether a user has been set.
func (s State) IsLoggedIn() bool {
	return s.User != nil
}

func (s State) clone() State {
	if s.User != nil {
		u := s.User.Clone()
		s.User = &u
	}
	s.Categories = s.Categories.Clone()
	return s
}
