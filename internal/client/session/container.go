package session

import (
	"sync"

	"github.com/dmitrijs2005/finsync/internal/client/models"
)

// Listener is notified with the new state after every update.
type Listener func(State)

// Container is a single-writer, many-reader observable session value.
// Each action publishes one update; Commit publishes a whole record as a
// single update so listeners never see a half-applied login.
type Container struct {
	mu        sync.RWMutex
	state     State
	listeners map[int]Listener
	nextID    int
}

func NewContainer() *Container {
	return &Container{
		state:     State{Categories: models.Categories{}},
		listeners: make(map[int]Listener),
	}
}

// Snapshot returns a copy of the current state.
func (c *Container) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.clone()
}

// Subscribe registers fn and returns a function that unregisters it.
func (c *Container) Subscribe(fn Listener) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// SetUser replaces the structured record.
func (c *Container) SetUser(r models.Record) {
	c.update(func(s *State) {
		u := r.Clone()
		s.User = &u
	})
}

func (c *Container) SetName(name string) {
	c.update(func(s *State) { s.Name = name })
}

func (c *Container) SetEmail(email string) {
	c.update(func(s *State) { s.Email = email })
}

func (c *Container) SetCategories(categories models.Categories) {
	c.update(func(s *State) { s.Categories = models.NewCategories(categories...) })
}

// Commit sets the user and every derived field in one update.
func (c *Container) Commit(r models.Record) {
	c.update(func(s *State) {
		u := r.Clone()
		s.User = &u
		s.Name = r.FullName
		s.Email = r.Email
		s.Categories = models.NewCategories(r.Categories...)
	})
}

// Reset returns the container to the logged-out state.
func (c *Container) Reset() {
	c.update(func(s *State) {
		*s = State{Categories: models.Categories{}}
	})
}

func (c *Container) update(fn func(*State)) {
	c.mu.Lock()
	fn(&c.state)
	snapshot := c.state.clone()
	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}
