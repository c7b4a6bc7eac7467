package session

import "sync"

// SideBar holds the sidebar visibility flag. It is UI state only and has
// nothing to do with authentication.
type SideBar struct {
	mu   sync.Mutex
	open bool
}

func (s *SideBar) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
	return s.open
}

func (s *SideBar) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}
