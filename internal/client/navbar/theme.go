package navbar

import (
	"context"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/finsync/internal/client/store"
)

// ThemeAttribute is the document attribute mirroring the theme.
const ThemeAttribute = "data-theme"

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Document receives presentation attributes.
type Document interface {
	SetAttribute(name, value string)
}

// Attributes is an in-memory Document.
type Attributes struct {
	mu     sync.RWMutex
	values map[string]string
}

func (a *Attributes) SetAttribute(name, value string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.values == nil {
		a.values = make(map[string]string)
	}
	a.values[name] = value
}

func (a *Attributes) Attribute(name string) string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.values[name]
}

// Theme is the dark-mode preference. It is persisted under store.KeyDarkMode
// as "true" or "false" and mirrored into the document after every change.
type Theme struct {
	mu    sync.Mutex
	store store.Store
	doc   Document
	dark  bool
}

// LoadTheme reads the preference from s (absent means light) and applies it
// to doc, writing the normalised value back to s.
func LoadTheme(ctx context.Context, s store.Store, doc Document) (*Theme, error) {
	v, _, err := s.Get(ctx, store.KeyDarkMode)
	if err != nil {
		return nil, err
	}

	t := &Theme{store: s, doc: doc, dark: v == "true"}
	if err := t.apply(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// IsDark reports the current preference.
func (t *Theme) IsDark() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dark
}

// Toggle flips the preference, persists it and returns the new value.
func (t *Theme) Toggle(ctx context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.dark = !t.dark
	if err := t.apply(ctx); err != nil {
		t.dark = !t.dark
		return t.dark, err
	}
	return t.dark, nil
}

func (t *Theme) apply(ctx context.Context) error {
	if err := t.store.Set(ctx, store.KeyDarkMode, strconv.FormatBool(t.dark)); err != nil {
		return err
	}
	if t.doc != nil {
		t.doc.SetAttribute(ThemeAttribute, themeName(t.dark))
	}
	return nil
}

func themeName(dark bool) string {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}
