package navbar

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/finsync/internal/client/session"
	"github.com/dmitrijs2005/finsync/internal/client/store"
	"github.com/dmitrijs2005/finsync/internal/common"
)

const defaultInitial = "U"

// ProfileImageSource yields the profile image URL, "" when there is none.
type ProfileImageSource interface {
	ProfileImageURL(ctx context.Context) (string, error)
}

// StoreImages reads the profile image URL from the durable store on every call.
type StoreImages struct {
	Store store.Store
}

func (s StoreImages) ProfileImageURL(ctx context.Context) (string, error) {
	return store.ProfileImageURL(ctx, s.Store)
}

// View is a rendered header. Equal inputs give equal views.
type View struct {
	SidebarOpen bool
	Title       string
	DarkMode    bool
	// ShowProfile is false for anonymous users, whatever the store holds.
	ShowProfile     bool
	ProfileImageURL string
	Initial         string
}

// Render builds the header for st. It never writes anything.
func Render(ctx context.Context, st session.State, images ProfileImageSource, darkMode, sidebarOpen bool) (View, error) {
	v := View{
		SidebarOpen: sidebarOpen,
		Title:       common.AppName,
		DarkMode:    darkMode,
	}

	if !st.IsLoggedIn() {
		return v, nil
	}

	v.ShowProfile = true

	url, err := images.ProfileImageURL(ctx)
	if err != nil {
		return View{}, err
	}
	if url != "" {
		v.ProfileImageURL = url
		return v, nil
	}

	v.Initial = Initial(st.Name)
	return v, nil
}

// Initial is the upper-cased first letter of name, or "U" when name is empty.
func Initial(name string) string {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return defaultInitial
	}
	return string(unicode.ToUpper(r))
}

// String draws the view as one terminal line.
func (v View) String() string {
	var b strings.Builder

	if v.SidebarOpen {
		b.WriteString("[<]")
	} else {
		b.WriteString("[≡]")
	}
	b.WriteString(" ")
	b.WriteString(v.Title)

	// the glyph shows the mode a toggle switches to
	if v.DarkMode {
		b.WriteString("  [☀]")
	} else {
		b.WriteString("  [☾]")
	}

	if v.ShowProfile {
		b.WriteString("  ")
		if v.ProfileImageURL != "" {
			b.WriteString("<img " + v.ProfileImageURL + ">")
		} else {
			b.WriteString("(" + v.Initial + ")")
		}
	}

	return b.String()
}

// NavBar binds the header to its inputs.
type NavBar struct {
	Session *session.Container
	Images  ProfileImageSource
	Theme   *Theme
	SideBar *session.SideBar
}

// Render draws the header from the current inputs.
func (n *NavBar) Render(ctx context.Context) (View, error) {
	return Render(ctx, n.Session.Snapshot(), n.Images, n.Theme.IsDark(), n.SideBar.IsOpen())
}

func (n *NavBar) ToggleTheme(ctx context.Context) (bool, error) {
	return n.Theme.Toggle(ctx)
}

func (n *NavBar) ToggleSideBar() bool {
	return n.SideBar.Toggle()
}
