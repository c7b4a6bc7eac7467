package navbar

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/finsync/internal/client/models"
	"github.com/dmitrijs2005/finsync/internal/client/session"
	"github.com/dmitrijs2005/finsync/internal/client/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticImages struct {
	url   string
	err   error
	calls int
}

func (s *staticImages) ProfileImageURL(ctx context.Context) (string, error) {
	s.calls++
	return s.url, s.err
}

func loggedIn(name string) session.State {
	return session.State{User: &models.Record{ID: "u1", FullName: name}, Name: name}
}

func TestRender(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		st     session.State
		url    string
		want   View
		output string
	}{
		{
			name:   "anonymous ignores stored image",
			st:     session.State{},
			url:    "https://cdn/a.png",
			want:   View{Title: "FinSync"},
			output: "[≡] FinSync  [☾]",
		},
		{
			name:   "logged in with image",
			st:     loggedIn("ann"),
			url:    "https://cdn/a.png",
			want:   View{Title: "FinSync", ShowProfile: true, ProfileImageURL: "https://cdn/a.png"},
			output: "[≡] FinSync  [☾]  <img https://cdn/a.png>",
		},
		{
			name:   "logged in without image",
			st:     loggedIn("ann"),
			want:   View{Title: "FinSync", ShowProfile: true, Initial: "A"},
			output: "[≡] FinSync  [☾]  (A)",
		},
		{
			name:   "logged in without name",
			st:     session.State{User: &models.Record{ID: "u1"}},
			want:   View{Title: "FinSync", ShowProfile: true, Initial: "U"},
			output: "[≡] FinSync  [☾]  (U)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Render(ctx, tt.st, &staticImages{url: tt.url}, false, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.output, v.String())
		})
	}
}

func TestRender_DarkAndSidebar(t *testing.T) {
	v, err := Render(context.Background(), session.State{}, &staticImages{}, true, true)
	require.NoError(t, err)
	assert.Equal(t, "[<] FinSync  [☀]", v.String())
}

func TestRender_Idempotent(t *testing.T) {
	ctx := context.Background()
	images := &staticImages{}
	st := loggedIn("zoë")

	first, err := Render(ctx, st, images, true, false)
	require.NoError(t, err)
	second, err := Render(ctx, st, images, true, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.String(), second.String())
}

func TestRender_ImageSourceError(t *testing.T) {
	_, err := Render(context.Background(), loggedIn("ann"), &staticImages{err: errors.New("disk")}, false, false)
	require.Error(t, err)
}

func TestInitial(t *testing.T) {
	assert.Equal(t, "U", Initial(""))
	assert.Equal(t, "A", Initial("ann"))
	assert.Equal(t, "Ж", Initial("жанна"))
	assert.Equal(t, "7", Initial("7even"))
}

func newStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	db, err := store.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return store.NewSQLiteStore(db)
}

func TestTheme_PersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	doc := &Attributes{}

	theme, err := LoadTheme(ctx, s, doc)
	require.NoError(t, err)
	require.False(t, theme.IsDark())
	assert.Equal(t, ThemeLight, doc.Attribute(ThemeAttribute))

	dark, err := theme.Toggle(ctx)
	require.NoError(t, err)
	require.True(t, dark)
	assert.Equal(t, ThemeDark, doc.Attribute(ThemeAttribute))

	v, ok, err := s.Get(ctx, store.KeyDarkMode)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "true", v)

	// fresh load
	doc2 := &Attributes{}
	reloaded, err := LoadTheme(ctx, s, doc2)
	require.NoError(t, err)
	assert.True(t, reloaded.IsDark())
	assert.Equal(t, ThemeDark, doc2.Attribute(ThemeAttribute))
}

func TestNavBar_ReadsImageFromStore(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	theme, err := LoadTheme(ctx, s, nil)
	require.NoError(t, err)

	c := session.NewContainer()
	nb := &NavBar{Session: c, Images: StoreImages{Store: s}, Theme: theme, SideBar: &session.SideBar{}}

	c.Commit(models.Record{ID: "u1", FullName: "Ann", ProfileImageURL: "https://ignored"})
	v, err := nb.Render(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", v.Initial, "image URL comes from the store, not the container")

	require.NoError(t, s.Set(ctx, store.KeyProfileImageURL, "https://cdn/p.png"))
	v, err = nb.Render(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/p.png", v.ProfileImageURL)

	assert.True(t, nb.ToggleSideBar())
	v, err = nb.Render(ctx)
	require.NoError(t, err)
	assert.True(t, v.SidebarOpen)
}
