package theme

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse(" Dark-Alt ")
	require.NoError(t, err)
	assert.Equal(t, DarkAlt, got)

	_, err = Parse("solarized")
	assert.ErrorIs(t, err, ErrInvalidTheme)

	assert.Equal(t, Light, ParseOrDefault(""))
	assert.Equal(t, Dark, ParseOrDefault("dark"))
}

func TestNextCyclesInOrder(t *testing.T) {
	seen := []Theme{Default()}
	for i := 0; i < len(All()); i++ {
		seen = append(seen, seen[len(seen)-1].Next())
	}

	assert.Equal(t, []Theme{Light, LightAlt, Dark, DarkAlt, DarkAlt2, Light}, seen)
	assert.Equal(t, Light, Theme("bogus").Next())
}

func TestClass(t *testing.T) {
	assert.Equal(t, "", Light.Class())
	assert.Equal(t, "theme-dark-alt-2", DarkAlt2.Class())
	assert.Equal(t, "", Theme("bogus").Class())

	assert.True(t, DarkAlt.IsDark())
	assert.False(t, LightAlt.IsDark())
}

// in-memory stand-in for gdata
type memoryProps struct {
	data    map[string][]byte
	saveErr error
}

func newMemoryProps() *memoryProps {
	return &memoryProps{data: make(map[string][]byte)}
}

func (m *memoryProps) ObjectPropExists(object, prop string) bool {
	_, ok := m.data[object+"/"+prop]
	return ok
}

func (m *memoryProps) LoadObjectProp(object, prop string) ([]byte, error) {
	return m.data[object+"/"+prop], nil
}

func (m *memoryProps) SaveObjectProp(object, prop string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}

	m.data[object+"/"+prop] = data
	return nil
}

func TestLocalStoreRoundTrip(t *testing.T) {
	props := newMemoryProps()

	store := NewLocalStore(props)
	assert.Equal(t, Light, store.Load())

	require.NoError(t, store.Save(DarkAlt))

	reopened := NewLocalStore(props)
	assert.Equal(t, DarkAlt, reopened.Load())
}

func TestLocalStoreRejectsInvalidTheme(t *testing.T) {
	store := NewLocalStore(newMemoryProps())

	err := store.Save(Theme("neon"))
	assert.ErrorIs(t, err, ErrInvalidTheme)
	assert.Equal(t, Light, store.Load())
}

func TestLocalStoreFallsBackOnGarbage(t *testing.T) {
	props := newMemoryProps()
	props.data["preferences/theme"] = []byte("theme: neon\n")

	assert.Equal(t, Light, NewLocalStore(props).Load())

	props.data["preferences/theme"] = []byte(":\t- not yaml")
	assert.Equal(t, Light, NewLocalStore(props).Load())
}

func TestLocalStoreSaveError(t *testing.T) {
	props := newMemoryProps()
	props.saveErr = errors.New("disk full")

	err := NewLocalStore(props).Save(Dark)
	assert.ErrorContains(t, err, "disk full")
}

func TestLocalStoreWithoutPersistence(t *testing.T) {
	store := NewLocalStore(nil)

	require.NoError(t, store.Save(Dark))
	assert.Equal(t, Dark, store.Load())
}

func TestOpenLocalStorePersistsOnDisk(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)

	store, err := OpenLocalStore("crumbs_theme_test")
	if err != nil {
		t.Skipf("no writable data directory: %v", err)
	}
	require.NoError(t, store.Save(LightAlt))

	again, err := OpenLocalStore("crumbs_theme_test")
	require.NoError(t, err)
	assert.Equal(t, LightAlt, again.Load())
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore([]byte("0123456789abcdef0123456789abcdef"), false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, Light, store.Get(req))

	rec := httptest.NewRecorder()
	require.NoError(t, store.Set(rec, req, Dark))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		next.AddCookie(c)
	}

	assert.Equal(t, Dark, store.Get(next))
}

func TestSessionStoreIgnoresForeignCookie(t *testing.T) {
	store := NewSessionStore([]byte("0123456789abcdef0123456789abcdef"), false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionName, Value: "forged"})

	assert.Equal(t, Light, store.Get(req))
	assert.ErrorIs(t, store.Set(httptest.NewRecorder(), req, Theme("x")), ErrInvalidTheme)
}
