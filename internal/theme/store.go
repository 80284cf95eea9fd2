package theme

import (
	"fmt"
	"net/http"

	"codeberg.org/crumbs/server/internal/logger"
	"github.com/gorilla/sessions"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// persists the single theme preference
type Store interface {
	Load() Theme
	Save(Theme) error
}

const (
	preferencesObject = "preferences"
	themeProperty     = "theme"

	sessionName = "crumbs_prefs"
	sessionKey  = "theme"
)

// the subset of *gdata.Manager used for local persistence
type PropertyStore interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

type preferences struct {
	Theme string `yaml:"theme"`
}

// keeps the preference on the local machine.
// a nil property store keeps it in memory only.
type LocalStore struct {
	props   PropertyStore
	current Theme
}

func NewLocalStore(props PropertyStore) *LocalStore {
	return &LocalStore{
		props:   props,
		current: Default(),
	}
}

// opens the per-user data directory for appName.
// on failure the returned store still works, in memory only.
func OpenLocalStore(appName string) (*LocalStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewLocalStore(nil), fmt.Errorf("failed to open preference storage: %w", err)
	}

	return NewLocalStore(manager), nil
}

// returns the stored theme; missing or unreadable values yield the default
func (s *LocalStore) Load() Theme {
	if s.props == nil || !s.props.ObjectPropExists(preferencesObject, themeProperty) {
		return s.current
	}

	data, err := s.props.LoadObjectProp(preferencesObject, themeProperty)
	if err != nil {
		logger.ErrorErr(err, "failed to load theme preference, using default")
		return Default()
	}

	var prefs preferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		logger.ErrorErr(err, "failed to decode theme preference, using default")
		return Default()
	}

	s.current = ParseOrDefault(prefs.Theme)
	return s.current
}

func (s *LocalStore) Save(t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, string(t))
	}

	s.current = t

	if s.props == nil {
		return nil
	}

	data, err := yaml.Marshal(preferences{Theme: string(t)})
	if err != nil {
		return fmt.Errorf("failed to marshal theme preference: %w", err)
	}

	if err := s.props.SaveObjectProp(preferencesObject, themeProperty, data); err != nil {
		return fmt.Errorf("failed to save theme preference: %w", err)
	}

	return nil
}

// keeps the preference in a signed browser cookie
type SessionStore struct {
	store sessions.Store
}

func NewSessionStore(secret []byte, secure bool) *SessionStore {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionStore{store: store}
}

// returns the theme carried by the request, or the default
func (s *SessionStore) Get(r *http.Request) Theme {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		// tampered or stale cookie, a fresh session is returned alongside the error
		logger.Debug("ignoring unreadable preference cookie", "error", err)
	}

	raw, _ := session.Values[sessionKey].(string)
	return ParseOrDefault(raw)
}

// writes the theme cookie on the response
func (s *SessionStore) Set(w http.ResponseWriter, r *http.Request, t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, string(t))
	}

	session, _ := s.store.Get(r, sessionName) //nolint:errcheck // a new session is returned on decode errors
	session.Values[sessionKey] = string(t)

	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to save theme cookie: %w", err)
	}

	return nil
}
