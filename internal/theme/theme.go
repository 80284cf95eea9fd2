package theme

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// a named colour scheme
type Theme string

const (
	Light    Theme = "light"
	LightAlt Theme = "light-alt"
	Dark     Theme = "dark"
	DarkAlt  Theme = "dark-alt"
	DarkAlt2 Theme = "dark-alt-2"
)

// the first entry is the default
var order = []Theme{Light, LightAlt, Dark, DarkAlt, DarkAlt2}

var ErrInvalidTheme = errors.New("invalid theme")

// returns the default theme
func Default() Theme {
	return order[0]
}

// returns all themes in toggle order
func All() []Theme {
	return slices.Clone(order)
}

// parses a theme name
func Parse(raw string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, raw)
	}

	return t, nil
}

// parses a theme name, falling back to the default
func ParseOrDefault(raw string) Theme {
	t, err := Parse(raw)
	if err != nil {
		return Default()
	}

	return t
}

func (t Theme) Valid() bool {
	return slices.Contains(order, t)
}

// returns the next theme in toggle order, wrapping around
func (t Theme) Next() Theme {
	i := slices.Index(order, t)
	return order[(i+1)%len(order)]
}

// returns the root CSS class; the default theme has none
func (t Theme) Class() string {
	if t == Light || !t.Valid() {
		return ""
	}

	return "theme-" + string(t)
}

func (t Theme) IsDark() bool {
	return strings.HasPrefix(string(t), "dark")
}

func (t Theme) String() string {
	return string(t)
}
