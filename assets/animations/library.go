package animations

import (
	"fmt"
	"sort"
)

// Library holds the templates loaded for a session, keyed by name.
type Library struct {
	templates map[string]*Template
}

func NewLibrary() *Library {
	return &Library{templates: make(map[string]*Template)}
}

// Add registers t under its name, replacing any previous template.
func (l *Library) Add(t *Template) {
	l.templates[t.Name()] = t
}

func (l *Library) Get(name string) (*Template, bool) {
	t, ok := l.templates[name]
	return t, ok
}

// MustGet panics when name is not registered; factories use it so a typo in
// configuration fails at entity construction.
func (l *Library) MustGet(name string) *Template {
	t, ok := l.templates[name]
	if !ok {
		panic(fmt.Sprintf("No animation template registered for key: %s", name))
	}
	return t
}

// NewInstance starts a fresh playback of the named template, or returns nil
// for an empty name.
func (l *Library) NewInstance(name string) *Instance {
	if name == "" {
		return nil
	}
	return NewInstance(l.MustGet(name))
}

func (l *Library) Names() []string {
	names := make([]string, 0, len(l.templates))
	for name := range l.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (l *Library) Len() int {
	return len(l.templates)
}
