package appconfig

import "github.com/MKhiriev/go-app-config/settings"

// Section is the uniform surface of every configuration section, real or
// not. Optional-section accessors on [Config] always return a Section, so
// callers never branch on feature presence just to hold a reference.
type Section interface {
	// Get returns the named setting's current value.
	Get(name string) (any, error)
	// Set assigns the named setting, running its constructor.
	Set(name string, value any) error
	// Finalize locks the section against further writes.
	Finalize()
	// Available reports whether the section is backed by a bundled
	// feature module.
	Available() bool
}

// NullSection stands in for a section whose feature module is absent.
// Every read or write fails with a [SectionUnavailableError] naming the
// missing feature; Finalize is a no-op.
type NullSection struct {
	Feature string
}

func (n NullSection) Get(string) (any, error) {
	return nil, &SectionUnavailableError{Feature: n.Feature}
}

func (n NullSection) Set(string, any) error {
	return &SectionUnavailableError{Feature: n.Feature}
}

func (n NullSection) Finalize() {}

func (n NullSection) Available() bool { return false }

// section is the shared real-section behavior: a finalizable settings
// store exposed through the Section contract.
type section struct {
	store *settings.Store
}

func (s *section) Get(name string) (any, error) {
	return s.store.Get(name)
}

func (s *section) Set(name string, value any) error {
	return s.store.Set(name, value)
}

func (s *section) Finalize() {
	s.store.Finalize()
}

func (s *section) Available() bool { return true }

func (s *section) getString(name string) string {
	v, _ := s.store.Lookup(name)
	str, _ := v.(string)
	return str
}

func (s *section) getBool(name string) bool {
	v, _ := s.store.Lookup(name)
	b, _ := v.(bool)
	return b
}

func (s *section) getStrings(name string) []string {
	v, ok := s.store.Lookup(name)
	if !ok {
		return nil
	}
	list, _ := v.([]string)
	return append([]string(nil), list...)
}
