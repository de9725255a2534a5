// Package configstore provides a generic key/value configuration store with
// typed option keys. Each key declares its own default, and typed reads fall
// back to that default when the key is absent or its raw value cannot be
// decoded. Values are stored in their string form so a store round-trips
// through YAML without loss.
package configstore

import "sort"

// Reader is the read capability consumed by code that only inspects a
// configuration, such as recovery.FromConfiguration.
type Reader interface {
	// Lookup returns the raw string value for a key name and whether it is set.
	Lookup(name string) (string, bool)
}

// Store is a mutable string-backed configuration mapping.
//
// A Store is not synchronized. Callers that share one across goroutines own
// the locking discipline.
type Store struct {
	values map[string]string
}

// New returns an empty store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// FromMap returns a store seeded with a copy of raw.
func FromMap(raw map[string]string) *Store {
	s := New()
	for k, v := range raw {
		s.values[k] = v
	}
	return s
}

// Lookup implements Reader.
func (s *Store) Lookup(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Has reports whether a key name is set.
func (s *Store) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// SetRaw stores the raw string value for a key name.
func (s *Store) SetRaw(name, value string) {
	s.values[name] = value
}

// Unset removes a key name. Removing an absent key is a no-op.
func (s *Store) Unset(name string) {
	delete(s.values, name)
}

// Len returns the number of set keys.
func (s *Store) Len() int {
	return len(s.values)
}

// Names returns the set key names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.values))
	for k := range s.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Map returns a copy of the underlying mapping.
func (s *Store) Map() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	return FromMap(s.values)
}

// Get reads a typed value through its key, falling back to the key's declared
// default when the key is absent or the raw value does not decode.
func Get[T any](r Reader, k Key[T]) T {
	raw, ok := r.Lookup(k.name)
	if !ok {
		return k.def
	}
	v, err := k.decode(raw)
	if err != nil {
		return k.def
	}
	return v
}

// Set writes a typed value through its key.
func Set[T any](s *Store, k Key[T], v T) {
	s.SetRaw(k.name, k.encode(v))
}
