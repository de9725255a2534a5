package configstore

import (
	"fmt"
	"strconv"
	"strings"
)

// Key is a typed option key with a declared default. Keys are values; the
// zero Key is not usable, construct one with StringKey, BoolKey, IntKey or
// EnumKey.
type Key[T any] struct {
	name   string
	def    T
	decode func(string) (T, error)
	encode func(T) string
}

// Name returns the key name under which values are stored.
func (k Key[T]) Name() string { return k.name }

// Default returns the key's declared default.
func (k Key[T]) Default() T { return k.def }

// Decode converts a raw string value into the key's type.
func (k Key[T]) Decode(raw string) (T, error) { return k.decode(raw) }

// Encode converts a typed value into its raw string form.
func (k Key[T]) Encode(v T) string { return k.encode(v) }

// StringKey declares a string-valued option key.
func StringKey(name, def string) Key[string] {
	return Key[string]{
		name:   name,
		def:    def,
		decode: func(raw string) (string, error) { return raw, nil },
		encode: func(v string) string { return v },
	}
}

// BoolKey declares a boolean option key.
func BoolKey(name string, def bool) Key[bool] {
	return Key[bool]{
		name:   name,
		def:    def,
		decode: strconv.ParseBool,
		encode: strconv.FormatBool,
	}
}

// IntKey declares an integer option key.
func IntKey(name string, def int) Key[int] {
	return Key[int]{
		name:   name,
		def:    def,
		decode: strconv.Atoi,
		encode: strconv.Itoa,
	}
}

// EnumKey declares an option key over a closed set of string-based values.
// Decoding is case-insensitive and returns the canonical spelling.
func EnumKey[T ~string](name string, def T, allowed ...T) Key[T] {
	return Key[T]{
		name: name,
		def:  def,
		decode: func(raw string) (T, error) {
			for _, v := range allowed {
				if strings.EqualFold(raw, string(v)) {
					return v, nil
				}
			}
			return def, fmt.Errorf("unknown value %q for option %s", raw, name)
		},
		encode: func(v T) string { return string(v) },
	}
}
