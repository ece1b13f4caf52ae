// Package config implements the string-keyed multimap that every
// constructor in this module reads its tuning parameters from. Loading the
// map from a file, environment, or flag set is explicitly out of scope:
// callers hand the core an already-populated Map.
package config

import (
	"strconv"

	"github.com/mvprog/prognostics/progerr"
)

// Map is a string-keyed multimap of string values, modeled on the
// configuration surface GSAP's GSAPConfigMap exposes to C++ model and
// observer constructors.
type Map map[string][]string

// New returns an empty Map.
func New() Map {
	return make(Map)
}

// Set replaces the values stored under key.
func (m Map) Set(key string, values ...string) {
	m[key] = values
}

// Has reports whether key has at least one value.
func (m Map) Has(key string) bool {
	v, ok := m[key]
	return ok && len(v) > 0
}

// Strings returns the raw values stored under key, or BadConfig if the key
// is missing or empty.
func (m Map) Strings(key string) ([]string, error) {
	v, ok := m[key]
	if !ok || len(v) == 0 {
		return nil, progerr.NewBadConfig("missing required key %q", key)
	}
	return v, nil
}

// Float64 parses the single value stored under key as a float64. It fails
// with BadConfig if the key is missing or holds more than one value, or if
// the value doesn't parse.
func (m Map) Float64(key string) (float64, error) {
	v, err := m.Strings(key)
	if err != nil {
		return 0, err
	}
	if len(v) != 1 {
		return 0, progerr.NewBadConfig("key %q expects a single value, got %d", key, len(v))
	}
	f, err := strconv.ParseFloat(v[0], 64)
	if err != nil {
		return 0, progerr.NewBadConfig("key %q: %v", key, err)
	}
	return f, nil
}

// Float64Default behaves like Float64 but returns def instead of an error
// when the key is absent.
func (m Map) Float64Default(key string, def float64) (float64, error) {
	if !m.Has(key) {
		return def, nil
	}
	return m.Float64(key)
}

// Int parses the single value stored under key as an int. It fails with
// BadConfig if the key is missing, holds more than one value, or doesn't
// parse.
func (m Map) Int(key string) (int, error) {
	v, err := m.Strings(key)
	if err != nil {
		return 0, err
	}
	if len(v) != 1 {
		return 0, progerr.NewBadConfig("key %q expects a single value, got %d", key, len(v))
	}
	n, err := strconv.Atoi(v[0])
	if err != nil {
		return 0, progerr.NewBadConfig("key %q: %v", key, err)
	}
	return n, nil
}

// IntDefault behaves like Int but returns def instead of an error when the
// key is absent.
func (m Map) IntDefault(key string, def int) (int, error) {
	if !m.Has(key) {
		return def, nil
	}
	return m.Int(key)
}

// Floats parses every value stored under key as a float64, preserving
// order. It fails with BadConfig if the key is missing or any value fails
// to parse.
func (m Map) Floats(key string) ([]float64, error) {
	v, err := m.Strings(key)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(v))
	for i, s := range v {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, progerr.NewBadConfig("key %q[%d]: %v", key, i, err)
		}
		out[i] = f
	}
	return out, nil
}

// FloatsDefault behaves like Floats but returns def instead of an error
// when the key is absent.
func (m Map) FloatsDefault(key string, def []float64) ([]float64, error) {
	if !m.Has(key) {
		return def, nil
	}
	return m.Floats(key)
}
