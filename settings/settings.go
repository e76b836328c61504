// Package settings persists named key/value stores as TOML files. Values
// are addressed by dotted paths ("overlay.ui.colors.text") and fall back to
// registered defaults, which are never written to disk. Writes save the
// backing file immediately unless turned off.
package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrNotFound reports that neither the store nor its defaults hold a
	// value for the path.
	ErrNotFound = errors.New("setting not found")

	// ErrType reports that a value exists but cannot be read as the
	// requested type.
	ErrType = errors.New("setting has wrong type")
)

// Store is one named settings collection backed by a TOML file.
type Store struct {
	mu        sync.Mutex
	path      string
	data      map[string]any
	defaults  map[string]any
	saveOnSet bool
}

// Open loads the store named name from settings/<name>.toml under the
// working directory, creating the directory and an empty file when they do
// not exist yet.
func Open(name string) (*Store, error) {
	dir := "settings"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("settings: creating %s: %w", dir, err)
	}

	st := &Store{
		path:      filepath.Join(dir, name+".toml"),
		data:      make(map[string]any),
		defaults:  make(map[string]any),
		saveOnSet: true,
	}

	raw, err := os.ReadFile(st.path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(raw, &st.data); err != nil {
			return nil, fmt.Errorf("settings: parsing %s: %w", st.path, err)
		}
		slog.Info("settings: loaded", "path", st.path)
	case errors.Is(err, os.ErrNotExist):
		slog.Info("settings: creating new store", "path", st.path)
		if err := st.Save(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("settings: reading %s: %w", st.path, err)
	}

	return st, nil
}

// Save writes the store to its backing file.
func (s *Store) Save() error {
	s.mu.Lock()
	raw, err := toml.Marshal(s.data)
	path := s.path
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("settings: encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("settings: writing %s: %w", path, err)
	}
	return nil
}

// SetSaveOnSet controls whether every Set and Remove saves the backing
// file. It is on by default; turn it off around bulk updates and call Save
// once after.
func (s *Store) SetSaveOnSet(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveOnSet = on
}

// SetDefault registers a fallback value for a path. Defaults answer reads
// when the stored data has no usable value, and are never saved.
func (s *Store) SetDefault(path string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults[path] = value
}

// Set stores a value, replacing any existing one and creating intermediate
// tables as needed. A path segment already holding a non-table value blocks
// the write.
func (s *Store) Set(path string, value any) {
	s.mu.Lock()
	parts := strings.Split(path, ".")
	m := s.data
	blocked := false
	for _, p := range parts[:len(parts)-1] {
		next, exists := m[p]
		if !exists {
			child := make(map[string]any)
			m[p] = child
			m = child
			continue
		}
		child, isTable := next.(map[string]any)
		if !isTable {
			blocked = true
			break
		}
		m = child
	}
	if !blocked {
		m[parts[len(parts)-1]] = value
	}
	save := !blocked && s.saveOnSet
	s.mu.Unlock()

	if blocked {
		slog.Error("settings: path blocked by non-table value", "path", path)
		return
	}
	if save {
		if err := s.Save(); err != nil {
			slog.Error("settings: save failed", "error", err)
		}
	}
}

// Remove deletes the value at path, reporting whether one was present.
// Defaults are unaffected.
func (s *Store) Remove(path string) bool {
	s.mu.Lock()
	parts := strings.Split(path, ".")
	m := s.data
	reachable := true
	for _, p := range parts[:len(parts)-1] {
		child, ok := m[p].(map[string]any)
		if !ok {
			reachable = false
			break
		}
		m = child
	}
	removed := false
	if reachable {
		last := parts[len(parts)-1]
		if _, ok := m[last]; ok {
			delete(m, last)
			removed = true
		}
	}
	save := removed && s.saveOnSet
	s.mu.Unlock()

	if save {
		if err := s.Save(); err != nil {
			slog.Error("settings: save failed", "error", err)
		}
	}
	return removed
}

// Get returns the raw value at path, from the stored data or the defaults.
func (s *Store) Get(path string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.lookup(path); ok {
		return v, nil
	}
	if v, ok := s.defaults[path]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("settings: %s: %w", path, ErrNotFound)
}

// GetString returns the string at path.
func (s *Store) GetString(path string) (string, error) {
	return getAs(s, path, asString)
}

// GetInt64 returns the integer at path.
func (s *Store) GetInt64(path string) (int64, error) {
	return getAs(s, path, asInt64)
}

// GetUint64 returns the non-negative integer at path.
func (s *Store) GetUint64(path string) (uint64, error) {
	return getAs(s, path, asUint64)
}

// GetFloat64 returns the number at path. Integers coerce to float.
func (s *Store) GetFloat64(path string) (float64, error) {
	return getAs(s, path, asFloat64)
}

// GetBool returns the boolean at path.
func (s *Store) GetBool(path string) (bool, error) {
	return getAs(s, path, asBool)
}

// GetColor returns the packed RGBA color stored at path as an integer.
func (s *Store) GetColor(path string) (uint32, error) {
	v, err := s.GetUint64(path)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// MustString is GetString for values the caller registered a default for;
// it panics instead of returning an error.
func (s *Store) MustString(path string) string {
	v, err := s.GetString(path)
	if err != nil {
		panic(err)
	}
	return v
}

// MustInt64 is GetInt64 for values the caller registered a default for.
func (s *Store) MustInt64(path string) int64 {
	v, err := s.GetInt64(path)
	if err != nil {
		panic(err)
	}
	return v
}

// MustUint64 is GetUint64 for values the caller registered a default for.
func (s *Store) MustUint64(path string) uint64 {
	v, err := s.GetUint64(path)
	if err != nil {
		panic(err)
	}
	return v
}

// MustFloat64 is GetFloat64 for values the caller registered a default for.
func (s *Store) MustFloat64(path string) float64 {
	v, err := s.GetFloat64(path)
	if err != nil {
		panic(err)
	}
	return v
}

// MustColor is GetColor for values the caller registered a default for.
func (s *Store) MustColor(path string) uint32 {
	v, err := s.GetColor(path)
	if err != nil {
		panic(err)
	}
	return v
}

// lookup walks the stored tables along a dotted path. Callers hold s.mu.
func (s *Store) lookup(path string) (any, bool) {
	cur := any(s.data)
	for _, p := range strings.Split(path, ".") {
		table, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = table[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// getAs resolves path against the stored data, then the defaults, taking
// the first value the coercion accepts. A present but unusable value reads
// as ErrType, an absent one as ErrNotFound.
func getAs[T any](s *Store, path string, coerce func(any) (T, bool)) (T, error) {
	s.mu.Lock()
	stored, storedOK := s.lookup(path)
	def, defOK := s.defaults[path]
	s.mu.Unlock()

	if storedOK {
		if v, ok := coerce(stored); ok {
			return v, nil
		}
	}
	if defOK {
		if v, ok := coerce(def); ok {
			return v, nil
		}
	}

	var zero T
	if storedOK || defOK {
		return zero, fmt.Errorf("settings: %s: %w", path, ErrType)
	}
	return zero, fmt.Errorf("settings: %s: %w", path, ErrNotFound)
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case uint64:
		if n <= math.MaxInt64 {
			return int64(n), true
		}
	}
	return 0, false
}

func asUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case uint64:
		return n, true
	case int64:
		if n >= 0 {
			return uint64(n), true
		}
	case int:
		if n >= 0 {
			return uint64(n), true
		}
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}
