package llm

import (
	"fmt"
)

// Options is the heterogeneous option mapping supplied by callers of the
// audio operations. A missing key and a key with a nil value are treated
// identically: both resolve to the operation's default.
type Options map[string]any

// Keys returns the option keys for diagnostics.
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	return keys
}

// Decode interprets a raw option value as type T, failing with a classified
// decode error naming the key on mismatch.
func Decode[T any](key string, value any) (T, error) {
	if v, ok := value.(T); ok {
		return v, nil
	}
	var zero T
	return zero, NewDecodeError(key, fmt.Sprintf("cannot interpret %T as %T", value, zero), nil)
}

// DecodeString resolves a string option. Absent values (missing key or nil
// value) resolve to fallback.
func DecodeString(opts Options, key, fallback string) (string, error) {
	value, ok := opts[key]
	if !ok || value == nil {
		return fallback, nil
	}
	return Decode[string](key, value)
}

// DecodeFloat resolves an optional numeric option. Absent values resolve to
// nil. Integer and float values are both accepted; anything else fails with
// a decode error naming the key.
func DecodeFloat(opts Options, key string) (*float64, error) {
	value, ok := opts[key]
	if !ok || value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case float64:
		return &v, nil
	case float32:
		f := float64(v)
		return &f, nil
	case int:
		f := float64(v)
		return &f, nil
	case int64:
		f := float64(v)
		return &f, nil
	default:
		return nil, NewDecodeError(key, fmt.Sprintf("cannot interpret %T as float", value), nil)
	}
}
