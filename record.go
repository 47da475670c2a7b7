package docfactory

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"
	"github.com/samber/lo"
)

// Record is a dynamic entity with a closable field set. It backs FromJSON
// when no constructor is configured: the factory creates one over its
// declared keys, assigns the converted values and seals it. A sealed record
// keeps its existing keys writable but rejects new ones.
type Record struct {
	values map[string]any
	sealed bool
}

// NewRecord creates an unsealed record pre-populated with the given keys,
// each holding nil.
func NewRecord(keys ...string) *Record {
	r := &Record{values: make(map[string]any, len(keys))}
	for _, k := range keys {
		r.values[k] = nil
	}
	return r
}

// Get returns the value for key, nil when absent.
func (r *Record) Get(key string) any { return r.values[key] }

// Has reports whether key belongs to the record's field set.
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Set assigns key. On a sealed record only keys present at sealing time are
// assignable; anything else is rejected.
func (r *Record) Set(key string, value any) error {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if r.sealed {
		if _, ok := r.values[key]; !ok {
			return fmt.Errorf("cannot add field %q to a sealed record", key)
		}
	}
	r.values[key] = value
	return nil
}

// Seal closes the field set. Sealing is idempotent and cannot be undone.
func (r *Record) Seal() { r.sealed = true }

// Sealed reports whether the field set is closed.
func (r *Record) Sealed() bool { return r.sealed }

// Keys returns the record's keys, sorted.
func (r *Record) Keys() []string {
	keys := lo.Keys(r.values)
	sort.Strings(keys)
	return keys
}

// Values returns a shallow copy of the record's contents.
func (r *Record) Values() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

func (r *Record) MarshalJSON() ([]byte, error) { return json.Marshal(r.values) }

// UnmarshalJSON merges the payload into the record. On a sealed record
// unknown keys are dropped, matching the allow-list behaviour of FromJSON.
func (r *Record) UnmarshalJSON(data []byte) error {
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	if r.values == nil {
		r.values = make(map[string]any, len(values))
	}
	for k, v := range values {
		if r.sealed {
			if _, ok := r.values[k]; !ok {
				continue
			}
		}
		r.values[k] = v
	}
	return nil
}
