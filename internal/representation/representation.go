// Package representation implements the version-agnostic resource model and
// the projection machinery that shapes it for a specific API version: an
// ordered field-name→value map, named allow-list profiles, synthetic field
// derivation, and hypermedia augmentation.
package representation

import (
	"bytes"
	"encoding/json"
)

// Representation is an ordered mapping of field names to values. Field order
// is insertion order and survives projection and JSON marshalling, so the
// same input always serializes to the same bytes.
type Representation struct {
	names  []string
	values map[string]any
}

// New returns an empty representation.
func New() *Representation {
	return &Representation{values: make(map[string]any)}
}

// Set adds or replaces a field. Replacing keeps the field's original
// position. Returns the receiver for chaining.
func (r *Representation) Set(name string, value any) *Representation {
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = value
	return r
}

// Get returns the value for name and whether the field is present.
func (r *Representation) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Names returns the field names in order. The slice is a copy.
func (r *Representation) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of fields.
func (r *Representation) Len() int {
	return len(r.names)
}

// MarshalJSON serializes the fields as a JSON object in insertion order.
// encoding/json randomizes nothing here: two calls on the same
// representation produce identical bytes.
func (r *Representation) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
