package representation

import "fmt"

// Field is a single entry in a profile's allow-list.
type Field struct {
	Name string
	// Synthetic marks a field that is not stored on the resource but
	// computed at serialization time via a registered DeriveFunc.
	Synthetic bool
	// OmitWhenAbsent skips the field instead of emitting null when the
	// representation does not carry it. Meant for optional relationship
	// fields; regular profile fields are always emitted.
	OmitWhenAbsent bool
}

// Profile is a named, ordered allow-list of fields for one resource kind.
// Any field the profile does not name is never serialized.
type Profile struct {
	Name     string
	Resource string
	Fields   []Field
}

// DeriveFunc computes a synthetic field value from the full representation.
// Implementations must be pure: no side effects, same output for same input.
type DeriveFunc func(r *Representation) any

// Registry holds the fixed projection configuration: field catalogs per
// resource kind, profiles, and synthetic derivations. It is built once at
// startup, validated with Validate, and read-only afterwards, so it is safe
// for concurrent use.
type Registry struct {
	catalogs map[string]map[string]struct{}
	profiles map[string]Profile
	derives  map[string]DeriveFunc
}

func NewRegistry() *Registry {
	return &Registry{
		catalogs: make(map[string]map[string]struct{}),
		profiles: make(map[string]Profile),
		derives:  make(map[string]DeriveFunc),
	}
}

// Catalog declares the stored fields of a resource kind. Profiles for that
// resource may only reference declared or synthetic fields.
func (reg *Registry) Catalog(resource string, fields ...string) *Registry {
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	reg.catalogs[resource] = set
	return reg
}

// Add registers a profile.
func (reg *Registry) Add(p Profile) *Registry {
	reg.profiles[p.Name] = p
	return reg
}

// Derive registers the derivation for a synthetic field name.
func (reg *Registry) Derive(field string, fn DeriveFunc) *Registry {
	reg.derives[field] = fn
	return reg
}

// Validate checks every profile against its resource catalog and the
// derivation table. Call it at startup: a profile naming an unknown stored
// field or an undeclared synthetic field is a configuration error and must
// fail the process before it serves requests.
func (reg *Registry) Validate() error {
	for name, p := range reg.profiles {
		catalog, ok := reg.catalogs[p.Resource]
		if !ok {
			return fmt.Errorf("profile %q: unknown resource %q", name, p.Resource)
		}
		for _, f := range p.Fields {
			if f.Synthetic {
				if _, ok := reg.derives[f.Name]; !ok {
					return fmt.Errorf("profile %q: synthetic field %q has no derivation", name, f.Name)
				}
				continue
			}
			if _, ok := catalog[f.Name]; !ok {
				return fmt.Errorf("profile %q: field %q not in %q catalog", name, f.Name, p.Resource)
			}
		}
	}
	return nil
}

// Project returns a new representation holding exactly the profile's fields,
// in profile order. The input is never mutated. Synthetic fields are derived
// from the full representation; absent fields marked OmitWhenAbsent are
// skipped, other absent fields are emitted as null.
func (reg *Registry) Project(r *Representation, profileName string) (*Representation, error) {
	p, ok := reg.profiles[profileName]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q", profileName)
	}

	out := New()
	for _, f := range p.Fields {
		if f.Synthetic {
			out.Set(f.Name, reg.derives[f.Name](r))
			continue
		}
		v, present := r.Get(f.Name)
		if !present {
			if f.OmitWhenAbsent {
				continue
			}
			out.Set(f.Name, nil)
			continue
		}
		out.Set(f.Name, v)
	}
	return out, nil
}
