package representation

// Link is a single navigational affordance, rendered HAL-style.
type Link struct {
	Href string `json:"href"`
}

// Links maps relation names (self, collection, ...) to their targets.
// encoding/json emits map keys sorted, so link order is deterministic.
type Links map[string]Link

// Augment appends a "_links" field to an already-projected view. It runs
// strictly after projection, so links can never reintroduce fields the
// profile excluded. When enabled is false, or there are no links, the view
// is returned unchanged.
func Augment(view *Representation, enabled bool, links Links) *Representation {
	if !enabled || len(links) == 0 {
		return view
	}
	out := New()
	for _, name := range view.Names() {
		v, _ := view.Get(name)
		out.Set(name, v)
	}
	out.Set("_links", links)
	return out
}
