package api

import "github.com/kiosk123/user-api/internal/representation"

// NewProfileRegistry builds the fixed projection configuration: the stored
// field catalogs, the per-version profiles, and the synthetic derivations.
// Callers must run Validate before serving; a profile referencing an
// unknown field is a startup error, not a request-time one.
func NewProfileRegistry() *representation.Registry {
	reg := representation.NewRegistry()

	reg.Catalog("user", "id", "name", "password", "ssn", "joinDate")
	reg.Catalog("post", "id", "description", "createDate", "updateDate")

	reg.Add(representation.Profile{
		Name:     "public-user",
		Resource: "user",
		Fields: []representation.Field{
			{Name: "id"}, {Name: "name"}, {Name: "joinDate"},
		},
	})
	reg.Add(representation.Profile{
		Name:     "admin-user",
		Resource: "user",
		Fields: []representation.Field{
			{Name: "id"}, {Name: "name"}, {Name: "joinDate"}, {Name: "ssn"},
		},
	})
	reg.Add(representation.Profile{
		Name:     "admin-user-v2",
		Resource: "user",
		Fields: []representation.Field{
			{Name: "id"}, {Name: "name"}, {Name: "joinDate"}, {Name: "ssn"},
			{Name: "grade", Synthetic: true},
		},
	})
	reg.Add(representation.Profile{
		Name:     "post",
		Resource: "post",
		Fields: []representation.Field{
			{Name: "id"}, {Name: "description"}, {Name: "createDate"}, {Name: "updateDate"},
		},
	})

	// grade is a response-time classification, not a stored field. Every
	// user currently carries the same grade.
	reg.Derive("grade", func(*representation.Representation) any {
		return "VIP"
	})

	return reg
}
