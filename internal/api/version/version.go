// Package version decides, once per request, which API version applies and
// what that version implies: the audience, the projection profile per
// resource kind, whether hypermedia links are attached, and the base path
// links are built from. All version decisions live here; nothing downstream
// re-derives routing rules.
package version

import (
	"errors"
	"mime"
	"net/http"
	"strings"
)

// MediaTypeV2 is the vendor media type that selects version 2 semantics
// when presented in the Accept header.
const MediaTypeV2 = "application/vnd.kiosk.v2+json"

// Audience scopes field visibility.
type Audience string

const (
	AudiencePublic Audience = "public"
	AudienceAdmin  Audience = "admin"
)

// ErrUnroutable means no descriptor matched the request. The router never
// guesses a default; the HTTP layer maps this to 406 Not Acceptable.
var ErrUnroutable = errors.New("no api version matches the request")

// Descriptor ties a request-matching rule to a profile set and link policy.
// Descriptors are fixed configuration: resolved per request, never mutated.
type Descriptor struct {
	Name     string
	Audience Audience
	// PathPrefix, when non-empty, matches requests whose path starts with
	// it. Path rules take precedence over media-type rules.
	PathPrefix string
	// MediaType, when non-empty, matches requests whose Accept header
	// names it. Checked only when no path rule matched.
	MediaType string
	// AcceptsGenericJSON matches plain JSON accepts (empty Accept, */*,
	// application/* or application/json).
	AcceptsGenericJSON bool
	// Profiles maps a resource kind ("user", "post") to the projection
	// profile this version uses for it.
	Profiles map[string]string
	// Links enables hypermedia augmentation.
	Links bool
	// BasePath is prepended to every link target built for this version.
	BasePath string
}

// ProfileFor returns the profile name this version applies to a resource kind.
func (d Descriptor) ProfileFor(resource string) string {
	return d.Profiles[resource]
}

// Resolver matches requests against an immutable descriptor list. Safe for
// unlimited concurrent use: it only reads its configuration.
type Resolver struct {
	descriptors []Descriptor
}

func NewResolver(descriptors ...Descriptor) *Resolver {
	return &Resolver{descriptors: descriptors}
}

// Default returns the production descriptor set:
//
//	v1-public  unprefixed path + generic JSON accept  profile public-user
//	v1-admin   /admin path prefix                     profile admin-user
//	v2-admin   vendor media type in Accept            profile admin-user-v2, links
func Default() *Resolver {
	return NewResolver(
		Descriptor{
			Name:       "v1-admin",
			Audience:   AudienceAdmin,
			PathPrefix: "/admin",
			Profiles:   map[string]string{"user": "admin-user", "post": "post"},
			BasePath:   "/admin",
		},
		Descriptor{
			Name:      "v2-admin",
			Audience:  AudienceAdmin,
			MediaType: MediaTypeV2,
			Profiles:  map[string]string{"user": "admin-user-v2", "post": "post"},
			Links:     true,
		},
		Descriptor{
			Name:               "v1-public",
			Audience:           AudiencePublic,
			AcceptsGenericJSON: true,
			Profiles:           map[string]string{"user": "public-user", "post": "post"},
		},
	)
}

// Resolve returns the single descriptor matching the request, trying rules
// in fixed precedence order: explicit path markers first (they are
// unambiguous), media-type rules second. When nothing matches it returns
// ErrUnroutable rather than a silent fallback.
func (r *Resolver) Resolve(req *http.Request) (Descriptor, error) {
	path := req.URL.Path
	for _, d := range r.descriptors {
		if d.PathPrefix == "" {
			continue
		}
		if path == d.PathPrefix || strings.HasPrefix(path, d.PathPrefix+"/") {
			return d, nil
		}
	}

	accepted := acceptedTypes(req.Header.Get("Accept"))
	for _, d := range r.descriptors {
		if d.MediaType != "" && accepted[d.MediaType] {
			return d, nil
		}
	}
	if accepted[""] || accepted["*/*"] || accepted["application/*"] || accepted["application/json"] {
		for _, d := range r.descriptors {
			if d.AcceptsGenericJSON {
				return d, nil
			}
		}
	}

	return Descriptor{}, ErrUnroutable
}

// acceptedTypes parses an Accept header into the set of normalized media
// types it names. An empty or missing header yields the "" entry.
func acceptedTypes(header string) map[string]bool {
	out := make(map[string]bool)
	if strings.TrimSpace(header) == "" {
		out[""] = true
		return out
	}
	for _, part := range strings.Split(header, ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		out[strings.ToLower(mt)] = true
	}
	return out
}
