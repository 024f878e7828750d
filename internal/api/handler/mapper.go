package handler

import (
	"fmt"

	"github.com/kiosk123/user-api/internal/core/domain"
	"github.com/kiosk123/user-api/internal/representation"
)

// userRepresentation builds the full, unprojected representation of a user.
// Every stored field is present; profiles decide what leaves the process.
func userRepresentation(u *domain.User) *representation.Representation {
	return representation.New().
		Set("id", u.ID).
		Set("name", u.Name).
		Set("password", u.Password).
		Set("ssn", u.SSN).
		Set("joinDate", u.JoinDate)
}

func postRepresentation(p *domain.Post) *representation.Representation {
	return representation.New().
		Set("id", p.ID).
		Set("description", p.Description).
		Set("createDate", p.CreateDate).
		Set("updateDate", p.UpdateDate)
}

// --- Link relation sets ---
//
// Targets are built from the base path the version router resolved; the
// relation vocabulary is fixed per resource shape.

func userLinks(basePath string, id int64) representation.Links {
	return representation.Links{
		"self":       {Href: fmt.Sprintf("%s/users/%d", basePath, id)},
		"collection": {Href: basePath + "/users"},
	}
}

func userCollectionLinks(basePath string) representation.Links {
	return representation.Links{
		"self": {Href: basePath + "/users"},
	}
}

func postCollectionLinks(basePath string, userID int64) representation.Links {
	return representation.Links{
		"self": {Href: fmt.Sprintf("%s/users/%d/posts", basePath, userID)},
	}
}
