package handler

import "time"

// --- Request types ---
//
// Wire field names follow the representation catalog (camelCase), so a
// payload echoed back through a profile keeps the same vocabulary.

type createUserRequest struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Password string `json:"password" validate:"required"`
	SSN      string `json:"ssn"      validate:"required"`
	// JoinDate is accepted for compatibility but ignored: the store
	// assigns it exactly once. When present it must lie in the past.
	JoinDate *time.Time `json:"joinDate,omitempty" validate:"omitempty,lt"`
}

type updateUserRequest struct {
	// ID is optional in the body; when present it must match the path id.
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"     validate:"required,min=2"`
	Password string `json:"password" validate:"required"`
	SSN      string `json:"ssn"      validate:"required"`
}

type createPostRequest struct {
	Description string `json:"description" validate:"required"`
}

type updatePostRequest struct {
	// The post id travels in the body on PUT /users/:userId/posts.
	ID          int64  `json:"id"          validate:"required"`
	Description string `json:"description" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required,oneof=admin user"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
