package domain

import (
	"fmt"
	"time"
)

// User is the canonical, version-agnostic user resource. All fields are
// always present in memory; which of them reach the wire is decided per
// request by the representation layer.
type User struct {
	ID       int64     `bson:"_id"`
	Name     string    `bson:"name"`
	Password string    `bson:"password"`
	SSN      string    `bson:"ssn"`
	JoinDate time.Time `bson:"join_date"`
}

// UserNotFoundError reports a lookup for a user id that does not exist.
// The message format is part of the API error contract.
type UserNotFoundError struct {
	ID int64
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("ID[%d] not found", e.ID)
}
