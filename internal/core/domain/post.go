package domain

import (
	"fmt"
	"time"
)

// Post belongs to exactly one user. CreateDate is set once by the store;
// UpdateDate advances on every mutation. Deleting the owning user deletes
// all of its posts.
type Post struct {
	ID          int64     `bson:"_id"`
	UserID      int64     `bson:"user_id"`
	Description string    `bson:"description"`
	CreateDate  time.Time `bson:"create_date"`
	UpdateDate  time.Time `bson:"update_date"`
}

// PostNotFoundError reports a missing post within a user's scope. The
// message names both ids.
type PostNotFoundError struct {
	UserID int64
	PostID int64
}

func (e *PostNotFoundError) Error() string {
	return fmt.Sprintf("User ID[%d]'s post ID[%d] not found", e.UserID, e.PostID)
}
