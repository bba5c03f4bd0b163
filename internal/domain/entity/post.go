package entity

import "time"

// Post is an owner-scoped blog entry. OwnerID is fixed at creation; only the
// owner may read, mutate or remove the post through the owner-scoped
// operations.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	OwnerID   int64     `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
