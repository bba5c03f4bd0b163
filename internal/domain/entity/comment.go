package entity

import "time"

// Comment belongs to a post. Name and email are taken from the commenter's
// token claims at creation; updates and removal require the stored email to
// match the caller's claimed email.
type Comment struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	PostID    int64     `json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
