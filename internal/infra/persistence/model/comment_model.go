package model

import "time"

// CommentModel mirrors the 'comments' table. PostID references posts.id;
// comments are removed together with their post.
type CommentModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(255);not null"`
	Body      string `gorm:"type:text;not null"`
	PostID    int64  `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
