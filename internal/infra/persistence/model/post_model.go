package model

import "time"

// PostModel mirrors the 'posts' table. UserID references users.id and is
// fixed at creation.
type PostModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"type:varchar(255);not null"`
	Body      string `gorm:"type:text;not null"`
	UserID    int64  `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Comments []CommentModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
