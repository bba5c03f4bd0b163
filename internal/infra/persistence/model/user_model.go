// Package model holds the GORM persistence models. They mirror the database
// tables and are mapped to and from the pure domain entities at the
// repository boundary.
package model

import "time"

// UserModel mirrors the 'users' table. Username and email carry unique
// indexes; the storage layer, not the application, enforces uniqueness.
type UserModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null"`
	Username  string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Posts []PostModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
