package model

import (
	"time"
)

type User struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	Username      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_username" json:"username"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_email" json:"email"`
	Password      string    `gorm:"type:varchar(255);not null" json:"-"`
	ProfilePicURL *string   `gorm:"type:varchar(512)" json:"profilePicUrl"`
	Bio           *string   `gorm:"type:varchar(200)" json:"bio"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
