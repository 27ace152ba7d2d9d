package model

import (
	"time"
)

const (
	PostTypeWorkout         = "WORKOUT"
	PostTypeMilestone       = "MILESTONE"
	PostTypeMotivation      = "MOTIVATION"
	PostTypeProgressPhoto   = "PROGRESS_PHOTO"
	PostTypeChallengeUpdate = "CHALLENGE_UPDATE"
)

type Post struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	UserID        uint64    `gorm:"not null;index:idx_user_id" json:"userId"`
	Caption       string    `gorm:"type:varchar(1000);not null" json:"caption"`
	ImageURL      *string   `gorm:"type:varchar(512)" json:"imageUrl"`
	PostType      string    `gorm:"type:varchar(20);not null" json:"postType"`
	CommentsCount int       `gorm:"not null;default:0" json:"commentsCount"`
	CreatedAt     time.Time `json:"createdAt"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}
