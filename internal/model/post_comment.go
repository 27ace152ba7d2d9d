package model

import (
	"time"
)

type PostComment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"not null;index:idx_post_id" json:"postId"`
	UserID    uint64    `gorm:"not null" json:"userId"`
	Content   string    `gorm:"type:varchar(1000);not null" json:"content"`
	ParentID  uint64    `gorm:"not null;default:0;index:idx_parent_id" json:"parentId"` // 0表示这是一级评论
	CreatedAt time.Time `json:"createdAt"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (PostComment) TableName() string {
	return "post_comments"
}
