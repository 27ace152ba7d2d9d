package dto

// LikeToggleDTO 点赞切换结果
type LikeToggleDTO struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// CommentCreateDTO 创建评论或回复
type CommentCreateDTO struct {
	Content string `json:"content" binding:"required" validate:"min=1,max=1000"`
}

// CommentDTO 评论详情，一级评论内嵌回复列表
type CommentDTO struct {
	ID        uint64 `json:"id"`
	PostID    uint64 `json:"post_id"`
	ParentID  uint64 `json:"parent_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`

	// User
	UserID        uint64  `json:"user_id"`
	Username      string  `json:"username"`
	ProfilePicURL *string `json:"profile_pic_url,omitempty"`

	Replies []*CommentDTO `json:"replies,omitempty"`
}

// CommentDeleteDTO 删除评论结果
type CommentDeleteDTO struct {
	DeletedID uint64 `json:"deleted_id"`
}
