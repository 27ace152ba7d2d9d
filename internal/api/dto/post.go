package dto

// PostCreateDTO 发帖
type PostCreateDTO struct {
	Caption  string  `json:"caption" binding:"required" validate:"min=1,max=1000"`
	ImageURL *string `json:"image_url,omitempty" validate:"omitempty,max=512"`
	PostType string  `json:"post_type" binding:"required"`
}

// PostDTO 帖子详情，动态流与个人主页共用
type PostDTO struct {
	ID        uint64  `json:"id"`
	Caption   string  `json:"caption"`
	ImageURL  *string `json:"image_url,omitempty"`
	PostType  string  `json:"post_type"`
	CreatedAt string  `json:"created_at"`

	// User
	UserID        uint64  `json:"user_id"`
	Username      string  `json:"username"`
	ProfilePicURL *string `json:"profile_pic_url,omitempty"`

	// 交互状态
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
	HasLiked     bool  `json:"has_liked"`
}

// FeedQueryDTO 动态流分页
type FeedQueryDTO struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}
