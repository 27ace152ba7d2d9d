package dto

// UserProfileDTO 个人主页聚合视图
type UserProfileDTO struct {
	User           *PublicUserDTO   `json:"user"`
	FollowerCount  int64            `json:"follower_count"`
	FollowingCount int64            `json:"following_count"`
	IsFollowing    bool             `json:"is_following"`
	TodayRecord    *HealthRecordDTO `json:"today_record"`
	Badges         []string         `json:"badges"`
	RecentPosts    []*PostDTO       `json:"recent_posts"`
}
