package dto

// LeaderboardEntryDTO 当日排行榜单项，逐次请求即时计算，不落库
type LeaderboardEntryDTO struct {
	Rank          int     `json:"rank"`
	UserID        uint64  `json:"user_id"`
	Username      string  `json:"username"`
	ProfilePicURL *string `json:"profile_pic_url,omitempty"`
	Steps         int     `json:"steps"`
}
