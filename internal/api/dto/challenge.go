package dto

// ChallengeCreateDTO 创建挑战
type ChallengeCreateDTO struct {
	Title       string `json:"title" binding:"required" validate:"min=1,max=255"`
	Description string `json:"description" validate:"max=1000"`
	StartDate   string `json:"start_date" binding:"required" validate:"datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"required" validate:"datetime=2006-01-02"`
	GoalType    string `json:"goal_type" binding:"required"`
	GoalValue   int    `json:"goal_value" binding:"required"`
	IsPublic    *bool  `json:"is_public,omitempty"`
}

// ChallengeJoinDTO 加入挑战
type ChallengeJoinDTO struct {
	ChallengeID uint64 `json:"challenge_id" binding:"required"`
}

// ChallengeSummaryDTO 挑战列表项
type ChallengeSummaryDTO struct {
	ID               uint64 `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	CreatorID        uint64 `json:"creator_id"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	GoalType         string `json:"goal_type"`
	GoalValue        int    `json:"goal_value"`
	ParticipantCount int64  `json:"participant_count"`
	CurrentProgress  int64  `json:"current_progress"`
	Percentage       int    `json:"percentage"`
}

// ParticipantProgressDTO 单个参与者在挑战窗口内的累计贡献
type ParticipantProgressDTO struct {
	UserID        uint64  `json:"user_id"`
	Username      string  `json:"username"`
	ProfilePicURL *string `json:"profile_pic_url,omitempty"`
	TotalSteps    int64   `json:"total_steps"`
	TotalCalories int64   `json:"total_calories"`
}

// ChallengeDetailDTO 挑战详情，含按目标指标倒序的参与者排行
type ChallengeDetailDTO struct {
	ID            uint64                    `json:"id"`
	Title         string                    `json:"title"`
	Description   string                    `json:"description"`
	CreatorID     uint64                    `json:"creator_id"`
	StartDate     string                    `json:"start_date"`
	EndDate       string                    `json:"end_date"`
	GoalType      string                    `json:"goal_type"`
	GoalValue     int                       `json:"goal_value"`
	GroupProgress int64                     `json:"group_progress"`
	Percentage    int                       `json:"percentage"`
	Completed     bool                      `json:"completed"`
	Expired       bool                      `json:"expired"`
	Participants  []*ParticipantProgressDTO `json:"participants"`
}
