package api

import "FitSphere/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler        *handler.UserHandler
	UserFollowHandler  *handler.UserFollowHandler
	PostHandler        *handler.PostHandler
	PostActionHandler  *handler.PostActionHandler
	HealthHandler      *handler.HealthHandler
	ChallengeHandler   *handler.ChallengeHandler
	LeaderboardHandler *handler.LeaderboardHandler
}
