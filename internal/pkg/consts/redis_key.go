package consts

const (
	UserFollowerCountKey  = "user:follower:count:"
	UserFollowingCountKey = "user:following:count:"
	DailyLeaderboardKey   = "leaderboard:daily:"
	TokenBlacklistKey     = "token:blacklist:"
)

const (
	CommentReconcileLock = "lock:comment:reconcile"
)
