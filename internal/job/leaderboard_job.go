package job

import (
	"FitSphere/internal/service"
	"context"
	log "log/slog"
	"time"
)

// LeaderboardWarmJob 定时预热当日排行榜缓存，失败只记日志
type LeaderboardWarmJob struct {
	leaderboardSvc service.LeaderboardService
}

func NewLeaderboardWarmJob(leaderboardSvc service.LeaderboardService) *LeaderboardWarmJob {
	return &LeaderboardWarmJob{leaderboardSvc: leaderboardSvc}
}

func (s *LeaderboardWarmJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	if err := s.leaderboardSvc.WarmDailyCache(ctx); err != nil {
		log.Warn("leaderboard cache warm failed", "err", err)
		return
	}
	log.Info("leaderboard cache warmed")
}
