package service

import (
	"FitSphere/internal/api/dto"
	"FitSphere/internal/pkg/consts"
	"FitSphere/internal/pkg/redis"
	"FitSphere/internal/pkg/util"
	"FitSphere/internal/repository"
	"context"
	"time"

	"github.com/goccy/go-json"
)

const leaderboardCacheTTL = time.Minute * 5

type LeaderboardService interface {
	GetDailyLeaderboard(ctx context.Context, limit int) ([]*dto.LeaderboardEntryDTO, error)
	WarmDailyCache(ctx context.Context) error
}

type LeaderboardServiceImpl struct {
	healthRepo repository.HealthRepo
}

func NewLeaderboardService(healthRepo repository.HealthRepo) LeaderboardService {
	return &LeaderboardServiceImpl{healthRepo: healthRepo}
}

// GetDailyLeaderboard 当日步数排行。缓存按天分键，短 TTL，
// 缓存不可用时直接回源数据库
func (s *LeaderboardServiceImpl) GetDailyLeaderboard(ctx context.Context, limit int) ([]*dto.LeaderboardEntryDTO, error) {
	if limit <= 0 || limit > consts.MaxPageSize {
		limit = consts.LeaderboardLimit
	}
	today := util.Midnight(time.Now())
	key := consts.DailyLeaderboardKey + today.Format(time.DateOnly)

	value, err := redis.GetValue(ctx, key)
	if err == nil && value != "" {
		var cached []*dto.LeaderboardEntryDTO
		if err := json.Unmarshal([]byte(value), &cached); err == nil && len(cached) >= limit {
			return cached[:limit], nil
		}
	}

	entries, err := s.computeBoard(ctx, today, limit)
	if err != nil {
		return nil, err
	}

	if jsonStr, err := json.Marshal(entries); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(jsonStr), leaderboardCacheTTL)
	}
	return entries, nil
}

// WarmDailyCache 定时预热当日榜单，失败只记错误不向上传播
func (s *LeaderboardServiceImpl) WarmDailyCache(ctx context.Context) error {
	today := util.Midnight(time.Now())
	key := consts.DailyLeaderboardKey + today.Format(time.DateOnly)

	entries, err := s.computeBoard(ctx, today, consts.MaxPageSize)
	if err != nil {
		return err
	}
	jsonStr, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, key, string(jsonStr), leaderboardCacheTTL)
}

func (s *LeaderboardServiceImpl) computeBoard(ctx context.Context, date time.Time, limit int) ([]*dto.LeaderboardEntryDTO, error) {
	ranks, err := s.healthRepo.TopByDate(ctx, date, limit)
	if err != nil {
		return nil, err
	}
	entries := make([]*dto.LeaderboardEntryDTO, 0, len(ranks))
	for i, rank := range ranks {
		entries = append(entries, &dto.LeaderboardEntryDTO{
			Rank:          i + 1,
			UserID:        rank.UserID,
			Username:      rank.Username,
			ProfilePicURL: rank.ProfilePicURL,
			Steps:         rank.Steps,
		})
	}
	return entries, nil
}
