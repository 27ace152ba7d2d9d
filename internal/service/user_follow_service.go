package service

import (
	"FitSphere/internal/api/dto"
	"FitSphere/internal/pkg/consts"
	"FitSphere/internal/pkg/redis"
	"FitSphere/internal/repository"
	"context"
	"strconv"
	"time"
)

const followCountCacheTTL = time.Hour * 1

type UserFollowService interface {
	ToggleFollow(ctx context.Context, followerID, followingID uint64) (bool, error)
	GetFollowers(ctx context.Context, userID uint64, limit, offset int) ([]*dto.PublicUserDTO, error)
	GetFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*dto.PublicUserDTO, error)
	GetFollowerCount(ctx context.Context, userID uint64) (int64, error)
	GetFollowingCount(ctx context.Context, userID uint64) (int64, error)
	IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error)
}

type UserFollowServiceImpl struct {
	userFollowRepo repository.UserFollowRepo
	userRepo       repository.UserRepo
}

func NewUserFollowService(userFollowRepo repository.UserFollowRepo, userRepo repository.UserRepo) UserFollowService {
	return &UserFollowServiceImpl{
		userFollowRepo: userFollowRepo,
		userRepo:       userRepo,
	}
}

// ToggleFollow 翻转关注关系并返回翻转后的状态
func (s *UserFollowServiceImpl) ToggleFollow(ctx context.Context, followerID, followingID uint64) (bool, error) {
	if followerID == followingID {
		return false, ErrUserFollowSelf
	}
	target, err := s.userRepo.GetUserByID(ctx, followingID)
	if err != nil {
		return false, err
	}
	if target == nil {
		return false, ErrUserNotFound
	}

	isFollowing, err := s.userFollowRepo.ToggleFollow(ctx, followerID, followingID)
	if err != nil {
		return false, err
	}

	// 计数缓存失效，下次读取回源
	_ = redis.DeleteKey(ctx, consts.UserFollowerCountKey+strconv.FormatUint(followingID, 10))
	_ = redis.DeleteKey(ctx, consts.UserFollowingCountKey+strconv.FormatUint(followerID, 10))

	return isFollowing, nil
}

func (s *UserFollowServiceImpl) GetFollowers(ctx context.Context, userID uint64, limit, offset int) ([]*dto.PublicUserDTO, error) {
	users, err := s.userFollowRepo.GetUserFollowers(ctx, userID, clampPageSize(limit), offset)
	if err != nil {
		return nil, err
	}
	return toPublicUserDTOs(users), nil
}

func (s *UserFollowServiceImpl) GetFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*dto.PublicUserDTO, error) {
	users, err := s.userFollowRepo.GetUserFollowing(ctx, userID, clampPageSize(limit), offset)
	if err != nil {
		return nil, err
	}
	return toPublicUserDTOs(users), nil
}

func (s *UserFollowServiceImpl) GetFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	return s.getCountCommon(ctx, userID, consts.UserFollowerCountKey, s.userFollowRepo.GetUserFollowerCount)
}

func (s *UserFollowServiceImpl) GetFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	return s.getCountCommon(ctx, userID, consts.UserFollowingCountKey, s.userFollowRepo.GetUserFollowingCount)
}

func (s *UserFollowServiceImpl) IsFollowing(ctx context.Context, followerID, followingID uint64) (bool, error) {
	edge, err := s.userFollowRepo.GetUserFollow(ctx, followerID, followingID)
	if err != nil {
		return false, err
	}
	return edge != nil, nil
}

type fetchCountFunc func(ctx context.Context, userID uint64) (int64, error)

// getCountCommon 读缓存，未命中或缓存不可用时回源并写回
func (s *UserFollowServiceImpl) getCountCommon(
	ctx context.Context,
	userID uint64,
	keyPrefix string,
	fetchDB fetchCountFunc,
) (int64, error) {
	key := keyPrefix + strconv.FormatUint(userID, 10)

	if cached, err := redis.GetInt64(ctx, key); err == nil {
		return cached, nil
	}

	count, err := fetchDB(ctx, userID)
	if err != nil {
		return 0, err
	}

	_ = redis.SetWithExpiration(ctx, key, count, followCountCacheTTL)
	return count, nil
}

func clampPageSize(limit int) int {
	if limit <= 0 {
		return consts.DefaultPageSize
	}
	if limit > consts.MaxPageSize {
		return consts.MaxPageSize
	}
	return limit
}
