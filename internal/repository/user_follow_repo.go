package repository

import (
	"FitSphere/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserFollowRepo interface {
	ToggleFollow(ctx context.Context, followerID, followingID uint64) (bool, error)
	GetUserFollowers(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error)
	GetUserFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error)
	GetUserFollowerCount(ctx context.Context, userID uint64) (int64, error)
	GetUserFollowingCount(ctx context.Context, userID uint64) (int64, error)
	GetUserFollow(ctx context.Context, followerID, followingID uint64) (*model.UserFollow, error)
}

type UserFollowRepoImpl struct {
	db *gorm.DB
}

func NewUserFollowRepo(db *gorm.DB) UserFollowRepo {
	return &UserFollowRepoImpl{db: db}
}

// ToggleFollow 在一个事务里翻转关注关系：先删，删不到再插。
// 返回翻转后的状态。并发调用不会产生重复边
func (s *UserFollowRepoImpl) ToggleFollow(ctx context.Context, followerID, followingID uint64) (bool, error) {
	var isFollowing bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Delete(&model.UserFollow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			isFollowing = false
			return nil
		}
		edge := &model.UserFollow{
			FollowerID:  followerID,
			FollowingID: followingID,
			CreatedAt:   time.Now(),
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(edge).Error; err != nil {
			return err
		}
		isFollowing = true
		return nil
	})
	return isFollowing, err
}

// GetUserFollowers 获取用户的粉丝列表
func (s *UserFollowRepoImpl) GetUserFollowers(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error) {
	users := make([]*model.User, 0)
	err := s.db.WithContext(ctx).
		Model(&model.User{}).
		Joins("JOIN user_follows ON user_follows.follower_id = users.id").
		Where("user_follows.following_id = ?", userID).
		Order("user_follows.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetUserFollowing 获取用户的关注列表
func (s *UserFollowRepoImpl) GetUserFollowing(ctx context.Context, userID uint64, limit, offset int) ([]*model.User, error) {
	users := make([]*model.User, 0)
	err := s.db.WithContext(ctx).
		Model(&model.User{}).
		Joins("JOIN user_follows ON user_follows.following_id = users.id").
		Where("user_follows.follower_id = ?", userID).
		Order("user_follows.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetUserFollowerCount 获取用户的粉丝数量
func (s *UserFollowRepoImpl) GetUserFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.UserFollow{}).
		Where("following_id = ?", userID).
		Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// GetUserFollowingCount 获取用户的关注数量
func (s *UserFollowRepoImpl) GetUserFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.UserFollow{}).
		Where("follower_id = ?", userID).
		Count(&count)

	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// GetUserFollow 获取用户的关注关系
func (s *UserFollowRepoImpl) GetUserFollow(ctx context.Context, followerID, followingID uint64) (*model.UserFollow, error) {
	var userFollow model.UserFollow
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&userFollow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &userFollow, nil
}
