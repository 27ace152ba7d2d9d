package repository

import (
	"FitSphere/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, postID uint64) (*model.Post, error)
	GetFeed(ctx context.Context, limit, offset int) ([]*model.Post, error)
	GetRecentByUser(ctx context.Context, userID uint64, limit int) ([]*model.Post, error)
	CountByUser(ctx context.Context, userID uint64) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, postID uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		First(&post, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetFeed 全站时间倒序流
func (s *PostRepoImpl) GetFeed(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0, limit)
	err := s.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) GetRecentByUser(ctx context.Context, userID uint64, limit int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0, limit)
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
