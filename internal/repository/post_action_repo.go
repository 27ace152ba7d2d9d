package repository

import (
	"FitSphere/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostActionRepo interface {
	ToggleLike(ctx context.Context, userID, postID uint64) (bool, error)
	GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error)
	GetLikedPostIDs(ctx context.Context, userID uint64, postIDs []uint64) ([]uint64, error)
	GetLikeCountsByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error)

	CreateComment(ctx context.Context, comment *model.PostComment) error
	DeleteCommentCascade(ctx context.Context, comment *model.PostComment) (int64, error)
	GetCommentByID(ctx context.Context, commentID uint64) (*model.PostComment, error)
	GetRootCommentsByPostID(ctx context.Context, postID uint64) ([]*model.PostComment, error)
	GetRepliesByParentIDs(ctx context.Context, parentIDs []uint64) ([]*model.PostComment, error)
	RecountAllCommentCounts(ctx context.Context) (int64, error)
}

type PostActionRepoImpl struct {
	db *gorm.DB
}

func NewPostActionRepo(db *gorm.DB) PostActionRepo {
	return &PostActionRepoImpl{db}
}

// ToggleLike 在一个事务里翻转点赞：先删，删不到再插，返回翻转后的状态
func (s *PostActionRepoImpl) ToggleLike(ctx context.Context, userID, postID uint64) (bool, error) {
	var liked bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&model.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return nil
		}
		like := &model.Like{UserID: userID, PostID: postID, CreatedAt: time.Now()}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

func (s *PostActionRepoImpl) GetLikeCountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

// GetLikedPostIDs 给定候选帖子集合，返回其中该用户点过赞的子集
func (s *PostActionRepoImpl) GetLikedPostIDs(ctx context.Context, userID uint64, postIDs []uint64) ([]uint64, error) {
	var likedIDs []uint64
	if len(postIDs) == 0 {
		return likedIDs, nil
	}
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Pluck("post_id", &likedIDs).Error
	return likedIDs, err
}

type postLikeCount struct {
	PostID uint64
	Count  int64
}

func (s *PostActionRepoImpl) GetLikeCountsByPostIDs(ctx context.Context, postIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}
	var rows []postLikeCount
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}

// CreateComment 插入评论并在同一事务内维护帖子的冗余计数
func (s *PostActionRepoImpl) CreateComment(ctx context.Context, comment *model.PostComment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Post{}).
			Where("id = ?", comment.PostID).
			Update("comments_count", gorm.Expr("comments_count + 1")).Error
	})
}

// DeleteCommentCascade 删除评论及其全部回复，计数按实际删除行数扣减。
// 返回删除的行数
func (s *PostActionRepoImpl) DeleteCommentCascade(ctx context.Context, comment *model.PostComment) (int64, error) {
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? OR parent_id = ?", comment.ID, comment.ID).
			Delete(&model.PostComment{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		if removed == 0 {
			return nil
		}
		return tx.Model(&model.Post{}).
			Where("id = ? AND comments_count >= ?", comment.PostID, removed).
			Update("comments_count", gorm.Expr("comments_count - ?", removed)).Error
	})
	return removed, err
}

func (s *PostActionRepoImpl) GetCommentByID(ctx context.Context, commentID uint64) (*model.PostComment, error) {
	var comment model.PostComment
	err := s.db.WithContext(ctx).
		First(&comment, commentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// GetRootCommentsByPostID 帖子的一级评论，创建时间升序
func (s *PostActionRepoImpl) GetRootCommentsByPostID(ctx context.Context, postID uint64) ([]*model.PostComment, error) {
	comments := make([]*model.PostComment, 0)
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ? AND parent_id = ?", postID, 0).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

// GetRepliesByParentIDs 批量取回复，创建时间升序
func (s *PostActionRepoImpl) GetRepliesByParentIDs(ctx context.Context, parentIDs []uint64) ([]*model.PostComment, error) {
	replies := make([]*model.PostComment, 0)
	if len(parentIDs) == 0 {
		return replies, nil
	}
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("parent_id IN ?", parentIDs).
		Order("created_at ASC, id ASC").
		Find(&replies).Error
	return replies, err
}

// RecountAllCommentCounts 以活动行重算全部帖子的冗余计数，返回修正的帖子数
func (s *PostActionRepoImpl) RecountAllCommentCounts(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Exec(
		`UPDATE posts p
		 SET p.comments_count = (
		   SELECT COUNT(*) FROM post_comments c WHERE c.post_id = p.id
		 )
		 WHERE p.comments_count <> (
		   SELECT COUNT(*) FROM post_comments c WHERE c.post_id = p.id
		 )`)
	return res.RowsAffected, res.Error
}
