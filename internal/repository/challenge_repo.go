package repository

import (
	"FitSphere/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ChallengeRepo interface {
	CreateWithCreator(ctx context.Context, challenge *model.Challenge) error
	GetByID(ctx context.Context, challengeID uint64) (*model.Challenge, error)
	ListActive(ctx context.Context, today time.Time) ([]*model.Challenge, error)
	AddParticipant(ctx context.Context, participant *model.ChallengeParticipant) error
	GetParticipantIDs(ctx context.Context, challengeID uint64) ([]uint64, error)
	HasAnyParticipation(ctx context.Context, userID uint64) (bool, error)
}

type ChallengeRepoImpl struct {
	db *gorm.DB
}

func NewChallengeRepo(db *gorm.DB) ChallengeRepo {
	return &ChallengeRepoImpl{db: db}
}

// CreateWithCreator 创建挑战并在同一事务内把创建者加入参与者名单，
// 两步要么都成功要么都回滚，不留没有参与者的孤儿挑战
func (s *ChallengeRepoImpl) CreateWithCreator(ctx context.Context, challenge *model.Challenge) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(challenge).Error; err != nil {
			return err
		}
		participant := &model.ChallengeParticipant{
			UserID:      challenge.CreatorID,
			ChallengeID: challenge.ID,
			JoinedAt:    time.Now(),
		}
		return tx.Create(participant).Error
	})
}

func (s *ChallengeRepoImpl) GetByID(ctx context.Context, challengeID uint64) (*model.Challenge, error) {
	var challenge model.Challenge
	err := s.db.WithContext(ctx).First(&challenge, challengeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &challenge, nil
}

// ListActive 结束日期未过的公开挑战，开始时间倒序
func (s *ChallengeRepoImpl) ListActive(ctx context.Context, today time.Time) ([]*model.Challenge, error) {
	challenges := make([]*model.Challenge, 0)
	err := s.db.WithContext(ctx).
		Where("is_public = ? AND end_date >= ?", true, today).
		Order("start_date DESC, id DESC").
		Find(&challenges).Error
	if err != nil {
		return nil, err
	}
	return challenges, nil
}

// AddParticipant 唯一键冲突原样抛出，由 service 层翻译成业务错误
func (s *ChallengeRepoImpl) AddParticipant(ctx context.Context, participant *model.ChallengeParticipant) error {
	return s.db.WithContext(ctx).Create(participant).Error
}

func (s *ChallengeRepoImpl) GetParticipantIDs(ctx context.Context, challengeID uint64) ([]uint64, error) {
	var userIDs []uint64
	err := s.db.WithContext(ctx).
		Model(&model.ChallengeParticipant{}).
		Where("challenge_id = ?", challengeID).
		Order("joined_at ASC").
		Pluck("user_id", &userIDs).Error
	return userIDs, err
}

func (s *ChallengeRepoImpl) HasAnyParticipation(ctx context.Context, userID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.ChallengeParticipant{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count > 0, err
}
