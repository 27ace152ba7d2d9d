package repository

import (
	"FitSphere/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RangeTotal 一段日期窗口内的步数/卡路里合计
type RangeTotal struct {
	TotalSteps    int64
	TotalCalories int64
}

// UserRangeTotal 按用户分组的窗口合计
type UserRangeTotal struct {
	UserID        uint64
	TotalSteps    int64
	TotalCalories int64
}

// DailyRank 单日排行中的一行，带用户信息
type DailyRank struct {
	UserID        uint64
	Username      string
	ProfilePicURL *string
	Steps         int
}

type HealthRepo interface {
	UpsertDailyRecord(ctx context.Context, record *model.HealthRecord) error
	GetRecordByDate(ctx context.Context, userID uint64, date time.Time) (*model.HealthRecord, error)
	SumRange(ctx context.Context, userIDs []uint64, start, end time.Time) (*RangeTotal, error)
	SumRangeGrouped(ctx context.Context, userIDs []uint64, start, end time.Time) ([]*UserRangeTotal, error)
	TopByDate(ctx context.Context, date time.Time, limit int) ([]*DailyRank, error)
	HasDayWithSteps(ctx context.Context, userID uint64, minSteps int) (bool, error)
}

type HealthRepoImpl struct {
	db *gorm.DB
}

func NewHealthRepo(db *gorm.DB) HealthRepo {
	return &HealthRepoImpl{db: db}
}

// UpsertDailyRecord 同一 (user_id, record_date) 冲突时覆盖当天数值，
// 最后一次写入生效
func (s *HealthRepoImpl) UpsertDailyRecord(ctx context.Context, record *model.HealthRecord) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "record_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"steps", "calories", "updated_at"}),
	}).Create(record).Error
}

func (s *HealthRepoImpl) GetRecordByDate(ctx context.Context, userID uint64, date time.Time) (*model.HealthRecord, error) {
	var record model.HealthRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND record_date = ?", userID, date).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// SumRange 闭区间聚合；没有任何记录时合计为零而不是 NULL
func (s *HealthRepoImpl) SumRange(ctx context.Context, userIDs []uint64, start, end time.Time) (*RangeTotal, error) {
	total := &RangeTotal{}
	if len(userIDs) == 0 {
		return total, nil
	}
	err := s.db.WithContext(ctx).
		Model(&model.HealthRecord{}).
		Select("COALESCE(SUM(steps), 0) AS total_steps, COALESCE(SUM(calories), 0) AS total_calories").
		Where("user_id IN ? AND record_date BETWEEN ? AND ?", userIDs, start, end).
		Scan(total).Error
	if err != nil {
		return nil, err
	}
	return total, nil
}

// SumRangeGrouped 按用户分组的窗口聚合，一条 SQL 取回全部参与者的贡献
func (s *HealthRepoImpl) SumRangeGrouped(ctx context.Context, userIDs []uint64, start, end time.Time) ([]*UserRangeTotal, error) {
	totals := make([]*UserRangeTotal, 0, len(userIDs))
	if len(userIDs) == 0 {
		return totals, nil
	}
	err := s.db.WithContext(ctx).
		Model(&model.HealthRecord{}).
		Select("user_id, COALESCE(SUM(steps), 0) AS total_steps, COALESCE(SUM(calories), 0) AS total_calories").
		Where("user_id IN ? AND record_date BETWEEN ? AND ?", userIDs, start, end).
		Group("user_id").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// TopByDate 单日步数排行；同分按 user_id 升序，保证结果确定
func (s *HealthRepoImpl) TopByDate(ctx context.Context, date time.Time, limit int) ([]*DailyRank, error) {
	ranks := make([]*DailyRank, 0, limit)
	err := s.db.WithContext(ctx).
		Model(&model.HealthRecord{}).
		Select("health_records.user_id, users.username, users.profile_pic_url, health_records.steps").
		Joins("JOIN users ON users.id = health_records.user_id").
		Where("health_records.record_date = ?", date).
		Order("health_records.steps DESC, health_records.user_id ASC").
		Limit(limit).
		Scan(&ranks).Error
	if err != nil {
		return nil, err
	}
	return ranks, nil
}

func (s *HealthRepoImpl) HasDayWithSteps(ctx context.Context, userID uint64, minSteps int) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.HealthRecord{}).
		Where("user_id = ? AND steps >= ?", userID, minSteps).
		Count(&count).Error
	return count > 0, err
}
