package service

import (
	"FitSphere/internal/api/dto"
	"FitSphere/internal/model"
	"FitSphere/internal/pkg/util"
	"FitSphere/internal/repository"
	"context"
	"time"
)

type HealthService interface {
	RecordDaily(ctx context.Context, userID uint64, d *dto.HealthRecordCreateDTO) (*dto.HealthRecordDTO, error)
	TodayRecord(ctx context.Context, userID uint64) (*dto.HealthRecordDTO, error)
}

type HealthServiceImpl struct {
	healthRepo repository.HealthRepo
}

func NewHealthService(healthRepo repository.HealthRepo) HealthService {
	return &HealthServiceImpl{healthRepo: healthRepo}
}

// RecordDaily 同一天重复上报覆盖旧值，日期归一化到本地零点
func (s *HealthServiceImpl) RecordDaily(ctx context.Context, userID uint64, d *dto.HealthRecordCreateDTO) (*dto.HealthRecordDTO, error) {
	if d.Steps < 0 || d.Calories < 0 {
		return nil, ErrHealthValueInvalid
	}
	date, err := util.ParseDate(d.Date)
	if err != nil {
		return nil, ErrParamInvalid
	}

	record := &model.HealthRecord{
		UserID:     userID,
		RecordDate: util.Midnight(date),
		Steps:      d.Steps,
		Calories:   d.Calories,
	}
	err = s.healthRepo.UpsertDailyRecord(ctx, record)
	if err != nil {
		return nil, err
	}
	return toHealthRecordDTO(record), nil
}

// TodayRecord 当天没有记录时返回全零而不是 404，客户端进度页直接渲染
func (s *HealthServiceImpl) TodayRecord(ctx context.Context, userID uint64) (*dto.HealthRecordDTO, error) {
	today := util.Midnight(time.Now())
	record, err := s.healthRepo.GetRecordByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if record == nil {
		record = &model.HealthRecord{UserID: userID, RecordDate: today}
	}
	return toHealthRecordDTO(record), nil
}

func toHealthRecordDTO(record *model.HealthRecord) *dto.HealthRecordDTO {
	return &dto.HealthRecordDTO{
		Date:         record.RecordDate.Format(time.DateOnly),
		Steps:        record.Steps,
		Calories:     record.Calories,
		WorkoutCount: record.WorkoutCount,
	}
}
