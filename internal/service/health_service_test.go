package service_test

import (
	"FitSphere/internal/api/dto"
	"FitSphere/internal/model"
	"FitSphere/internal/service"
	"context"
	"testing"
	"time"
)

func TestRecordDaily_OverwritesSameDay(t *testing.T) {
	// 同一天两次上报，落库的是第二次的值，且日期键一致
	stored := map[string]*model.HealthRecord{}
	repo := &mockHealthRepo{
		upsertFn: func(_ context.Context, record *model.HealthRecord) error {
			key := record.RecordDate.Format(time.DateOnly)
			stored[key] = record
			return nil
		},
	}
	svc := service.NewHealthService(repo)

	_, err := svc.RecordDaily(context.Background(), 1, &dto.HealthRecordCreateDTO{
		Date: "2026-08-30", Steps: 3000, Calories: 120,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = svc.RecordDaily(context.Background(), 1, &dto.HealthRecordCreateDTO{
		Date: "2026-08-30", Steps: 8000, Calories: 300,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stored) != 1 {
		t.Fatalf("expected one record per day, got %d", len(stored))
	}
	record := stored["2026-08-30"]
	if record.Steps != 8000 || record.Calories != 300 {
		t.Fatalf("expected last write to win, got steps=%d calories=%d", record.Steps, record.Calories)
	}
}

func TestRecordDaily_NormalizesToMidnight(t *testing.T) {
	var got *model.HealthRecord
	repo := &mockHealthRepo{
		upsertFn: func(_ context.Context, record *model.HealthRecord) error {
			got = record
			return nil
		},
	}
	svc := service.NewHealthService(repo)

	_, err := svc.RecordDaily(context.Background(), 1, &dto.HealthRecordCreateDTO{
		Date: "2026-08-30", Steps: 100, Calories: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h, m, s := got.RecordDate.Clock()
	if h != 0 || m != 0 || s != 0 {
		t.Fatalf("expected midnight-normalized date, got %v", got.RecordDate)
	}
}

func TestRecordDaily_RejectsNegativeValues(t *testing.T) {
	svc := service.NewHealthService(&mockHealthRepo{})

	tests := []struct {
		name     string
		steps    int
		calories int
	}{
		{"negative steps", -1, 100},
		{"negative calories", 100, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordDaily(context.Background(), 1, &dto.HealthRecordCreateDTO{
				Date: "2026-08-30", Steps: tc.steps, Calories: tc.calories,
			})
			if err != service.ErrHealthValueInvalid {
				t.Fatalf("expected ErrHealthValueInvalid, got %v", err)
			}
		})
	}
}

func TestRecordDaily_RejectsBadDate(t *testing.T) {
	svc := service.NewHealthService(&mockHealthRepo{})
	_, err := svc.RecordDaily(context.Background(), 1, &dto.HealthRecordCreateDTO{
		Date: "30/08/2026", Steps: 100, Calories: 10,
	})
	if err != service.ErrParamInvalid {
		t.Fatalf("expected ErrParamInvalid, got %v", err)
	}
}

func TestTodayRecord_ZeroFilledWhenAbsent(t *testing.T) {
	repo := &mockHealthRepo{
		getByDateFn: func(_ context.Context, _ uint64, _ time.Time) (*model.HealthRecord, error) {
			return nil, nil
		},
	}
	svc := service.NewHealthService(repo)

	record, err := svc.TodayRecord(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record == nil {
		t.Fatal("expected zero-filled record, got nil")
	}
	if record.Steps != 0 || record.Calories != 0 || record.WorkoutCount != 0 {
		t.Fatalf("expected all-zero record, got %+v", record)
	}
	if record.Date != time.Now().Format(time.DateOnly) {
		t.Fatalf("expected today's date, got %s", record.Date)
	}
}
