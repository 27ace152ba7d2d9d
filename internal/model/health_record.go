package model

import (
	"time"
)

// HealthRecord 一个用户一天的运动数据，(user_id, record_date) 唯一
type HealthRecord struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	UserID       uint64    `gorm:"not null;uniqueIndex:idx_user_date,priority:1" json:"userId"`
	RecordDate   time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_date,priority:2;index:idx_record_date" json:"recordDate"`
	Steps        int       `gorm:"not null;default:0" json:"steps"`
	Calories     int       `gorm:"not null;default:0" json:"calories"`
	WorkoutCount int       `gorm:"not null;default:0" json:"workoutCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (HealthRecord) TableName() string {
	return "health_records"
}
