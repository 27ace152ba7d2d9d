package model

import (
	"time"
)

const (
	GoalTypeSteps    = "STEPS"
	GoalTypeCalories = "CALORIES"
)

type Challenge struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:varchar(1000);not null" json:"description"`
	CreatorID   uint64    `gorm:"not null;index:idx_creator_id" json:"creatorId"`
	StartDate   time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate     time.Time `gorm:"type:date;not null;index:idx_end_date" json:"endDate"`
	IsPublic    bool      `gorm:"type:tinyint(1);not null;default:1" json:"isPublic"`
	GoalType    string    `gorm:"type:varchar(10);not null" json:"goalType"`
	GoalValue   int       `gorm:"not null" json:"goalValue"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Challenge) TableName() string {
	return "challenges"
}
