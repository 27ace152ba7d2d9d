package dto

// HealthRecordCreateDTO 上报当日健康数据，同一天重复上报直接覆盖
type HealthRecordCreateDTO struct {
	Date     string `json:"date" binding:"required" validate:"datetime=2006-01-02"`
	Steps    int    `json:"steps" validate:"min=0"`
	Calories int    `json:"calories" validate:"min=0"`
}

// HealthRecordDTO 单日健康数据
type HealthRecordDTO struct {
	Date         string `json:"date"`
	Steps        int    `json:"steps"`
	Calories     int    `json:"calories"`
	WorkoutCount int    `json:"workout_count"`
}
