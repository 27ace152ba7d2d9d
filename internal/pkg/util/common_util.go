package util

import (
	"time"
)

// Midnight 归一化到当天本地零点；健康记录与挑战窗口都以此为日期键
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDate 解析 YYYY-MM-DD 形式的日期
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// PtrString 用于将 string 转换为 *string
func PtrString(s string) *string {
	return &s
}
