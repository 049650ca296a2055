package models

import "time"

// GpuPreferenceValue mirrors one registry value of the preference namespace
// for the development store used on hosts without a Windows registry.
type GpuPreferenceValue struct {
	ID        uint   `gorm:"primaryKey"` // insertion order doubles as enumeration order
	Path      string `gorm:"not null;uniqueIndex"`
	Data      string `gorm:"not null"`
	UpdatedAt time.Time
}

func (GpuPreferenceValue) TableName() string {
	return "user_gpu_preferences"
}
