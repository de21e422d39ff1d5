package models

import (
	"time"

	"gorm.io/gorm"
)

// Asset 资产记录模型
type Asset struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Date      time.Time      `json:"date" gorm:"type:date;not null;index"`
	Category  string         `json:"category" gorm:"size:50;not null"`
	Item      string         `json:"item" gorm:"size:255;not null"`
	Amount    float64        `json:"amount" gorm:"type:decimal(14,2);not null"`
	Notes     string         `json:"notes" gorm:"size:255"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Asset) TableName() string {
	return "assets"
}
