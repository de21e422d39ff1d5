package models

import (
	"time"

	"gorm.io/gorm"
)

// Income 收入记录模型
// 收入不带日期，按累计口径统计
type Income struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	IncomeType string         `json:"income_type" gorm:"size:50;not null"`
	Amount     float64        `json:"amount" gorm:"type:decimal(14,2);not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Income) TableName() string {
	return "incomes"
}
