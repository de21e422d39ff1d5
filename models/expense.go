package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense 支出记录模型
type Expense struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Date        time.Time      `json:"date" gorm:"type:date;not null;index"`
	ExpenseType string         `json:"expense_type" gorm:"size:50;not null"` // 固定支出 fixed / 变动支出 variable
	Category    string         `json:"category" gorm:"size:100;not null"`
	Item        string         `json:"item" gorm:"size:255;not null"`
	Amount      float64        `json:"amount" gorm:"type:decimal(14,2);not null"`
	Notes       string         `json:"notes" gorm:"size:255"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// 支出类型常量
const (
	ExpenseTypeFixed    = "fixed"    // 固定支出
	ExpenseTypeVariable = "variable" // 变动支出
)
