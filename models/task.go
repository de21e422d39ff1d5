package models

import (
	"time"

	"gorm.io/gorm"
)

// Task 家居维护提醒模型
// 创建时按到期日注册两条一次性邮件提醒（当天 09:00 与前一天 09:00）。
// 删除任务不会撤销已注册的提醒。
type Task struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ItemName  string         `json:"item_name" gorm:"size:100;not null"`
	ModelName string         `json:"model_name" gorm:"size:100"` // 设备型号，可为空
	DueDate   time.Time      `json:"due_date" gorm:"type:date;not null;index"`
	Email     string         `json:"email" gorm:"size:100;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Task) TableName() string {
	return "tasks"
}
