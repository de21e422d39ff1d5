package models

import (
	"time"
)

// HouseData 住房开销记录模型
// 每个日期至多一条记录，重复提交按日期覆盖（upsert）。
// 因为 date 上有唯一索引，这里不使用软删除。
type HouseData struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Date            time.Time `json:"date" gorm:"type:date;not null;uniqueIndex"`
	MaintenanceCost float64   `json:"maintenance_cost" gorm:"type:decimal(14,2)"`
	UtilityBill     float64   `json:"utility_bill" gorm:"type:decimal(14,2)"`
	Memo            string    `json:"memo" gorm:"size:255"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName 设置表名
func (HouseData) TableName() string {
	return "house_data"
}
