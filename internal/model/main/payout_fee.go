package mainmodel

import "time"

// PayoutFee 全局费率配置，单行表，整体替换
type PayoutFee struct {
	ID              int       `gorm:"column:id;primaryKey"`
	FixedFee        string    `gorm:"column:fixed_fee"`
	PercentFee      string    `gorm:"column:percent_fee"`
	PercentHoldback string    `gorm:"column:percent_holdback"`
	UpdateTime      time.Time `gorm:"column:update_time;autoUpdateTime"`
}

func (PayoutFee) TableName() string { return "w_payout_fee" }
