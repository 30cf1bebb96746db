package mainmodel

import "time"

// PayoutRun 每次付款执行的流水记录
type PayoutRun struct {
	RunID       uint64    `gorm:"column:run_id;primaryKey"`
	ShopID      string    `gorm:"column:shop_id;index"`
	TotalPayout string    `gorm:"column:total_payout"`
	Strategy    string    `gorm:"column:strategy"` // greedy / exact
	Scaled      bool      `gorm:"column:scaled"`
	Candidates  int       `gorm:"column:candidates"`
	Settled     int       `gorm:"column:settled"`
	CreateTime  time.Time `gorm:"column:create_time;autoCreateTime"`
}

func (PayoutRun) TableName() string { return "w_payout_run" }
