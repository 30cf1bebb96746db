package mainmodel

import "time"

type Payment struct {
	PaymentID     string    `gorm:"column:payment_id;primaryKey"`
	ShopID        string    `gorm:"column:shop_id;index"`
	Amount        string    `gorm:"column:amount"`          // 面额，十进制字符串
	Status        string    `gorm:"column:status"`          // new/processed/unlocked/paid_out
	AmountPaidOut string    `gorm:"column:amount_paid_out"` // 累计已付，十进制字符串
	CreateTime    time.Time `gorm:"column:create_time;autoCreateTime"`
	UpdateTime    time.Time `gorm:"column:update_time;autoUpdateTime"`
}

func (Payment) TableName() string { return "w_payment" }
