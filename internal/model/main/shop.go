package mainmodel

import "time"

type Shop struct {
	ShopID     string    `gorm:"column:shop_id;primaryKey"`
	Name       string    `gorm:"column:name"`
	Commission string    `gorm:"column:commission"` // 十进制字符串
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime"`
}

func (Shop) TableName() string { return "w_shop" }
