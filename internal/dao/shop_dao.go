package dao

import (
	"shop-payout-api/internal/dal"
	mainmodel "shop-payout-api/internal/model/main"
)

type ShopDao struct{}

func NewShopDao() *ShopDao { return &ShopDao{} }

// Insert 旁路镜像写入；镜像未启用（DB 未初始化）时静默跳过
func (r *ShopDao) Insert(m mainmodel.Shop) error {
	if dal.MainDB == nil {
		return nil
	}
	return dal.MainDB.Create(&m).Error
}
