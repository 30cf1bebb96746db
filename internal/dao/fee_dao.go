package dao

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shop-payout-api/internal/dal"
	mainmodel "shop-payout-api/internal/model/main"
)

// 费率配置固定存单行
const feeRowID = 1

type FeeDao struct{}

func NewFeeDao() *FeeDao { return &FeeDao{} }

func (r *FeeDao) Get() (*mainmodel.PayoutFee, error) {
	if dal.MainDB == nil {
		return nil, nil
	}
	var m mainmodel.PayoutFee
	if err := dal.MainDB.Where("id = ?", feeRowID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// Save 整体替换费率行
func (r *FeeDao) Save(m mainmodel.PayoutFee) error {
	if dal.MainDB == nil {
		return nil
	}
	m.ID = feeRowID
	return dal.MainDB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&m).Error
}
