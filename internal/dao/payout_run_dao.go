package dao

import (
	"shop-payout-api/internal/dal"
	mainmodel "shop-payout-api/internal/model/main"
)

type PayoutRunDao struct{}

func NewPayoutRunDao() *PayoutRunDao { return &PayoutRunDao{} }

func (r *PayoutRunDao) Insert(m mainmodel.PayoutRun) error {
	if dal.MainDB == nil {
		return nil
	}
	return dal.MainDB.Create(&m).Error
}
