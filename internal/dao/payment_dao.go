package dao

import (
	"shop-payout-api/internal/dal"
	mainmodel "shop-payout-api/internal/model/main"
)

type PaymentDao struct{}

func NewPaymentDao() *PaymentDao { return &PaymentDao{} }

func (r *PaymentDao) Insert(m mainmodel.Payment) error {
	if dal.MainDB == nil {
		return nil
	}
	return dal.MainDB.Create(&m).Error
}

// UpdateStatus 镜像状态与已付金额
func (r *PaymentDao) UpdateStatus(paymentID, status, amountPaidOut string) error {
	if dal.MainDB == nil {
		return nil
	}
	return dal.MainDB.Model(&mainmodel.Payment{}).
		Where("payment_id = ?", paymentID).
		Updates(map[string]interface{}{
			"status":          status,
			"amount_paid_out": amountPaidOut,
		}).Error
}
