package service

import (
	"errors"

	"shop-payout-api/internal/constant"
	"shop-payout-api/internal/dao"
	"shop-payout-api/internal/dto"
	mainmodel "shop-payout-api/internal/model/main"
	"shop-payout-api/internal/mq"
	"shop-payout-api/internal/payout"
	"shop-payout-api/internal/store"
	"shop-payout-api/internal/utils"
)

type PaymentService struct {
	paymentDao *dao.PaymentDao
}

func NewPaymentService() *PaymentService {
	return &PaymentService{paymentDao: dao.NewPaymentDao()}
}

// Create 创建支付记录，初始状态 new
func (s *PaymentService) Create(req dto.CreatePaymentReq) (dto.PaymentVo, constant.Error) {
	if _, ok := store.Shops.Get(req.ShopID); !ok {
		return dto.PaymentVo{}, constant.NewError(constant.CodeShopNotFound)
	}
	amount, ok := utils.ParsePositiveAmount(req.Amount)
	if !ok {
		return dto.PaymentVo{}, constant.NewError(constant.CodePaymentAmountInvalid)
	}

	p := store.Payments.Create(req.ShopID, amount)

	_ = s.paymentDao.Insert(mainmodel.Payment{
		PaymentID:     p.ID,
		ShopID:        p.ShopID,
		Amount:        p.FaceAmount.String(),
		Status:        string(p.Status),
		AmountPaidOut: p.AmountPaidOut.String(),
	})
	_ = mq.PublishPaymentCreated(dto.PaymentCreatedEvent{
		PaymentID: p.ID,
		ShopID:    p.ShopID,
		Amount:    p.FaceAmount.String(),
		CreatedAt: utils.GetTimestampMs(),
	})

	return paymentVo(p), nil
}

func (s *PaymentService) Get(paymentID string) (dto.PaymentVo, constant.Error) {
	p, ok := store.Payments.Get(paymentID)
	if !ok {
		return dto.PaymentVo{}, constant.NewError(constant.CodePaymentNotFound)
	}
	return paymentVo(p), nil
}

// UpdateStatus 批量状态更新，整批原子。
// 解锁后临时冻结随之解除，已付达到应付全额的款项自动推进为 paid_out。
func (s *PaymentService) UpdateStatus(req dto.UpdatePaymentsStatusReq) ([]dto.PaymentVo, constant.Error) {
	to := payout.Status(req.NewStatus)

	updated, err := store.Payments.UpdateStatusBatch(req.PaymentIDs, to)
	if err != nil {
		if errors.Is(err, store.ErrPaymentNotFound) {
			return nil, constant.NewError(constant.CodePaymentNotFound)
		}
		return nil, constant.NewError(constant.CodeStatusTransitionInvalid)
	}

	fees := CurrentFeeConfig()
	out := make([]dto.PaymentVo, 0, len(updated))
	for _, p := range updated {
		if to == payout.StatusUnlocked {
			if shop, ok := store.Shops.Get(p.ShopID); ok {
				ent := payout.ComputeEntitlement(p.FaceAmount, p.Status, shop.Commission, fees)
				if ent.ToPay.Sign() > 0 && p.AmountPaidOut.Cmp(ent.ToPay) >= 0 {
					if adv, err := store.Payments.MarkPaidOut(p.ID); err == nil {
						p = adv
					}
				}
			}
		}
		_ = s.paymentDao.UpdateStatus(p.ID, string(p.Status), p.AmountPaidOut.String())
		out = append(out, paymentVo(p))
	}
	return out, nil
}
