package service

import (
	"shop-payout-api/internal/constant"
	"shop-payout-api/internal/dao"
	"shop-payout-api/internal/dto"
	mainmodel "shop-payout-api/internal/model/main"
	"shop-payout-api/internal/store"
	"shop-payout-api/internal/utils"
)

type ShopService struct {
	shopDao *dao.ShopDao
}

func NewShopService() *ShopService {
	return &ShopService{shopDao: dao.NewShopDao()}
}

// Add 创建店铺。佣金必须是合法的非负十进制数。
func (s *ShopService) Add(req dto.AddShopReq) (dto.ShopVo, constant.Error) {
	commission, err := utils.ParseAmount(req.Commission)
	if err != nil || commission.Sign() < 0 {
		return dto.ShopVo{}, constant.NewError(constant.CodeShopCommissionInvalid)
	}

	shop := store.Shops.Add(req.Name, commission)

	_ = s.shopDao.Insert(mainmodel.Shop{
		ShopID:     shop.ID,
		Name:       shop.Name,
		Commission: shop.Commission.String(),
	})

	return dto.ShopVo{ID: shop.ID, Name: shop.Name, Commission: shop.Commission.String()}, nil
}

// Get 店铺详情，含该店全部支付记录（插入序）
func (s *ShopService) Get(shopID string) (dto.ShopDetailVo, constant.Error) {
	shop, ok := store.Shops.Get(shopID)
	if !ok {
		return dto.ShopDetailVo{}, constant.NewError(constant.CodeShopNotFound)
	}

	payments := store.Payments.ListByShop(shopID)
	vos := make([]dto.PaymentVo, 0, len(payments))
	for _, p := range payments {
		vos = append(vos, paymentVo(p))
	}
	return dto.ShopDetailVo{
		ShopVo:   dto.ShopVo{ID: shop.ID, Name: shop.Name, Commission: shop.Commission.String()},
		Payments: vos,
	}, nil
}

func paymentVo(p store.Payment) dto.PaymentVo {
	return dto.PaymentVo{
		ID:            p.ID,
		ShopID:        p.ShopID,
		Amount:        p.FaceAmount.String(),
		Status:        string(p.Status),
		AmountPaidOut: p.AmountPaidOut.String(),
	}
}
