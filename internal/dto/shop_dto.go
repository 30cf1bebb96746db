package dto

// AddShopReq 创建店铺请求
type AddShopReq struct {
	Name       string `json:"name" binding:"required"`               // 店铺名称
	Commission string `json:"commission" binding:"required,numeric"` // 佣金百分比 C
}

// ShopVo 店铺信息
type ShopVo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Commission string `json:"commission"`
}

// ShopDetailVo 店铺详情（调试接口用）
type ShopDetailVo struct {
	ShopVo
	Payments []PaymentVo `json:"payments"`
}
