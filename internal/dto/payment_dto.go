package dto

// CreatePaymentReq 创建支付请求
type CreatePaymentReq struct {
	ShopID string `json:"shop_id" binding:"required"`        // 店铺编号
	Amount string `json:"amount" binding:"required,numeric"` // 面额，必须为正
}

// PaymentVo 支付记录
type PaymentVo struct {
	ID            string `json:"id"`
	ShopID        string `json:"shop_id"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	AmountPaidOut string `json:"amount_paid_out"`
}

// UpdatePaymentsStatusReq 批量状态更新请求。
// 整批原子：任何一笔校验失败则全部拒绝。
type UpdatePaymentsStatusReq struct {
	PaymentIDs []string `json:"payment_ids" binding:"required,min=1,dive,required"`
	NewStatus  string   `json:"new_status" binding:"required,oneof=processed unlocked"`
}
