package dto

// PayoutPaymentVo 本次付款中被结算的一笔支付
type PayoutPaymentVo struct {
	ID            string `json:"id"`
	AmountPaidOut string `json:"amount_paid_out"`
	Status        string `json:"status"`
}

// PayoutVo 付款执行结果
type PayoutVo struct {
	TotalPayout string            `json:"total_payout"`
	Payments    []PayoutPaymentVo `json:"payments"`
}
