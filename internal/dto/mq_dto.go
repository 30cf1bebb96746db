package dto

// PaymentCreatedEvent 支付创建事件
type PaymentCreatedEvent struct {
	PaymentID string `json:"payment_id"`
	ShopID    string `json:"shop_id"`
	Amount    string `json:"amount"`
	CreatedAt int64  `json:"created_at"`
}

// PayoutCompletedEvent 付款完成事件
type PayoutCompletedEvent struct {
	RunID       uint64   `json:"run_id"`
	ShopID      string   `json:"shop_id"`
	TotalPayout string   `json:"total_payout"`
	PaymentIDs  []string `json:"payment_ids"`
	Strategy    string   `json:"strategy"`
	Scaled      bool     `json:"scaled"`
	CreatedAt   int64    `json:"created_at"`
}
