package dto

// SystemFees 全局费率参数（十进制字符串，整体替换）
type SystemFees struct {
	FixedFee        string `json:"fixed_fee" binding:"required,numeric"`        // 固定费用 A
	PercentFee      string `json:"percent_fee" binding:"required,numeric"`      // 百分比费用 B
	PercentHoldback string `json:"percent_holdback" binding:"required,numeric"` // 临时冻结百分比 D
}
