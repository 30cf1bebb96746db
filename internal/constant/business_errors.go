package constant

// 业务级错误码 (2xxx)

// 店铺相关错误码
const (
	CodeShopNotFound          = 2000 // 店铺不存在，请检查店铺编号是否正确
	CodeShopCommissionInvalid = 2001 // 店铺佣金比例无效，必须是合法的十进制数字
)

// 支付相关错误码
const (
	CodePaymentNotFound         = 2100 // 支付记录不存在，请检查支付编号是否正确
	CodePaymentAmountInvalid    = 2101 // 支付金额无效，必须为正的十进制数字
	CodeStatusTransitionInvalid = 2102 // 状态迁移非法，状态只允许单向推进
)

// 付款（payout）相关错误码
const (
	CodePayoutInProgress = 2200 // 该店铺已有付款流程在执行中，请稍后重试
)

// 费率配置相关错误码
const (
	CodeFeeConfigInvalid = 2300 // 费率配置无效，各项必须是合法的十进制数字
)
