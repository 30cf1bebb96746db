package constant

// ErrorInfo 错误信息结构
type ErrorInfo struct {
	CN string `json:"cn"` // 中文错误信息
	EN string `json:"en"` // 英文错误信息
}

// ErrorMessages 错误信息映射
var ErrorMessages = map[int]ErrorInfo{
	// 系统错误
	CodeSuccess:       {"操作成功", "Success"},
	CodeSystemError:   {"系统错误", "System error"},
	CodeDatabaseError: {"数据库错误", "Database error"},
	CodeRedisError:    {"Redis 错误", "Redis error"},

	// 参数错误
	CodeInvalidParams: {"参数格式错误", "Invalid parameters"},
	CodeMissingParams: {"缺少必要参数", "Missing parameters"},

	// 认证授权错误
	CodeUnauthorized:     {"未授权访问", "Unauthorized"},
	CodeIPNotWhitelisted: {"IP 不在白名单内", "IP not whitelisted"},

	// 店铺相关错误
	CodeShopNotFound:          {"店铺不存在", "Shop not found"},
	CodeShopCommissionInvalid: {"店铺佣金比例无效", "Shop commission invalid"},

	// 支付相关错误
	CodePaymentNotFound:         {"支付记录不存在", "Payment not found"},
	CodePaymentAmountInvalid:    {"支付金额必须为正数", "Payment amount must be positive"},
	CodeStatusTransitionInvalid: {"支付状态迁移非法", "Invalid payment status transition"},

	// 付款相关错误
	CodePayoutInProgress: {"付款流程执行中", "Payout already in progress"},

	// 费率配置错误
	CodeFeeConfigInvalid: {"费率配置无效", "Fee config invalid"},
}
