package payout

// Status 支付状态，只允许单向推进：new → processed → unlocked → paid_out
type Status string

const (
	StatusNew       Status = "new"
	StatusProcessed Status = "processed"
	StatusUnlocked  Status = "unlocked"
	StatusPaidOut   Status = "paid_out"
)

// CanTransition 判定 API 请求的状态迁移是否合法。
// paid_out 为终态，且只能由结算流程自动到达，不接受外部请求。
func CanTransition(from, to Status) bool {
	switch {
	case from == StatusNew && to == StatusProcessed:
		return true
	case from == StatusProcessed && to == StatusUnlocked:
		return true
	}
	return false
}
