package payout

import "github.com/shopspring/decimal"

// SelectPayout 付款选择唯一入口：整数化 → 策略选择 → 执行。
// 永不失败，最坏返回空选择；返回 Plan 供调用方记录实际使用的策略。
func SelectPayout(budget decimal.Decimal, cands []Candidate, cfg ScalerConfig) (Selection, Plan) {
	plan := BuildPlan(budget, cands, cfg)

	var sel Selection
	switch plan.Strategy {
	case StrategyExact:
		sel = ExactSelector{}.Select(plan.Capacity, plan.Items)
	default:
		sel = GreedySelector{}.Select(plan.Capacity, plan.Items)
	}
	return sel, plan
}
