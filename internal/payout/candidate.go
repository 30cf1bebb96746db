package payout

import "github.com/shopspring/decimal"

// Candidate 本轮付款的瞬态候选项
type Candidate struct {
	ID        string
	Available decimal.Decimal // 当前可付金额
	ToPay     decimal.Decimal // 应付全额
}

// PaymentView 构建候选集所需的最小支付视图
type PaymentView struct {
	ID            string
	FaceAmount    decimal.Decimal
	Status        Status
	AmountPaidOut decimal.Decimal
}

// BuildCandidates 费率计算后的过滤步骤：
// 丢弃 new / paid_out、已结清（可付不超过已付）以及可付为非正的款项，
// 同时累计真实可付预算（所有候选可付金额的精确十进制和）。
func BuildCandidates(payments []PaymentView, commission decimal.Decimal, fees FeeConfig) ([]Candidate, decimal.Decimal) {
	budget := decimal.Zero
	cands := make([]Candidate, 0, len(payments))
	for _, p := range payments {
		if p.Status == StatusNew || p.Status == StatusPaidOut {
			continue
		}
		ent := ComputeEntitlement(p.FaceAmount, p.Status, commission, fees)
		if ent.Available.Sign() <= 0 {
			continue
		}
		if ent.Available.Cmp(p.AmountPaidOut) <= 0 {
			// 已结清
			continue
		}
		budget = budget.Add(ent.Available)
		cands = append(cands, Candidate{ID: p.ID, Available: ent.Available, ToPay: ent.ToPay})
	}
	return cands, budget
}
