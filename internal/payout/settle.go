package payout

import "github.com/shopspring/decimal"

// SettledItem 一笔已结算的支付变更
type SettledItem struct {
	ID            string
	Paid          decimal.Decimal // 本次支付金额
	AmountPaidOut decimal.Decimal // 结算后的累计已付
	Status        Status          // 结算后的状态
}

// Settlement 结算结果
type Settlement struct {
	TotalPayout decimal.Decimal
	Items       []SettledItem
}

// Settle 将选择器基于整数（可能已缩放）做出的决定安全地还原为真实十进制金额。
//
// 按选择器给出的确定性顺序重放所选款项，对每笔取未缩放的真实应付金额，
// 维护精确十进制累计和；一旦下一笔会使累计和超出真实可付预算立即停止 ——
// Scaler 的整数舍入与缩放可能让优化器误以为某个组合装得下，而精确和装不下。
// 每笔实付为应付全额与已付金额的差值，累计已付因此永远不会超过应付全额。
// unlocked 状态在补足至应付全额后推进为 paid_out。
func Settle(selected []Item, cands []Candidate, views []PaymentView, budget decimal.Decimal) Settlement {
	byID := make(map[string]Candidate, len(cands))
	for _, c := range cands {
		byID[c.ID] = c
	}
	viewByID := make(map[string]PaymentView, len(views))
	for _, v := range views {
		viewByID[v.ID] = v
	}

	res := Settlement{TotalPayout: decimal.Zero, Items: []SettledItem{}}
	for _, it := range selected {
		cand, ok := byID[it.ID]
		if !ok {
			continue
		}
		view, ok := viewByID[it.ID]
		if !ok {
			continue
		}
		pay := cand.ToPay.Sub(view.AmountPaidOut)
		if pay.Sign() <= 0 {
			continue
		}
		if res.TotalPayout.Add(pay).Cmp(budget) > 0 {
			// 精确和越过真实预算，立即停止接收后续款项
			break
		}

		newPaid := view.AmountPaidOut.Add(pay)
		status := view.Status
		if status == StatusUnlocked && newPaid.Equal(cand.ToPay) {
			status = StatusPaidOut
		}
		res.TotalPayout = res.TotalPayout.Add(pay)
		res.Items = append(res.Items, SettledItem{
			ID:            it.ID,
			Paid:          pay,
			AmountPaidOut: newPaid,
			Status:        status,
		})
	}
	return res
}
