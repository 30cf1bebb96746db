package payout

import "github.com/shopspring/decimal"

// CurrencyPrecision 货币精度：两位小数
const CurrencyPrecision = 2

var hundred = decimal.NewFromInt(100)

// FeeConfig 全局费用参数。每次计算显式传入当前值，不读共享状态。
type FeeConfig struct {
	Fixed    decimal.Decimal // 固定费用 A
	Percent  decimal.Decimal // 百分比费用 B
	Holdback decimal.Decimal // 临时冻结百分比 D
}

// Entitlement 单笔支付的应付 / 可付金额
type Entitlement struct {
	ToPay     decimal.Decimal // 扣除 A/B/C 后的应付全额
	Available decimal.Decimal // 再扣冻结 D 后当前可付金额，恒 <= ToPay
}

// ComputeEntitlement 计算单笔支付的应付与可付金额。
// 每个百分比推导项先四舍五入到货币精度、再做减法，
// 舍入顺序是计算契约的一部分，不允许只对最终差值舍入。
// 结果不做负值截断，非正候选由上游过滤步骤负责剔除。
func ComputeEntitlement(faceAmount decimal.Decimal, status Status, commission decimal.Decimal, fees FeeConfig) Entitlement {
	feeA := fees.Fixed.Round(CurrencyPrecision)
	feeB := fees.Percent.Mul(faceAmount).Div(hundred).Round(CurrencyPrecision)
	feeC := commission.Mul(faceAmount).Div(hundred).Round(CurrencyPrecision)
	toPay := faceAmount.Sub(feeA).Sub(feeB).Sub(feeC)

	// unlocked / paid_out 之后冻结解除，可付即应付
	available := toPay
	if status != StatusUnlocked && status != StatusPaidOut {
		feeD := fees.Holdback.Mul(faceAmount).Div(hundred).Round(CurrencyPrecision)
		available = toPay.Sub(feeD)
	}
	return Entitlement{ToPay: toPay, Available: available}
}
