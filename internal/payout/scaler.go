package payout

import "github.com/shopspring/decimal"

// Scaler 规模控制参数，零值字段回落到默认值
type ScalerConfig struct {
	// BudgetConstant 期望的实例规模上限，约等于延迟预算（~250ms）内
	// 精确求解可承受的 n·W 乘积
	BudgetConstant int64
	// MinScaledCapacity 缩放后容量低于该值时放弃精确求解
	MinScaledCapacity int64
	// MaxTableCells n×(C+1) DP 单元格数的硬上限，与缩放因子的
	// 浮点运算无关，防止对抗性输入造成无界分配
	MaxTableCells int64
}

const (
	defaultBudgetConstant    = 25_000_000
	defaultMinScaledCapacity = 3
	defaultMaxTableCells     = 50_000_000
)

func (c ScalerConfig) withDefaults() ScalerConfig {
	if c.BudgetConstant <= 0 {
		c.BudgetConstant = defaultBudgetConstant
	}
	if c.MinScaledCapacity <= 0 {
		c.MinScaledCapacity = defaultMinScaledCapacity
	}
	if c.MaxTableCells <= 0 {
		c.MaxTableCells = defaultMaxTableCells
	}
	return c
}

// Strategy 选择策略标签
type Strategy string

const (
	StrategyGreedy Strategy = "greedy"
	StrategyExact  Strategy = "exact"
)

// Plan 整数化后的优化实例与策略选择结果
type Plan struct {
	Strategy Strategy
	Capacity int64
	Items    []Item
	Scaled   bool    // 是否发生了有损缩放
	Factor   float64 // 实际使用的缩放因子，未缩放为 1
}

// toCents 按货币精度转为整数分，四舍五入到最近整数
func toCents(d decimal.Decimal) int64 {
	return d.Shift(CurrencyPrecision).Round(0).IntPart()
}

// BuildPlan 将十进制预算与候选集转换为规模受控的整数实例，并选定策略。
//
// 因子 budgetConstant/(n·W) 小于 1 时整体缩小容量与条目并取整，实例是
// 有损的：一旦缩放触发，精确解只保证在有界乘性误差内，不再保证对原始
// 实例最优，这是用最优性换有界耗时的明确取舍。缩放后的容量低于最小
// 可用值、或 DP 表规模仍超出硬上限时，放弃精确求解，贪心在未缩放的
// 原始分值上运行。
func BuildPlan(budget decimal.Decimal, cands []Candidate, cfg ScalerConfig) Plan {
	cfg = cfg.withDefaults()

	capacity := toCents(budget)
	items := make([]Item, 0, len(cands))
	var maxW int64
	for _, cand := range cands {
		w := toCents(cand.ToPay)
		if w <= 0 {
			continue
		}
		if w > maxW {
			maxW = w
		}
		items = append(items, Item{ID: cand.ID, Amount: w})
	}

	plan := Plan{Strategy: StrategyExact, Capacity: capacity, Items: items, Factor: 1}
	n := int64(len(items))
	if n == 0 || capacity <= 0 {
		plan.Strategy = StrategyGreedy
		return plan
	}

	factor := float64(cfg.BudgetConstant) / (float64(n) * float64(maxW))
	if factor < 1 {
		scaledCap := int64(float64(capacity) * factor)
		if scaledCap < cfg.MinScaledCapacity {
			// 实例缩到不可用，贪心直接跑原始分值
			plan.Strategy = StrategyGreedy
			return plan
		}
		scaled := make([]Item, 0, len(items))
		for _, it := range items {
			w := int64(float64(it.Amount) * factor)
			if w <= 0 {
				// 缩到 0 的条目不可能再贡献任何装入量
				continue
			}
			scaled = append(scaled, Item{ID: it.ID, Amount: w})
		}
		plan.Capacity = scaledCap
		plan.Items = scaled
		plan.Scaled = true
		plan.Factor = factor
	}

	// 与缩放因子算术无关的硬性表规模检查
	if int64(len(plan.Items))*(plan.Capacity+1) > cfg.MaxTableCells {
		return Plan{Strategy: StrategyGreedy, Capacity: capacity, Items: items, Factor: 1}
	}
	return plan
}
