package payout

import "sort"

// Item 整数化后的优化条目，单位为分（可能再被 Scaler 缩放）
type Item struct {
	ID     string
	Amount int64
}

// Selection 选择结果。Selected 按确定性顺序排列：金额降序、同额 ID 升序。
type Selection struct {
	TotalPayout int64
	Selected    []Item
}

// Selector 子集选择策略。两种实现（贪心 / 精确）共享同一契约：
// 返回的 TotalPayout 不会超过传入的 capacity，且对相同输入结果可复现。
type Selector interface {
	Select(capacity int64, items []Item) Selection
}

// sortItems 统一排序：金额降序，同额按 ID 升序。
// 两种策略必须使用同一排序，平局处理才能一致。
func sortItems(items []Item) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Amount != items[j].Amount {
			return items[i].Amount > items[j].Amount
		}
		return items[i].ID < items[j].ID
	})
}
