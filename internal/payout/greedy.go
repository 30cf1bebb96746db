package payout

// GreedySelector 近似策略：排序后从大到小依次装入，O(n log n) 时间 O(n) 空间。
// 不保证最优，存在贪心严格劣于精确解的构造性实例；精确策略正是为在
// 代价可承受时弥补这一差距而存在。
type GreedySelector struct{}

func (GreedySelector) Select(capacity int64, items []Item) Selection {
	sorted := append([]Item(nil), items...)
	sortItems(sorted)

	sel := Selection{Selected: []Item{}}
	for _, it := range sorted {
		if sel.TotalPayout+it.Amount <= capacity {
			sel.Selected = append(sel.Selected, it)
			sel.TotalPayout += it.Amount
		}
	}
	return sel
}
