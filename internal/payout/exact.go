package payout

// ExactSelector 0/1 背包精确策略：每项价值等于自身重量，最大化装入总额。
// O(n·C) 时间与空间，表的规模完全由 Scaler 约束，本身不做任何防护。
// 对给定的（可能已缩放的）整数实例保证全局最优。
type ExactSelector struct{}

func (ExactSelector) Select(capacity int64, items []Item) Selection {
	sorted := append([]Item(nil), items...)
	sortItems(sorted)

	n := len(sorted)
	if n == 0 || capacity <= 0 {
		return Selection{Selected: []Item{}}
	}

	c := int(capacity)
	dp := make([][]int64, n+1)
	dp[0] = make([]int64, c+1)
	for i := 1; i <= n; i++ {
		dp[i] = make([]int64, c+1)
		w := sorted[i-1].Amount
		for j := 0; j <= c; j++ {
			dp[i][j] = dp[i-1][j]
			if w > 0 && w <= int64(j) {
				if v := dp[i-1][j-int(w)] + w; v > dp[i][j] {
					dp[i][j] = v
				}
			}
		}
	}

	// 回溯恢复所选子集：dp[i][j] != dp[i-1][j] 则第 i 项被选中。
	// 回溯得到的是排序序的逆序，返回前重新排序以保持确定性契约。
	selected := make([]Item, 0, n)
	j := c
	for i := n; i > 0; i-- {
		if dp[i][j] != dp[i-1][j] {
			selected = append(selected, sorted[i-1])
			j -= int(sorted[i-1].Amount)
		}
	}
	sortItems(selected)

	return Selection{TotalPayout: dp[n][c], Selected: selected}
}
