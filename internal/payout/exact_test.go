package payout

import (
	"reflect"
	"testing"
)

// 精确策略在任意容量下不劣于贪心
func TestExactAtLeastGreedy(t *testing.T) {
	instances := [][]Item{
		{{ID: "1", Amount: 30}, {ID: "2", Amount: 20}, {ID: "3", Amount: 50}},
		{{ID: "1", Amount: 40}, {ID: "2", Amount: 35}, {ID: "3", Amount: 25}},
		{{ID: "1", Amount: 30}, {ID: "2", Amount: 20}, {ID: "3", Amount: 50}, {ID: "4", Amount: 12}, {ID: "5", Amount: 8}, {ID: "6", Amount: 3}, {ID: "7", Amount: 1}},
		{{ID: "1", Amount: 7}, {ID: "2", Amount: 7}, {ID: "3", Amount: 7}, {ID: "4", Amount: 11}},
	}
	for _, items := range instances {
		var max int64
		for _, it := range items {
			max += it.Amount
		}
		for capacity := int64(0); capacity <= max; capacity++ {
			g := GreedySelector{}.Select(capacity, items)
			e := ExactSelector{}.Select(capacity, items)
			if e.TotalPayout < g.TotalPayout {
				t.Fatalf("capacity %d: exact %d < greedy %d", capacity, e.TotalPayout, g.TotalPayout)
			}
		}
	}
}

// 容量 79 的经典实例：最优解 79 由 {1,8,50,20} 组成。
// 此实例上贪心碰巧也能到 79，因此这里只断言精确解，
// 不把贪心的结果当作最优来校验。
func TestExactOptimumAt79(t *testing.T) {
	items := []Item{
		{ID: "1", Amount: 30}, {ID: "2", Amount: 20}, {ID: "3", Amount: 50},
		{ID: "4", Amount: 12}, {ID: "5", Amount: 8}, {ID: "6", Amount: 3}, {ID: "7", Amount: 1},
	}
	sel := ExactSelector{}.Select(79, items)
	if sel.TotalPayout != 79 {
		t.Fatalf("total = %d, want 79", sel.TotalPayout)
	}
	if want := []string{"3", "2", "5", "7"}; !reflect.DeepEqual(ids(sel), want) {
		t.Errorf("selected = %v, want %v", ids(sel), want)
	}
}

// 贪心严格劣于精确解的构造性实例
func TestExactBeatsGreedy(t *testing.T) {
	items := []Item{{ID: "1", Amount: 40}, {ID: "2", Amount: 35}, {ID: "3", Amount: 25}}

	g := GreedySelector{}.Select(60, items)
	if g.TotalPayout != 40 {
		t.Fatalf("greedy total = %d, want 40", g.TotalPayout)
	}
	e := ExactSelector{}.Select(60, items)
	if e.TotalPayout != 60 {
		t.Fatalf("exact total = %d, want 60", e.TotalPayout)
	}
	if want := []string{"2", "3"}; !reflect.DeepEqual(ids(e), want) {
		t.Errorf("exact selected = %v, want %v", ids(e), want)
	}
}

// 回溯结果重新排序后仍满足金额降序、同额 ID 升序
func TestExactBacktrackOrder(t *testing.T) {
	items := []Item{
		{ID: "4", Amount: 10}, {ID: "2", Amount: 10}, {ID: "9", Amount: 30}, {ID: "10", Amount: 30},
	}
	sel := ExactSelector{}.Select(80, items)
	if sel.TotalPayout != 80 {
		t.Fatalf("total = %d, want 80", sel.TotalPayout)
	}
	// 注意 ID 是字符串序："10" < "9"
	if want := []string{"10", "9", "2", "4"}; !reflect.DeepEqual(ids(sel), want) {
		t.Errorf("selected = %v, want %v", ids(sel), want)
	}
}
