package payout

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestComputeEntitlement(t *testing.T) {
	fees := FeeConfig{
		Fixed:    decimal.RequireFromString("0.555"),
		Percent:  decimal.RequireFromString("2.5"),
		Holdback: decimal.RequireFromString("10"),
	}
	commission := decimal.RequireFromString("3.333")

	// feeA=0.56 feeB=2.50 feeC=3.33 feeD=10.00
	cases := []struct {
		name      string
		status    Status
		toPay     string
		available string
	}{
		{"new holds back", StatusNew, "93.61", "83.61"},
		{"processed holds back", StatusProcessed, "93.61", "83.61"},
		{"unlocked releases holdback", StatusUnlocked, "93.61", "93.61"},
		{"paid_out releases holdback", StatusPaidOut, "93.61", "93.61"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ent := ComputeEntitlement(decimal.NewFromInt(100), tc.status, commission, fees)
			if !ent.ToPay.Equal(dec(t, tc.toPay)) {
				t.Errorf("toPay = %s, want %s", ent.ToPay, tc.toPay)
			}
			if !ent.Available.Equal(dec(t, tc.available)) {
				t.Errorf("available = %s, want %s", ent.Available, tc.available)
			}
		})
	}
}

// 每个百分比项必须先入到分再相减；对最终差值一次性舍入会得到不同结果。
func TestComputeEntitlementRoundsEachTerm(t *testing.T) {
	fees := FeeConfig{
		Fixed:    decimal.Zero,
		Percent:  decimal.RequireFromString("1.005"),
		Holdback: decimal.Zero,
	}
	commission := decimal.RequireFromString("1.005")

	// 1.005% × 100 = 1.005 → 1.01（逐项），合并后舍入则是 round(2.01) = 2.01
	ent := ComputeEntitlement(decimal.NewFromInt(100), StatusUnlocked, commission, fees)
	if want := dec(t, "97.98"); !ent.ToPay.Equal(want) {
		t.Errorf("toPay = %s, want %s (per-term rounding)", ent.ToPay, want)
	}
}

// 不做负值截断，过滤由候选构建步骤负责
func TestComputeEntitlementNoClamp(t *testing.T) {
	fees := FeeConfig{
		Fixed:    decimal.NewFromInt(50),
		Percent:  decimal.Zero,
		Holdback: decimal.NewFromInt(20),
	}
	ent := ComputeEntitlement(decimal.NewFromInt(10), StatusProcessed, decimal.Zero, fees)
	if ent.ToPay.Sign() >= 0 {
		t.Errorf("toPay = %s, want negative", ent.ToPay)
	}
	if ent.Available.Cmp(ent.ToPay) > 0 {
		t.Errorf("available %s > toPay %s", ent.Available, ent.ToPay)
	}
}

func TestBuildCandidates(t *testing.T) {
	fees := FeeConfig{
		Fixed:    decimal.NewFromInt(1),
		Percent:  decimal.Zero,
		Holdback: decimal.RequireFromString("10"),
	}
	views := []PaymentView{
		{ID: "1", FaceAmount: decimal.NewFromInt(100), Status: StatusNew, AmountPaidOut: decimal.Zero},
		{ID: "2", FaceAmount: decimal.NewFromInt(100), Status: StatusProcessed, AmountPaidOut: decimal.Zero},
		{ID: "3", FaceAmount: decimal.NewFromInt(100), Status: StatusUnlocked, AmountPaidOut: decimal.Zero},
		{ID: "4", FaceAmount: decimal.NewFromInt(100), Status: StatusPaidOut, AmountPaidOut: decimal.NewFromInt(99)},
		// 冻结后可付为负
		{ID: "5", FaceAmount: decimal.RequireFromString("1.05"), Status: StatusProcessed, AmountPaidOut: decimal.Zero},
		// 已结清：可付不超过已付
		{ID: "6", FaceAmount: decimal.NewFromInt(100), Status: StatusUnlocked, AmountPaidOut: decimal.NewFromInt(99)},
	}
	cands, budget := BuildCandidates(views, decimal.Zero, fees)

	if len(cands) != 2 {
		t.Fatalf("candidates = %d, want 2", len(cands))
	}
	if cands[0].ID != "2" || cands[1].ID != "3" {
		t.Errorf("candidate ids = %s,%s want 2,3", cands[0].ID, cands[1].ID)
	}
	// id=2: toPay 99, available 89; id=3: toPay=available=99
	if want := dec(t, "188"); !budget.Equal(want) {
		t.Errorf("budget = %s, want %s", budget, want)
	}
	for _, c := range cands {
		if c.Available.Cmp(c.ToPay) > 0 {
			t.Errorf("candidate %s: available %s > toPay %s", c.ID, c.Available, c.ToPay)
		}
	}
}
