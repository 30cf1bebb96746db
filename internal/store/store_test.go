package store

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"shop-payout-api/internal/payout"
)

func TestPaymentIDsAreMonotonic(t *testing.T) {
	s := NewPaymentStore()
	for i, want := range []string{"1", "2", "3"} {
		p := s.Create("shop", decimal.NewFromInt(int64(i+1)))
		if p.ID != want {
			t.Errorf("payment %d id = %s, want %s", i, p.ID, want)
		}
		if p.Status != payout.StatusNew {
			t.Errorf("new payment status = %s, want new", p.Status)
		}
	}
}

func TestListByShopKeepsInsertionOrder(t *testing.T) {
	s := NewPaymentStore()
	s.Create("a", decimal.NewFromInt(3))
	s.Create("b", decimal.NewFromInt(9))
	s.Create("a", decimal.NewFromInt(1))

	got := s.ListByShop("a")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("list = %+v, want ids 1,3 in insertion order", got)
	}
	if len(s.ListByShop("missing")) != 0 {
		t.Error("unknown shop must list empty")
	}
}

func TestUpdateStatusBatchAtomic(t *testing.T) {
	s := NewPaymentStore()
	s.Create("a", decimal.NewFromInt(10)) // id 1, new
	s.Create("a", decimal.NewFromInt(10)) // id 2, new

	// id 2 留在 new，批量 unlock 时必然非法
	if _, err := s.UpdateStatusBatch([]string{"1"}, payout.StatusProcessed); err != nil {
		t.Fatalf("processed transition failed: %v", err)
	}
	_, err := s.UpdateStatusBatch([]string{"1", "2"}, payout.StatusUnlocked)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	// 整批拒绝：id 1 不得被部分推进
	p, _ := s.Get("1")
	if p.Status != payout.StatusProcessed {
		t.Errorf("payment 1 status = %s, want processed (no partial mutation)", p.Status)
	}

	_, err = s.UpdateStatusBatch([]string{"1", "404"}, payout.StatusUnlocked)
	if !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("err = %v, want ErrPaymentNotFound", err)
	}
	p, _ = s.Get("1")
	if p.Status != payout.StatusProcessed {
		t.Errorf("payment 1 status = %s, want processed after rejected batch", p.Status)
	}
}

func TestMarkPaidOutOnlyFromUnlocked(t *testing.T) {
	s := NewPaymentStore()
	s.Create("a", decimal.NewFromInt(10))

	if _, err := s.MarkPaidOut("1"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition from new", err)
	}
	s.UpdateStatusBatch([]string{"1"}, payout.StatusProcessed)
	s.UpdateStatusBatch([]string{"1"}, payout.StatusUnlocked)
	p, err := s.MarkPaidOut("1")
	if err != nil || p.Status != payout.StatusPaidOut {
		t.Fatalf("mark paid out: %v, status %s", err, p.Status)
	}
	// paid_out 为终态
	if _, err := s.UpdateStatusBatch([]string{"1"}, payout.StatusProcessed); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("err = %v, terminal status must reject transitions", err)
	}
}

func TestApplySettlement(t *testing.T) {
	s := NewPaymentStore()
	s.Create("a", decimal.NewFromInt(100))
	s.UpdateStatusBatch([]string{"1"}, payout.StatusProcessed)
	s.UpdateStatusBatch([]string{"1"}, payout.StatusUnlocked)

	updated := s.ApplySettlement([]payout.SettledItem{{
		ID:            "1",
		Paid:          decimal.NewFromInt(97),
		AmountPaidOut: decimal.NewFromInt(97),
		Status:        payout.StatusPaidOut,
	}})
	if len(updated) != 1 {
		t.Fatalf("updated = %d, want 1", len(updated))
	}
	p, _ := s.Get("1")
	if !p.AmountPaidOut.Equal(decimal.NewFromInt(97)) || p.Status != payout.StatusPaidOut {
		t.Errorf("payment = %+v, want amountPaidOut 97 paid_out", p)
	}
}

func TestShopStore(t *testing.T) {
	s := NewShopStore()
	shop := s.Add("book store", decimal.RequireFromString("2.5"))
	if shop.ID != "1" {
		t.Errorf("shop id = %s, want 1", shop.ID)
	}
	got, ok := s.Get("1")
	if !ok || got.Name != "book store" || !got.Commission.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("get = %+v ok=%v", got, ok)
	}
	if _, ok := s.Get("404"); ok {
		t.Error("unknown shop must miss")
	}
}
