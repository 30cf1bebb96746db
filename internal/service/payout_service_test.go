package service

import (
	"testing"

	"shop-payout-api/internal/config"
	"shop-payout-api/internal/constant"
	"shop-payout-api/internal/dto"
	"shop-payout-api/internal/idgen"
	"shop-payout-api/internal/store"
)

// 测试不依赖外部设施：DB / Redis / MQ 未初始化时镜像与事件均为空操作
func setupPipeline(t *testing.T) {
	t.Helper()
	store.Init()
	idgen.Init(1)
	config.C.Payout.BudgetConstant = 25_000_000
	config.C.Payout.MinScaledCapacity = 3
	config.C.Payout.MaxTableCells = 50_000_000

	if err := NewFeeService().Replace(dto.SystemFees{
		FixedFee:        "0.50",
		PercentFee:      "1",
		PercentHoldback: "10",
	}); err != nil {
		t.Fatalf("Replace fees: %v", err)
	}
}

func TestPayoutPipeline(t *testing.T) {
	setupPipeline(t)

	shopSvc := NewShopService()
	paySvc := NewPaymentService()
	payoutSvc := NewPayoutService()

	shop, cerr := shopSvc.Add(dto.AddShopReq{Name: "测试店铺", Commission: "2"})
	if cerr != nil {
		t.Fatalf("Add shop: %v", cerr)
	}

	// 三笔支付：100 / 50 / 30
	var ids []string
	for _, amt := range []string{"100", "50", "30"} {
		p, cerr := paySvc.Create(dto.CreatePaymentReq{ShopID: shop.ID, Amount: amt})
		if cerr != nil {
			t.Fatalf("Create payment %s: %v", amt, cerr)
		}
		if p.Status != "new" {
			t.Fatalf("new payment status = %s", p.Status)
		}
		ids = append(ids, p.ID)
	}

	// new 状态不参与付款
	vo, cerr := payoutSvc.Run(shop.ID)
	if cerr != nil {
		t.Fatalf("Run: %v", cerr)
	}
	if vo.TotalPayout != "0" || len(vo.Payments) != 0 {
		t.Fatalf("payout over new payments = %+v", vo)
	}

	if _, cerr := paySvc.UpdateStatus(dto.UpdatePaymentsStatusReq{
		PaymentIDs: ids, NewStatus: "processed",
	}); cerr != nil {
		t.Fatalf("UpdateStatus processed: %v", cerr)
	}

	// processed：toPay = amt - 0.50 - 1%*amt - 2%*amt，available 再扣 10%*amt
	// 100 → toPay 96.50 available 86.50
	// 50  → toPay 48.00 available 43.00
	// 30  → toPay 28.60 available 25.60
	vo, cerr = payoutSvc.Run(shop.ID)
	if cerr != nil {
		t.Fatalf("Run: %v", cerr)
	}
	// 预算 = 155.10，全额应付 = 173.10：按应付装箱，贪心/精确都只装得下前两笔
	if vo.TotalPayout != "144.5" {
		t.Fatalf("TotalPayout = %s, want 144.5", vo.TotalPayout)
	}
	if len(vo.Payments) != 2 {
		t.Fatalf("settled count = %d, want 2", len(vo.Payments))
	}
	for _, p := range vo.Payments {
		if p.Status != "processed" {
			t.Fatalf("settled processed payment advanced to %s", p.Status)
		}
	}

	// 已付不超过应付全额
	p1, _ := paySvc.Get(ids[0])
	if p1.AmountPaidOut != "96.5" {
		t.Fatalf("payment 1 amount_paid_out = %s, want 96.5", p1.AmountPaidOut)
	}
}

func TestPayoutUnlockedAdvancesToPaidOut(t *testing.T) {
	setupPipeline(t)

	shopSvc := NewShopService()
	paySvc := NewPaymentService()
	payoutSvc := NewPayoutService()

	shop, _ := shopSvc.Add(dto.AddShopReq{Name: "s", Commission: "0"})
	p, _ := paySvc.Create(dto.CreatePaymentReq{ShopID: shop.ID, Amount: "100"})

	if _, cerr := paySvc.UpdateStatus(dto.UpdatePaymentsStatusReq{
		PaymentIDs: []string{p.ID}, NewStatus: "processed",
	}); cerr != nil {
		t.Fatalf("to processed: %v", cerr)
	}
	if _, cerr := paySvc.UpdateStatus(dto.UpdatePaymentsStatusReq{
		PaymentIDs: []string{p.ID}, NewStatus: "unlocked",
	}); cerr != nil {
		t.Fatalf("to unlocked: %v", cerr)
	}

	// unlocked 冻结解除：toPay = available = 100 - 0.50 - 1.00 = 98.50，全额付清后推进为终态
	vo, cerr := payoutSvc.Run(shop.ID)
	if cerr != nil {
		t.Fatalf("Run: %v", cerr)
	}
	if vo.TotalPayout != "98.5" {
		t.Fatalf("TotalPayout = %s, want 98.5", vo.TotalPayout)
	}
	got, _ := paySvc.Get(p.ID)
	if got.Status != "paid_out" {
		t.Fatalf("status = %s, want paid_out", got.Status)
	}

	// 终态款项不再参与后续付款
	vo, _ = payoutSvc.Run(shop.ID)
	if vo.TotalPayout != "0" {
		t.Fatalf("second run TotalPayout = %s, want 0", vo.TotalPayout)
	}
}

func TestPayoutUnknownShop(t *testing.T) {
	setupPipeline(t)
	if _, cerr := NewPayoutService().Run("404"); cerr == nil || cerr.Code() != constant.CodeShopNotFound {
		t.Fatalf("Run unknown shop err = %v", cerr)
	}
}

func TestUpdateStatusBatchRejectsWhole(t *testing.T) {
	setupPipeline(t)

	shopSvc := NewShopService()
	paySvc := NewPaymentService()

	shop, _ := shopSvc.Add(dto.AddShopReq{Name: "s", Commission: "0"})
	p, _ := paySvc.Create(dto.CreatePaymentReq{ShopID: shop.ID, Amount: "10"})

	// 一笔不存在，整批拒绝，合法那笔不产生变更
	if _, cerr := paySvc.UpdateStatus(dto.UpdatePaymentsStatusReq{
		PaymentIDs: []string{p.ID, "no-such-id"}, NewStatus: "processed",
	}); cerr == nil || cerr.Code() != constant.CodePaymentNotFound {
		t.Fatalf("batch with missing id err = %v", cerr)
	}
	got, _ := paySvc.Get(p.ID)
	if got.Status != "new" {
		t.Fatalf("status after rejected batch = %s, want new", got.Status)
	}
}

func TestCreatePaymentValidation(t *testing.T) {
	setupPipeline(t)
	paySvc := NewPaymentService()

	if _, cerr := paySvc.Create(dto.CreatePaymentReq{ShopID: "404", Amount: "10"}); cerr == nil || cerr.Code() != constant.CodeShopNotFound {
		t.Fatalf("unknown shop err = %v", cerr)
	}

	shop, _ := NewShopService().Add(dto.AddShopReq{Name: "s", Commission: "0"})
	if _, cerr := paySvc.Create(dto.CreatePaymentReq{ShopID: shop.ID, Amount: "-5"}); cerr == nil || cerr.Code() != constant.CodePaymentAmountInvalid {
		t.Fatalf("negative amount err = %v", cerr)
	}
}
