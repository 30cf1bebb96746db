package service

import (
	"log"
	"sync"
	"time"

	"shop-payout-api/internal/config"
	"shop-payout-api/internal/constant"
	"shop-payout-api/internal/dal"
	"shop-payout-api/internal/dao"
	"shop-payout-api/internal/dto"
	"shop-payout-api/internal/idgen"
	mainmodel "shop-payout-api/internal/model/main"
	"shop-payout-api/internal/mq"
	"shop-payout-api/internal/payout"
	"shop-payout-api/internal/store"
	rediskey "shop-payout-api/internal/types/redis-key"
	"shop-payout-api/internal/utils"
)

// 单店付款互斥：同一店铺同时只允许一个付款流程
var payoutLocks sync.Map // map[string]*sync.Mutex

type PayoutService struct {
	paymentDao *dao.PaymentDao
	runDao     *dao.PayoutRunDao
}

func NewPayoutService() *PayoutService {
	return &PayoutService{paymentDao: dao.NewPaymentDao(), runDao: dao.NewPayoutRunDao()}
}

// Run 为指定店铺执行一轮付款：
// 费率计算 → 候选过滤 → 整数化与策略选择 → 背包/贪心求解 → 精确十进制结算落库。
func (s *PayoutService) Run(shopID string) (dto.PayoutVo, constant.Error) {
	shop, ok := store.Shops.Get(shopID)
	if !ok {
		return dto.PayoutVo{}, constant.NewError(constant.CodeShopNotFound)
	}

	val, _ := payoutLocks.LoadOrStore(shopID, &sync.Mutex{})
	mu := val.(*sync.Mutex)
	if !mu.TryLock() {
		return dto.PayoutVo{}, constant.NewError(constant.CodePayoutInProgress)
	}
	defer mu.Unlock()

	// 多实例部署时再用 Redis SETNX 做跨进程互斥
	if dal.RedisClient != nil {
		lockKey := rediskey.PayoutLockKey(shopID)
		ttl := time.Duration(config.C.Payout.GuardTTLSec) * time.Second
		acquired, err := dal.RedisClient.SetNX(dal.RedisCtx, lockKey, 1, ttl).Result()
		if err == nil && !acquired {
			return dto.PayoutVo{}, constant.NewError(constant.CodePayoutInProgress)
		}
		defer dal.RedisClient.Del(dal.RedisCtx, lockKey)
	}

	payments := store.Payments.ListByShop(shopID)
	views := make([]payout.PaymentView, 0, len(payments))
	for _, p := range payments {
		views = append(views, payout.PaymentView{
			ID:            p.ID,
			FaceAmount:    p.FaceAmount,
			Status:        p.Status,
			AmountPaidOut: p.AmountPaidOut,
		})
	}

	fees := CurrentFeeConfig()
	cands, budget := payout.BuildCandidates(views, shop.Commission, fees)

	cfg := payout.ScalerConfig{
		BudgetConstant:    config.C.Payout.BudgetConstant,
		MinScaledCapacity: config.C.Payout.MinScaledCapacity,
		MaxTableCells:     config.C.Payout.MaxTableCells,
	}
	sel, plan := payout.SelectPayout(budget, cands, cfg)
	settlement := payout.Settle(sel.Selected, cands, views, budget)

	updated := store.Payments.ApplySettlement(settlement.Items)
	for _, p := range updated {
		_ = s.paymentDao.UpdateStatus(p.ID, string(p.Status), p.AmountPaidOut.String())
	}

	runID := idgen.New()
	_ = s.runDao.Insert(mainmodel.PayoutRun{
		RunID:       runID,
		ShopID:      shopID,
		TotalPayout: settlement.TotalPayout.String(),
		Strategy:    string(plan.Strategy),
		Scaled:      plan.Scaled,
		Candidates:  len(cands),
		Settled:     len(settlement.Items),
	})

	paymentIDs := make([]string, 0, len(settlement.Items))
	vos := make([]dto.PayoutPaymentVo, 0, len(settlement.Items))
	for _, it := range settlement.Items {
		paymentIDs = append(paymentIDs, it.ID)
		vos = append(vos, dto.PayoutPaymentVo{
			ID:            it.ID,
			AmountPaidOut: it.AmountPaidOut.String(),
			Status:        string(it.Status),
		})
	}
	_ = mq.PublishPayoutCompleted(dto.PayoutCompletedEvent{
		RunID:       runID,
		ShopID:      shopID,
		TotalPayout: settlement.TotalPayout.String(),
		PaymentIDs:  paymentIDs,
		Strategy:    string(plan.Strategy),
		Scaled:      plan.Scaled,
		CreatedAt:   utils.GetTimestampMs(),
	})

	log.Printf("✅ [PAYOUT] shop=%s run=%d strategy=%s scaled=%v candidates=%d settled=%d total=%s",
		shopID, runID, plan.Strategy, plan.Scaled, len(cands), len(settlement.Items), settlement.TotalPayout)

	return dto.PayoutVo{TotalPayout: settlement.TotalPayout.String(), Payments: vos}, nil
}
