package store

import (
	"errors"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"shop-payout-api/internal/payout"
)

var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Payment 支付记录。内存为权威数据，数据库仅作旁路镜像。
type Payment struct {
	ID            string
	ShopID        string
	FaceAmount    decimal.Decimal
	Status        payout.Status
	AmountPaidOut decimal.Decimal
}

// PaymentStore 内存支付存储：map 按 ID 查找 + 每店插入序列表。
// ID 由单调计数器分配。
type PaymentStore struct {
	mu      sync.RWMutex
	byID    map[string]*Payment
	byShop  map[string][]string
	counter int64
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{
		byID:   make(map[string]*Payment),
		byShop: make(map[string][]string),
	}
}

func (s *PaymentStore) Create(shopID string, amount decimal.Decimal) Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	p := &Payment{
		ID:            strconv.FormatInt(s.counter, 10),
		ShopID:        shopID,
		FaceAmount:    amount,
		Status:        payout.StatusNew,
		AmountPaidOut: decimal.Zero,
	}
	s.byID[p.ID] = p
	s.byShop[shopID] = append(s.byShop[shopID], p.ID)
	return *p
}

func (s *PaymentStore) Get(id string) (Payment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	if !ok {
		return Payment{}, false
	}
	return *p, true
}

// ListByShop 按插入序返回店铺的全部支付记录
func (s *PaymentStore) ListByShop(shopID string) []Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byShop[shopID]
	out := make([]Payment, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.byID[id])
	}
	return out
}

// UpdateStatusBatch 原子批量状态更新：先校验整批，再统一落库。
// 任何一笔不存在或迁移非法时整批拒绝，不产生部分变更。
func (s *PaymentStore) UpdateStatusBatch(ids []string, to payout.Status) ([]Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		p, ok := s.byID[id]
		if !ok {
			return nil, ErrPaymentNotFound
		}
		if !payout.CanTransition(p.Status, to) {
			return nil, ErrInvalidTransition
		}
	}

	out := make([]Payment, 0, len(ids))
	for _, id := range ids {
		p := s.byID[id]
		p.Status = to
		out = append(out, *p)
	}
	return out, nil
}

// MarkPaidOut 由 unlocked 推进到终态 paid_out，已付必须等于应付全额时由调用方触发
func (s *PaymentStore) MarkPaidOut(id string) (Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return Payment{}, ErrPaymentNotFound
	}
	if p.Status != payout.StatusUnlocked {
		return Payment{}, ErrInvalidTransition
	}
	p.Status = payout.StatusPaidOut
	return *p, nil
}

// ApplySettlement 将结算结果写回支付记录，单锁内完成
func (s *PaymentStore) ApplySettlement(items []payout.SettledItem) []Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Payment, 0, len(items))
	for _, it := range items {
		p, ok := s.byID[it.ID]
		if !ok {
			continue
		}
		p.AmountPaidOut = it.AmountPaidOut
		p.Status = it.Status
		out = append(out, *p)
	}
	return out
}
