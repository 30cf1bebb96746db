package store

import (
	"strconv"
	"sync"

	"github.com/shopspring/decimal"
)

// Shop 店铺。佣金在创建时设定，之后只读。
type Shop struct {
	ID         string
	Name       string
	Commission decimal.Decimal
}

// ShopStore 内存店铺存储：map 按 ID 查找，另维护插入序列表供枚举。
// ID 由单调计数器分配。
type ShopStore struct {
	mu      sync.RWMutex
	byID    map[string]Shop
	ordered []string
	counter int64
}

func NewShopStore() *ShopStore {
	return &ShopStore{byID: make(map[string]Shop)}
}

func (s *ShopStore) Add(name string, commission decimal.Decimal) Shop {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	shop := Shop{
		ID:         strconv.FormatInt(s.counter, 10),
		Name:       name,
		Commission: commission,
	}
	s.byID[shop.ID] = shop
	s.ordered = append(s.ordered, shop.ID)
	return shop
}

func (s *ShopStore) Get(id string) (Shop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	shop, ok := s.byID[id]
	return shop, ok
}
