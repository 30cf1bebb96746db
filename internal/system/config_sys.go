package system

import (
	"encoding/json"

	"golang.org/x/sync/singleflight"

	"shop-payout-api/internal/dal"
	"shop-payout-api/internal/dao"
	"shop-payout-api/internal/dto"
	rediskey "shop-payout-api/internal/types/redis-key"
)

type ConfigSystem struct{}

var loadGroup singleflight.Group

// GetFeesCached 读取费率配置：优先 Redis 缓存，未命中回源数据库并写回缓存。
// 并发未命中通过 singleflight 合并为一次回源。
func (s *ConfigSystem) GetFeesCached() (dto.SystemFees, bool) {
	var fees dto.SystemFees

	if dal.RedisClient != nil {
		if cached, _ := dal.RedisClient.Get(dal.RedisCtx, rediskey.FeeConfigKey()).Result(); cached != "" {
			if err := json.Unmarshal([]byte(cached), &fees); err == nil {
				return fees, true
			}
		}
	}

	v, err, _ := loadGroup.Do("fee_config", func() (interface{}, error) {
		row, err := dao.NewFeeDao().Get()
		if err != nil || row == nil {
			return nil, err
		}
		f := dto.SystemFees{
			FixedFee:        row.FixedFee,
			PercentFee:      row.PercentFee,
			PercentHoldback: row.PercentHoldback,
		}
		s.CacheFees(f)
		return f, nil
	})
	if err != nil || v == nil {
		return fees, false
	}
	return v.(dto.SystemFees), true
}

// CacheFees 将费率配置写入 Redis 缓存
func (s *ConfigSystem) CacheFees(fees dto.SystemFees) {
	if dal.RedisClient == nil {
		return
	}
	b, _ := json.Marshal(&fees)
	dal.RedisClient.Set(dal.RedisCtx, rediskey.FeeConfigKey(), string(b), 0)
}
