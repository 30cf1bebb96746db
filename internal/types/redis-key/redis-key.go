package rediskey

import "shop-payout-api/internal/config"

// 费率配置缓存 key
func FeeConfigKey() string {
	return config.C.Project.Name + ":fee:config"
}

// 店铺付款互斥锁 key
func PayoutLockKey(shopID string) string {
	return config.C.Project.Name + ":payout:lock:" + shopID
}

// 店铺付款统计 key
func PayoutStatsKey(shopID string) string {
	return config.C.Project.Name + ":payout:stats:" + shopID
}
