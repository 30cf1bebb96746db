package service

import (
	"sync"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"

	"shop-payout-api/internal/constant"
	"shop-payout-api/internal/dao"
	"shop-payout-api/internal/dto"
	mainmodel "shop-payout-api/internal/model/main"
	"shop-payout-api/internal/payout"
	"shop-payout-api/internal/system"
)

// 进程内权威费率状态。数据库与 Redis 仅作镜像，重启时回灌。
var feeState = struct {
	mu     sync.RWMutex
	fees   dto.SystemFees
	parsed payout.FeeConfig
}{
	fees: dto.SystemFees{FixedFee: "0", PercentFee: "0", PercentHoldback: "0"},
}

type FeeService struct {
	feeDao *dao.FeeDao
	sys    *system.ConfigSystem
}

func NewFeeService() *FeeService {
	return &FeeService{feeDao: dao.NewFeeDao(), sys: &system.ConfigSystem{}}
}

// Bootstrap 启动时从缓存 / 数据库回灌费率，镜像不可用时保持零费率
func (s *FeeService) Bootstrap() {
	if fees, ok := s.sys.GetFeesCached(); ok {
		_ = s.Replace(fees)
	}
}

// Current 当前费率快照
func (s *FeeService) Current() dto.SystemFees {
	feeState.mu.RLock()
	defer feeState.mu.RUnlock()
	return feeState.fees
}

// Replace 整体替换费率。三项必须都是合法十进制且非负，任一非法则整体拒绝。
func (s *FeeService) Replace(req dto.SystemFees) constant.Error {
	fixed, err1 := decimal.NewFromString(req.FixedFee)
	percent, err2 := decimal.NewFromString(req.PercentFee)
	holdback, err3 := decimal.NewFromString(req.PercentHoldback)
	if err1 != nil || err2 != nil || err3 != nil ||
		fixed.Sign() < 0 || percent.Sign() < 0 || holdback.Sign() < 0 {
		return constant.NewError(constant.CodeFeeConfigInvalid)
	}

	feeState.mu.Lock()
	feeState.fees = req
	feeState.parsed = payout.FeeConfig{Fixed: fixed, Percent: percent, Holdback: holdback}
	feeState.mu.Unlock()

	// 旁路镜像：数据库 + Redis 缓存
	var m mainmodel.PayoutFee
	_ = copier.Copy(&m, &req)
	_ = s.feeDao.Save(m)
	s.sys.CacheFees(req)
	return nil
}

// CurrentFeeConfig 当前费率的十进制视图，付款计算用
func CurrentFeeConfig() payout.FeeConfig {
	feeState.mu.RLock()
	defer feeState.mu.RUnlock()
	return feeState.parsed
}
