package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop-payout-api/internal/constant"
	"shop-payout-api/internal/dto"
	"shop-payout-api/internal/service"
	"shop-payout-api/internal/utils"
)

type AdminHandler struct {
	feeSvc    *service.FeeService
	shopSvc   *service.ShopService
	payoutSvc *service.PayoutService
}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{
		feeSvc:    service.NewFeeService(),
		shopSvc:   service.NewShopService(),
		payoutSvc: service.NewPayoutService(),
	}
}

// GetFees 查询当前费率
func (h *AdminHandler) GetFees(c *gin.Context) {
	c.JSON(http.StatusOK, utils.Success(h.feeSvc.Current()))
}

// UpdateFees 整体替换费率
func (h *AdminHandler) UpdateFees(c *gin.Context) {
	var req dto.SystemFees
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CustomError(constant.CodeInvalidParams, err.Error()))
		return
	}
	if cerr := h.feeSvc.Replace(req); cerr != nil {
		c.JSON(httpStatusFor(cerr.Code()), utils.Error(cerr.Code()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(h.feeSvc.Current()))
}

// AddShop 创建店铺
func (h *AdminHandler) AddShop(c *gin.Context) {
	var req dto.AddShopReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CustomError(constant.CodeInvalidParams, err.Error()))
		return
	}
	vo, cerr := h.shopSvc.Add(req)
	if cerr != nil {
		c.JSON(httpStatusFor(cerr.Code()), utils.Error(cerr.Code()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// GetShop 店铺详情（含支付记录，调试用）
func (h *AdminHandler) GetShop(c *gin.Context) {
	vo, cerr := h.shopSvc.Get(c.Param("shopId"))
	if cerr != nil {
		c.JSON(httpStatusFor(cerr.Code()), utils.Error(cerr.Code()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// RunPayout 为店铺执行一轮付款
func (h *AdminHandler) RunPayout(c *gin.Context) {
	vo, cerr := h.payoutSvc.Run(c.Param("shopId"))
	if cerr != nil {
		c.JSON(httpStatusFor(cerr.Code()), utils.Error(cerr.Code()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// 业务错误码到 HTTP 状态码的映射
func httpStatusFor(code int) int {
	switch code {
	case constant.CodeShopNotFound, constant.CodePaymentNotFound:
		return http.StatusNotFound
	case constant.CodePayoutInProgress:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
