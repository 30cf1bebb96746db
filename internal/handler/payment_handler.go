package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop-payout-api/internal/constant"
	"shop-payout-api/internal/dto"
	"shop-payout-api/internal/service"
	"shop-payout-api/internal/utils"
)

type PaymentHandler struct {
	svc *service.PaymentService
}

func NewPaymentHandler() *PaymentHandler {
	return &PaymentHandler{svc: service.NewPaymentService()}
}

// Create 创建支付记录
func (h *PaymentHandler) Create(c *gin.Context) {
	var req dto.CreatePaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CustomError(constant.CodeInvalidParams, err.Error()))
		return
	}
	vo, cerr := h.svc.Create(req)
	if cerr != nil {
		c.JSON(httpStatusFor(cerr.Code()), utils.Error(cerr.Code()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// Get 查询单笔支付
func (h *PaymentHandler) Get(c *gin.Context) {
	vo, cerr := h.svc.Get(c.Param("paymentId"))
	if cerr != nil {
		c.JSON(httpStatusFor(cerr.Code()), utils.Error(cerr.Code()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vo))
}

// UpdateStatus 批量状态更新，整批原子
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdatePaymentsStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.CustomError(constant.CodeInvalidParams, err.Error()))
		return
	}
	vos, cerr := h.svc.UpdateStatus(req)
	if cerr != nil {
		c.JSON(httpStatusFor(cerr.Code()), utils.Error(cerr.Code()))
		return
	}
	c.JSON(http.StatusOK, utils.Success(vos))
}
