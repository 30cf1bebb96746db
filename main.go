package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"shop-payout-api/internal/config"
	"shop-payout-api/internal/dal"
	"shop-payout-api/internal/handler"
	"shop-payout-api/internal/idgen"
	"shop-payout-api/internal/middleware"
	"shop-payout-api/internal/mq"
	"shop-payout-api/internal/service"
	"shop-payout-api/internal/store"
)

func main() {
	// load config env
	config.Init()

	// init infra
	dal.InitMainDB()
	dal.InitRedis()
	dal.InitRabbitMQ()

	// idgen
	idgen.Init(1)

	// 内存权威存储 + 费率回灌
	store.Init()
	service.NewFeeService().Bootstrap()

	// start consumers
	go mq.StartConsumers()

	// http server
	if config.C.Server.Mode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Recover(), middleware.Trace(), middleware.RequestLogger())

	v1 := r.Group("/api/v1")
	{
		ph := handler.NewPaymentHandler()
		v1.POST("/payments", ph.Create)
		v1.GET("/payments/:paymentId", ph.Get)
		v1.PATCH("/payments/status", ph.UpdateStatus)

		ah := handler.NewAdminHandler()
		admin := v1.Group("/admin", middleware.InternalAuth())
		{
			admin.GET("/fees", ah.GetFees)
			admin.PATCH("/fees", ah.UpdateFees)
			admin.POST("/shops", ah.AddShop)
			admin.GET("/shops/:shopId", ah.GetShop)
			admin.POST("/shops/:shopId/payout", ah.RunPayout)
		}
	}

	addr := ":" + config.C.Server.Port
	log.Printf("listening %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
