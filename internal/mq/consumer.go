package mq

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"

	"shop-payout-api/internal/dal"
	"shop-payout-api/internal/dto"
	"shop-payout-api/internal/notify"
	rediskey "shop-payout-api/internal/types/redis-key"
)

// StartConsumers 启动付款统计消费者
func StartConsumers() {
	if dal.RabbitCh == nil {
		log.Println("RabbitMQ channel not initialized")
		return
	}
	msgs, err := dal.RabbitCh.Consume("payout_completed", "", false, false, false, false, nil)
	if err != nil {
		log.Printf("❌ consume payout_completed failed: %v", err)
		return
	}
	for d := range msgs {
		go handlePayoutCompleted(d)
	}
}

// 按店铺累计付款统计到 Redis
func handlePayoutCompleted(d amqp.Delivery) {
	var msg dto.PayoutCompletedEvent
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		log.Printf("❌ [STATS] 付款事件解析失败: %v", err)
		d.Nack(false, false)
		return
	}

	if dal.RedisClient != nil {
		key := rediskey.PayoutStatsKey(msg.ShopID)
		pipe := dal.RedisClient.Pipeline()
		pipe.HIncrBy(dal.RedisCtx, key, "runs", 1)
		pipe.HIncrBy(dal.RedisCtx, key, "settled_payments", int64(len(msg.PaymentIDs)))
		pipe.HSet(dal.RedisCtx, key, "last_run_id", msg.RunID)
		pipe.HSet(dal.RedisCtx, key, "last_total", msg.TotalPayout)
		pipe.HSet(dal.RedisCtx, key, "last_strategy", msg.Strategy)
		if _, err := pipe.Exec(dal.RedisCtx); err != nil {
			log.Printf("❌ [STATS] 付款统计写入失败: %v", err)
		}
	}

	notify.NotifyPayoutCompleted(msg)

	d.Ack(false)
	log.Printf("✅ [STATS] 付款统计完成: shop=%s run=%d total=%s", msg.ShopID, msg.RunID, msg.TotalPayout)
}
