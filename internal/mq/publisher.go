package mq

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"

	"shop-payout-api/internal/dal"
	"shop-payout-api/internal/dto"
)

func publish(routingKey string, v interface{}) error {
	if dal.RabbitCh == nil {
		return nil
	}
	b, _ := json.Marshal(v)
	err := dal.RabbitCh.Publish(
		"payout_events",
		routingKey,
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         b,
		},
	)
	if err != nil {
		log.Printf("publish %s failed: %v", routingKey, err)
	}
	return err
}

// PublishPaymentCreated 支付创建事件
func PublishPaymentCreated(evt dto.PaymentCreatedEvent) error {
	return publish("payment.created", evt)
}

// PublishPayoutCompleted 付款完成事件
func PublishPayoutCompleted(evt dto.PayoutCompletedEvent) error {
	return publish("payout.completed", evt)
}
