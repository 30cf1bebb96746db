package dal

import (
	"log"

	"shop-payout-api/internal/config"

	"github.com/streadway/amqp"
)

var RabbitConn *amqp.Connection
var RabbitCh *amqp.Channel

func InitRabbitMQ() {
	url := config.C.RabbitMQ.URL
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatalf("rabbitmq dial failed: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("rabbitmq channel failed: %v", err)
	}

	// exchange & queues
	if err := ch.ExchangeDeclare("payout_events", "topic", true, false, false, false, nil); err != nil {
		log.Fatalf("exchange declare failed: %v", err)
	}
	if _, err := ch.QueueDeclare("payment_created", true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare payment_created failed: %v", err)
	}
	if _, err := ch.QueueDeclare("payout_completed", true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare payout_completed failed: %v", err)
	}
	if err := ch.QueueBind("payment_created", "payment.created", "payout_events", false, nil); err != nil {
		log.Fatalf("queue bind payment_created failed: %v", err)
	}
	if err := ch.QueueBind("payout_completed", "payout.completed", "payout_events", false, nil); err != nil {
		log.Fatalf("queue bind payout_completed failed: %v", err)
	}

	RabbitConn = conn
	RabbitCh = ch
}
