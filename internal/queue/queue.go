package queue

import (
	"encoding/json"

	"github.com/streadway/amqp"
)

// WebhookQueue is the durable queue carrying catering webhook deliveries.
const WebhookQueue = "catering_webhooks"

// DeliveryJob is the message handed to the webhook worker. It carries
// ids only; the worker reloads the request row before delivering so the
// payload always reflects what was persisted.
type DeliveryJob struct {
	RequestID  int    `json:"request_id"`
	DeliveryID string `json:"delivery_id"`
}

// Publisher wraps an AMQP connection used by the API to hand webhook
// deliveries to the worker.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func Connect(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if _, err := ch.QueueDeclare(
		WebhookQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, ch: ch}, nil
}

func (p *Publisher) Publish(job DeliveryJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return p.ch.Publish(
		"",
		WebhookQueue,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (p *Publisher) Close() {
	p.ch.Close()
	p.conn.Close()
}
