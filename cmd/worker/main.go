package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/joho/godotenv"
	"github.com/streadway/amqp"

	"github.com/piebomber/piebomber-api/internal/config"
	"github.com/piebomber/piebomber-api/internal/db"
	"github.com/piebomber/piebomber-api/internal/queue"
	"github.com/piebomber/piebomber-api/internal/repository"
	"github.com/piebomber/piebomber-api/internal/webhook"
)

// The worker drains the webhook delivery queue. Each delivery gets
// exactly one POST attempt: failures are logged and acked, never
// requeued, so the receiver sees at most one notification per
// submission.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if cfg.AMQPURL == "" {
		log.Fatal("AMQP_URL is required for the worker")
	}
	if cfg.ZapierWebhookURL == "" {
		log.Fatal("ZAPIER_WEBHOOK_URL is required for the worker")
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	cateringRepo := &repository.CateringRepository{DB: database}
	notifier := webhook.NewHTTPNotifier(cfg.ZapierWebhookURL)

	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ:", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("Failed to open a channel:", err)
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		queue.WebhookQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatal("Failed to declare queue:", err)
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatal("Failed to register consumer:", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var job queue.DeliveryJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				log.Println("Invalid delivery job:", err)
				d.Ack(false)
				continue
			}

			if err := deliver(job, cateringRepo, notifier); err != nil {
				log.Println("⚠️ Webhook delivery failed for request", job.RequestID, ":", err)
			}

			// One attempt only: ack whatever happened.
			d.Ack(false)
		}
	}()

	log.Println("Worker running, waiting for webhook deliveries...")
	<-forever
}

func deliver(job queue.DeliveryJob, repo repository.CateringRepositoryInterface, notifier webhook.Notifier) error {
	req, err := repo.GetByID(job.RequestID)
	if err != nil {
		return err
	}
	if req.ZapierWebhookSent {
		// Already delivered for this request; the flag never reverts.
		return nil
	}

	delivered, err := notifier.Notify(context.Background(), webhook.PayloadFromRequest(req, job.DeliveryID))
	if err != nil {
		return err
	}
	if delivered {
		if err := repo.MarkWebhookSent(req.ID); err != nil {
			log.Println("⚠️ Failed to record webhook delivery for request", req.ID, ":", err)
		}
	}
	return nil
}
