// cmd/server/main.go
package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/piebomber/piebomber-api/internal/config"
	"github.com/piebomber/piebomber-api/internal/controller"
	"github.com/piebomber/piebomber-api/internal/crm"
	"github.com/piebomber/piebomber-api/internal/db"
	"github.com/piebomber/piebomber-api/internal/queue"
	"github.com/piebomber/piebomber-api/internal/repository"
	"github.com/piebomber/piebomber-api/internal/service"
	"github.com/piebomber/piebomber-api/internal/webhook"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	log.Println("✅ Connected to database")

	menuRepo := &repository.MenuRepository{DB: database}
	eventRepo := &repository.EventRepository{DB: database}
	cateringRepo := &repository.CateringRepository{DB: database}

	// Optional integrations: each one is a no-op unless configured.
	var directory crm.CustomerDirectory = crm.Disabled{}
	if cfg.SquareToken != "" {
		directory = crm.NewSquareClient(cfg.SquareAPIURL, cfg.SquareToken)
		log.Println("✅ Square customer directory enabled")
	}

	var notifier webhook.Notifier = webhook.Disabled{}
	if cfg.ZapierWebhookURL != "" {
		if cfg.AMQPURL != "" {
			pub, err := queue.Connect(cfg.AMQPURL)
			if err != nil {
				log.Fatalf("failed to connect to queue: %v", err)
			}
			defer pub.Close()
			notifier = &webhook.QueuedNotifier{Publisher: pub}
			log.Println("✅ Webhook deliveries handed to queue:", queue.WebhookQueue)
		} else {
			notifier = webhook.NewHTTPNotifier(cfg.ZapierWebhookURL)
			log.Println("✅ Webhook deliveries POSTed inline")
		}
	}

	menuService := &service.MenuService{MenuRepo: menuRepo}
	eventService := &service.EventService{EventRepo: eventRepo}
	cateringService := &service.CateringService{
		CateringRepo: cateringRepo,
		Directory:    directory,
		Notifier:     notifier,
	}

	menuController := &controller.MenuController{MenuService: menuService}
	eventController := &controller.EventController{EventService: eventService}
	cateringController := &controller.CateringController{CateringService: cateringService}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/api/health", controller.Health)
	r.Get("/api/menu", menuController.ListMenuItems)
	r.Get("/api/menu/{id}", menuController.GetMenuItem)
	r.Get("/api/events", eventController.ListEvents)
	r.Get("/api/events/{id}", eventController.GetEvent)
	r.Post("/api/catering", cateringController.SubmitRequest)
	r.Get("/api/catering/{id}", cateringController.GetRequest)

	r.NotFound(controller.NotFound)
	r.MethodNotAllowed(controller.NotFound)

	log.Println("🚀 PieBomber API running on :" + cfg.Port)
	log.Println("📍 Health check: http://localhost:" + cfg.Port + "/api/health")
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
