package bootstrap

import (
	"context"
	"log"
	"time"

	"streampoint-be/internal/config"
	"streampoint-be/internal/controller"
	"streampoint-be/internal/handler"
	"streampoint-be/internal/pkg/logger"
	"streampoint-be/internal/pkg/mailer"
	"streampoint-be/internal/pkg/upload"
	"streampoint-be/internal/repository/implementation"
	"streampoint-be/internal/repository/unitofwork"
	"streampoint-be/internal/service"
	"streampoint-be/internal/websocket"
	"streampoint-be/pkg/admin/dashboard"
	adminEvents "streampoint-be/pkg/admin/events"
	"streampoint-be/pkg/store"

	pktNats "streampoint-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	CatalogController      controller.ICatalogController
	SubscriptionController controller.ISubscriptionController
	CheckoutController     controller.ICheckoutController
	PurchaseController     controller.IPurchaseController
	AdminController        controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	sessionTTL := time.Duration(cfg.Checkout.SessionTTLMinutes) * time.Minute
	checkoutStore := store.NewCheckoutStore(rdb, sessionTTL)
	receiptStore := upload.NewReceiptStore(cfg.Upload.Dir, cfg.Upload.MaxReceiptSize)

	mailPublisher := service.NewPublisherService(cfg.App.EmailTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.EmailTopic,
		emailService,
	)

	adminEventPublisher := adminEvents.NewNatsPublisher(natsPub, sysLogger)

	loyaltyService := service.NewLoyaltyService(uowFactory)
	authService := service.NewAuthService(uowFactory, adminEventPublisher)
	catalogService := service.NewCatalogService(uowFactory, loyaltyService)
	subscriptionService := service.NewSubscriptionService(uowFactory, loyaltyService, adminEventPublisher)
	purchaseService := service.NewPurchaseService(uowFactory, loyaltyService, receiptStore, adminEventPublisher)
	checkoutService := service.NewCheckoutService(
		uowFactory,
		loyaltyService,
		checkoutStore,
		mailPublisher,
		adminEventPublisher,
		sessionTTL,
	)

	dashboardAggregator := dashboard.NewAggregator(sysLogger)
	adminService := service.NewAdminService(
		uowFactory,
		loyaltyService,
		dashboardAggregator,
		mailPublisher,
		adminEventPublisher,
		sysLogger,
	)

	// 3.5 Notification System Infrastructure
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	// Handler
	notifHandler := handler.NewNotificationHandler(notifService, natsPub, wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		AuthController:         controller.NewAuthController(authService),
		CatalogController:      controller.NewCatalogController(catalogService),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService, loyaltyService),
		CheckoutController:     controller.NewCheckoutController(checkoutService),
		PurchaseController:     controller.NewPurchaseController(purchaseService),
		AdminController:        controller.NewAdminController(adminService),

		ConsumerService: consumerService,
	}
}
