package bootstrap

import (
	"log"
	"time"

	"roomlink-be/internal/config"
	"roomlink-be/internal/controller"
	"roomlink-be/internal/pkg/logger"
	"roomlink-be/internal/repository/unitofwork"
	"roomlink-be/internal/service"
	"roomlink-be/pkg/delivery"

	pktNats "roomlink-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const broadcastTopic = "broadcast.dispatch"

type Container struct {
	// Controllers
	EntitlementController controller.IEntitlementController
	BroadcastController   controller.IBroadcastController

	// Background Services (Exposed for main.go to run)
	DispatchConsumerService service.IDispatchConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	deliveryLogger := logger.NewIsolatedLogger(cfg.App.DeliveryLogPath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 3. Delivery Transports
	// Local submission always exists; the authenticated relay and the SMS
	// provider only come up when their settings are complete.
	emailPrimary := delivery.NewLocalEmailTransport(cfg.Mail.LocalHost, cfg.Mail.LocalPort, cfg.Mail.SenderEmail)

	var emailFallback delivery.Transport
	if relay, err := delivery.NewRelayEmailTransport(
		cfg.Mail.RelayHost,
		cfg.Mail.RelayPort,
		cfg.Mail.RelayUser,
		cfg.Mail.RelayPass,
		cfg.Mail.SenderEmail,
	); err != nil {
		log.Printf("[WARN] SMTP relay disabled: %v", err)
	} else {
		emailFallback = relay
	}

	var smsTransport delivery.Transport
	if sms, err := delivery.NewSMSTransport(cfg.SMS.APIURL, cfg.SMS.APIKey, cfg.SMS.SenderNumber); err != nil {
		log.Printf("[WARN] SMS provider disabled: %v", err)
		smsTransport = delivery.NewUnconfiguredTransport("sms")
	} else {
		smsTransport = sms
	}

	dispatcher := delivery.NewDispatcher(
		emailPrimary,
		emailFallback,
		smsTransport,
		delivery.NewPushTransport(),
		deliveryLogger,
	).
		WithWorkers(cfg.Dispatch.Workers).
		WithSendTimeout(time.Duration(cfg.Dispatch.SendTimeoutSeconds) * time.Second)

	// 4. Services
	entitlementService := service.NewEntitlementService(uowFactory, sysLogger, natsPub)
	broadcastService := service.NewBroadcastService(uowFactory, dispatcher, sysLogger, natsPub)
	publisherService := service.NewPublisherService(broadcastTopic, pubSub)
	dispatchConsumerService := service.NewDispatchConsumerService(
		pubSub,
		broadcastTopic,
		broadcastService,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		EntitlementController: controller.NewEntitlementController(entitlementService),
		BroadcastController:   controller.NewBroadcastController(broadcastService, publisherService),

		DispatchConsumerService: dispatchConsumerService,
	}
}
