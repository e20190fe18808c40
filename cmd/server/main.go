package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"cloudstay/docs"
	"cloudstay/internal/auth"
	"cloudstay/internal/cache"
	"cloudstay/internal/config"
	"cloudstay/internal/handler"
	"cloudstay/internal/logger"
	"cloudstay/internal/notify"
	"cloudstay/internal/payment"
	"cloudstay/internal/router"
	"cloudstay/internal/service"
	"cloudstay/internal/storage"
)

const notifyQueueSize = 256

// @title CloudStay API
// @version 1.0
// @description Room booking marketplace API: listings, bookings, payments and dashboards.
// @host localhost:5000
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
func main() {
	cfg := config.Load()
	logger.SetDefault(logger.New(os.Stdout, cfg.LogLevel))
	decimal.MarshalJSONWithoutQuotes = true

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := storage.Open(startCtx, cfg, cfg.Debug())
	cancel()
	if err != nil {
		logger.Error("store init", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	notifier, closeNotifier := buildNotifier(cfg)

	var gateway payment.Gateway = payment.Disabled{}
	if cfg.StripeSecretKey != "" {
		gateway = payment.NewStripeGateway(cfg.StripeSecretKey, cfg.PaymentCurrency)
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set, payment intents disabled")
	}

	codec := auth.NewSessionCodec(cfg.TokenSecret)

	// Initialize services
	userService := service.NewUserService(store.Users, notifier)
	roomService := service.NewRoomService(store.Rooms, cacheClient)
	bookingService := service.NewBookingService(store.Bookings, notifier)
	paymentService := service.NewPaymentService(gateway)
	statsService := service.NewStatsService(store)

	health := map[string]handler.Pinger{"store": store}
	if cacheClient.Enabled() {
		health["cache"] = cacheClient
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, codec, auth.NewRoleResolver(store.Users), cacheClient, router.Handlers{
		Auth:    handler.NewAuthHandler(codec, cfg.IsProduction()),
		User:    handler.NewUserHandler(userService),
		Room:    handler.NewRoomHandler(roomService),
		Booking: handler.NewBookingHandler(bookingService),
		Payment: handler.NewPaymentHandler(paymentService),
		Stats:   handler.NewStatsHandler(statsService),
		Health:  handler.NewHealthHandler(health),
	})

	addr := ":" + cfg.ServerPort
	go func() {
		logger.Info("server starting", "addr", addr, "env", cfg.Environment, "store", cfg.StoreDriver)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	closeNotifier()
	if err := cacheClient.Close(); err != nil {
		logger.Warn("cache close", "error", err)
	}
	if err := store.Close(ctx); err != nil {
		logger.Warn("store close", "error", err)
	}
	logger.Info("server stopped")
}

// buildNotifier assembles the configured channels behind an async queue.
func buildNotifier(cfg *config.Config) (notify.Notifier, func()) {
	var channels notify.Multi
	var closers []func()

	for _, name := range cfg.Notifiers {
		switch strings.ToLower(name) {
		case "log":
			channels = append(channels, notify.Log{})
		case "mailersend":
			m, err := notify.NewMailerSend(cfg.MailerSendKey, cfg.MailerFromName, cfg.MailerFromEmail)
			if err != nil {
				logger.Warn("mailersend notifier disabled", "error", err)
				continue
			}
			channels = append(channels, m)
		case "nats":
			n, err := notify.NewNATS(cfg.NATSURL)
			if err != nil {
				logger.Warn("nats notifier disabled", "url", cfg.NATSURL, "error", err)
				continue
			}
			channels = append(channels, n)
			closers = append(closers, func() { _ = n.Close() })
		default:
			logger.Warn("unknown notifier", "name", name)
		}
	}

	if len(channels) == 0 {
		return notify.Noop{}, func() {}
	}

	async := notify.NewAsync(channels, notifyQueueSize)
	return async, func() {
		async.Close()
		for _, c := range closers {
			c()
		}
	}
}
