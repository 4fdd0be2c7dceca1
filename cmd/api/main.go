package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"cardaris-portal/internal/config"
	"cardaris-portal/internal/httpserver"
	"cardaris-portal/internal/logger"
	addresssvc "cardaris-portal/internal/service/address"
	ordersvc "cardaris-portal/internal/service/order"
	profilesvc "cardaris-portal/internal/service/profile"
	ticketsvc "cardaris-portal/internal/service/ticket"
	"cardaris-portal/internal/shopify"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	log.Info("configuration loaded",
		zap.String("store_domain", cfg.StoreDomain),
		zap.Bool("access_token_present", cfg.AccessToken != ""),
		zap.Bool("test_customer_configured", cfg.TestCustomerID != ""),
		zap.String("http_addr", cfg.HTTPAddr),
	)
	if !cfg.ShopifyConfigured() {
		log.Warn("shopify domain or token missing; upstream routes will fail until configured")
	}

	client := shopify.New(shopify.Config{
		StoreDomain: cfg.StoreDomain,
		AccessToken: cfg.AccessToken,
		Timeout:     cfg.UpstreamTimeout,
	})

	srv := httpserver.New(cfg.HTTPAddr, log, httpserver.Deps{
		ProfileSvc:        profilesvc.New(client, log, cfg.LogPII),
		OrderSvc:          ordersvc.New(client, log),
		AddressSvc:        addresssvc.New(client, log),
		TicketSvc:         ticketsvc.New(log),
		TestCustomerID:    cfg.TestCustomerID,
		ShopifyConfigured: client.Configured(),
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	} else {
		log.Info("server stopped")
	}
}
