package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	billingapp "github.com/dwikikusuma/vendor-dashboard/internal/billing/app"
	invoicexlsx "github.com/dwikikusuma/vendor-dashboard/internal/billing/infra/xlsx"

	calcapp "github.com/dwikikusuma/vendor-dashboard/internal/calculator/app"

	cartapp "github.com/dwikikusuma/vendor-dashboard/internal/cart/app"

	catalogapp "github.com/dwikikusuma/vendor-dashboard/internal/catalog/app"
	catalogmem "github.com/dwikikusuma/vendor-dashboard/internal/catalog/infra/memory"

	checkoutapp "github.com/dwikikusuma/vendor-dashboard/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/vendor-dashboard/internal/checkout/infra/adapter"

	orderapp "github.com/dwikikusuma/vendor-dashboard/internal/order/app"
	ordermem "github.com/dwikikusuma/vendor-dashboard/internal/order/infra/memory"

	returnsapp "github.com/dwikikusuma/vendor-dashboard/internal/returns/app"
	returnsmem "github.com/dwikikusuma/vendor-dashboard/internal/returns/infra/memory"

	"github.com/dwikikusuma/vendor-dashboard/internal/httpapi"
	"github.com/dwikikusuma/vendor-dashboard/internal/i18n"
	"github.com/dwikikusuma/vendor-dashboard/internal/session"
	supportapp "github.com/dwikikusuma/vendor-dashboard/internal/support/app"

	"github.com/dwikikusuma/vendor-dashboard/pkg/config"
	"github.com/dwikikusuma/vendor-dashboard/pkg/logger"
	"github.com/dwikikusuma/vendor-dashboard/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "dashboard", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	if err := cfg.Validate(); err != nil {
		log.Error("config rejected", slog.Any("err", err))
		os.Exit(1)
	}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	node, err := snowflake.NewNode(cfg.NodeID)
	if err != nil {
		log.Error("snowflake node failed", slog.Any("err", err), slog.Int64("node_id", cfg.NodeID))
		os.Exit(1)
	}

	// Catalog
	catalogSvc := catalogapp.NewService(catalogmem.NewProductRepo(catalogmem.SampleProducts()))

	// Orders, returns
	orderSvc := orderapp.NewService(ordermem.NewOrderRepo(ordermem.SampleOrders()))
	returnsSvc := returnsapp.NewService(returnsmem.NewReturnRepo(returnsmem.SampleReturns()), orderSvc)

	// Checkout (adapters)
	catalogReader := checkoutadapter.NewCatalogServiceReader(catalogSvc)
	orderWriter := checkoutadapter.NewOrderServiceWriter(orderSvc)
	checkoutSvc := checkoutapp.NewService(catalogReader, orderWriter, cfg.CheckoutWorkers)

	lang, ok := i18n.ParseLanguage(cfg.DefaultLanguage)
	if !ok {
		log.Warn("unknown default language, using English", slog.String("language", cfg.DefaultLanguage))
		lang = i18n.English
	}

	sessions := session.NewStore(session.Options{TTL: cfg.SessionTTL, HistoryLimit: cfg.HistoryLimit, IDs: node})

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpapi.NewRouter(httpapi.Services{
		Catalog:    catalogSvc,
		Cart:       cartapp.NewService(catalogSvc),
		Checkout:   checkoutSvc,
		Orders:     orderSvc,
		Returns:    returnsSvc,
		Billing:    billingapp.NewService(invoicexlsx.NewInvoiceWriter(cfg.VendorName, "INR"), node),
		Calculator: calcapp.NewService(),
		Support:    supportapp.NewService(),
	}, httpapi.Options{
		Sessions:           sessions,
		Tokens:             session.NewTokens(cfg.JWTSecret, cfg.SessionTTL),
		DefaultLanguage:    lang,
		CORSOrigins:        cfg.CORSOrigins,
		Logger:             log,
		InvoiceContentType: invoicexlsx.ContentType,
	})

	httpAddr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              httpAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	grpcAddr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Error("listen failed", slog.Any("err", err), slog.String("addr", grpcAddr))
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	if cfg.AppEnv == "dev" {
		reflection.Register(grpcServer)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", httpAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		log.Info("grpc starting", slog.String("addr", grpcAddr))
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		sessions.RunSweeper(gctx, cfg.SessionSweepInterval)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")
		healthSrv.Shutdown()

		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()

		if err := server.Shutdown(stopCtx); err != nil {
			log.Error("http shutdown error", slog.Any("err", err))
		}

		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()

		select {
		case <-stopCtx.Done():
			log.Warn("graceful stop timeout, forcing stop")
			grpcServer.Stop()
		case <-stopped:
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("dashboard stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}
