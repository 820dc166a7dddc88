package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	claimspb "github.com/insurtech-labs/claims-adjudicator/gen/proto/claims/v1"
	"github.com/insurtech-labs/claims-adjudicator/internal/common"
	"github.com/insurtech-labs/claims-adjudicator/internal/export"
	"github.com/insurtech-labs/claims-adjudicator/internal/llm"
	"github.com/insurtech-labs/claims-adjudicator/internal/llm/azopenai"
	"github.com/insurtech-labs/claims-adjudicator/internal/ocr"
	processor "github.com/insurtech-labs/claims-adjudicator/internal/pipeline"
	repo "github.com/insurtech-labs/claims-adjudicator/internal/repository"
	svc "github.com/insurtech-labs/claims-adjudicator/internal/server"
	"github.com/insurtech-labs/claims-adjudicator/internal/storage"
)

func main() {
	// Structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	claimsRepo := repo.NewClaimRepository(entc, logger)
	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	evidenceRepo := repo.NewEvidenceRepository(entc, logger)

	store, err := storage.NewStore(cfg.Storage.UploadsDir)
	if err != nil {
		logger.Error("failed to initialize evidence store", "error", err)
		os.Exit(1)
	}

	analyzer := ocr.NewClient(ocr.Config{
		Endpoint: cfg.OCR.Endpoint,
		APIKey:   cfg.OCR.APIKey,
		Timeout:  cfg.OCR.Timeout,
	}, logger)

	chatClient := azopenai.NewClient(azopenai.Config{
		Endpoint:   cfg.LLM.Endpoint,
		APIKey:     cfg.LLM.APIKey,
		Deployment: cfg.LLM.Deployment,
		APIVersion: cfg.LLM.APIVersion,
		Timeout:    cfg.LLM.Timeout,
	}, logger)
	adjuster := llm.NewAdjuster(chatClient, logger)

	proc := processor.NewProcessor(logger, claimsRepo, invoicesRepo, evidenceRepo, analyzer, adjuster, store)
	exporter := export.NewService(claimsRepo, invoicesRepo, logger)

	claimsService := svc.NewClaimsServer(claimsRepo, invoicesRepo, proc, exporter, logger)
	claimspb.RegisterClaimsServiceServer(grpcServer, claimsService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("claims-adjudicator listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
