package cmd

import (
	"context"
	"log"
	httpNet "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/norman8823/tariff-analyzer/internal/delivery/http"
	"github.com/norman8823/tariff-analyzer/internal/repository"
	"github.com/norman8823/tariff-analyzer/internal/service"
	"github.com/norman8823/tariff-analyzer/pkg/middleware"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the tariff-analyzer API server",
	Run:   Start,
}

func Start(cmd *cobra.Command, args []string) {

	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		log.Fatalf("Failed to create app dependency: %v", err)
	}

	repo, err := repository.NewRepository(appDep.cfg, appDep.db.DB, appDep.log)
	if err != nil {
		log.Fatalf("Failed to create repository: %v", err)
	}

	var notifier service.Notifier
	if appDep.telegramBot != nil {
		notifier = service.NewTelegramNotifier(appDep.cfg.Telegram, appDep.log, appDep.telegramBot)
	}

	services := service.NewService(
		appDep.cfg,
		appDep.log,
		repo,
		appDep.cache,
		appDep.newsCache,
		notifier,
	)

	authMW := middleware.NewAuthMiddleware(appDep.cfg.Auth)
	httpHandler := http.NewHttpAPIHandler(ctx, appDep.echo, appDep.validator, services, authMW)

	apiServer := NewHTTPServer(ctx, appDep, httpHandler)
	go func() {
		if err := apiServer.Start(); err != nil && err != httpNet.ErrServerClosed {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	scheduler := startNewsRefresher(ctx, appDep, services)

	// Wait for shutdown signal
	<-ctx.Done()
	log.Println("Shutting down gracefully...")

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	if err := apiServer.Stop(); err != nil {
		log.Fatalf("Failed to stop HTTP server: %v", err)
	}

	if err := appDep.Close(); err != nil {
		log.Fatalf("Failed to close app dependency: %v", err)
	}
}

// startNewsRefresher keeps the news cache slot warm on a cron schedule so
// browser reads rarely pay for a provider round trip. Disabled when no
// schedule is configured.
func startNewsRefresher(ctx context.Context, appDep *AppDependency, services *service.Service) *cron.Cron {
	schedule := appDep.cfg.News.RefreshSchedule
	if schedule == "" {
		return nil
	}

	scheduler := cron.New()
	_, err := scheduler.AddFunc(schedule, func() {
		if _, err := services.NewsService.Refresh(ctx); err != nil {
			appDep.log.Error("Scheduled news refresh failed", zap.Error(err))
		}
	})
	if err != nil {
		appDep.log.Error("Invalid news refresh schedule", zap.String("schedule", schedule), zap.Error(err))
		return nil
	}

	scheduler.Start()
	appDep.log.Info("Started news refresh scheduler", zap.String("schedule", schedule))
	return scheduler
}
