package cmd

import (
	"context"
	"time"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gopkg.in/telebot.v3"

	"github.com/norman8823/tariff-analyzer/config"
	"github.com/norman8823/tariff-analyzer/internal/newscache"
	"github.com/norman8823/tariff-analyzer/pkg/cache"
	"github.com/norman8823/tariff-analyzer/pkg/logger"
	"github.com/norman8823/tariff-analyzer/pkg/postgres"
)

type AppDependency struct {
	db          *postgres.DB
	cfg         *config.Config
	log         *logger.Logger
	validator   *goValidator.Validate
	echo        *echo.Echo
	cache       cache.Cache
	newsCache   *newscache.FileCache
	telegramBot *telebot.Bot
}

func NewAppDependency(ctx context.Context) (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	db, err := postgres.NewDB(cfg.DB, log)
	if err != nil {
		log.Error("Failed to connect to database", zap.Error(err))
		return nil, err
	}

	// The notification channel is optional; without a token the service
	// simply never pushes headlines.
	var bot *telebot.Bot
	if cfg.Telegram.BotToken != "" {
		bot, err = telebot.NewBot(telebot.Settings{
			Token:  cfg.Telegram.BotToken,
			Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
			OnError: func(err error, c telebot.Context) {
				log.Error("Telegram bot error", zap.Error(err))
			},
		})
		if err != nil {
			log.Error("Failed to create telegram bot", zap.Error(err))
			return nil, err
		}
	}

	return &AppDependency{
		cfg:         cfg,
		log:         log,
		validator:   goValidator.New(),
		db:          db,
		echo:        echo.New(),
		cache:       cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval),
		newsCache:   newscache.New(cfg.News.CachePath),
		telegramBot: bot,
	}, nil
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
