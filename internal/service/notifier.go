package service

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/telebot.v3"

	"github.com/norman8823/tariff-analyzer/config"
	"github.com/norman8823/tariff-analyzer/internal/dto"
	"github.com/norman8823/tariff-analyzer/pkg/logger"
)

// Notifier pushes newly cached articles to an out-of-band channel.
type Notifier interface {
	NotifyArticles(ctx context.Context, articles []dto.Article) error
}

const maxNotifiedArticles = 10

// telegramNotifier posts new tariff headlines to a configured Telegram chat.
type telegramNotifier struct {
	bot    *telebot.Bot
	chatID int64
	log    *logger.Logger
}

func NewTelegramNotifier(cfg config.TelegramConfig, log *logger.Logger, bot *telebot.Bot) Notifier {
	return &telegramNotifier{
		bot:    bot,
		chatID: cfg.ChatID,
		log:    log,
	}
}

func (n *telegramNotifier) NotifyArticles(ctx context.Context, articles []dto.Article) error {
	if len(articles) > maxNotifiedArticles {
		articles = articles[:maxNotifiedArticles]
	}

	var sb strings.Builder
	sb.WriteString("Fresh tariff news:\n")
	for _, a := range articles {
		sb.WriteString(fmt.Sprintf("\n- %s\n  %s\n", a.Title, a.URL))
	}

	_, err := n.bot.Send(telebot.ChatID(n.chatID), sb.String(), telebot.NoPreview)
	if err != nil {
		return fmt.Errorf("failed to send telegram notification: %w", err)
	}

	n.log.InfoContext(ctx, "sent article notification", logger.IntField("articles", len(articles)))
	return nil
}
