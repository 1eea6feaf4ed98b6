package bot

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"homework_bot/internal/config"
	errs "homework_bot/internal/errors"
	"homework_bot/internal/logging"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Sender: то, что нужно от *tgbotapi.BotAPI.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier отправляет текст в один чат.
type TelegramNotifier struct {
	sender Sender
	chatID string
	log    zerolog.Logger
}

func NewTelegramNotifier(sender Sender, chatID string, log zerolog.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		sender: sender,
		chatID: chatID,
		log:    log.With().Str("component", "notifier").Logger(),
	}
}

// Notify отправляет текст и сообщает, доставлен ли он.
// Ошибки только логируются, наружу не уходят.
func (n *TelegramNotifier) Notify(ctx context.Context, text string) bool {
	if err := n.send(ctx, text); err != nil {
		n.log.Error().
			Err(err).
			Str("kind", string(errs.KindOf(err))).
			Msg("Ошибка, сообщение не отправлено")
		return false
	}

	n.log.Debug().Str("text", text).Msg("Сообщение отправлено")
	return true
}

func (n *TelegramNotifier) send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return errs.NewNotificationFailed(err)
	}

	if _, err := n.sender.Send(n.newMessage(text)); err != nil {
		return errs.NewNotificationFailed(err)
	}

	return nil
}

// Принимаем и числовой id чата, и @имя канала
func (n *TelegramNotifier) newMessage(text string) tgbotapi.MessageConfig {
	if id, err := strconv.ParseInt(n.chatID, 10, 64); err == nil {
		return tgbotapi.NewMessage(id, text)
	}
	return tgbotapi.NewMessageToChannel(n.chatID, text)
}

// NewTelegramAPI создаёт клиента Bot API. Таймаут HTTP из конфига
// действует и на sendMessage.
func NewTelegramAPI(cfg *config.Config, log zerolog.Logger) (*tgbotapi.BotAPI, error) {
	if err := tgbotapi.SetLogger(logging.NewBotLogger(log)); err != nil {
		return nil, fmt.Errorf("failed to set bot logger: %w", err)
	}

	client := &http.Client{Timeout: cfg.HTTPTimeout}
	api, err := tgbotapi.NewBotAPIWithClient(cfg.TelegramToken, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	api.Debug = cfg.Debug
	log.Info().Str("account", api.Self.UserName).Msg("Authorized on account")

	return api, nil
}
