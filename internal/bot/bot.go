package bot

import (
	"context"
	"errors"
	"time"

	"homework_bot/internal/config"
	errs "homework_bot/internal/errors"
	"homework_bot/internal/homework"
	"homework_bot/internal/practicum"

	"github.com/rs/zerolog"
)

const errorPrefix = "Сбой в работе программы: "

// Fetcher отдаёт сырой ответ API со статусами начиная с курсора.
type Fetcher interface {
	GetAPIAnswer(ctx context.Context, fromDate int64) (any, error)
}

// Notifier доставляет сообщение в чат и сообщает, удалось ли.
type Notifier interface {
	Notify(ctx context.Context, text string) bool
}

type Bot struct {
	config   *config.Config
	fetcher  Fetcher
	notifier Notifier
	log      zerolog.Logger
	state    *loopState

	sleep func(ctx context.Context, d time.Duration) error
}

func New(cfg *config.Config, fetcher Fetcher, notifier Notifier, log zerolog.Logger) *Bot {
	return &Bot{
		config:   cfg,
		fetcher:  fetcher,
		notifier: notifier,
		log:      log.With().Str("component", "poller").Logger(),
		state:    newLoopState(),
		sleep:    sleepContext,
	}
}

// Run опрашивает API, пока не отменён ctx. После каждого цикла, удачного
// или нет, ждём ровно RetryPeriod.
func (b *Bot) Run(ctx context.Context) error {
	b.state.phase = phasePolling
	b.log.Info().
		Stringer("phase", b.state.phase).
		Dur("retry_period", b.config.RetryPeriod).
		Str("endpoint", b.config.Endpoint).
		Msg("Бот запущен")

	for {
		b.Cycle(ctx)

		if err := b.sleep(ctx, b.config.RetryPeriod); err != nil {
			b.log.Info().Msg("Бот остановлен")
			return nil
		}
	}
}

// Cycle: запрос, проверка ответа, разбор статуса, отправка.
func (b *Bot) Cycle(ctx context.Context) {
	answer, message, err := b.check(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		b.handleError(ctx, err)
		return
	}

	switch {
	case message == "":
	case message == b.state.lastMessage:
		b.log.Debug().Msg("Статус проверки не изменился")
	case b.notifier.Notify(ctx, message):
		b.state.lastMessage = message
	default:
		// Не доставили: курсор не двигаем, статус придёт ещё раз
		return
	}

	b.state.cursor = answer.CurrentDate
}

// Смотрим только первую работу: API отдаёт самую свежую первой.
func (b *Bot) check(ctx context.Context) (*practicum.Answer, string, error) {
	body, err := b.fetcher.GetAPIAnswer(ctx, b.state.cursor)
	if err != nil {
		return nil, "", err
	}

	answer, err := practicum.CheckResponse(body)
	if err != nil {
		return nil, "", err
	}

	if len(answer.Homeworks) == 0 {
		b.log.Info().Int64("from_date", b.state.cursor).Msg("Нет новых статусов")
		return answer, "", nil
	}

	message, err := homework.ParseStatus(answer.Homeworks[0])
	if err != nil {
		return nil, "", err
	}

	return answer, message, nil
}

func (b *Bot) handleError(ctx context.Context, err error) {
	kind := errs.KindOf(err)
	event := b.log.Error().Err(err).Str("kind", string(kind))

	switch kind {
	case errs.KindUnexpectedStatus:
		var appErr *errs.Error
		if errors.As(err, &appErr) {
			event = event.Int("status_code", appErr.StatusCode)
		}
	case errs.KindAPIUnavailable:
		event = event.Int64("from_date", b.state.cursor)
	case errs.KindMalformedResponse, errs.KindMissingField, errs.KindUnknownStatus:
	default:
		event = event.Bool("unexpected", true)
	}
	event.Msg("Сбой в работе программы")

	message := errorPrefix + err.Error()
	if message == b.state.lastError {
		return
	}
	if b.notifier.Notify(ctx, message) {
		b.state.lastError = message
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
