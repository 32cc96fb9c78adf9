package notification

import (
	"context"
	"fmt"

	"github.com/coworkly/SpaceBooker/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02.01.2006 15:04"

// TelegramNotifier posts reservation lifecycle messages to an operations
// chat. Users are owned by an external directory and carry no chat id, so
// notifications go to a single configured channel.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, d *domain.ReservationDetails) {
	text := fmt.Sprintf(
		"*New reservation*\n\nSpace: %s\nUser: %s\n%s — %s (UTC)",
		d.SpaceName, d.UserName,
		d.Reservation.StartTime.Format(timeLayout),
		d.Reservation.EndTime.Format(timeLayout),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, d *domain.ReservationDetails) {
	text := fmt.Sprintf(
		"*Reservation cancelled*\n\nSpace: %s\nUser: %s\n%s — %s (UTC)",
		d.SpaceName, d.UserName,
		d.Reservation.StartTime.Format(timeLayout),
		d.Reservation.EndTime.Format(timeLayout),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReservationUpcoming(ctx context.Context, d *domain.ReservationDetails) {
	text := fmt.Sprintf(
		"*Upcoming reservation*\n\nSpace: %s\nUser: %s\nStarts at %s (UTC)",
		d.SpaceName, d.UserName,
		d.Reservation.StartTime.Format(timeLayout),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
