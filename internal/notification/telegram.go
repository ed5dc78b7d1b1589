package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nvrd0/SlotBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes booking activity to the administrator chat.
// With an empty token the notifier is a no-op.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, adminChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, adminChatID: adminChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, adminChatID: adminChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking, slot *domain.Slot) {
	text := fmt.Sprintf(
		"*Nouveau rendez-vous*\n\nClient : %s %s\nCréneau : %s",
		b.FirstName, b.LastName, slotWindow(slot),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, slot *domain.Slot) {
	text := fmt.Sprintf(
		"*Rendez-vous annulé*\n\nClient : %s %s\nCréneau : %s",
		b.FirstName, b.LastName, slotWindow(slot),
	)
	n.send(ctx, text)
}

func slotWindow(slot *domain.Slot) string {
	if slot == nil {
		return "créneau supprimé"
	}
	start := slot.StartsAt.Local()
	return fmt.Sprintf("%s %s - %s",
		start.Format("02.01.2006"),
		start.Format("15:04"),
		slot.EndsAt.Local().Format("15:04"),
	)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil || n.adminChatID == 0 {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.adminChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.adminChatID),
			logger.String("error", err.Error()),
		)
	}
}
