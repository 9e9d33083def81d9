package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/SitterMatch/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyNewOffer(ctx context.Context, b *domain.BabysitterProfile, r *domain.Request) {
	text := fmt.Sprintf(
		"*Новый запрос на присмотр!*\n\n"+"Район: %s\n"+"Время (UTC): %s – %s\n"+"Дети: %d\n\n"+"Ответьте в приложении или дождитесь звонка.",
		r.Area, r.Start.Format(dateLayout), r.End.Format(dateLayout), len(r.ChildrenAges),
	)
	n.send(ctx, b.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyGuardianApproval(ctx context.Context, b *domain.BabysitterProfile, r *domain.Request) {
	text := fmt.Sprintf(
		"*Нужно ваше согласие*\n\n"+"%s готов(а) взять запрос на присмотр.\n"+"Район: %s\n"+"Время (UTC): %s – %s",
		b.FullName, r.Area, r.Start.Format(dateLayout), r.End.Format(dateLayout),
	)
	n.send(ctx, b.GuardianTelegramChatID, text)
}

func (n *TelegramNotifier) NotifyCandidateResponse(
	ctx context.Context,
	p *domain.ParentProfile,
	b *domain.BabysitterProfile,
	r *domain.Request,
	response domain.CandidateResponse,
) {
	var verdict string
	switch response {
	case domain.ResponseInterested, domain.ResponseGuardianApproved:
		verdict = "готов(а) выйти, можно выбирать"
	case domain.ResponseGuardianPending:
		verdict = "согласен(на), ждём подтверждения опекуна"
	default:
		verdict = "не сможет выйти"
	}

	text := fmt.Sprintf(
		"*Ответ на ваш запрос*\n\n"+"%s %s.\n"+"Время (UTC): %s",
		b.FullName, verdict, r.Start.Format(dateLayout),
	)
	n.send(ctx, p.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyRequestCancelled(ctx context.Context, p *domain.ParentProfile, r *domain.Request) {
	text := fmt.Sprintf(
		"*Запрос закрыт*\n\n"+"Район: %s\n"+"Время (UTC): %s",
		r.Area, r.Start.Format(dateLayout),
	)
	n.send(ctx, p.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBooking(ctx context.Context, chatID *int64, e domain.Event, r *domain.Request) {
	var title string
	switch e.Type {
	case domain.EventBookingConfirmed:
		title = "Бронирование подтверждено!"
	case domain.EventBookingStarted:
		title = "Присмотр начался"
	case domain.EventBookingCompleted:
		title = "Присмотр завершён"
	case domain.EventBookingCancelled:
		title = "Бронирование отменено"
	default:
		return
	}

	text := fmt.Sprintf("*%s*\n\n"+"Время (UTC): %s – %s",
		title, r.Start.Format(dateLayout), r.End.Format(dateLayout),
	)
	if e.Reason != "" {
		text += "\nПричина: " + e.Reason
	}
	n.send(ctx, chatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
