package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/massage-bot/internal/flow"
)

// Bot adapts Telegram updates to the flow engine and renders replies as
// reply keyboards. Also implements scheduler.Notifier for reminder
// delivery.
type Bot struct {
	api    *tgbotapi.BotAPI
	engine *flow.Engine
	log    *zap.Logger
}

func New(token string, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{api: api, log: log}, nil
}

// SetEngine binds the flow engine. Separate from New because the reminder
// scheduler needs the bot as its notifier before the engine exists.
func (b *Bot) SetEngine(e *flow.Engine) {
	b.engine = e
}

func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// Notify implements scheduler.Notifier.
func (b *Bot) Notify(chatID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(url string) error {
	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return err
	}
	_, err = b.api.Request(wh)
	return err
}

// Run polls Telegram for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)
	b.log.Info("bot polling started", zap.String("username", b.Username()))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate processes a single update. Failures are request-scoped:
// logged and dropped, the loop keeps running.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	in := flow.Incoming{
		UserID: msg.From.ID,
		ChatID: msg.Chat.ID,
		Name:   fullName(msg.From),
		Text:   msg.Text,
	}
	if msg.IsCommand() {
		in.Command = msg.Command()
		in.Args = strings.Fields(msg.CommandArguments())
		in.Text = ""
	}

	replies, err := b.engine.Handle(ctx, in)
	if err != nil {
		b.log.Error("update handling failed",
			zap.Int64("user_id", in.UserID),
			zap.Error(err),
		)
		return
	}

	for _, r := range replies {
		out := tgbotapi.NewMessage(in.ChatID, r.Text)
		if len(r.Keyboard) > 0 {
			out.ReplyMarkup = keyboard(r.Keyboard)
		}
		if _, err := b.api.Send(out); err != nil {
			b.log.Warn("send failed", zap.Int64("chat_id", in.ChatID), zap.Error(err))
		}
	}
}

func keyboard(rows [][]string) tgbotapi.ReplyKeyboardMarkup {
	var kb [][]tgbotapi.KeyboardButton
	for _, row := range rows {
		var buttons []tgbotapi.KeyboardButton
		for _, label := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
		}
		kb = append(kb, buttons)
	}
	return tgbotapi.NewReplyKeyboard(kb...)
}

func fullName(u *tgbotapi.User) string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
