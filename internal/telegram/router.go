package telegram

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ykvlv/birthday-bot/internal/domain"
	"github.com/ykvlv/birthday-bot/internal/store"
)

// Callback actions carried in inline-keyboard button data.
const (
	actionConfirm  = "confirm"
	actionRealtime = "realtime"
	actionStop     = "stop_realtime"
	actionSimple   = "simple"
	actionReset    = "reset"
	actionBack     = "back"
)

// api is the slice of tgbotapi.BotAPI the router uses; tests substitute
// a recording fake.
type api interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Router maps Telegram updates onto the birthday-countdown conversation.
// It keeps no in-memory conversation state: the next step is derived
// from what the store holds for the user issuing the event.
type Router struct {
	bot  api
	log  *zap.Logger
	repo store.Repo
	loc  *time.Location
	now  func() time.Time
}

// NewRouter creates a router over the live bot API.
func NewRouter(bot *tgbotapi.BotAPI, log *zap.Logger, repo store.Repo, loc *time.Location) *Router {
	return &Router{bot: bot, log: log, repo: repo, loc: loc, now: time.Now}
}

// HandleUpdate routes a single update. Errors from direct replies and
// from storage propagate to the caller; callback acknowledgments never
// fail the update.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) error {
	switch {
	case upd.Message != nil:
		return r.handleMessage(ctx, upd.Message)
	case upd.CallbackQuery != nil:
		return r.handleCallback(ctx, upd.CallbackQuery)
	}
	return nil
}

func (r *Router) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}
	text := strings.TrimSpace(msg.Text)

	switch {
	case strings.HasPrefix(text, "/start"):
		return r.handleStart(ctx, msg.Chat.ID, msg.From.ID)
	case domain.LooksLikeDate(text):
		return r.handleDate(ctx, msg.Chat.ID, msg.From.ID, text)
	default:
		return r.handleName(ctx, msg.Chat.ID, msg.From.ID, text)
	}
}

func (r *Router) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb.Message == nil {
		return nil
	}
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID
	userID := cb.From.ID

	p, err := r.repo.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	switch cb.Data {
	case actionConfirm:
		return r.callbackConfirm(ctx, cb.ID, chatID, p)
	case actionRealtime:
		return r.callbackRealtime(ctx, cb.ID, chatID, messageID, userID, p)
	case actionStop:
		return r.callbackStop(ctx, cb.ID, chatID, userID, p)
	case actionSimple:
		return r.callbackSimple(ctx, cb.ID, chatID, messageID, p)
	case actionReset:
		return r.callbackReset(ctx, cb.ID, chatID, messageID, userID)
	case actionBack:
		return r.callbackBack(ctx, cb.ID, chatID, p)
	default:
		// Unknown callback data — ignore silently.
		return nil
	}
}

// localNow is "now" in the bot's timezone; countdowns tick against it.
func (r *Router) localNow() time.Time {
	return r.now().In(r.loc)
}
