package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ykvlv/birthday-bot/internal/domain"
)

// --- Generic helpers ---

func (r *Router) send(chatID int64, text string, kb *tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if kb != nil {
		msg.ReplyMarkup = *kb
	}
	_, err := r.bot.Send(msg)
	return err
}

func (r *Router) edit(chatID int64, messageID int, text string, kb *tgbotapi.InlineKeyboardMarkup) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.ReplyMarkup = kb
	_, err := r.bot.Send(edit)
	return err
}

// ack answers a callback query, optionally with a toast. Failures are
// logged and dropped: a stuck spinner must never fail the update.
func (r *Router) ack(cbID, toast string) {
	if _, err := r.bot.Request(tgbotapi.NewCallback(cbID, toast)); err != nil {
		r.log.Debug("answer callback failed", zap.Error(err))
	}
}

func (r *Router) sendMainMenu(chatID int64, p *domain.Profile) error {
	days := domain.DaysUntil(p.BirthDate, r.localNow())
	kb := mainMenuKeyboard()
	return r.send(chatID, mainMenuText(p.Name, days), &kb)
}

// --- Text messages ---

func (r *Router) handleStart(ctx context.Context, chatID, userID int64) error {
	p, err := r.repo.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if p.State() == domain.StateEmpty {
		return r.send(chatID, startText, nil)
	}
	return r.sendMainMenu(chatID, p)
}

// handleDate parses a DD.MM.YYYY submission. On success the profile is
// overwritten with the date and an empty name, which puts the user into
// the naming step. A parse failure re-prompts and mutates nothing.
func (r *Router) handleDate(ctx context.Context, chatID, userID int64, text string) error {
	birth, err := domain.ParseBirthDate(text)
	if err != nil {
		r.log.Debug("birth date rejected", zap.Int64("user_id", userID), zap.Error(err))
		return r.send(chatID, dateErrorText, nil)
	}

	if err := r.repo.UpsertProfile(ctx, &domain.Profile{UserID: userID, BirthDate: birth}); err != nil {
		return err
	}
	return r.send(chatID, namePromptText(birth), nil)
}

// handleName treats free-form text as the display name, but only while
// the user is in the naming step. Any other free-form text is ignored.
func (r *Router) handleName(ctx context.Context, chatID, userID int64, text string) error {
	p, err := r.repo.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if p.State() != domain.StateDateOnly || text == "" {
		return nil
	}

	p.Name = text
	p.ChatID = &chatID
	if err := r.repo.UpsertProfile(ctx, p); err != nil {
		return err
	}

	kb := confirmKeyboard()
	return r.send(chatID, confirmText(p.Name, p.BirthDate), &kb)
}

// --- Callback queries ---

func (r *Router) callbackConfirm(_ context.Context, cbID string, chatID int64, p *domain.Profile) error {
	r.ack(cbID, "")
	if p.State() == domain.StateEmpty {
		return nil
	}
	return r.sendMainMenu(chatID, p)
}

// callbackRealtime registers the pressed message as the user's live
// countdown and switches it to the ticking view in place.
func (r *Router) callbackRealtime(ctx context.Context, cbID string, chatID int64, messageID int, userID int64, p *domain.Profile) error {
	if p.State() != domain.StateEmpty {
		live := &domain.LiveMessage{UserID: userID, ChatID: chatID, MessageID: messageID}
		if err := r.repo.UpsertLiveMessage(ctx, live); err != nil {
			return err
		}
		if err := r.editLiveCountdown(chatID, messageID, p.BirthDate, r.localNow()); err != nil {
			return err
		}
	}
	r.ack(cbID, "")
	return nil
}

func (r *Router) callbackStop(ctx context.Context, cbID string, chatID, userID int64, p *domain.Profile) error {
	if err := r.repo.DeleteLiveMessage(ctx, userID); err != nil {
		return err
	}
	if p.State() != domain.StateEmpty {
		if err := r.sendMainMenu(chatID, p); err != nil {
			return err
		}
	}
	r.ack(cbID, toastStopped)
	return nil
}

func (r *Router) callbackSimple(_ context.Context, cbID string, chatID int64, messageID int, p *domain.Profile) error {
	if p.State() != domain.StateEmpty {
		now := r.localNow()
		days := domain.DaysUntil(p.BirthDate, now)
		next := domain.NextOccurrence(p.BirthDate, now)
		kb := backKeyboard()
		if err := r.edit(chatID, messageID, simpleCountdownText(days, next), &kb); err != nil {
			return err
		}
	}
	r.ack(cbID, "")
	return nil
}

// callbackReset wipes the profile; the live registration cascades away
// in the store. The pressed message becomes the onboarding prompt.
func (r *Router) callbackReset(ctx context.Context, cbID string, chatID int64, messageID int, userID int64) error {
	if err := r.repo.DeleteProfile(ctx, userID); err != nil {
		return err
	}
	if err := r.edit(chatID, messageID, resetText, nil); err != nil {
		return err
	}
	r.ack(cbID, toastCleared)
	return nil
}

func (r *Router) callbackBack(_ context.Context, cbID string, chatID int64, p *domain.Profile) error {
	r.ack(cbID, "")
	if p.State() == domain.StateEmpty {
		return nil
	}
	return r.sendMainMenu(chatID, p)
}

// editLiveCountdown renders the ticking view into an existing message.
func (r *Router) editLiveCountdown(chatID int64, messageID int, birth time.Time, now time.Time) error {
	kb := stopKeyboard()
	return r.edit(chatID, messageID, liveCountdownText(domain.TimeUntil(birth, now)), &kb)
}
