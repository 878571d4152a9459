package telegram

import (
	"context"

	"go.uber.org/zap"

	"github.com/ykvlv/birthday-bot/internal/domain"
)

// RefreshLive re-renders every registered live countdown message in
// place with freshly computed numbers. A failed edit (message deleted,
// rate limit) is logged and skipped so one broken message cannot stall
// the rest of the scan. The count reflects edit attempts, not confirmed
// successes; storage errors abort the scan and propagate.
func (r *Router) RefreshLive(ctx context.Context) (int, error) {
	msgs, err := r.repo.ListLiveMessages(ctx)
	if err != nil {
		return 0, err
	}

	now := r.localNow()
	for _, m := range msgs {
		if err := r.editLiveCountdown(m.ChatID, m.MessageID, m.BirthDate, now); err != nil {
			r.log.Debug("live edit failed",
				zap.Int64("chat_id", m.ChatID),
				zap.Int("message_id", m.MessageID),
				zap.Error(err),
			)
		}
	}
	return len(msgs), nil
}

// NotifyAll sends the daily message to every profile with a
// notification chat: congratulations on the birthday itself, the
// remaining-days count otherwise. Same isolation policy as RefreshLive.
func (r *Router) NotifyAll(ctx context.Context) (int, error) {
	profiles, err := r.repo.ListNotifiable(ctx)
	if err != nil {
		return 0, err
	}

	now := r.localNow()
	for _, p := range profiles {
		var text string
		if domain.IsToday(p.BirthDate, now) {
			text = birthdayText(p.Name)
		} else {
			text = dailyText(p.Name, domain.DaysUntil(p.BirthDate, now))
		}
		if err := r.send(*p.ChatID, text, nil); err != nil {
			r.log.Debug("notification send failed",
				zap.Int64("chat_id", *p.ChatID),
				zap.Error(err),
			)
		}
	}
	return len(profiles), nil
}
