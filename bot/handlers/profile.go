package handlers

import (
	"context"
	"errors"

	"questbot/bot/backend"
	"questbot/bot/render"
	tghelpers "questbot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// Profile handles the profile menu button.
func (h *Handlers) Profile(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	return tghelpers.SendHTML(c, h.profileReply(ctx, c.Sender().ID))
}

func (h *Handlers) profileReply(ctx context.Context, userID int64) string {
	profile, err := h.api.Profile(ctx, userID)
	if err != nil {
		if errors.Is(err, backend.ErrUnavailable) {
			return render.ServiceUnavailable()
		}
		return render.ProfileError()
	}
	return render.ProfileText(profile)
}

// Leaderboard handles the top players menu button.
func (h *Handlers) Leaderboard(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	return tghelpers.SendHTML(c, h.leaderboardReply(ctx))
}

func (h *Handlers) leaderboardReply(ctx context.Context) string {
	entries, err := h.api.Leaderboard(ctx)
	if err != nil {
		if errors.Is(err, backend.ErrUnavailable) {
			return render.ServiceUnavailable()
		}
		return render.LeaderboardError()
	}
	if len(entries) == 0 {
		return render.LeaderboardEmpty()
	}
	return render.LeaderboardText(entries)
}
