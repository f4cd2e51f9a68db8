package handlers

import (
	"strings"

	"questbot/core/logger"
	tghelpers "questbot/core/telegram/helpers"

	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// TextFallback forwards unmatched participant text to the backend so
// organizers see the chatter on their dashboard. Silent on success and on
// failure: the message is informational, not an action.
func (h *Handlers) TextFallback(c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	if text == "" {
		return nil
	}

	ctx := tghelpers.BuildContext(c)
	if err := h.api.Message(ctx, c.Sender().ID, text); err != nil {
		logger.Warn(ctx, "service.quest", "message.forward.fail",
			slog.Int64("user_id", c.Sender().ID),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
	}
	return nil
}
