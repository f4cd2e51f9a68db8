package handlers

import (
	"questbot/bot/render"
	"questbot/core/logger"
	tghelpers "questbot/core/telegram/helpers"

	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Location handles the initial location share. Only this first, non-edited
// message gets a visible acknowledgment; live ticks stay silent.
func (h *Handlers) Location(c tele.Context) error {
	msg := c.Message()
	if msg == nil || msg.Location == nil {
		return nil
	}

	ctx := tghelpers.BuildContext(c)
	ok, err := h.api.SubmitLocation(ctx, c.Sender().ID, float64(msg.Location.Lat), float64(msg.Location.Lng))
	if err != nil {
		logger.Warn(ctx, "service.quest", "location.submit.fail",
			slog.Int64("user_id", c.Sender().ID),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return nil
	}
	if ok {
		return tghelpers.SendText(c, render.LocationAccepted())
	}
	return nil
}

// LiveLocation handles edited messages carrying a location, i.e. the
// periodic ticks of a live-location share. Forwarded silently.
func (h *Handlers) LiveLocation(c tele.Context) error {
	msg := c.Message()
	if msg == nil || msg.Location == nil {
		return nil
	}

	ctx := tghelpers.BuildContext(c)
	if _, err := h.api.SubmitLocation(ctx, c.Sender().ID, float64(msg.Location.Lat), float64(msg.Location.Lng)); err != nil {
		logger.Warn(ctx, "service.quest", "location.live.fail",
			slog.Int64("user_id", c.Sender().ID),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
	}
	return nil
}
