package handlers

import (
	"errors"

	"questbot/bot/backend"
	"questbot/bot/keyboards"
	"questbot/bot/render"
	tghelpers "questbot/core/telegram/helpers"
	"questbot/core/telegram/state"

	tele "gopkg.in/telebot.v4"
)

// Start handles /start: an idempotent register-or-fetch against the backend.
// Any prior conversation state is dropped, so /start doubles as a reset.
func (h *Handlers) Start(c tele.Context) error {
	user := c.Sender()
	ctx := tghelpers.BuildContext(c)

	created, err := h.api.Register(ctx, user.ID, user.Username, user.FirstName)
	h.fsm.Clear(user.ID)
	if err != nil {
		if errors.Is(err, backend.ErrUnavailable) {
			return tghelpers.SendHTML(c, render.ServiceUnavailable())
		}
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			return tghelpers.SendHTML(c, render.GenericError(apiErr.Text()))
		}
		return err
	}

	text := render.WelcomeBack(user.FirstName)
	if created {
		text = render.Welcome(user.FirstName)
	}
	return tghelpers.SendHTML(c, text, keyboards.Main())
}

// Cancel aborts whatever flow is in progress.
func (h *Handlers) Cancel(c tele.Context) error {
	userID := c.Sender().ID
	current := h.fsm.GetState(userID)
	h.fsm.Clear(userID)

	switch current {
	case StateSongWaiting:
		return tghelpers.SendText(c, render.SongCancelled())
	case state.StateIdle:
		return tghelpers.SendText(c, render.NothingToCancel())
	default:
		return tghelpers.SendText(c, render.Cancelled())
	}
}
