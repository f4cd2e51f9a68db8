package handlers

import (
	"errors"
	"strings"

	"questbot/bot/backend"
	"questbot/bot/render"
	tghelpers "questbot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// Photo forwards a photo report to the backend. Active in any state.
// Telebot already exposes the largest size variant.
func (h *Handlers) Photo(c tele.Context) error {
	msg := c.Message()
	if msg == nil || msg.Photo == nil {
		return nil
	}

	ctx := tghelpers.BuildContext(c)
	err := h.api.SubmitPhoto(ctx, c.Sender().ID, msg.Photo.FileID)
	return tghelpers.SendText(c, photoReply(err))
}

func photoReply(err error) string {
	switch {
	case err == nil:
		return render.PhotoAccepted()
	case backend.IsNotOnTeam(err):
		return render.PhotoNotOnTeam()
	case errors.Is(err, backend.ErrUnavailable):
		return render.ServiceUnavailable()
	default:
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			return render.GenericError(apiErr.Text())
		}
		return render.GenericError("")
	}
}

// PhotoHint answers the "send photo" menu button.
func (h *Handlers) PhotoHint(c tele.Context) error {
	return tghelpers.SendText(c, render.PhotoButtonHint())
}

// Document catches images sent as files, which Telegram does not expose as
// photos and the backend cannot grade.
func (h *Handlers) Document(c tele.Context) error {
	msg := c.Message()
	if msg == nil || msg.Document == nil {
		return nil
	}
	if strings.HasPrefix(msg.Document.MIME, "image/") {
		return tghelpers.SendText(c, render.PhotoAsDocumentHint())
	}
	return nil
}
