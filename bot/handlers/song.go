package handlers

import (
	"context"
	"errors"
	"strings"

	"questbot/bot/backend"
	"questbot/bot/keyboards"
	"questbot/bot/render"
	tghelpers "questbot/core/telegram/helpers"
	"questbot/core/telegram/state"

	tele "gopkg.in/telebot.v4"
)

// AddSong handles the "add song" menu button. Checks the quota first and
// only then enters the waiting state.
func (h *Handlers) AddSong(c tele.Context) error {
	userID := c.Sender().ID
	ctx := tghelpers.BuildContext(c)

	reply, enter := h.songEntry(ctx, userID)
	if enter {
		h.fsm.SetState(userID, StateSongWaiting)
	}
	return tghelpers.SendHTML(c, reply)
}

// songEntry decides whether the user may start a song search. Returns the
// reply text and whether the waiting state should be entered.
func (h *Handlers) songEntry(ctx context.Context, userID int64) (string, bool) {
	list, err := h.api.Songs(ctx, userID)
	if err != nil {
		if errors.Is(err, backend.ErrUnavailable) {
			return render.ServiceUnavailable(), false
		}
		return render.RegisterFirst(), false
	}

	if list.Remaining <= 0 {
		return render.SongQuotaReached(list.Count, list.Max), false
	}
	return render.SongPrompt(list.Count, list.Max, list.Remaining), true
}

// SongInput is the FSM handler for the waiting state. Accepts a free-text
// query or an audio attachment whose tags supply the query.
func (h *Handlers) SongInput(c tele.Context) error {
	msg := c.Message()
	if msg == nil {
		return nil
	}
	userID := c.Sender().ID
	ctx := tghelpers.BuildContext(c)

	if msg.Audio != nil {
		query := audioQuery(msg.Audio)
		if query == "" {
			// State kept: the user is asked to retype the title.
			return tghelpers.SendHTML(c, render.AudioNoMetadata())
		}
		h.fsm.ClearState(userID)
		return h.searchAndReport(c, ctx, userID, query, render.SongSearchingQuery(query), true)
	}

	query := strings.TrimSpace(c.Text())
	if query == "" || strings.HasPrefix(query, "/") {
		// Commands are routed elsewhere; unknown slash input is ignored.
		return nil
	}
	if keyboards.IsMenuButton(query) {
		// A menu tap is not a song title; hand it back to the router.
		return state.ErrNotHandled
	}
	// Single-shot flow: leave the waiting state before the search runs.
	h.fsm.ClearState(userID)
	return h.searchAndReport(c, ctx, userID, query, render.SongSearching(), false)
}

// MySongs handles the playlist listing button. Stateless.
func (h *Handlers) MySongs(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	return tghelpers.SendHTML(c, h.songListReply(ctx, c.Sender().ID))
}

func (h *Handlers) songListReply(ctx context.Context, userID int64) string {
	list, err := h.api.Songs(ctx, userID)
	if err != nil {
		if errors.Is(err, backend.ErrUnavailable) {
			return render.ServiceUnavailable()
		}
		return render.RegisterFirst()
	}
	if list.Count == 0 {
		return render.SongListEmpty()
	}
	return render.SongListText(list)
}

// searchAndReport shows a placeholder, runs the search, and edits the
// placeholder in place with the outcome. Sends synchronously: the edit
// needs the placeholder's message id.
func (h *Handlers) searchAndReport(c tele.Context, ctx context.Context, userID int64, query, placeholder string, fromAudio bool) error {
	opts := &tele.SendOptions{ParseMode: tele.ModeHTML, DisableWebPagePreview: true}

	waitMsg, sendErr := c.Bot().Send(c.Recipient(), placeholder, opts)
	outcome := h.songOutcome(ctx, userID, query, fromAudio)
	if sendErr != nil || waitMsg == nil {
		return tghelpers.SendHTML(c, outcome)
	}
	_, err := c.Bot().Edit(waitMsg, outcome, opts)
	return err
}

// songOutcome maps the search-and-add result onto reply copy.
func (h *Handlers) songOutcome(ctx context.Context, userID int64, query string, fromAudio bool) string {
	added, err := h.api.AddSong(ctx, userID, query)
	switch {
	case err == nil:
		return render.SongAdded(added.Song, added.Remaining)
	case errors.Is(err, backend.ErrUnavailable):
		return render.ServiceUnavailable()
	case backend.IsCode(err, backend.CodeNotFound):
		if fromAudio {
			return render.SongNotFoundQuery(query)
		}
		return render.SongNotFound()
	case backend.IsCode(err, backend.CodeLimit):
		var apiErr *backend.APIError
		_ = errors.As(err, &apiErr)
		return render.SongLimit(apiErr.Message)
	case backend.IsCode(err, backend.CodeDuplicate):
		return render.SongDuplicate()
	default:
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			return render.GenericError(apiErr.Text())
		}
		return render.GenericError("")
	}
}

// audioQuery synthesizes a search query from audio tags as "performer - title".
func audioQuery(audio *tele.Audio) string {
	var parts []string
	if audio.Performer != "" {
		parts = append(parts, audio.Performer)
	}
	if audio.Title != "" {
		parts = append(parts, audio.Title)
	}
	return strings.Join(parts, " - ")
}
