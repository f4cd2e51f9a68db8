package router

import (
	"errors"
	"strings"
	"time"

	tg "questbot/core/telegram"
	tghelpers "questbot/core/telegram/helpers"
	"questbot/core/telegram/middleware"
	"questbot/core/telegram/state"

	tele "gopkg.in/telebot.v4"
)

// FSM defines the minimal interface for an FSM manager.
type FSM interface {
	InProgress(userID int64) bool
	ManagerHandler(c tele.Context) error
}

// TextOptions controls fallback behaviour for text/document updates.
type TextOptions struct {
	UnknownText     tele.HandlerFunc
	UnknownDocument tele.HandlerFunc
}

// TextRoutes builds handlers for text and document routing.
//
// Priority for plain text: slash commands, then an in-progress FSM dialog,
// then menu button labels, then the registered text fallback. Commands go
// first so /start and /cancel keep working while a dialog waits for input.
// A dialog state whose handler is missing or returns state.ErrNotHandled
// does not consume the text; it falls open to the menu and fallback.
func TextRoutes(fsmMgr FSM, reg *tg.Registry, opts TextOptions) []tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()

		if reg != nil && strings.HasPrefix(text, "/") {
			if key, cmd, ok := reg.LookupCommand(strings.Fields(text)[0]); ok && cmd.Handler != nil {
				name := normalizeHandlerName(key)
				return handleWithSummary(c, name, start, "", "", func() error {
					return cmd.Handler(c)
				})
			}
		}

		if fsmMgr != nil && fsmMgr.InProgress(c.Sender().ID) {
			tghelpers.WithHandler(c, "fsm")
			err := fsmMgr.ManagerHandler(c)
			if !errors.Is(err, state.ErrNotHandled) {
				logHandlerSummary(c, "fsm", start, "", "", err)
				return err
			}
			// The dialog declined the text: fail open to the menu and fallback.
		}

		if reg != nil {
			if btn, ok := reg.LookupButton(text); ok {
				return handleWithSummary(c, "button."+normalizeHandlerName(text), start, "", "", func() error {
					return btn(c)
				})
			}
		}

		if reg != nil {
			if fb := reg.TextFallback(); fb != nil {
				return handleWithSummary(c, "fallback", start, "", "", func() error {
					return fb(c)
				})
			}
		}

		if opts.UnknownText != nil {
			return handleWithSummary(c, "unknown_text", start, "", "", func() error {
				return opts.UnknownText(c)
			})
		}

		logHandlerSummary(c, "unknown_text", start, "skip", "ok", nil)
		return nil
	}

	docHandler := func(c tele.Context) error {
		start := time.Now()
		if fsmMgr != nil && fsmMgr.InProgress(c.Sender().ID) {
			tghelpers.WithHandler(c, "fsm_document")
			err := fsmMgr.ManagerHandler(c)
			if !errors.Is(err, state.ErrNotHandled) {
				logHandlerSummary(c, "fsm_document", start, "", "", err)
				return err
			}
		}
		if opts.UnknownDocument != nil {
			return handleWithSummary(c, "unexpected_document", start, "", "", func() error {
				return opts.UnknownDocument(c)
			})
		}
		logHandlerSummary(c, "unexpected_document", start, "skip", "ok", nil)
		return nil
	}

	return []tg.Route{
		{
			Endpoint: tele.OnText,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
		},
		{
			Endpoint: tele.OnDocument,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(docHandler)),
		},
	}
}
