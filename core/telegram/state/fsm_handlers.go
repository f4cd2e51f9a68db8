package state

import (
	"errors"

	tele "gopkg.in/telebot.v4"
)

// ErrNotHandled signals that no handler consumed the update for the user's
// current state. The router treats it as "route this elsewhere", so states
// without a text handler fail open to the menu instead of eating the message.
var ErrNotHandled = errors.New("state: update not handled")

var fsmHandlers = map[State]tele.HandlerFunc{}

// RegisterHandler associates a state with its handler.
func RegisterHandler(st State, h tele.HandlerFunc) {
	if h == nil {
		return
	}
	fsmHandlers[st] = h
}
