package router

import (
	"testing"

	tg "questbot/core/telegram"
	"questbot/core/telegram/commands"
	"questbot/core/telegram/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"
)

func newTextContext(t *testing.T, text string) tele.Context {
	t.Helper()
	b, err := tele.NewBot(tele.Settings{Offline: true})
	require.NoError(t, err)
	return b.NewContext(tele.Update{Message: &tele.Message{
		Text:   text,
		Sender: &tele.User{ID: 7},
		Chat:   &tele.Chat{ID: 7},
	}})
}

func textHandler(t *testing.T, routes []tg.Route) tele.HandlerFunc {
	t.Helper()
	for _, r := range routes {
		if r.Endpoint == tele.OnText {
			return r.Handler
		}
	}
	t.Fatal("text route missing")
	return nil
}

func recorder(fired *bool) tele.HandlerFunc {
	return func(tele.Context) error {
		*fired = true
		return nil
	}
}

func TestTextCommandBeatsDialog(t *testing.T) {
	mgr := state.NewMemoryManager()
	var cmdFired, fsmFired bool
	state.RegisterHandler("ping_wait", recorder(&fsmFired))
	mgr.SetState(7, "ping_wait")

	reg := tg.NewRegistry()
	reg.RegisterCommand("/ping", commands.Command{Handler: recorder(&cmdFired)})

	h := textHandler(t, TextRoutes(mgr, reg, TextOptions{}))
	require.NoError(t, h(newTextContext(t, "/ping")))
	assert.True(t, cmdFired)
	assert.False(t, fsmFired)
}

func TestTextDialogBeatsButton(t *testing.T) {
	mgr := state.NewMemoryManager()
	var fsmFired, btnFired bool
	state.RegisterHandler("query_wait", recorder(&fsmFired))
	mgr.SetState(7, "query_wait")

	reg := tg.NewRegistry()
	reg.RegisterButton("⭐ Кнопка", recorder(&btnFired))

	h := textHandler(t, TextRoutes(mgr, reg, TextOptions{}))
	require.NoError(t, h(newTextContext(t, "что-нибудь")))
	assert.True(t, fsmFired)
	assert.False(t, btnFired)
}

func TestTextButtonWhenIdle(t *testing.T) {
	mgr := state.NewMemoryManager()
	var btnFired, fbFired bool

	reg := tg.NewRegistry()
	reg.RegisterButton("👤 Профиль", recorder(&btnFired))
	reg.SetTextFallback(recorder(&fbFired))

	h := textHandler(t, TextRoutes(mgr, reg, TextOptions{}))
	require.NoError(t, h(newTextContext(t, "👤 Профиль")))
	assert.True(t, btnFired)
	assert.False(t, fbFired)
}

func TestTextFallbackLast(t *testing.T) {
	mgr := state.NewMemoryManager()
	var btnFired, fbFired bool

	reg := tg.NewRegistry()
	reg.RegisterButton("👤 Профиль", recorder(&btnFired))
	reg.SetTextFallback(recorder(&fbFired))

	h := textHandler(t, TextRoutes(mgr, reg, TextOptions{}))
	require.NoError(t, h(newTextContext(t, "привет организаторам")))
	assert.False(t, btnFired)
	assert.True(t, fbFired)
}

// A state with no registered text handler must not eat the update: menu
// buttons and the fallback stay reachable mid-dialog.
func TestTextFailsOpenWithoutStateHandler(t *testing.T) {
	mgr := state.NewMemoryManager()
	mgr.SetState(7, "buttons_only_wait")

	var btnFired, fbFired bool
	reg := tg.NewRegistry()
	reg.RegisterButton("👤 Профиль", recorder(&btnFired))
	reg.SetTextFallback(recorder(&fbFired))

	h := textHandler(t, TextRoutes(mgr, reg, TextOptions{}))

	require.NoError(t, h(newTextContext(t, "👤 Профиль")))
	assert.True(t, btnFired)
	assert.False(t, fbFired)

	require.NoError(t, h(newTextContext(t, "просто текст")))
	assert.True(t, fbFired)
}

func TestTextDialogDeclineFallsOpen(t *testing.T) {
	mgr := state.NewMemoryManager()
	state.RegisterHandler("decline_wait", func(tele.Context) error {
		return state.ErrNotHandled
	})
	mgr.SetState(7, "decline_wait")

	var btnFired bool
	reg := tg.NewRegistry()
	reg.RegisterButton("👤 Профиль", recorder(&btnFired))

	h := textHandler(t, TextRoutes(mgr, reg, TextOptions{}))
	require.NoError(t, h(newTextContext(t, "👤 Профиль")))
	assert.True(t, btnFired)
}
