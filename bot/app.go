// Package bot wires the quest application: backend client, conversation
// state, flow handlers and their routes.
package bot

import (
	"questbot/bot/backend"
	"questbot/bot/handlers"
	"questbot/bot/keyboards"
	"questbot/bot/render"
	coretelegram "questbot/core/telegram"
	"questbot/core/telegram/commands"
	"questbot/core/telegram/middleware"
	"questbot/core/telegram/router"
	"questbot/core/telegram/state"

	tele "gopkg.in/telebot.v4"
)

// App is the running quest bot application.
type App struct {
	cfg      *Config
	fsm      state.Manager
	handlers *handlers.Handlers
}

// NewApp builds the application from validated configuration.
func NewApp(cfg *Config) (*App, error) {
	api := backend.New(cfg.Core.Backend)
	fsm := state.NewMemoryManager()
	return &App{
		cfg:      cfg,
		fsm:      fsm,
		handlers: handlers.New(api, fsm),
	}, nil
}

// TelegramRunOptions assembles registry, routes and middleware for the runtime.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	h := a.handlers

	reg.RegisterCommand("/start", commands.Command{
		Handler:     h.Start,
		Description: "Регистрация и главное меню",
	})
	reg.RegisterCommand("/cancel", commands.Command{
		Handler:     h.Cancel,
		Description: "Отменить текущее действие",
		Hidden:      true,
	})

	reg.RegisterButton(keyboards.BtnSendPhoto, h.PhotoHint)
	reg.RegisterButton(keyboards.BtnAddSong, h.AddSong)
	reg.RegisterButton(keyboards.BtnMySongs, h.MySongs)
	reg.RegisterButton(keyboards.BtnVote, h.Vote)
	reg.RegisterButton(keyboards.BtnProfile, h.Profile)
	reg.RegisterButton(keyboards.BtnLeaderboard, h.Leaderboard)

	_ = reg.RegisterCallback(render.CallbackVoteBest, h.VoteBest)
	_ = reg.RegisterCallback(render.CallbackVoteWorst, h.VoteWorst)
	_ = reg.RegisterCallback(render.CallbackVoteSkip, h.VoteSkip)

	reg.SetTextFallback(h.TextFallback)
	reg.SetCallbackNotFound(func(c tele.Context) error {
		return c.Respond(&tele.CallbackResponse{Text: render.StaleButton()})
	})

	// Text typed while the song flow waits for input goes to SongInput;
	// the voting states have no text handler and fail open.
	state.RegisterHandler(handlers.StateSongWaiting, h.SongInput)

	routes := router.TextRoutes(a.fsm, reg, router.TextOptions{
		UnknownDocument: h.Document,
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))
	routes = append(routes, router.CommandRoutes(reg)...)
	routes = append(routes,
		coretelegram.Route{Endpoint: tele.OnPhoto, Handler: wrap(h.Photo)},
		coretelegram.Route{Endpoint: tele.OnLocation, Handler: wrap(h.Location)},
		coretelegram.Route{Endpoint: tele.OnEdited, Handler: wrap(h.LiveLocation)},
		// Audio outside the waiting state is ignored by the gate.
		coretelegram.Route{Endpoint: tele.OnAudio, Handler: wrap(middleware.State(a.fsm, handlers.StateSongWaiting)(h.SongInput))},
	)

	return coretelegram.RunOptions{
		Config:      a.cfg.Core,
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg.Core, nil),
		Routes:      routes,
	}, nil
}

func wrap(h tele.HandlerFunc) tele.HandlerFunc {
	return middleware.RecoverMiddleware(middleware.LoggerMiddleware(h))
}
