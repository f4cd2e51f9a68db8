// Package keyboards defines the persistent reply keyboard of the bot.
package keyboards

import (
	"questbot/core/telegram/keyboard"

	tele "gopkg.in/telebot.v4"
)

// Button labels of the main menu. The labels double as routing keys: a
// reply-keyboard press arrives as a plain text message with this exact text.
const (
	BtnSendPhoto     = "📸 Отправить фото"
	BtnShareLocation = "📍 Поделиться геопозицией"
	BtnAddSong       = "🎵 Добавить песню"
	BtnMySongs       = "📋 Мои песни"
	BtnVote          = "🗳 Голосовать"
	BtnProfile       = "👤 Профиль"
	BtnLeaderboard   = "🏆 Топ игроков"
)

// IsMenuButton reports whether the text is one of the main menu labels.
func IsMenuButton(text string) bool {
	switch text {
	case BtnSendPhoto, BtnShareLocation, BtnAddSong, BtnMySongs, BtnVote, BtnProfile, BtnLeaderboard:
		return true
	}
	return false
}

// Main builds the persistent action keyboard shown after registration.
func Main() *tele.ReplyMarkup {
	return keyboard.ReplyRows(
		[]keyboard.ReplyBtn{
			{Text: BtnSendPhoto},
			{Text: BtnShareLocation, Location: true},
		},
		[]keyboard.ReplyBtn{
			{Text: BtnAddSong},
			{Text: BtnMySongs},
		},
		[]keyboard.ReplyBtn{
			{Text: BtnVote},
		},
		[]keyboard.ReplyBtn{
			{Text: BtnProfile},
			{Text: BtnLeaderboard},
		},
	)
}
