package render

import "questbot/core/telegram/format"

// Welcome greets a freshly registered player.
func Welcome(firstName string) string {
	return "🎉 Добро пожаловать на квест, " + format.Bold(firstName) + "!\n\n" +
		"Ты зарегистрирован(а). Скоро тебя добавят в команду и квест начнётся!\n\n" +
		"Пока можешь поделиться геопозицией, чтобы мы видели где ты."
}

// WelcomeBack greets a player who already registered earlier.
func WelcomeBack(firstName string) string {
	return "👋 С возвращением, " + format.Bold(firstName) + "!\n\n" +
		"Ты уже зарегистрирован(а). Жди подсказку от организатора!"
}

// Cancelled confirms that an in-progress action was dropped.
func Cancelled() string {
	return "❌ Действие отменено."
}

// NothingToCancel is replied to /cancel outside any flow.
func NothingToCancel() string {
	return "Сейчас нечего отменять."
}
