// Package render contains the presentation layer: pure functions that turn
// backend data into chat-formatted HTML text and inline keyboards. No state,
// no I/O.
package render

// ServiceUnavailable is shown when the backend cannot be reached at all.
func ServiceUnavailable() string {
	return "⚠️ Сервис временно недоступен. Попробуй ещё раз через минуту."
}

// RegisterFirst nudges an unknown user towards /start.
func RegisterFirst() string {
	return "❌ Сначала зарегистрируйся командой /start"
}

// StaleButton answers a callback whose key is no longer registered.
func StaleButton() string {
	return "Кнопка устарела"
}

// GenericError echoes a backend-reported error message.
func GenericError(msg string) string {
	if msg == "" {
		msg = "Неизвестная ошибка"
	}
	return "❌ Ошибка: " + msg
}
