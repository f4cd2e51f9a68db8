package render

// PhotoAccepted acknowledges a stored photo report.
func PhotoAccepted() string {
	return "✅ Фото принято! Ожидай подтверждения от организатора."
}

// PhotoNotOnTeam explains why the photo was rejected.
func PhotoNotOnTeam() string {
	return "⚠️ Ты ещё не в команде. Дождись, пока организатор добавит тебя."
}

// PhotoAsDocumentHint asks to resend an image as a photo, not a file.
func PhotoAsDocumentHint() string {
	return "📎 Похоже, ты отправил(а) картинку файлом. Отправь её как фото, иначе отчёт не засчитается."
}

// PhotoButtonHint explains that photos are sent as plain attachments.
func PhotoButtonHint() string {
	return "📸 Просто отправь фото в этот чат — мы передадим его организаторам."
}

// LocationAccepted confirms the first (non-live) location share.
func LocationAccepted() string {
	return "📍 Геопозиция получена! Если ты включил(а) трансляцию — мы будем видеть тебя на карте в реальном времени."
}
