package render

import (
	"fmt"
	"strconv"

	"questbot/bot/backend"
	"questbot/core/telegram/format"
)

// SongPrompt invites the user to type a search query.
func SongPrompt(count, max, remaining int) string {
	return "🎵 Отправь название песни (и исполнителя), и я найду её на Spotify!\n\n" +
		"📊 Добавлено: " + strconv.Itoa(count) + "/" + strconv.Itoa(max) + "\n" +
		"Осталось: " + strconv.Itoa(remaining) + "\n\n" +
		"Например: " + format.Italic("Imagine Dragons - Believer") + "\n\n" +
		"Для отмены отправь /cancel"
}

// SongQuotaReached reports an exhausted playlist quota.
func SongQuotaReached(count, max int) string {
	return fmt.Sprintf("🚫 Ты уже добавил(а) максимум песен (%d/%d).\nБольше добавить нельзя.", count, max)
}

// SongCancelled acknowledges a cancelled song flow.
func SongCancelled() string {
	return "❌ Добавление песни отменено."
}

// SongSearching is the placeholder shown while the backend searches.
func SongSearching() string {
	return "🔍 Ищу на Spotify..."
}

// SongSearchingQuery is the placeholder for metadata-derived queries.
func SongSearchingQuery(query string) string {
	return "🔍 Ищу на Spotify: " + format.Italic(query) + "..."
}

// SongNotFound suggests refining the query.
func SongNotFound() string {
	return "😕 Не нашёл такую песню на Spotify.\n" +
		"Попробуй написать точнее — например, добавь имя исполнителя.\n\n" +
		"Нажми 🎵 <b>Добавить песню</b> чтобы попробовать снова."
}

// SongNotFoundQuery names the failed metadata-derived query.
func SongNotFoundQuery(query string) string {
	return "😕 Не нашёл «" + format.EscapeHTML(query) + "» на Spotify.\n" +
		"Попробуй написать название вручную.\n\n" +
		"Нажми 🎵 <b>Добавить песню</b> чтобы попробовать снова."
}

// SongLimit echoes the backend's limit message.
func SongLimit(msg string) string {
	if msg == "" {
		msg = "Лимит песен достигнут"
	}
	return "🚫 " + msg
}

// SongDuplicate reports the song is already in the list.
func SongDuplicate() string {
	return "⚠️ Эта песня уже есть в твоём списке!"
}

// SongAdded renders a successful playlist addition.
func SongAdded(song backend.Song, remaining int) string {
	name := song.Name
	if name == "" {
		name = "Неизвестно"
	}
	text := "✅ Песня добавлена в плейлист!\n\n" +
		"🎵 " + format.Bold(name) + "\n" +
		"🎤 " + format.EscapeHTML(song.Artist) + "\n"
	if song.ExternalURL != "" {
		text += "🔗 " + format.Link(song.ExternalURL, "Открыть в Spotify") + "\n"
	}
	text += "\n📊 Осталось: " + strconv.Itoa(remaining) + " песен(ь)"
	return text
}

// AudioNoMetadata asks the user to retype when a file lacks tags.
func AudioNoMetadata() string {
	return "⚠️ Не удалось определить название трека из файла.\n" +
		"Попробуй отправить название текстом: " + format.Italic("Исполнитель - Название")
}

// SongListEmpty is shown when the playlist has no entries yet.
func SongListEmpty() string {
	return "🎵 У тебя пока нет добавленных песен.\nНажми <b>🎵 Добавить песню</b> чтобы добавить!"
}

// SongListText renders the numbered playlist with links and a quota footer.
func SongListText(list *backend.SongList) string {
	text := "🎵 <b>Твои песни (" + strconv.Itoa(list.Count) + "/" + strconv.Itoa(list.Max) + "):</b>\n\n"
	for i, song := range list.Songs {
		name := song.Name
		if name == "" {
			name = "?"
		}
		artist := song.Artist
		if artist == "" {
			artist = "?"
		}
		if song.ExternalURL != "" {
			text += fmt.Sprintf("%d. %s — %s\n", i+1, format.Link(song.ExternalURL, name), format.EscapeHTML(artist))
		} else {
			text += fmt.Sprintf("%d. %s — %s\n", i+1, format.EscapeHTML(name), format.EscapeHTML(artist))
		}
	}

	remaining := list.Max - list.Count
	if remaining > 0 {
		text += "\n📊 Можно добавить ещё: " + strconv.Itoa(remaining)
	} else {
		text += "\n🚫 Лимит достигнут"
	}
	return text
}
