package render

import (
	"fmt"
	"strings"

	"questbot/bot/backend"
	"questbot/core/telegram/format"
)

const profileLivesCap = 3

// ProfileError instructs the user to restart registration.
func ProfileError() string {
	return "❌ Не удалось загрузить профиль. Попробуй /start"
}

// ProfileText renders the player card: name, team, lives bar, counters.
func ProfileText(p *backend.Profile) string {
	name := p.FirstName
	if name == "" {
		name = "Без имени"
	}
	team := p.Team.Name
	if team == "" {
		team = "Без команды"
	}
	lives := p.Lives
	if lives < 0 {
		lives = 0
	}

	return "👤 <b>Профиль</b>\n" +
		"━━━━━━━━━━━━━━━━━━\n" +
		"📛 " + format.Bold(name) + "\n" +
		"🚗 Команда: " + format.Bold(team) + "\n\n" +
		fmt.Sprintf("❤️ Жизни: %s (%d)\n\n", livesBar(lives, profileLivesCap, false), lives) +
		"📊 <b>Статистика:</b>\n" +
		fmt.Sprintf("  📸 Фото отправлено: %d\n", p.Stats.PhotosSent) +
		fmt.Sprintf("  💬 Сообщений: %d\n", p.Stats.MessagesSent) +
		fmt.Sprintf("  🎵 Песен: %d\n", p.Stats.SongsAdded)
}

// LeaderboardEmpty is the friendly empty/error state.
func LeaderboardEmpty() string {
	return "📊 Пока нет данных для рейтинга."
}

// LeaderboardError is shown when the top list cannot be fetched.
func LeaderboardError() string {
	return "❌ Не удалось загрузить топ."
}

// LeaderboardText renders up to 10 ranked entries with medals for the top 3.
func LeaderboardText(entries []backend.LeaderboardEntry) string {
	text := "🏆 <b>Топ игроков</b>\n━━━━━━━━━━━━━━━━━━\n\n"

	medals := []string{"🥇", "🥈", "🥉"}
	for i, entry := range entries {
		if i >= 10 {
			break
		}
		marker := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			marker = medals[i]
		}
		text += fmt.Sprintf("%s %s — %s | Ур. %d\n",
			marker,
			format.Bold(entry.DisplayName()),
			livesBar(entry.Lives, 5, true),
			entry.Level,
		)
	}
	return text
}

// livesBar draws filled hearts up to limit. With overflow enabled a "+N"
// suffix marks lives beyond the limit; otherwise empty hearts pad to limit.
func livesBar(lives, limit int, overflow bool) string {
	if lives < 0 {
		lives = 0
	}
	shown := lives
	if shown > limit {
		shown = limit
	}
	bar := strings.Repeat("❤️", shown)
	if overflow {
		if lives > limit {
			bar += fmt.Sprintf("+%d", lives-limit)
		}
		return bar
	}
	return bar + strings.Repeat("🖤", limit-shown)
}
