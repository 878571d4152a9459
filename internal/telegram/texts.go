package telegram

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ykvlv/birthday-bot/internal/domain"
)

// UI texts in Russian, HTML parse mode.
const (
	startText = "🎂 <b>Привет! Я бот обратного отсчёта до дня рождения</b>\n\n" +
		"Давай начнём! Введи дату своего рождения в формате:\n" +
		"<code>ДД.ММ.ГГГГ</code>\n\n" +
		"Например: <code>15.05.1990</code>"

	dateErrorText = "❌ Неверный формат даты. Попробуй ещё раз:\n<code>ДД.ММ.ГГГГ</code>"

	resetText = "🔄 Данные сброшены!\n\n" +
		"Введи дату рождения в формате:\n" +
		"<code>ДД.ММ.ГГГГ</code>"

	toastStopped = "⏸ Остановлено"
	toastCleared = "✅ Сброшено"
)

func namePromptText(birth time.Time) string {
	return fmt.Sprintf("Отлично! Дата рождения: <b>%s</b>\n\nТеперь введи своё имя:",
		domain.FormatDate(birth))
}

func confirmText(name string, birth time.Time) string {
	return fmt.Sprintf("👤 <b>Имя:</b> %s\n📅 <b>Дата рождения:</b> %s\n\nВсё верно?",
		name, domain.FormatDate(birth))
}

func mainMenuText(name string, days int) string {
	return fmt.Sprintf("👋 Привет, <b>%s</b>!\n\n🎂 До твоего дня рождения:\n<b>%d %s</b>",
		name, days, domain.DaysWord(days))
}

func liveCountdownText(c domain.Countdown) string {
	return fmt.Sprintf("⏱ <b>РЕАЛЬНОЕ ВРЕМЯ</b>\n"+
		"<i>Обновляется автоматически каждые 5 секунд</i>\n\n"+
		"📅 <b>%d</b> дней\n"+
		"⏰ <b>%d</b> часов\n"+
		"⏱ <b>%d</b> минут\n"+
		"⏲ <b>%d</b> секунд",
		c.Days, c.Hours, c.Minutes, c.Seconds)
}

func simpleCountdownText(days int, next time.Time) string {
	return fmt.Sprintf("📆 <b>До дня рождения:</b>\n\n🎂 <b>%d %s</b>\n📅 Дата: %s",
		days, domain.DaysWord(days), domain.FormatDate(next))
}

func birthdayText(name string) string {
	return fmt.Sprintf("🎉🎂🎈 <b>С ДНЁМ РОЖДЕНИЯ, %s!</b> 🎈🎂🎉\n\n"+
		"Поздравляю тебя с этим особенным днём!\n"+
		"Желаю счастья, здоровья и исполнения всех желаний! 🎁✨",
		name)
}

func dailyText(name string, days int) string {
	return fmt.Sprintf("⏰ <b>Доброе утро, %s!</b>\n\n"+
		"🎂 До твоего дня рождения осталось:\n<b>%d %s</b>",
		name, days, domain.DaysWord(days))
}

// Inline keyboards

func confirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Готово", actionConfirm),
		),
	)
}

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏱ Реальное время", actionRealtime),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📆 Просто дата", actionSimple),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Сбросить", actionReset),
		),
	)
}

func stopKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Остановить", actionStop),
		),
	)
}

func backKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Назад", actionBack),
		),
	)
}
