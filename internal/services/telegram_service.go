package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"testschool/internal/models"
)

// TelegramNotifier шлёт события сертификации в канал супервизоров.
// Может быть nil — тогда уведомления просто выключены.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(botToken string, chatID int64) *TelegramNotifier {
	if botToken == "" || chatID == 0 {
		log.Printf("[tg][init] token or chat_id empty, notifications disabled")
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("[tg][init] bot init failed, notifications disabled: %v", err)
		return nil
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}
}

func (t *TelegramNotifier) NotifyLevelAwarded(userID, step int, level models.Level, score int) {
	if t == nil || t.bot == nil {
		return
	}
	text := fmt.Sprintf("Шаг %d пройден: user_id=%d, балл %d%%, присвоен уровень %s", step, userID, score, level)
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		// уведомление не критично для сабмита
		log.Printf("[tg][notify] send failed: %v", err)
	}
}
