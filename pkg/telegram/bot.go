// Package telegram pushes gradebook events to an instructor chat. The bot
// is optional: without a configured token the service simply runs silent.
package telegram

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot sends notifications to a single configured chat.
type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
	log    *slog.Logger
}

// NewBot creates a bot for the given token and destination chat.
func NewBot(token string, chatID int64, log *slog.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	bot.Debug = false

	return &Bot{
		api:    bot,
		chatID: chatID,
		log:    log,
	}, nil
}

// AssignmentCreated announces a newly created assignment.
func (b *Bot) AssignmentCreated(courseTitle, assignmentName, dueDate string) {
	b.send(fmt.Sprintf("New assignment in %s: %s (due %s)", courseTitle, assignmentName, dueDate))
}

// GradeRecorded announces a recorded score.
func (b *Bot) GradeRecorded(assignmentName, studentEmail, score string) {
	b.send(fmt.Sprintf("Grade recorded for %s on %q: %s", studentEmail, assignmentName, score))
}

func (b *Bot) send(text string) {
	msg := tgbotapi.NewMessage(b.chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("failed to send telegram notification", "error", err)
	}
}
