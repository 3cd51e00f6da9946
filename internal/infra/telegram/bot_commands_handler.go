// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"fmt"
	"strings"
	"time"

	"homework_status_bot/internal/app"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// StatusReporter exposes the poller state to chat commands.
type StatusReporter interface {
	Snapshot() app.Snapshot
}

// RegisterBotCommands wires /start, /help and /status. Only the configured chat gets answers.
func RegisterBotCommands(
	b *telebot.Bot,
	chatID int64,
	reporter StatusReporter,
	baseLogger *logrus.Entry, // For contextual logging
) {
	commandLogger := baseLogger.WithField("handler_group", "commands")

	allowed := func(command string, c telebot.Context) (*logrus.Entry, bool) {
		logCtx := commandLogger.WithField("command", command).WithField("chat_id", c.Chat().ID)
		if c.Chat().ID != chatID {
			logCtx.Warn("Command from a foreign chat ignored")
			return logCtx, false
		}
		logCtx.Info("Processing command")
		return logCtx, true
	}

	b.Handle("/start", func(c telebot.Context) error {
		if _, ok := allowed("/start", c); !ok {
			return nil
		}
		return c.Send("Привет! Я слежу за статусами проверки домашних работ и сообщу, когда что-то изменится. /help - список команд.")
	})

	b.Handle("/help", func(c telebot.Context) error {
		if _, ok := allowed("/help", c); !ok {
			return nil
		}
		var helpText strings.Builder
		helpText.WriteString("Доступные команды:\n\n")
		helpText.WriteString("/status - состояние опроса API\n")
		helpText.WriteString("/help - показать это сообщение")
		return c.Send(helpText.String())
	})

	b.Handle("/status", func(c telebot.Context) error {
		logCtx, ok := allowed("/status", c)
		if !ok {
			return nil
		}
		text := FormatStatus(reporter.Snapshot())
		if err := c.Send(text); err != nil {
			logCtx.WithError(err).Error("Failed to reply to /status")
			return err
		}
		return nil
	})
}

// FormatStatus renders a snapshot for the /status reply.
func FormatStatus(snap app.Snapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Состояние: %s\n", snap.State)
	fmt.Fprintf(&sb, "Циклов выполнено: %d\n", snap.Cycles)
	if snap.LastCycleAt.IsZero() {
		sb.WriteString("Последний цикл: ещё не было\n")
	} else {
		fmt.Fprintf(&sb, "Последний цикл: %s\n", snap.LastCycleAt.Format("2006-01-02 15:04:05"))
	}
	if snap.Cursor == 0 {
		sb.WriteString("Курсор: с начала истории\n")
	} else {
		fmt.Fprintf(&sb, "Курсор: %s\n", time.Unix(snap.Cursor, 0).Format("2006-01-02 15:04:05"))
	}
	if snap.LastSent != "" {
		fmt.Fprintf(&sb, "Последнее уведомление: %s\n", snap.LastSent)
	}
	if snap.LastError != "" {
		fmt.Fprintf(&sb, "Последняя ошибка: %s\n", snap.LastError)
	}
	return strings.TrimRight(sb.String(), "\n")
}
