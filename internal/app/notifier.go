// internal/app/notifier.go
package app

import (
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Notifier delivers messages to the configured chat on a best-effort basis.
type Notifier struct {
	telegramClient domainTelegram.Client
	chatID         int64
	logger         *logrus.Entry
}

func NewNotifier(tc domainTelegram.Client, chatID int64, logger *logrus.Entry) *Notifier {
	return &Notifier{
		telegramClient: tc,
		chatID:         chatID,
		logger:         logger,
	}
}

// Notify sends text once. Delivery failures are logged and never returned:
// the polling cycle must go on whether or not the chat received the message.
func (n *Notifier) Notify(text string) bool {
	if err := n.telegramClient.SendMessage(n.chatID, text); err != nil {
		n.logger.WithError(err).WithField("chat_id", n.chatID).Error("Failed to send message")
		return false
	}
	n.logger.WithField("chat_id", n.chatID).Debugf("Message sent: %s", text)
	return true
}
