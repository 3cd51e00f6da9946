package telegram

// Client defines an interface for sending messages via a Telegram bot.
// Keeps the notifier independent of the bot library.
type Client interface {
	SendMessage(chatID int64, text string) error
}
