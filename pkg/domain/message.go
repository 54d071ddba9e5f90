package domain

// Author identifies who a message is attributed to.
type Author string

const (
	AuthorBot  Author = "bot"
	AuthorUser Author = "user"
)

// Message is a single chat bubble.
type Message struct {
	Author Author `json:"author"`
	Text   string `json:"text"`
	// Markdown marks computed content (plans, advisor replies) that presenters may render rich.
	Markdown bool `json:"markdown,omitempty"`
}

// BotSay creates a plain bot message.
func BotSay(text string) Message {
	return Message{Author: AuthorBot, Text: text}
}

// BotMarkdown creates a bot message carrying Markdown.
func BotMarkdown(text string) Message {
	return Message{Author: AuthorBot, Text: text, Markdown: true}
}

// UserSay creates a user-authored echo.
func UserSay(text string) Message {
	return Message{Author: AuthorUser, Text: text}
}
