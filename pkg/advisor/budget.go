package advisor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tiktoken-go/tokenizer"
)

// TokenBudget caps prompt size. Oversized prompts lose their tail,
// which is where the user's question sits.
type TokenBudget struct {
	max   int
	codec tokenizer.Codec
}

// NewTokenBudget creates a budget of limit tokens counted with the GPT-4 encoding.
// A limit of zero or less disables truncation.
func NewTokenBudget(limit int) (*TokenBudget, error) {
	codec, err := tokenizer.ForModel(tokenizer.GPT4)
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenizer codec: %w", err)
	}
	return &TokenBudget{max: limit, codec: codec}, nil
}

// Max returns the configured limit.
func (b *TokenBudget) Max() int {
	return b.max
}

// Count returns the number of tokens in text.
// It falls back to a four characters per token estimate when encoding fails.
func (b *TokenBudget) Count(text string) int {
	n, err := b.codec.Count(text)
	if err != nil {
		return len(text) / 4
	}
	return n
}

// Fit returns text unchanged when it is within budget, otherwise its leading tokens up to the limit.
func (b *TokenBudget) Fit(text string) string {
	if b == nil || b.max <= 0 {
		return text
	}
	ids, _, err := b.codec.Encode(text)
	if err != nil {
		// Same estimate as Count.
		return cutAtRune(text, b.max*4)
	}
	if len(ids) <= b.max {
		return text
	}
	out, err := b.codec.Decode(ids[:b.max])
	if err != nil {
		return text
	}
	// The last token may hold only part of a multi-byte character.
	return strings.ToValidUTF8(out, "")
}

// cutAtRune returns at most n leading bytes of text, backing up to the
// start of the character that would be split.
func cutAtRune(text string, n int) string {
	if len(text) <= n {
		return text
	}
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n]
}
