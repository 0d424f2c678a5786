// Package chatbot implements the keyword-driven shopping assistant.
package chatbot

import (
	"context"
	"strings"
	"sync"
	"time"

	"storefront/internal/clock"
	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Greeting opens every conversation.
const Greeting = "Hello! I'm your shopping assistant. How can I help you today?"

const (
	replyEvent    = "For a college annual day, I'd recommend smart casual attire that looks presentable yet comfortable. Here are some suggestions:"
	replyClothing = "I found some great clothing options that might interest you:"
	replyShoes    = "Here are some footwear options you might like:"
	replyFallback = "I'm not sure how to help with that. Can you provide more details about what you're looking for?"
)

// DefaultPoolIDs are the catalogue products the assistant recommends from.
var DefaultPoolIDs = []string{"1", "2", "3"}

// ProductSource looks products up by ID.
type ProductSource interface {
	Get(id string) (model.Product, error)
}

// Pool resolves ids against src, skipping unknown products.
func Pool(src ProductSource, ids ...string) []model.Product {
	out := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		if p, err := src.Get(id); err == nil {
			out = append(out, p)
		}
	}
	return out
}

// rule maps trigger keywords to a reply and a recommendation filter.
type rule struct {
	keywords []string
	reply    string
	pick     func(model.Product) bool
}

var rules = []rule{
	{
		keywords: []string{"college", "annual day", "event"},
		reply:    replyEvent,
		pick:     func(model.Product) bool { return true },
	},
	{
		keywords: []string{"shirt", "clothing"},
		reply:    replyClothing,
		pick:     func(p model.Product) bool { return p.Category == "Clothing" },
	},
	{
		keywords: []string{"shoes", "sneakers"},
		reply:    replyShoes,
		pick:     func(p model.Product) bool { return p.HasTag("shoes") || p.HasTag("sneakers") },
	},
}

// Bot is one conversation with the assistant.
type Bot struct {
	mu              sync.Mutex
	history         []model.ChatMessage
	recommendations []model.Product
	typing          bool

	pool   []model.Product
	delay  time.Duration
	now    func() time.Time
	newID  func() string
	logger zerolog.Logger
}

// New starts a conversation recommending from pool. delay is the simulated
// typing time before each reply.
func New(pool []model.Product, delay time.Duration, logger zerolog.Logger) *Bot {
	b := &Bot{
		pool:   pool,
		delay:  delay,
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
		logger: logger.With().Str("component", "chatbot").Logger(),
	}
	b.history = []model.ChatMessage{b.message(Greeting, model.SenderBot)}
	return b
}

func (b *Bot) message(content, sender string) model.ChatMessage {
	return model.ChatMessage{
		ID:        b.newID(),
		Content:   content,
		Sender:    sender,
		Timestamp: b.now(),
	}
}

// Send records input, waits for the typing delay and answers. The user
// message stays in the history even when ctx ends the wait.
func (b *Bot) Send(ctx context.Context, input string) (model.ChatReply, error) {
	if strings.TrimSpace(input) == "" {
		return model.ChatReply{}, model.ErrEmptyMessage
	}

	b.mu.Lock()
	b.history = append(b.history, b.message(input, model.SenderUser))
	b.recommendations = nil
	b.typing = true
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.typing = false
		b.mu.Unlock()
	}()

	if err := clock.Sleep(ctx, b.delay); err != nil {
		return model.ChatReply{}, err
	}

	text, recs := b.answer(input)
	reply := b.message(text, model.SenderBot)

	b.mu.Lock()
	b.history = append(b.history, reply)
	b.recommendations = recs
	b.mu.Unlock()

	b.logger.Debug().
		Int("recommendations", len(recs)).
		Msg("chat reply sent")

	return model.ChatReply{Message: reply, Recommendations: copyProducts(recs)}, nil
}

// answer picks the first rule whose keyword occurs in input.
func (b *Bot) answer(input string) (string, []model.Product) {
	lower := strings.ToLower(input)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.reply, b.filter(r.pick)
			}
		}
	}
	return replyFallback, []model.Product{}
}

func (b *Bot) filter(pick func(model.Product) bool) []model.Product {
	out := make([]model.Product, 0, len(b.pool))
	for _, p := range b.pool {
		if pick(p) {
			out = append(out, p)
		}
	}
	return out
}

// History returns a copy of the conversation.
func (b *Bot) History() []model.ChatMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.ChatMessage, len(b.history))
	copy(out, b.history)
	return out
}

// Recommendations returns the products suggested by the latest reply.
func (b *Bot) Recommendations() []model.Product {
	b.mu.Lock()
	defer b.mu.Unlock()
	return copyProducts(b.recommendations)
}

// IsTyping reports whether a reply is pending.
func (b *Bot) IsTyping() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.typing
}

func copyProducts(ps []model.Product) []model.Product {
	out := make([]model.Product, len(ps))
	copy(out, ps)
	return out
}
