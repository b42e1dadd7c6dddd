package intent

import (
	"context"
	"fmt"
	"strings"

	"support-chat-backend/internal/model"
)

const systemPrompt = `You are a customer service intent classifier for an e-commerce storefront. ` +
	`Respond only with one of these exact words: status, tracking, return, cancel, refund, ticketing, other.`

type completer interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// Service classifies a user message into one of the closed intents.
type Service struct {
	ai completer
}

func New(ai completer) *Service {
	return &Service{ai: ai}
}

func (s *Service) Detect(ctx context.Context, message string, conversation *model.Conversation) (model.Intent, error) {
	prompt := buildPrompt(message, conversation)

	raw, err := s.ai.Complete(ctx, systemPrompt, prompt, 10)
	if err != nil {
		return model.IntentDefault, fmt.Errorf("detect intent: %w", err)
	}

	intent, ok := Normalize(raw)
	if !ok {
		return model.IntentDefault, fmt.Errorf("detect intent: unrecognized classification %q", raw)
	}
	return intent, nil
}

func buildPrompt(message string, conversation *model.Conversation) string {
	var b strings.Builder
	b.WriteString("Classify the following customer service message into one of these categories:\n")
	b.WriteString("- status: asking about an order's state\n")
	b.WriteString("- tracking: asking where a shipment is\n")
	b.WriteString("- return: wants to return an item\n")
	b.WriteString("- cancel: wants to cancel an order\n")
	b.WriteString("- refund: asking about money back\n")
	b.WriteString("- ticketing: wants a support ticket or to escalate\n")
	b.WriteString("- other: general questions or default case\n\n")
	fmt.Fprintf(&b, "Current conversation status: %s\n", conversation.Status)
	fmt.Fprintf(&b, "User has provided email: %t\n", conversation.Metadata.Email != "")
	fmt.Fprintf(&b, "User has provided order number: %t\n\n", conversation.Metadata.OrderNumber != "")
	fmt.Fprintf(&b, "User message: %q\n\nClassify as:", message)
	return b.String()
}

// Normalize maps a raw model completion onto the closed intent set.
func Normalize(raw string) (model.Intent, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = strings.Trim(cleaned, `."'`)
	return model.ParseIntent(cleaned)
}
