package validator

import (
	"context"
	"fmt"
	"strings"

	"support-chat-backend/internal/model"
)

const systemPrompt = `You are a message validator for customer service responses.
Evaluate the response based on these criteria:
1. Professional and polite tone
2. Clear and concise communication
3. Grammatically correct

Respond with only "VALID" or "INVALID: [reason]"`

const (
	minLength = 10
	maxLength = 1000
)

type completer interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// Service checks generated response text before it reaches the visitor.
// Cheap structural rules run first; the model review runs only when they
// pass.
type Service struct {
	ai completer
}

func New(ai completer) *Service {
	return &Service{ai: ai}
}

func (s *Service) Validate(ctx context.Context, text string) (model.ValidationResult, error) {
	if result := CheckBasicRules(text); !result.IsValid {
		return result, nil
	}

	raw, err := s.ai.Complete(ctx, systemPrompt, fmt.Sprintf("Validate this customer service response:\n%q", text), 50)
	if err != nil {
		return model.ValidationResult{}, fmt.Errorf("validate response: %w", err)
	}

	verdict := strings.TrimSpace(raw)
	if verdict == "VALID" {
		return model.ValidationResult{IsValid: true}, nil
	}

	reason := "Response does not meet validation criteria"
	if strings.HasPrefix(verdict, "INVALID") {
		if trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(verdict, "INVALID"), ":")); trimmed != "" {
			reason = trimmed
		}
	}
	return model.ValidationResult{IsValid: false, Reason: reason}, nil
}

// CheckBasicRules applies the structural checks that need no model call.
func CheckBasicRules(text string) model.ValidationResult {
	if strings.TrimSpace(text) == "" {
		return model.ValidationResult{IsValid: false, Reason: "Response is empty"}
	}
	if len(text) < minLength {
		return model.ValidationResult{IsValid: false, Reason: "Response is too short"}
	}
	if len(text) > maxLength {
		return model.ValidationResult{IsValid: false, Reason: "Response is too long"}
	}
	return model.ValidationResult{IsValid: true}
}
