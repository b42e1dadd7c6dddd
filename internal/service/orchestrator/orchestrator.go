package orchestrator

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"support-chat-backend/internal/model"
)

// FallbackText replaces any generated response the validator rejects.
const FallbackText = "I apologize, but I'm having trouble understanding your request. Could you please rephrase your question?"

// Result is what a single pipeline run hands back to the transport layer.
type Result struct {
	Response       model.StructuredResponse
	ConversationID string
	Intent         model.Intent
}

// Deps are the collaborators injected into the pipeline.
type Deps struct {
	Store      ConversationStore
	Classifier IntentClassifier
	Orders     OrderLookup
	FAQ        FAQSearcher
	Tickets    TicketService
	Generator  ResponseGenerator
	Validator  ResponseValidator
}

// Service runs the per-message pipeline: session resolution, user-message
// recording, intent resolution, short-circuit commands, enrichment
// dispatch, generation, validation with fallback, bot-message recording
// and the commit. One inbound message drives one linear sequence of
// calls; there is no internal parallelism and no state kept between runs.
type Service struct {
	deps         Deps
	cfg          Config
	orderPattern *regexp.Regexp
	now          func() time.Time
}

func New(deps Deps, cfg Config) *Service {
	return NewWithClock(deps, cfg, time.Now)
}

func NewWithClock(deps Deps, cfg Config, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	cfg = cfg.withDefaults()
	return &Service{
		deps:         deps,
		cfg:          cfg,
		orderPattern: OrderNumberPattern(cfg.OrderNumberMinDigits),
		now:          now,
	}
}

// ProcessMessage runs the whole pipeline for one inbound message. The
// conversation value is owned by this call from load to save; no
// collaborator retains a reference after it returns.
func (s *Service) ProcessMessage(ctx context.Context, message, conversationID string) (Result, error) {
	if strings.TrimSpace(message) == "" {
		return Result{}, newError(ErrorCodeValidation, "message is required", nil)
	}

	conversation, err := s.resolveSession(ctx, conversationID)
	if err != nil {
		return Result{}, newError(ErrorCodeInternal, "failed to load conversation", err)
	}

	conversation.AppendUserMessage(message, s.now().UnixMilli())

	intent := s.resolveIntent(ctx, message, conversation)

	var response model.StructuredResponse
	if commandResponse, commandIntent, ok := handleCommand(message, conversation, intent); ok {
		response = commandResponse
		intent = commandIntent
	} else {
		enrichment, err := s.enrich(ctx, message, conversation, intent)
		if err != nil {
			return Result{}, newError(ErrorCodeInternal, "failed to create support ticket", err)
		}

		response, err = s.deps.Generator.Generate(ctx, model.GenerateInput{
			UserMessage:  message,
			Conversation: conversation,
			Intent:       intent,
			Enrichment:   enrichment,
		})
		if err != nil {
			return Result{}, newError(ErrorCodeInternal, "failed to generate response", err)
		}
	}

	response, intent = s.validateAndFallback(ctx, response, intent)

	conversation.AppendBotMessage(response, intent, s.now().UnixMilli())

	if err := s.deps.Store.Save(ctx, conversation); err != nil {
		return Result{}, newError(ErrorCodeInternal, "failed to save conversation", err)
	}

	return Result{
		Response:       response,
		ConversationID: conversation.ID,
		Intent:         intent,
	}, nil
}

// resolveSession loads the conversation for the id, or starts a new one
// when the id is absent or unknown.
func (s *Service) resolveSession(ctx context.Context, conversationID string) (*model.Conversation, error) {
	if conversationID != "" {
		conversation, err := s.deps.Store.Load(ctx, conversationID)
		if err != nil {
			return nil, err
		}
		if conversation != nil {
			return conversation, nil
		}
	}
	return s.deps.Store.Create(ctx)
}

// resolveIntent applies the deterministic shortcuts ahead of the model
// call, then force-maps anything the classifier returns outside the
// closed set to the default intent. Classification never fails the run.
func (s *Service) resolveIntent(ctx context.Context, message string, conversation *model.Conversation) model.Intent {
	if conversation.Status == model.ConversationStatusTicket {
		return model.IntentTicketing
	}
	if _, ok := ExtractOrderNumber(s.orderPattern, message); ok {
		return model.IntentStatus
	}
	if len(conversation.Messages) > s.cfg.EscalationMessageLimit {
		return model.IntentTicketing
	}

	detected, err := s.deps.Classifier.Detect(ctx, message, conversation)
	if err != nil {
		log.Printf("orchestrator: intent detection failed, defaulting to %s: %v", model.IntentDefault, err)
		return model.IntentDefault
	}
	intent, ok := model.ParseIntent(string(detected))
	if !ok {
		log.Printf("orchestrator: classifier returned %q, defaulting to %s", detected, model.IntentDefault)
	}
	return intent
}

// enrich routes by intent. Lookup and search failures degrade to a null
// payload; only ticket creation is allowed to fail the run, since a
// half-open ticket request must not be silently swallowed.
func (s *Service) enrich(ctx context.Context, message string, conversation *model.Conversation, intent model.Intent) (model.Enrichment, error) {
	switch {
	case intent.IsOrderRelated():
		number, ok := ExtractOrderNumber(s.orderPattern, message)
		if !ok {
			number = conversation.Metadata.OrderNumber
		}
		if number == "" {
			return model.NoEnrichment(), nil
		}
		conversation.Metadata.OrderNumber = number

		details, err := s.deps.Orders.GetOrderDetails(ctx, number)
		if err != nil {
			log.Printf("orchestrator: order lookup for %s failed: %v", number, err)
			return model.NoEnrichment(), nil
		}
		return model.OrderEnrichment(details), nil

	case intent == model.IntentOther:
		result, err := s.deps.FAQ.Search(ctx, message)
		if err != nil {
			log.Printf("orchestrator: faq search failed: %v", err)
			return model.NoEnrichment(), nil
		}
		return model.FAQEnrichment(result), nil

	case intent == model.IntentTicketing:
		return model.NoEnrichment(), s.handleTicketing(ctx, message, conversation)
	}

	return model.NoEnrichment(), nil
}

// handleTicketing raises at most one ticket per conversation. Without an
// email on file or in the message it does nothing; the generator asks
// for one.
func (s *Service) handleTicketing(ctx context.Context, message string, conversation *model.Conversation) error {
	if conversation.Metadata.TicketID != "" {
		return nil
	}

	var email string
	if s.deps.Tickets.NeedsEmail(conversation) {
		extracted, ok := ExtractEmail(message)
		if !ok {
			return nil
		}
		conversation.Metadata.Email = extracted
		email = extracted
	} else {
		email = conversation.Metadata.Email
	}

	ticketID, err := s.deps.Tickets.CreateTicket(ctx, email, conversation)
	if err != nil {
		return fmt.Errorf("create ticket: %w", err)
	}

	conversation.Metadata.TicketID = ticketID
	conversation.TransitionStatus(model.ConversationStatusTicket)
	return nil
}

// validateAndFallback makes the single validation pass. A rejected or
// unverifiable response is replaced outright with the fixed fallback and
// the reported intent resets to the default; the generator is never
// called a second time.
func (s *Service) validateAndFallback(ctx context.Context, response model.StructuredResponse, intent model.Intent) (model.StructuredResponse, model.Intent) {
	result, err := s.deps.Validator.Validate(ctx, response.Text)
	if err != nil {
		log.Printf("orchestrator: validation errored, using fallback: %v", err)
		return model.StructuredResponse{Text: FallbackText}, model.IntentDefault
	}
	if !result.IsValid {
		log.Printf("orchestrator: validation failed (%s), using fallback", result.Reason)
		return model.StructuredResponse{Text: FallbackText}, model.IntentDefault
	}
	return response, intent
}
