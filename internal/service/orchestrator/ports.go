package orchestrator

import (
	"context"

	"support-chat-backend/internal/model"
)

// The six collaborators the pipeline coordinates. Each is injected at
// construction; the orchestrator holds no process-wide state.

// ConversationStore loads, creates and saves conversations. Load returns
// (nil, nil) when no conversation exists for the id: an unknown id means
// "start new", never an error.
type ConversationStore interface {
	Load(ctx context.Context, conversationID string) (*model.Conversation, error)
	Create(ctx context.Context) (*model.Conversation, error)
	Save(ctx context.Context, conversation *model.Conversation) error
}

type IntentClassifier interface {
	Detect(ctx context.Context, message string, conversation *model.Conversation) (model.Intent, error)
}

// OrderLookup returns (nil, nil) when no order matches the number.
type OrderLookup interface {
	GetOrderDetails(ctx context.Context, orderNumber string) (*model.OrderDetails, error)
}

// FAQSearcher returns (nil, nil) when nothing matches with enough
// confidence; the generator owns the "no answer found" wording.
type FAQSearcher interface {
	Search(ctx context.Context, query string) (*model.FAQResult, error)
}

type TicketService interface {
	NeedsEmail(conversation *model.Conversation) bool
	CreateTicket(ctx context.Context, email string, conversation *model.Conversation) (string, error)
}

type ResponseGenerator interface {
	Generate(ctx context.Context, input model.GenerateInput) (model.StructuredResponse, error)
}

type ResponseValidator interface {
	Validate(ctx context.Context, text string) (model.ValidationResult, error)
}
